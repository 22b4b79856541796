package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/campusmesh/portal-api/internal/dto"
)

func TestAuthHandlerLoginFlow(t *testing.T) {
	app := setupPortalApp(t)

	// Nothing is logged in yet.
	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/v1/auth/session", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "alice",
		"password": "secret",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var loginBody struct {
		Success bool                `json:"success"`
		Data    dto.SessionResponse `json:"data"`
		Message string              `json:"message"`
	}
	decodeResponse(t, resp, &loginBody)
	require.True(t, loginBody.Success)
	require.Equal(t, "alice", loginBody.Data.Username)
	require.Equal(t, "student", loginBody.Data.Role)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/v1/auth/session", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sessionBody struct {
		Data dto.SessionResponse `json:"data"`
	}
	decodeResponse(t, resp, &sessionBody)
	require.Equal(t, "alice", sessionBody.Data.Username)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/v1/auth/logout", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/v1/auth/session", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthHandlerRejectsBadPayloads(t *testing.T) {
	app := setupPortalApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "alice",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "alice",
		"password": "secret",
		"role":     "superuser",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRoutesRequireLogin(t *testing.T) {
	app := setupPortalApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/v1/catalog/courses", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	login(t, app, "alice", "student")

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/v1/catalog/courses", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
