package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/campusmesh/portal-api/internal/dto"
	"github.com/campusmesh/portal-api/internal/models"
)

func TestCatalogAdminGuards(t *testing.T) {
	app := setupPortalApp(t)
	login(t, app, "alice", "student")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/admin/catalog/courses", dto.CourseCreateRequest{
		Code: "CS301", Name: "Operating Systems", Credits: 4,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	login(t, app, "registrar", "admin")

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/v1/admin/catalog/courses", dto.CourseCreateRequest{
		Code: "CS301", Name: "Operating Systems", Credits: 4, Day: "Friday", Time: "09:00-10:00",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Duplicate codes are rejected.
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/v1/admin/catalog/courses", dto.CourseCreateRequest{
		Code: "CS301", Name: "Operating Systems", Credits: 4,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/v1/catalog/courses", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listBody struct {
		Data []models.Course `json:"data"`
	}
	decodeResponse(t, resp, &listBody)
	require.Len(t, listBody.Data, 7) // 6 seeded plus CS301
}

func TestNoticeLifecycleOverHTTP(t *testing.T) {
	app := setupPortalApp(t)
	login(t, app, "registrar", "admin")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/admin/catalog/notices", dto.NoticeCreateRequest{
		Title: "Lab Closure", Content: "The hardware lab is closed on Friday.",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/v1/catalog/notices", nil))
	require.NoError(t, err)

	var listBody struct {
		Data []models.Notice `json:"data"`
	}
	decodeResponse(t, resp, &listBody)
	require.Len(t, listBody.Data, 5) // 4 seeded plus the new one, newest first
	require.Equal(t, "Lab Closure", listBody.Data[0].Title)

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/v1/admin/catalog/notices/0", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/v1/catalog/notices", nil))
	require.NoError(t, err)
	decodeResponse(t, resp, &listBody)
	require.Len(t, listBody.Data, 4)
	require.NotEqual(t, "Lab Closure", listBody.Data[0].Title)
}

func TestAdminSummaryCounts(t *testing.T) {
	app := setupPortalApp(t)
	login(t, app, "alice", "student")
	login(t, app, "bob", "student")
	login(t, app, "registrar", "admin")

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/v1/admin/summary", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data dto.AdminSummary `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, 6, body.Data.Courses)
	require.Equal(t, 4, body.Data.Notices)
	require.Equal(t, 2, body.Data.Students)
}
