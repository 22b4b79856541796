package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/campusmesh/portal-api/internal/config"
	"github.com/campusmesh/portal-api/internal/handler"
	"github.com/campusmesh/portal-api/internal/repository"
	"github.com/campusmesh/portal-api/internal/router"
	"github.com/campusmesh/portal-api/internal/service"
	"github.com/campusmesh/portal-api/internal/store"
)

func setupPortalApp(t *testing.T) *fiber.App {
	t.Helper()

	mini, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	stateStore := store.NewRedis(client)

	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.New(io.Discard)

	catalogRepo := repository.NewCatalogRepository(stateStore)
	userRepo := repository.NewUserRepository(stateStore)
	sessionRepo := repository.NewSessionRepository(stateStore)
	messageRepo := repository.NewMessageRepository(stateStore)

	grades := service.GradeSourceFunc(func(string) string { return "A" })

	seedService := service.NewSeedService(catalogRepo, logger)
	require.NoError(t, seedService.EnsureDefaults(context.Background()))

	taskService := service.NewTaskService(userRepo, logger)
	authService := service.NewAuthService(sessionRepo, userRepo, taskService, logger)
	catalogService := service.NewCatalogService(catalogRepo, logger)
	eventService := service.NewEventService(catalogRepo, logger)
	libraryService := service.NewLibraryService(catalogRepo, userRepo, logger)
	assignmentService := service.NewAssignmentService(catalogRepo, userRepo, logger)
	submissionService := service.NewSubmissionService(userRepo, logger)
	enrollmentService := service.NewEnrollmentService(catalogRepo, userRepo, grades, client, time.Minute, logger)
	notificationService := service.NewNotificationService(catalogRepo, userRepo, logger)
	profileService := service.NewProfileService(userRepo, logger)
	messageService := service.NewMessageService(messageRepo, logger)
	assistantService := service.NewAssistantService(catalogRepo, userRepo, grades, nil, logger)
	adminService := service.NewAdminService(catalogRepo, userRepo, logger)

	app := fiber.New()
	router.Register(app, config.Config{AppName: "Portal Test", AppEnv: "test"}, router.Dependencies{
		Sessions:            sessionRepo,
		AuthHandler:         handler.NewAuthHandler(authService, validate, logger),
		CatalogHandler:      handler.NewCatalogHandler(catalogService, validate, logger),
		EventHandler:        handler.NewEventHandler(eventService, validate, logger),
		LibraryHandler:      handler.NewLibraryHandler(libraryService, validate, logger),
		AssignmentHandler:   handler.NewAssignmentHandler(assignmentService, submissionService, validate, logger),
		StudentHandler:      handler.NewStudentHandler(enrollmentService, taskService, profileService, validate, logger),
		NotificationHandler: handler.NewNotificationHandler(notificationService, logger),
		MessageHandler:      handler.NewMessageHandler(messageService, validate, logger),
		AssistantHandler:    handler.NewAssistantHandler(assistantService, validate, logger),
		AdminHandler:        handler.NewAdminHandler(adminService, logger),
	})

	return app
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(body, target))
}

func login(t *testing.T, app *fiber.App, username, role string) {
	t.Helper()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": username,
		"password": "secret",
		"role":     role,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}
