package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusmesh/portal-api/internal/config"
	"github.com/campusmesh/portal-api/internal/handler"
	"github.com/campusmesh/portal-api/internal/middleware"
	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/observability"
	"github.com/campusmesh/portal-api/internal/repository"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	Sessions repository.SessionRepository

	AuthHandler         *handler.AuthHandler
	CatalogHandler      *handler.CatalogHandler
	EventHandler        *handler.EventHandler
	LibraryHandler      *handler.LibraryHandler
	AssignmentHandler   *handler.AssignmentHandler
	StudentHandler      *handler.StudentHandler
	NotificationHandler *handler.NotificationHandler
	MessageHandler      *handler.MessageHandler
	AssistantHandler    *handler.AssistantHandler
	AdminHandler        *handler.AdminHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
	}

	requireLogin := middleware.RequireLogin(deps.Sessions)
	studentOnly := middleware.RequireRole(models.RoleStudent)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// Catalog reads are available to every logged-in user.
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterPublic(api.Group("/catalog", requireLogin))
		deps.CatalogHandler.RegisterAdmin(api.Group("/admin/catalog", requireLogin, adminOnly))
	}

	if deps.EventHandler != nil {
		deps.EventHandler.RegisterPublic(api.Group("/events", requireLogin))
		deps.EventHandler.RegisterAdmin(api.Group("/admin/events", requireLogin, adminOnly))
	}

	if deps.LibraryHandler != nil {
		deps.LibraryHandler.RegisterPublic(api.Group("/library", requireLogin))
		deps.LibraryHandler.RegisterStudent(api.Group("/library", requireLogin, studentOnly))
		deps.LibraryHandler.RegisterAdmin(api.Group("/admin/library", requireLogin, adminOnly))
	}

	if deps.AssignmentHandler != nil {
		deps.AssignmentHandler.RegisterStudent(api.Group("/assignments", requireLogin, studentOnly))
		deps.AssignmentHandler.RegisterAdmin(api.Group("/admin/assignments", requireLogin, adminOnly))
	}

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/student", requireLogin, studentOnly))
	}

	if deps.NotificationHandler != nil {
		deps.NotificationHandler.Register(api.Group("/notifications", requireLogin, studentOnly))
	}

	if deps.MessageHandler != nil {
		deps.MessageHandler.Register(api.Group("/messages", requireLogin))
	}

	if deps.AssistantHandler != nil {
		deps.AssistantHandler.Register(api.Group("/assistant", requireLogin, studentOnly))
	}

	if deps.AdminHandler != nil {
		deps.AdminHandler.Register(api.Group("/admin", requireLogin, adminOnly))
	}
}
