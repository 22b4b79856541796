package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/service"
	"github.com/campusmesh/portal-api/internal/utils"
)

// AdminHandler wires the administrator dashboard routes.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register attaches the dashboard endpoints to the router group.
func (h *AdminHandler) Register(router fiber.Router) {
	router.Get("/summary", h.summary)
	router.Get("/roster", h.roster)
}

func (h *AdminHandler) summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build summary")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build summary")
	}

	return utils.SendSuccess(c, "summary retrieved", summary)
}

func (h *AdminHandler) roster(c *fiber.Ctx) error {
	roster, err := h.service.Roster(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build roster")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build roster")
	}

	return utils.SendSuccess(c, "roster retrieved", roster)
}
