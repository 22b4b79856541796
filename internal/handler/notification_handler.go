package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/middleware"
	"github.com/campusmesh/portal-api/internal/service"
	"github.com/campusmesh/portal-api/internal/utils"
)

// NotificationHandler wires the reminder and notification routes.
type NotificationHandler struct {
	service service.NotificationService
	logger  zerolog.Logger
}

// NewNotificationHandler constructs the handler.
func NewNotificationHandler(service service.NotificationService, logger zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger.With().Str("component", "notification_handler").Logger(),
	}
}

// Register attaches the notification endpoints to the router group.
func (h *NotificationHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Patch("/:index/read", h.markRead)
	router.Delete("", h.clearAll)
}

// list refreshes deadline reminders before returning the inbox, so every
// read reflects the current assignment and event horizon.
func (h *NotificationHandler) list(c *fiber.Ctx) error {
	username := middleware.Username(c)
	if _, err := h.service.Refresh(c.UserContext(), username); err != nil {
		return h.internalError(c, err, "failed to refresh notifications")
	}

	notifications, err := h.service.List(c.UserContext(), username)
	if err != nil {
		return h.internalError(c, err, "failed to list notifications")
	}

	return utils.SendSuccess(c, "notifications retrieved", notifications)
}

func (h *NotificationHandler) markRead(c *fiber.Ctx) error {
	index, err := parseIntParam(c, "index")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.MarkRead(c.UserContext(), middleware.Username(c), index); err != nil {
		return h.internalError(c, err, "failed to mark notification read")
	}

	return utils.SendSuccess(c, "notification marked read", fiber.Map{"index": index})
}

func (h *NotificationHandler) clearAll(c *fiber.Ctx) error {
	if err := h.service.ClearAll(c.UserContext(), middleware.Username(c)); err != nil {
		return h.internalError(c, err, "failed to clear notifications")
	}

	return utils.SendSuccess(c, "notifications cleared", nil)
}

func (h *NotificationHandler) internalError(c *fiber.Ctx, err error, message string) error {
	requestLogger(h.logger, c).Error().Err(err).Msg(message)
	return utils.SendError(c, fiber.StatusInternalServerError, message)
}
