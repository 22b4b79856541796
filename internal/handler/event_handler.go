package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/dto"
	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/service"
	"github.com/campusmesh/portal-api/internal/utils"
)

// EventHandler wires the campus event routes.
type EventHandler struct {
	service   service.EventService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewEventHandler constructs the handler.
func NewEventHandler(service service.EventService, validator *validator.Validate, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "event_handler").Logger(),
	}
}

// RegisterPublic attaches the read-only event endpoints.
func (h *EventHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
}

// RegisterAdmin attaches the event mutation endpoints.
func (h *EventHandler) RegisterAdmin(router fiber.Router) {
	router.Post("", h.create)
	router.Delete("/:id", h.delete)
}

func (h *EventHandler) list(c *fiber.Ctx) error {
	events, err := h.service.Events(c.UserContext())
	if err != nil {
		return h.internalError(c, err, "failed to list events")
	}

	return utils.SendSuccess(c, "events retrieved", events)
}

func (h *EventHandler) create(c *fiber.Ctx) error {
	var payload dto.EventCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "title and date are required")
	}

	event, err := h.service.AddEvent(c.UserContext(), models.Event{
		Title:       payload.Title,
		Date:        payload.Date,
		Time:        payload.Time,
		Description: payload.Description,
		Type:        payload.Type,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return utils.SendError(c, fiber.StatusBadRequest, "title and date are required")
		}
		return h.internalError(c, err, "failed to add event")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "event added", event)
}

func (h *EventHandler) delete(c *fiber.Ctx) error {
	id, err := parseIntParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.DeleteEvent(c.UserContext(), id); err != nil {
		return h.internalError(c, err, "failed to delete event")
	}

	return utils.SendSuccess(c, "event deleted", fiber.Map{"id": id})
}

func (h *EventHandler) internalError(c *fiber.Ctx, err error, message string) error {
	requestLogger(h.logger, c).Error().Err(err).Msg(message)
	return utils.SendError(c, fiber.StatusInternalServerError, message)
}
