package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/dto"
	"github.com/campusmesh/portal-api/internal/middleware"
	"github.com/campusmesh/portal-api/internal/service"
	"github.com/campusmesh/portal-api/internal/utils"
)

// AssistantHandler wires the virtual assistant endpoint.
type AssistantHandler struct {
	service   service.AssistantService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAssistantHandler constructs the handler.
func NewAssistantHandler(service service.AssistantService, validator *validator.Validate, logger zerolog.Logger) *AssistantHandler {
	return &AssistantHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "assistant_handler").Logger(),
	}
}

// Register attaches the assistant endpoint to the router group.
func (h *AssistantHandler) Register(router fiber.Router) {
	router.Post("/query", h.query)
}

func (h *AssistantHandler) query(c *fiber.Ctx) error {
	var payload dto.AssistantQueryRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "question is required")
	}

	answer, err := h.service.Respond(c.UserContext(), middleware.Username(c), payload.Question)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("assistant query failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to answer question")
	}

	return utils.SendSuccess(c, "assistant replied", dto.AssistantReply{Answer: answer})
}
