package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/dto"
	"github.com/campusmesh/portal-api/internal/middleware"
	"github.com/campusmesh/portal-api/internal/service"
	"github.com/campusmesh/portal-api/internal/utils"
)

// MessageHandler wires the global chat room endpoints including the
// websocket upgrade for live fan-out.
type MessageHandler struct {
	service   service.MessageService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewMessageHandler constructs the handler.
func NewMessageHandler(service service.MessageService, validator *validator.Validate, logger zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "message_handler").Logger(),
	}
}

// Register binds chat routes under the provided router group.
func (h *MessageHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.send)

	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws", websocket.New(h.handleConnection))
}

func (h *MessageHandler) list(c *fiber.Ctx) error {
	messages, err := h.service.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list messages")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list messages")
	}

	return utils.SendSuccess(c, "messages retrieved", messages)
}

func (h *MessageHandler) send(c *fiber.Ctx) error {
	var payload dto.MessageSendRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "message content is required")
	}

	message, err := h.service.Send(c.UserContext(), middleware.Username(c), payload.Content)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return utils.SendError(c, fiber.StatusBadRequest, "message content is required")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to send message")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to send message")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "message sent", message)
}

func (h *MessageHandler) handleConnection(conn *websocket.Conn) {
	username, _ := conn.Locals("username").(string)
	h.logger.Info().Str("username", username).Msg("chat websocket connected")
	h.service.ServeConnection(conn)
	h.logger.Info().Str("username", username).Msg("chat websocket disconnected")
}
