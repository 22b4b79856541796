package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/dto"
	"github.com/campusmesh/portal-api/internal/service"
	"github.com/campusmesh/portal-api/internal/utils"
)

// AuthHandler wires login, logout and session inspection routes.
type AuthHandler struct {
	service   service.AuthService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service service.AuthService, validator *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register attaches auth endpoints to the router group.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/login", h.login)
	router.Post("/logout", h.logout)
	router.Get("/session", h.session)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "username and password are required")
	}

	session, err := h.service.Login(c.UserContext(), payload.Username, payload.Password, payload.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			return utils.SendError(c, fiber.StatusBadRequest, "username and password are required")
		case errors.Is(err, service.ErrInvalidRole):
			return utils.SendError(c, fiber.StatusBadRequest, "unknown role")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("login failed")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to log in")
		}
	}

	return utils.SendSuccess(c, "logged in", dto.SessionResponse{
		Username: session.Username,
		Role:     session.Role,
	})
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.UserContext()); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("logout failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to log out")
	}

	return utils.SendSuccess(c, "logged out", nil)
}

func (h *AuthHandler) session(c *fiber.Ctx) error {
	session, err := h.service.Current(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("session lookup failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load session")
	}

	if !session.LoggedIn {
		return utils.SendError(c, fiber.StatusUnauthorized, "not logged in")
	}

	return utils.SendSuccess(c, "session active", dto.SessionResponse{
		Username: session.Username,
		Role:     session.Role,
	})
}
