package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/dto"
	"github.com/campusmesh/portal-api/internal/middleware"
	"github.com/campusmesh/portal-api/internal/service"
	"github.com/campusmesh/portal-api/internal/utils"
)

// LibraryHandler wires the library catalog and reservation routes.
type LibraryHandler struct {
	service   service.LibraryService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewLibraryHandler constructs the handler.
func NewLibraryHandler(service service.LibraryService, validator *validator.Validate, logger zerolog.Logger) *LibraryHandler {
	return &LibraryHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "library_handler").Logger(),
	}
}

// RegisterPublic attaches the browse and search endpoints.
func (h *LibraryHandler) RegisterPublic(router fiber.Router) {
	router.Get("/books", h.list)
}

// RegisterStudent attaches the reservation endpoints.
func (h *LibraryHandler) RegisterStudent(router fiber.Router) {
	router.Post("/books/:id/reserve", h.reserve)
	router.Get("/reserved", h.reserved)
}

// RegisterAdmin attaches the book catalog mutation endpoints.
func (h *LibraryHandler) RegisterAdmin(router fiber.Router) {
	router.Post("/books", h.create)
	router.Delete("/books/:id", h.delete)
}

func (h *LibraryHandler) list(c *fiber.Ctx) error {
	books, err := h.service.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return h.internalError(c, err, "failed to list books")
	}

	return utils.SendSuccess(c, "books retrieved", books)
}

func (h *LibraryHandler) create(c *fiber.Ctx) error {
	var payload dto.BookCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "title and author are required")
	}

	book, err := h.service.AddBook(c.UserContext(), payload.Title, payload.Author)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return utils.SendError(c, fiber.StatusBadRequest, "title and author are required")
		}
		return h.internalError(c, err, "failed to add book")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "book added", book)
}

func (h *LibraryHandler) delete(c *fiber.Ctx) error {
	id, err := parseIntParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.DeleteBook(c.UserContext(), id); err != nil {
		return h.internalError(c, err, "failed to delete book")
	}

	return utils.SendSuccess(c, "book deleted", fiber.Map{"id": id})
}

func (h *LibraryHandler) reserve(c *fiber.Ctx) error {
	id, err := parseIntParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Reserve(c.UserContext(), middleware.Username(c), id); err != nil {
		return h.internalError(c, err, "failed to reserve book")
	}

	return utils.SendSuccess(c, "reservation recorded", fiber.Map{"id": id})
}

func (h *LibraryHandler) reserved(c *fiber.Ctx) error {
	books, err := h.service.Reserved(c.UserContext(), middleware.Username(c))
	if err != nil {
		return h.internalError(c, err, "failed to list reserved books")
	}

	return utils.SendSuccess(c, "reserved books retrieved", books)
}

func (h *LibraryHandler) internalError(c *fiber.Ctx, err error, message string) error {
	requestLogger(h.logger, c).Error().Err(err).Msg(message)
	return utils.SendError(c, fiber.StatusInternalServerError, message)
}
