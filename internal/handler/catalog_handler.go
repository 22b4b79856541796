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

// CatalogHandler wires the course catalog and notice board routes.
type CatalogHandler struct {
	service   service.CatalogService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(service service.CatalogService, validator *validator.Validate, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "catalog_handler").Logger(),
	}
}

// RegisterPublic attaches the read-only catalog endpoints.
func (h *CatalogHandler) RegisterPublic(router fiber.Router) {
	router.Get("/courses", h.listCourses)
	router.Get("/notices", h.listNotices)
}

// RegisterAdmin attaches the catalog mutation endpoints.
func (h *CatalogHandler) RegisterAdmin(router fiber.Router) {
	router.Post("/courses", h.createCourse)
	router.Delete("/courses/:code", h.deleteCourse)
	router.Post("/notices", h.createNotice)
	router.Delete("/notices/:index", h.deleteNotice)
}

func (h *CatalogHandler) listCourses(c *fiber.Ctx) error {
	courses, err := h.service.Courses(c.UserContext())
	if err != nil {
		return h.internalError(c, err, "failed to list courses")
	}

	return utils.SendSuccess(c, "courses retrieved", courses)
}

func (h *CatalogHandler) createCourse(c *fiber.Ctx) error {
	var payload dto.CourseCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "code, name and credits are required")
	}

	course := models.Course{
		Code:    payload.Code,
		Name:    payload.Name,
		Credits: payload.Credits,
		Schedule: models.Schedule{
			Day:  payload.Day,
			Time: payload.Time,
		},
	}

	if err := h.service.AddCourse(c.UserContext(), course); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return utils.SendError(c, fiber.StatusBadRequest, "code, name and credits are required")
		case errors.Is(err, service.ErrDuplicateCourse):
			return utils.SendError(c, fiber.StatusConflict, "course code already exists")
		default:
			return h.internalError(c, err, "failed to add course")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "course added", course)
}

func (h *CatalogHandler) deleteCourse(c *fiber.Ctx) error {
	code := c.Params("code")
	if err := h.service.DeleteCourse(c.UserContext(), code); err != nil {
		return h.internalError(c, err, "failed to delete course")
	}

	return utils.SendSuccess(c, "course deleted", fiber.Map{"code": code})
}

func (h *CatalogHandler) listNotices(c *fiber.Ctx) error {
	notices, err := h.service.Notices(c.UserContext())
	if err != nil {
		return h.internalError(c, err, "failed to list notices")
	}

	return utils.SendSuccess(c, "notices retrieved", notices)
}

func (h *CatalogHandler) createNotice(c *fiber.Ctx) error {
	var payload dto.NoticeCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "title and content are required")
	}

	notice, err := h.service.AddNotice(c.UserContext(), payload.Title, payload.Content)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return utils.SendError(c, fiber.StatusBadRequest, "title and content are required")
		}
		return h.internalError(c, err, "failed to add notice")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "notice posted", notice)
}

func (h *CatalogHandler) deleteNotice(c *fiber.Ctx) error {
	index, err := parseIntParam(c, "index")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.DeleteNotice(c.UserContext(), index); err != nil {
		return h.internalError(c, err, "failed to delete notice")
	}

	return utils.SendSuccess(c, "notice deleted", fiber.Map{"index": index})
}

func (h *CatalogHandler) internalError(c *fiber.Ctx, err error, message string) error {
	requestLogger(h.logger, c).Error().Err(err).Msg(message)
	return utils.SendError(c, fiber.StatusInternalServerError, message)
}
