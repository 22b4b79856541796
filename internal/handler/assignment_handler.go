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

// AssignmentHandler wires assignment catalog and submission routes.
type AssignmentHandler struct {
	assignments service.AssignmentService
	submissions service.SubmissionService
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewAssignmentHandler constructs the handler.
func NewAssignmentHandler(assignments service.AssignmentService, submissions service.SubmissionService, validator *validator.Validate, logger zerolog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		assignments: assignments,
		submissions: submissions,
		validator:   validator,
		logger:      logger.With().Str("component", "assignment_handler").Logger(),
	}
}

// RegisterStudent attaches the student-facing assignment endpoints.
func (h *AssignmentHandler) RegisterStudent(router fiber.Router) {
	router.Get("/mine", h.mine)
	router.Post("/submit", h.submit)
}

// RegisterAdmin attaches the assignment catalog mutation endpoints.
func (h *AssignmentHandler) RegisterAdmin(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Delete("/:course/:id", h.delete)
}

func (h *AssignmentHandler) list(c *fiber.Ctx) error {
	assignments, err := h.assignments.All(c.UserContext())
	if err != nil {
		return h.internalError(c, err, "failed to list assignments")
	}

	return utils.SendSuccess(c, "assignments retrieved", assignments)
}

func (h *AssignmentHandler) create(c *fiber.Ctx) error {
	var payload dto.AssignmentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "course, title and due date are required")
	}

	assignment, err := h.assignments.Add(c.UserContext(), payload.Course, payload.Title, payload.Due)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return utils.SendError(c, fiber.StatusBadRequest, "course, title and due date are required")
		}
		return h.internalError(c, err, "failed to add assignment")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "assignment added", assignment)
}

func (h *AssignmentHandler) delete(c *fiber.Ctx) error {
	id, err := parseIntParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.assignments.Delete(c.UserContext(), c.Params("course"), id); err != nil {
		return h.internalError(c, err, "failed to delete assignment")
	}

	return utils.SendSuccess(c, "assignment deleted", fiber.Map{"id": id})
}

func (h *AssignmentHandler) mine(c *fiber.Ctx) error {
	views, err := h.assignments.ForStudent(c.UserContext(), middleware.Username(c))
	if err != nil {
		return h.internalError(c, err, "failed to list assignments")
	}

	return utils.SendSuccess(c, "assignments retrieved", views)
}

func (h *AssignmentHandler) submit(c *fiber.Ctx) error {
	var payload dto.SubmitAssignmentRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "course and assignment id are required")
	}

	username := middleware.Username(c)
	if err := h.submissions.Submit(c.UserContext(), username, payload.Course, payload.ID, payload.FileName); err != nil {
		return h.internalError(c, err, "failed to submit assignment")
	}

	return utils.SendSuccess(c, "assignment submitted", fiber.Map{
		"course": payload.Course,
		"id":     payload.ID,
	})
}

func (h *AssignmentHandler) internalError(c *fiber.Ctx, err error, message string) error {
	requestLogger(h.logger, c).Error().Err(err).Msg(message)
	return utils.SendError(c, fiber.StatusInternalServerError, message)
}
