package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/dto"
	"github.com/campusmesh/portal-api/internal/middleware"
	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/service"
	"github.com/campusmesh/portal-api/internal/utils"
)

// StudentHandler wires the student-facing enrollment, academics, checklist
// and profile routes.
type StudentHandler struct {
	enrollment service.EnrollmentService
	tasks      service.TaskService
	profiles   service.ProfileService
	validator  *validator.Validate
	logger     zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(enrollment service.EnrollmentService, tasks service.TaskService, profiles service.ProfileService, validator *validator.Validate, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		enrollment: enrollment,
		tasks:      tasks,
		profiles:   profiles,
		validator:  validator,
		logger:     logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches the student endpoints to the router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Post("/courses/register", h.register)
	router.Get("/courses", h.registered)
	router.Get("/timetable", h.timetable)
	router.Get("/calendar", h.calendar)
	router.Get("/grades", h.grades)
	router.Get("/attendance", h.attendance)
	router.Get("/analytics", h.analytics)
	router.Get("/tasks", h.listTasks)
	router.Patch("/tasks", h.updateTask)
	router.Get("/profile", h.profile)
	router.Put("/profile", h.updateProfile)
}

func (h *StudentHandler) register(c *fiber.Ctx) error {
	var payload dto.RegisterCoursesRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "select at least one course")
	}

	if err := h.enrollment.Register(c.UserContext(), middleware.Username(c), payload.Courses); err != nil {
		if errors.Is(err, service.ErrEmptySelection) {
			return utils.SendError(c, fiber.StatusBadRequest, "select at least one course")
		}
		return h.internalError(c, err, "failed to register courses")
	}

	return utils.SendSuccess(c, "courses registered", fiber.Map{"courses": payload.Courses})
}

func (h *StudentHandler) registered(c *fiber.Ctx) error {
	courses, err := h.enrollment.RegisteredCourses(c.UserContext(), middleware.Username(c))
	if err != nil {
		return h.internalError(c, err, "failed to list registered courses")
	}

	return utils.SendSuccess(c, "registered courses retrieved", courses)
}

func (h *StudentHandler) timetable(c *fiber.Ctx) error {
	timetable, err := h.enrollment.Timetable(c.UserContext(), middleware.Username(c))
	if err != nil {
		return h.internalError(c, err, "failed to build timetable")
	}

	return utils.SendSuccess(c, "timetable retrieved", timetable)
}

func (h *StudentHandler) calendar(c *fiber.Ctx) error {
	items, err := h.enrollment.Calendar(c.UserContext(), middleware.Username(c))
	if err != nil {
		return h.internalError(c, err, "failed to build calendar")
	}

	return utils.SendSuccess(c, "calendar retrieved", items)
}

func (h *StudentHandler) grades(c *fiber.Ctx) error {
	grades, err := h.enrollment.Grades(c.UserContext(), middleware.Username(c))
	if err != nil {
		return h.internalError(c, err, "failed to list grades")
	}

	return utils.SendSuccess(c, "grades retrieved", grades)
}

func (h *StudentHandler) attendance(c *fiber.Ctx) error {
	rows, err := h.enrollment.Attendance(c.UserContext(), middleware.Username(c))
	if err != nil {
		return h.internalError(c, err, "failed to compute attendance")
	}

	return utils.SendSuccess(c, "attendance retrieved", rows)
}

func (h *StudentHandler) analytics(c *fiber.Ctx) error {
	analytics, err := h.enrollment.Analytics(c.UserContext(), middleware.Username(c))
	if err != nil {
		return h.internalError(c, err, "failed to compute analytics")
	}

	if analytics.CacheHit {
		c.Set("X-Cache-Hit", "true")
	} else {
		c.Set("X-Cache-Hit", "false")
	}

	return utils.SendSuccess(c, "analytics retrieved", analytics)
}

func (h *StudentHandler) listTasks(c *fiber.Ctx) error {
	username := middleware.Username(c)
	if err := h.tasks.Bootstrap(c.UserContext(), username); err != nil {
		return h.internalError(c, err, "failed to load tasks")
	}

	tasks, err := h.tasks.Tasks(c.UserContext(), username)
	if err != nil {
		return h.internalError(c, err, "failed to load tasks")
	}

	return utils.SendSuccess(c, "tasks retrieved", tasks)
}

func (h *StudentHandler) updateTask(c *fiber.Ctx) error {
	var payload dto.TaskStatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "unknown task status")
	}

	err := h.tasks.UpdateStatus(c.UserContext(), middleware.Username(c), payload.Category, payload.ID, payload.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTaskStatus) {
			return utils.SendError(c, fiber.StatusBadRequest, "unknown task status")
		}
		return h.internalError(c, err, "failed to update task")
	}

	return utils.SendSuccess(c, "task updated", fiber.Map{
		"category": payload.Category,
		"id":       payload.ID,
		"status":   payload.Status,
	})
}

func (h *StudentHandler) profile(c *fiber.Ctx) error {
	profile, err := h.profiles.Profile(c.UserContext(), middleware.Username(c))
	if err != nil {
		return h.internalError(c, err, "failed to load profile")
	}

	return utils.SendSuccess(c, "profile retrieved", profile)
}

func (h *StudentHandler) updateProfile(c *fiber.Ctx) error {
	var payload dto.ProfileUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid email address")
	}

	profile := models.Profile{Email: payload.Email, Phone: payload.Phone}
	if err := h.profiles.Save(c.UserContext(), middleware.Username(c), profile); err != nil {
		return h.internalError(c, err, "failed to save profile")
	}

	return utils.SendSuccess(c, "profile saved", profile)
}

func (h *StudentHandler) internalError(c *fiber.Ctx, err error, message string) error {
	requestLogger(h.logger, c).Error().Err(err).Msg(message)
	return utils.SendError(c, fiber.StatusInternalServerError, message)
}
