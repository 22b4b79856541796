package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/dto"
	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
)

// ErrEmptySelection indicates a registration attempt with no courses.
var ErrEmptySelection = errors.New("select at least one course to register")

var (
	timetableSlots = []string{"09:00-10:00", "10:00-11:00", "11:00-12:00", "14:00-15:00", "15:00-16:00"}
	timetableDays  = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
)

// EnrollmentService manages course registration and the views derived from
// it: timetable, calendar, grades, attendance and analytics.
type EnrollmentService interface {
	Register(ctx context.Context, username string, codes []string) error
	RegisteredCourses(ctx context.Context, username string) ([]models.Course, error)
	Timetable(ctx context.Context, username string) (dto.TimetableResponse, error)
	Calendar(ctx context.Context, username string) ([]dto.CalendarItem, error)
	Grades(ctx context.Context, username string) ([]dto.CourseGrade, error)
	Attendance(ctx context.Context, username string) ([]dto.AttendanceRow, error)
	Analytics(ctx context.Context, username string) (dto.AnalyticsResponse, error)
}

type enrollmentService struct {
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
	grades      GradeSource
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      zerolog.Logger
}

// NewEnrollmentService constructs the enrollment service. The cache client
// is optional; when nil, analytics are recomputed on every call.
func NewEnrollmentService(catalogRepo repository.CatalogRepository, userRepo repository.UserRepository, grades GradeSource, cache *redis.Client, cacheTTL time.Duration, logger zerolog.Logger) EnrollmentService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &enrollmentService{
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		grades:      grades,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger.With().Str("component", "enrollment_service").Logger(),
	}
}

// Register overwrites the user's registered-course set; it never merges.
func (s *enrollmentService) Register(ctx context.Context, username string, codes []string) error {
	if len(codes) == 0 {
		return ErrEmptySelection
	}

	if err := s.userRepo.SaveRegisteredCourses(ctx, username, codes); err != nil {
		return err
	}

	s.invalidateAnalytics(ctx, username)
	s.logger.Info().Str("username", username).Int("count", len(codes)).Msg("courses registered")

	return nil
}

func (s *enrollmentService) RegisteredCourses(ctx context.Context, username string) ([]models.Course, error) {
	registered, catalog, err := s.registeredCatalog(ctx, username)
	if err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(registered))
	for _, code := range registered {
		if course, ok := catalog[code]; ok {
			courses = append(courses, course)
		}
	}

	return courses, nil
}

// Timetable places each registered course at its day/slot cell. Courses
// scheduled outside the fixed grid are omitted from the grid but still count
// in every other view.
func (s *enrollmentService) Timetable(ctx context.Context, username string) (dto.TimetableResponse, error) {
	registered, catalog, err := s.registeredCatalog(ctx, username)
	if err != nil {
		return dto.TimetableResponse{}, err
	}

	grid := make([][]*models.Course, len(timetableSlots))
	for i := range grid {
		grid[i] = make([]*models.Course, len(timetableDays))
	}

	slotIndex := make(map[string]int, len(timetableSlots))
	for i, slot := range timetableSlots {
		slotIndex[slot] = i
	}
	dayIndex := make(map[string]int, len(timetableDays))
	for i, day := range timetableDays {
		dayIndex[day] = i
	}

	for _, code := range registered {
		course, ok := catalog[code]
		if !ok {
			continue
		}
		row, okRow := slotIndex[course.Schedule.Time]
		col, okCol := dayIndex[course.Schedule.Day]
		if !okRow || !okCol {
			continue
		}
		placed := course
		grid[row][col] = &placed
	}

	return dto.TimetableResponse{Slots: timetableSlots, Days: timetableDays, Grid: grid}, nil
}

// Calendar merges campus events with the due dates of the user's registered
// courses, ascending by date. Ties keep insertion order: events first, then
// assignments in registration order.
func (s *enrollmentService) Calendar(ctx context.Context, username string) ([]dto.CalendarItem, error) {
	events, _, err := s.catalogRepo.Events(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CalendarItem, 0, len(events))
	for _, event := range events {
		itemType := event.Type
		if itemType == "" {
			itemType = "Event"
		}
		items = append(items, dto.CalendarItem{
			Date:        event.Date,
			Time:        event.Time,
			Title:       event.Title,
			Type:        itemType,
			Description: event.Description,
		})
	}

	registered, err := s.userRepo.RegisteredCourses(ctx, username)
	if err != nil {
		return nil, err
	}
	assignments, _, err := s.catalogRepo.Assignments(ctx)
	if err != nil {
		return nil, err
	}

	for _, code := range registered {
		for _, assignment := range assignments[code] {
			items = append(items, dto.CalendarItem{
				Date:        assignment.Due,
				Title:       assignment.Title,
				Type:        "Assignment",
				Description: fmt.Sprintf("Due for %s", code),
			})
		}
	}

	// Dates are ISO yyyy-mm-dd, so lexicographic order is chronological.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date < items[j].Date
	})

	return items, nil
}

func (s *enrollmentService) Grades(ctx context.Context, username string) ([]dto.CourseGrade, error) {
	registered, catalog, err := s.registeredCatalog(ctx, username)
	if err != nil {
		return nil, err
	}

	grades := make([]dto.CourseGrade, 0, len(registered))
	for _, code := range registered {
		course, ok := catalog[code]
		if !ok {
			continue
		}
		grades = append(grades, dto.CourseGrade{Code: code, Name: course.Name, Grade: s.grades.Grade(code)})
	}

	return grades, nil
}

func (s *enrollmentService) Attendance(ctx context.Context, username string) ([]dto.AttendanceRow, error) {
	registered, catalog, err := s.registeredCatalog(ctx, username)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AttendanceRow, 0, len(registered))
	for _, code := range registered {
		course, ok := catalog[code]
		if !ok {
			continue
		}
		attended, percent := attendanceFor(username, code)
		rows = append(rows, dto.AttendanceRow{
			Code:     code,
			Name:     course.Name,
			Attended: attended,
			Total:    attendanceTotalClasses,
			Percent:  percent,
		})
	}

	return rows, nil
}

func (s *enrollmentService) Analytics(ctx context.Context, username string) (dto.AnalyticsResponse, error) {
	cacheKey := s.analyticsCacheKey(username)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var response dto.AnalyticsResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				response.CacheHit = true
				return response, nil
			}
		}
	}

	attendance, err := s.Attendance(ctx, username)
	if err != nil {
		return dto.AnalyticsResponse{}, err
	}

	registered, err := s.userRepo.RegisteredCourses(ctx, username)
	if err != nil {
		return dto.AnalyticsResponse{}, err
	}
	assignments, _, err := s.catalogRepo.Assignments(ctx)
	if err != nil {
		return dto.AnalyticsResponse{}, err
	}
	submissions, err := s.userRepo.Submissions(ctx, username)
	if err != nil {
		return dto.AnalyticsResponse{}, err
	}

	total := 0
	submitted := 0
	for _, code := range registered {
		for _, assignment := range assignments[code] {
			total++
			if submissions[submissionKey(code, assignment.ID)].Submitted {
				submitted++
			}
		}
	}

	response := dto.AnalyticsResponse{
		Attendance:       attendance,
		TotalAssignments: total,
		Submitted:        submitted,
	}
	if total > 0 {
		response.CompletionPercent = int(math.Round(float64(submitted) / float64(total) * 100))
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to cache analytics")
			}
		}
	}

	return response, nil
}

func (s *enrollmentService) registeredCatalog(ctx context.Context, username string) ([]string, map[string]models.Course, error) {
	registered, err := s.userRepo.RegisteredCourses(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	courses, _, err := s.catalogRepo.Courses(ctx)
	if err != nil {
		return nil, nil, err
	}

	catalog := make(map[string]models.Course, len(courses))
	for _, course := range courses {
		catalog[course.Code] = course
	}

	return registered, catalog, nil
}

func (s *enrollmentService) analyticsCacheKey(username string) string {
	return fmt.Sprintf("portal:analytics:v1:%s", username)
}

func (s *enrollmentService) invalidateAnalytics(ctx context.Context, username string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, s.analyticsCacheKey(username)).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate analytics cache")
	}
}
