package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
	"github.com/campusmesh/portal-api/pkg/assistant"
)

const (
	assistantHelpReply     = "Hello! I can answer questions about your classes, assignments, grades and library reservations."
	assistantFallbackReply = "I'm sorry, I didn't understand that. Please ask about your schedule, assignments, grades or library."
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// AssistantService answers portal questions by keyword matching, first match
// wins: schedule, assignments, grades, library, help, fallback. Every branch
// recomputes from current state; no conversation memory is kept. An optional
// model-backed responder may handle the fallback branch only.
type AssistantService interface {
	Respond(ctx context.Context, username, question string) (string, error)
}

type assistantService struct {
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
	grades      GradeSource
	fallback    assistant.Responder
	logger      zerolog.Logger
}

// NewAssistantService constructs the assistant. The fallback responder may
// be nil, in which case unmatched questions get the canned reply.
func NewAssistantService(catalogRepo repository.CatalogRepository, userRepo repository.UserRepository, grades GradeSource, fallback assistant.Responder, logger zerolog.Logger) AssistantService {
	return &assistantService{
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		grades:      grades,
		fallback:    fallback,
		logger:      logger.With().Str("component", "assistant_service").Logger(),
	}
}

func (s *assistantService) Respond(ctx context.Context, username, question string) (string, error) {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "next class") || strings.Contains(q, "schedule"):
		return s.nextClass(ctx, username)
	case strings.Contains(q, "assignment") || strings.Contains(q, "homework"):
		return s.upcomingAssignments(ctx, username)
	case strings.Contains(q, "grade") || strings.Contains(q, "results"):
		return s.gradeSummary(ctx, username)
	case strings.Contains(q, "library") || strings.Contains(q, "book"):
		return s.reservedBooks(ctx, username)
	case strings.Contains(q, "help") || strings.Contains(q, "hello"):
		return assistantHelpReply, nil
	}

	if s.fallback != nil {
		if reply, err := s.fallback.Reply(ctx, question); err == nil && reply != "" {
			return reply, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Msg("assistant fallback failed, using canned reply")
		}
	}

	return assistantFallbackReply, nil
}

func (s *assistantService) nextClass(ctx context.Context, username string) (string, error) {
	registered, catalog, err := s.registeredCatalog(ctx, username)
	if err != nil {
		return "", err
	}

	now := time.Now()
	var bestTime time.Time
	var bestLabel string

	for _, code := range registered {
		course, ok := catalog[code]
		if !ok {
			continue
		}

		classTime, ok := nextOccurrence(now, course.Schedule)
		if !ok {
			continue
		}

		if bestLabel == "" || classTime.Before(bestTime) {
			bestTime = classTime
			bestLabel = course.Code + " – " + course.Name
		}
	}

	if bestLabel == "" {
		return "You have no upcoming classes.", nil
	}

	return fmt.Sprintf("Your next class is %s on %s.", bestLabel, displayTimestamp(bestTime)), nil
}

// nextOccurrence resolves the next time a weekly slot occurs. A slot earlier
// today counts as passed and rolls over to the following week.
func nextOccurrence(now time.Time, schedule models.Schedule) (time.Time, bool) {
	day, ok := weekdays[strings.ToLower(schedule.Day)]
	if !ok {
		return time.Time{}, false
	}

	start := schedule.Time
	if idx := strings.Index(start, "-"); idx >= 0 {
		start = start[:idx]
	}
	parsed, err := time.Parse("15:04", start)
	if err != nil {
		return time.Time{}, false
	}

	daysUntil := (int(day) - int(now.Weekday()) + 7) % 7
	classTime := time.Date(now.Year(), now.Month(), now.Day()+daysUntil, parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	if !classTime.After(now) {
		classTime = classTime.AddDate(0, 0, 7)
	}

	return classTime, true
}

func (s *assistantService) upcomingAssignments(ctx context.Context, username string) (string, error) {
	registered, err := s.userRepo.RegisteredCourses(ctx, username)
	if err != nil {
		return "", err
	}
	assignments, _, err := s.catalogRepo.Assignments(ctx)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, code := range registered {
		for _, assignment := range assignments[code] {
			lines = append(lines, fmt.Sprintf("%s: %s due on %s", code, assignment.Title, assignment.Due))
		}
	}

	if len(lines) == 0 {
		return "You have no assignments.", nil
	}

	return "Here are your assignments: " + strings.Join(lines, "; "), nil
}

func (s *assistantService) gradeSummary(ctx context.Context, username string) (string, error) {
	registered, catalog, err := s.registeredCatalog(ctx, username)
	if err != nil {
		return "", err
	}

	if len(registered) == 0 {
		return "You have not registered for any courses yet.", nil
	}

	var lines []string
	for _, code := range registered {
		name := ""
		if course, ok := catalog[code]; ok {
			name = course.Name
		}
		lines = append(lines, fmt.Sprintf("%s (%s): %s", code, name, s.grades.Grade(code)))
	}

	return "Your current grades are: " + strings.Join(lines, "; "), nil
}

func (s *assistantService) reservedBooks(ctx context.Context, username string) (string, error) {
	ids, err := s.userRepo.ReservedBooks(ctx, username)
	if err != nil {
		return "", err
	}

	if len(ids) == 0 {
		return "You have no reserved books.", nil
	}

	books, _, err := s.catalogRepo.Books(ctx)
	if err != nil {
		return "", err
	}

	byID := make(map[int]string, len(books))
	for _, book := range books {
		byID[book.ID] = book.Title
	}

	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		if title, ok := byID[id]; ok {
			titles = append(titles, title)
		}
	}

	return "You have reserved the following books: " + strings.Join(titles, ", ") + ".", nil
}

func (s *assistantService) registeredCatalog(ctx context.Context, username string) ([]string, map[string]models.Course, error) {
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
