package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/dto"
	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
)

// AssignmentService manages the assignment catalog and per-student views.
type AssignmentService interface {
	All(ctx context.Context) (models.AssignmentBook, error)
	Add(ctx context.Context, course, title, due string) (models.Assignment, error)
	Delete(ctx context.Context, course string, id int) error
	// ForStudent joins the assignments of the user's registered courses with
	// their submission records.
	ForStudent(ctx context.Context, username string) ([]dto.AssignmentView, error)
}

type assignmentService struct {
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
	logger      zerolog.Logger
}

// NewAssignmentService constructs the assignment service.
func NewAssignmentService(catalogRepo repository.CatalogRepository, userRepo repository.UserRepository, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		logger:      logger.With().Str("component", "assignment_service").Logger(),
	}
}

func (s *assignmentService) All(ctx context.Context) (models.AssignmentBook, error) {
	assignments, _, err := s.catalogRepo.Assignments(ctx)
	return assignments, err
}

func (s *assignmentService) Add(ctx context.Context, course, title, due string) (models.Assignment, error) {
	course = strings.TrimSpace(course)
	title = strings.TrimSpace(title)
	due = strings.TrimSpace(due)
	if course == "" || title == "" || due == "" {
		return models.Assignment{}, ErrMissingFields
	}

	assignments, _, err := s.catalogRepo.Assignments(ctx)
	if err != nil {
		return models.Assignment{}, err
	}

	list := assignments[course]
	assignment := models.Assignment{ID: nextAssignmentID(list), Title: title, Due: due}
	assignments[course] = append(list, assignment)

	if err := s.catalogRepo.SaveAssignments(ctx, assignments); err != nil {
		return models.Assignment{}, err
	}

	s.logger.Info().Str("course", course).Int("id", assignment.ID).Msg("assignment added")

	return assignment, nil
}

func (s *assignmentService) Delete(ctx context.Context, course string, id int) error {
	assignments, _, err := s.catalogRepo.Assignments(ctx)
	if err != nil {
		return err
	}

	list := assignments[course]
	kept := list[:0]
	for _, assignment := range list {
		if assignment.ID != id {
			kept = append(kept, assignment)
		}
	}
	assignments[course] = kept

	return s.catalogRepo.SaveAssignments(ctx, assignments)
}

func (s *assignmentService) ForStudent(ctx context.Context, username string) ([]dto.AssignmentView, error) {
	registered, err := s.userRepo.RegisteredCourses(ctx, username)
	if err != nil {
		return nil, err
	}

	assignments, _, err := s.catalogRepo.Assignments(ctx)
	if err != nil {
		return nil, err
	}

	submissions, err := s.userRepo.Submissions(ctx, username)
	if err != nil {
		return nil, err
	}

	views := make([]dto.AssignmentView, 0)
	for _, code := range registered {
		for _, assignment := range assignments[code] {
			record := submissions[submissionKey(code, assignment.ID)]
			views = append(views, dto.AssignmentView{
				Course:    code,
				ID:        assignment.ID,
				Title:     assignment.Title,
				Due:       assignment.Due,
				Submitted: record.Submitted,
				FileName:  record.File,
			})
		}
	}

	return views, nil
}

// nextAssignmentID allocates max(existing ids)+1 within one course, or 1.
func nextAssignmentID(list []models.Assignment) int {
	next := 1
	for _, assignment := range list {
		if assignment.ID >= next {
			next = assignment.ID + 1
		}
	}
	return next
}

// submissionKey builds the persisted "{code}_{id}" submission map key.
func submissionKey(course string, id int) string {
	return fmt.Sprintf("%s_%d", course, id)
}
