package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
)

// ErrInvalidTaskStatus indicates a status outside the allowed set.
var ErrInvalidTaskStatus = errors.New("invalid task status")

// TaskService manages the per-user onboarding checklist.
type TaskService interface {
	// Bootstrap copies the task template for a user who has no task record
	// yet. It never reseeds an existing record, even if the template changes.
	Bootstrap(ctx context.Context, username string) error
	Tasks(ctx context.Context, username string) (models.TaskBook, error)
	UpdateStatus(ctx context.Context, username, category string, id int, status string) error
}

type taskService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewTaskService constructs the task service.
func NewTaskService(userRepo repository.UserRepository, logger zerolog.Logger) TaskService {
	return &taskService{
		userRepo: userRepo,
		logger:   logger.With().Str("component", "task_service").Logger(),
	}
}

func (s *taskService) Bootstrap(ctx context.Context, username string) error {
	_, found, err := s.userRepo.Tasks(ctx, username)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	if err := s.userRepo.SaveTasks(ctx, username, taskTemplate()); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Msg("task list bootstrapped")

	return nil
}

func (s *taskService) Tasks(ctx context.Context, username string) (models.TaskBook, error) {
	tasks, _, err := s.userRepo.Tasks(ctx, username)
	return tasks, err
}

func (s *taskService) UpdateStatus(ctx context.Context, username, category string, id int, status string) error {
	if !validTaskStatus(status) {
		return ErrInvalidTaskStatus
	}

	tasks, found, err := s.userRepo.Tasks(ctx, username)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	list, ok := tasks[category]
	if !ok {
		return nil
	}

	for i := range list {
		if list[i].ID == id {
			list[i].Status = status
			tasks[category] = list
			return s.userRepo.SaveTasks(ctx, username, tasks)
		}
	}

	return nil
}

func validTaskStatus(status string) bool {
	switch status {
	case models.TaskNotStarted, models.TaskStarted, models.TaskNeedsReview, models.TaskCompleted:
		return true
	}
	return false
}

// taskTemplate returns a fresh copy of the default checklist so per-user
// records never alias shared slices.
func taskTemplate() models.TaskBook {
	return models.TaskBook{
		"Accounts": {
			{ID: 1, Title: "Request a username", Status: models.TaskCompleted},
			{ID: 2, Title: "Set up two-factor authentication", Status: models.TaskCompleted},
			{ID: 3, Title: "Verify your email address", Status: models.TaskCompleted},
		},
		"Prepare for the semester": {
			{ID: 4, Title: "Send transcripts", Status: models.TaskCompleted},
			{ID: 5, Title: "Schedule meeting with advisor", Status: models.TaskStarted},
			{ID: 6, Title: "Sign housing agreement", Status: models.TaskNeedsReview},
			{ID: 7, Title: "Review student resources", Status: models.TaskNotStarted},
		},
		"Health and wellness": {
			{ID: 8, Title: "Review health and wellness policy", Status: models.TaskNeedsReview},
		},
	}
}
