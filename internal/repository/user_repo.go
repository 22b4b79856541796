package repository

import (
	"context"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/store"
)

// UserRepository exposes typed access to per-user record families and the
// global student registry.
type UserRepository interface {
	RegisteredCourses(ctx context.Context, username string) ([]string, error)
	SaveRegisteredCourses(ctx context.Context, username string, codes []string) error
	Submissions(ctx context.Context, username string) (models.SubmissionBook, error)
	SaveSubmissions(ctx context.Context, username string, submissions models.SubmissionBook) error
	Profile(ctx context.Context, username string) (models.Profile, error)
	SaveProfile(ctx context.Context, username string, profile models.Profile) error
	ReservedBooks(ctx context.Context, username string) ([]int, error)
	SaveReservedBooks(ctx context.Context, username string, bookIDs []int) error
	Notifications(ctx context.Context, username string) ([]models.Notification, error)
	SaveNotifications(ctx context.Context, username string, notifications []models.Notification) error
	Tasks(ctx context.Context, username string) (models.TaskBook, bool, error)
	SaveTasks(ctx context.Context, username string, tasks models.TaskBook) error
	Students(ctx context.Context) ([]string, error)
	SaveStudents(ctx context.Context, students []string) error
}

type userRepository struct {
	store store.Store
}

// NewUserRepository constructs the repository over the state store.
func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) RegisteredCourses(ctx context.Context, username string) ([]string, error) {
	var codes []string
	if _, err := r.store.GetJSON(ctx, registeredCoursesKey(username), &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *userRepository) SaveRegisteredCourses(ctx context.Context, username string, codes []string) error {
	return r.store.SetJSON(ctx, registeredCoursesKey(username), codes)
}

func (r *userRepository) Submissions(ctx context.Context, username string) (models.SubmissionBook, error) {
	submissions := models.SubmissionBook{}
	if _, err := r.store.GetJSON(ctx, submissionsKey(username), &submissions); err != nil {
		return nil, err
	}
	if submissions == nil {
		submissions = models.SubmissionBook{}
	}
	return submissions, nil
}

func (r *userRepository) SaveSubmissions(ctx context.Context, username string, submissions models.SubmissionBook) error {
	return r.store.SetJSON(ctx, submissionsKey(username), submissions)
}

func (r *userRepository) Profile(ctx context.Context, username string) (models.Profile, error) {
	var profile models.Profile
	if _, err := r.store.GetJSON(ctx, profileKey(username), &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (r *userRepository) SaveProfile(ctx context.Context, username string, profile models.Profile) error {
	return r.store.SetJSON(ctx, profileKey(username), profile)
}

func (r *userRepository) ReservedBooks(ctx context.Context, username string) ([]int, error) {
	var bookIDs []int
	if _, err := r.store.GetJSON(ctx, reservedBooksKey(username), &bookIDs); err != nil {
		return nil, err
	}
	return bookIDs, nil
}

func (r *userRepository) SaveReservedBooks(ctx context.Context, username string, bookIDs []int) error {
	return r.store.SetJSON(ctx, reservedBooksKey(username), bookIDs)
}

func (r *userRepository) Notifications(ctx context.Context, username string) ([]models.Notification, error) {
	var notifications []models.Notification
	if _, err := r.store.GetJSON(ctx, notificationsKey(username), &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *userRepository) SaveNotifications(ctx context.Context, username string, notifications []models.Notification) error {
	return r.store.SetJSON(ctx, notificationsKey(username), notifications)
}

func (r *userRepository) Tasks(ctx context.Context, username string) (models.TaskBook, bool, error) {
	tasks := models.TaskBook{}
	found, err := r.store.GetJSON(ctx, tasksKey(username), &tasks)
	if err != nil {
		return nil, false, err
	}
	if tasks == nil {
		tasks = models.TaskBook{}
	}
	return tasks, found, nil
}

func (r *userRepository) SaveTasks(ctx context.Context, username string, tasks models.TaskBook) error {
	return r.store.SetJSON(ctx, tasksKey(username), tasks)
}

func (r *userRepository) Students(ctx context.Context) ([]string, error) {
	var students []string
	if _, err := r.store.GetJSON(ctx, keyStudents, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *userRepository) SaveStudents(ctx context.Context, students []string) error {
	return r.store.SetJSON(ctx, keyStudents, students)
}
