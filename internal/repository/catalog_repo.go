package repository

import (
	"context"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/store"
)

// CatalogRepository exposes typed access to the global reference catalogs.
// Getters report whether the entry existed so seeding can distinguish an
// absent catalog from an explicitly emptied one; absent decodes as empty.
type CatalogRepository interface {
	Courses(ctx context.Context) ([]models.Course, bool, error)
	SaveCourses(ctx context.Context, courses []models.Course) error
	Notices(ctx context.Context) ([]models.Notice, bool, error)
	SaveNotices(ctx context.Context, notices []models.Notice) error
	Books(ctx context.Context) ([]models.Book, bool, error)
	SaveBooks(ctx context.Context, books []models.Book) error
	Events(ctx context.Context) ([]models.Event, bool, error)
	SaveEvents(ctx context.Context, events []models.Event) error
	Assignments(ctx context.Context) (models.AssignmentBook, bool, error)
	SaveAssignments(ctx context.Context, assignments models.AssignmentBook) error
}

type catalogRepository struct {
	store store.Store
}

// NewCatalogRepository constructs the repository over the state store.
func NewCatalogRepository(s store.Store) CatalogRepository {
	return &catalogRepository{store: s}
}

func (r *catalogRepository) Courses(ctx context.Context) ([]models.Course, bool, error) {
	var courses []models.Course
	found, err := r.store.GetJSON(ctx, keyCourseCatalog, &courses)
	return courses, found, err
}

func (r *catalogRepository) SaveCourses(ctx context.Context, courses []models.Course) error {
	return r.store.SetJSON(ctx, keyCourseCatalog, courses)
}

func (r *catalogRepository) Notices(ctx context.Context) ([]models.Notice, bool, error) {
	var notices []models.Notice
	found, err := r.store.GetJSON(ctx, keyNotices, &notices)
	return notices, found, err
}

func (r *catalogRepository) SaveNotices(ctx context.Context, notices []models.Notice) error {
	return r.store.SetJSON(ctx, keyNotices, notices)
}

func (r *catalogRepository) Books(ctx context.Context) ([]models.Book, bool, error) {
	var books []models.Book
	found, err := r.store.GetJSON(ctx, keyBookCatalog, &books)
	return books, found, err
}

func (r *catalogRepository) SaveBooks(ctx context.Context, books []models.Book) error {
	return r.store.SetJSON(ctx, keyBookCatalog, books)
}

func (r *catalogRepository) Events(ctx context.Context) ([]models.Event, bool, error) {
	var events []models.Event
	found, err := r.store.GetJSON(ctx, keyEvents, &events)
	return events, found, err
}

func (r *catalogRepository) SaveEvents(ctx context.Context, events []models.Event) error {
	return r.store.SetJSON(ctx, keyEvents, events)
}

func (r *catalogRepository) Assignments(ctx context.Context) (models.AssignmentBook, bool, error) {
	assignments := models.AssignmentBook{}
	found, err := r.store.GetJSON(ctx, keyAssignments, &assignments)
	if assignments == nil {
		assignments = models.AssignmentBook{}
	}
	return assignments, found, err
}

func (r *catalogRepository) SaveAssignments(ctx context.Context, assignments models.AssignmentBook) error {
	return r.store.SetJSON(ctx, keyAssignments, assignments)
}
