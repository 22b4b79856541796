package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
)

var (
	// ErrMissingFields indicates a required catalog field was empty.
	ErrMissingFields = errors.New("required fields are missing")
	// ErrDuplicateCourse indicates the course code already exists.
	ErrDuplicateCourse = errors.New("a course with this code already exists")
)

// CatalogService manages the course catalog and the notice board.
type CatalogService interface {
	Courses(ctx context.Context) ([]models.Course, error)
	AddCourse(ctx context.Context, course models.Course) error
	DeleteCourse(ctx context.Context, code string) error

	Notices(ctx context.Context) ([]models.Notice, error)
	AddNotice(ctx context.Context, title, content string) (models.Notice, error)
	DeleteNotice(ctx context.Context, index int) error
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
	sanitizer   *bluemonday.Policy
	logger      zerolog.Logger
}

// NewCatalogService constructs the catalog service.
func NewCatalogService(catalogRepo repository.CatalogRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger.With().Str("component", "catalog_service").Logger(),
	}
}

func (s *catalogService) Courses(ctx context.Context) ([]models.Course, error) {
	courses, _, err := s.catalogRepo.Courses(ctx)
	return courses, err
}

func (s *catalogService) AddCourse(ctx context.Context, course models.Course) error {
	course.Code = strings.TrimSpace(course.Code)
	course.Name = strings.TrimSpace(course.Name)
	if course.Code == "" || course.Name == "" || course.Credits <= 0 {
		return ErrMissingFields
	}

	courses, _, err := s.catalogRepo.Courses(ctx)
	if err != nil {
		return err
	}

	for _, existing := range courses {
		if existing.Code == course.Code {
			return ErrDuplicateCourse
		}
	}

	if err := s.catalogRepo.SaveCourses(ctx, append(courses, course)); err != nil {
		return err
	}

	s.logger.Info().Str("code", course.Code).Msg("course added")

	return nil
}

func (s *catalogService) DeleteCourse(ctx context.Context, code string) error {
	courses, _, err := s.catalogRepo.Courses(ctx)
	if err != nil {
		return err
	}

	kept := courses[:0]
	for _, course := range courses {
		if course.Code != code {
			kept = append(kept, course)
		}
	}

	return s.catalogRepo.SaveCourses(ctx, kept)
}

func (s *catalogService) Notices(ctx context.Context) ([]models.Notice, error) {
	notices, _, err := s.catalogRepo.Notices(ctx)
	return notices, err
}

func (s *catalogService) AddNotice(ctx context.Context, title, content string) (models.Notice, error) {
	title = strings.TrimSpace(s.sanitizer.Sanitize(title))
	content = strings.TrimSpace(s.sanitizer.Sanitize(content))
	if title == "" || content == "" {
		return models.Notice{}, ErrMissingFields
	}

	notices, _, err := s.catalogRepo.Notices(ctx)
	if err != nil {
		return models.Notice{}, err
	}

	notice := models.Notice{
		Title:   title,
		Content: content,
		Date:    time.Now().Format("January 2, 2006"),
	}

	// Newest first.
	if err := s.catalogRepo.SaveNotices(ctx, append([]models.Notice{notice}, notices...)); err != nil {
		return models.Notice{}, err
	}

	return notice, nil
}

func (s *catalogService) DeleteNotice(ctx context.Context, index int) error {
	notices, _, err := s.catalogRepo.Notices(ctx)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(notices) {
		return nil
	}

	return s.catalogRepo.SaveNotices(ctx, append(notices[:index], notices[index+1:]...))
}
