package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/dto"
	"github.com/campusmesh/portal-api/internal/repository"
)

// AdminService provides the administrator dashboard summary and the student
// roster.
type AdminService interface {
	Summary(ctx context.Context) (dto.AdminSummary, error)
	Roster(ctx context.Context) ([]dto.RosterEntry, error)
}

type adminService struct {
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
	logger      zerolog.Logger
}

// NewAdminService constructs the admin service.
func NewAdminService(catalogRepo repository.CatalogRepository, userRepo repository.UserRepository, logger zerolog.Logger) AdminService {
	return &adminService{
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		logger:      logger.With().Str("component", "admin_service").Logger(),
	}
}

func (s *adminService) Summary(ctx context.Context) (dto.AdminSummary, error) {
	courses, _, err := s.catalogRepo.Courses(ctx)
	if err != nil {
		return dto.AdminSummary{}, err
	}
	notices, _, err := s.catalogRepo.Notices(ctx)
	if err != nil {
		return dto.AdminSummary{}, err
	}
	students, err := s.userRepo.Students(ctx)
	if err != nil {
		return dto.AdminSummary{}, err
	}

	return dto.AdminSummary{
		Courses:  len(courses),
		Notices:  len(notices),
		Students: len(students),
	}, nil
}

// Roster joins every known student with the display names of their
// registered courses. Codes that no longer resolve are shown verbatim.
func (s *adminService) Roster(ctx context.Context) ([]dto.RosterEntry, error) {
	students, err := s.userRepo.Students(ctx)
	if err != nil {
		return nil, err
	}

	courses, _, err := s.catalogRepo.Courses(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(courses))
	for _, course := range courses {
		names[course.Code] = course.Name
	}

	roster := make([]dto.RosterEntry, 0, len(students))
	for _, student := range students {
		registered, err := s.userRepo.RegisteredCourses(ctx, student)
		if err != nil {
			return nil, err
		}

		labels := make([]string, 0, len(registered))
		for _, code := range registered {
			if name, ok := names[code]; ok {
				labels = append(labels, fmt.Sprintf("%s (%s)", code, name))
			} else {
				labels = append(labels, code)
			}
		}

		roster = append(roster, dto.RosterEntry{Username: student, Courses: labels})
	}

	return roster, nil
}
