package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
)

var (
	// ErrMissingCredentials indicates an empty username or password after trimming.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrInvalidRole indicates a role outside student/admin.
	ErrInvalidRole = errors.New("role must be student or admin")
)

// AuthService manages the single global portal session. Passwords are
// accepted but never validated against stored credentials; the portal does
// not authenticate.
type AuthService interface {
	Login(ctx context.Context, username, password, role string) (models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (models.Session, error)
}

type authService struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	tasks       TaskService
	logger      zerolog.Logger
}

// NewAuthService constructs the auth service.
func NewAuthService(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, tasks TaskService, logger zerolog.Logger) AuthService {
	return &authService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		tasks:       tasks,
		logger:      logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) Login(ctx context.Context, username, password, role string) (models.Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return models.Session{}, ErrMissingCredentials
	}

	role = strings.TrimSpace(role)
	if role == "" {
		role = models.RoleStudent
	}
	if role != models.RoleStudent && role != models.RoleAdmin {
		return models.Session{}, ErrInvalidRole
	}

	session := models.Session{LoggedIn: true, Username: username, Role: role}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return models.Session{}, err
	}

	if role == models.RoleStudent {
		if err := s.registerStudent(ctx, username); err != nil {
			return models.Session{}, err
		}
		if err := s.tasks.Bootstrap(ctx, username); err != nil {
			return models.Session{}, err
		}
	}

	s.logger.Info().Str("username", username).Str("role", role).Msg("session opened")

	return session, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sessionRepo.Clear(ctx)
}

func (s *authService) Current(ctx context.Context) (models.Session, error) {
	return s.sessionRepo.Current(ctx)
}

// registerStudent records the username in the append-only student registry.
func (s *authService) registerStudent(ctx context.Context, username string) error {
	students, err := s.userRepo.Students(ctx)
	if err != nil {
		return err
	}

	for _, existing := range students {
		if existing == username {
			return nil
		}
	}

	return s.userRepo.SaveStudents(ctx, append(students, username))
}
