package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
)

// ProfileService manages optional per-user contact details.
type ProfileService interface {
	Profile(ctx context.Context, username string) (models.Profile, error)
	Save(ctx context.Context, username string, profile models.Profile) error
}

type profileService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewProfileService constructs the profile service.
func NewProfileService(userRepo repository.UserRepository, logger zerolog.Logger) ProfileService {
	return &profileService{
		userRepo: userRepo,
		logger:   logger.With().Str("component", "profile_service").Logger(),
	}
}

func (s *profileService) Profile(ctx context.Context, username string) (models.Profile, error) {
	return s.userRepo.Profile(ctx, username)
}

func (s *profileService) Save(ctx context.Context, username string, profile models.Profile) error {
	profile.Email = strings.TrimSpace(profile.Email)
	profile.Phone = strings.TrimSpace(profile.Phone)

	return s.userRepo.SaveProfile(ctx, username, profile)
}
