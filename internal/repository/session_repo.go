package repository

import (
	"context"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/store"
)

// SessionRepository persists the single global session as scalar entries,
// matching the original loggedIn/username/role layout.
type SessionRepository interface {
	Current(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	store store.Store
}

// NewSessionRepository constructs the repository over the state store.
func NewSessionRepository(s store.Store) SessionRepository {
	return &sessionRepository{store: s}
}

func (r *sessionRepository) Current(ctx context.Context) (models.Session, error) {
	loggedIn, _, err := r.store.GetString(ctx, keySessionLoggedIn)
	if err != nil {
		return models.Session{}, err
	}
	if loggedIn != "true" {
		return models.Session{}, nil
	}

	username, _, err := r.store.GetString(ctx, keySessionUsername)
	if err != nil {
		return models.Session{}, err
	}
	role, _, err := r.store.GetString(ctx, keySessionRole)
	if err != nil {
		return models.Session{}, err
	}

	return models.Session{LoggedIn: true, Username: username, Role: role}, nil
}

func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	if err := r.store.SetString(ctx, keySessionLoggedIn, "true"); err != nil {
		return err
	}
	if err := r.store.SetString(ctx, keySessionUsername, session.Username); err != nil {
		return err
	}
	return r.store.SetString(ctx, keySessionRole, session.Role)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, keySessionLoggedIn, keySessionUsername, keySessionRole)
}
