package repository

import (
	"context"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/store"
)

// MessageRepository persists the global chat shared by all users.
type MessageRepository interface {
	List(ctx context.Context) ([]models.Message, error)
	Save(ctx context.Context, messages []models.Message) error
}

type messageRepository struct {
	store store.Store
}

// NewMessageRepository constructs the repository over the state store.
func NewMessageRepository(s store.Store) MessageRepository {
	return &messageRepository{store: s}
}

func (r *messageRepository) List(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	if _, err := r.store.GetJSON(ctx, keyMessages, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) Save(ctx context.Context, messages []models.Message) error {
	return r.store.SetJSON(ctx, keyMessages, messages)
}
