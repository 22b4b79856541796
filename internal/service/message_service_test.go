package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusmesh/portal-api/internal/repository"
)

func newMessageService(t *testing.T) (MessageService, repository.MessageRepository) {
	t.Helper()
	s := newTestStore(t)
	repo := repository.NewMessageRepository(s)
	return NewMessageService(repo, testLogger()), repo
}

func TestMessageServiceSendAppends(t *testing.T) {
	svc, _ := newMessageService(t)
	ctx := context.Background()

	first, err := svc.Send(ctx, "alice", "Hello everyone")
	require.NoError(t, err)
	require.Equal(t, "alice", first.From)
	require.Equal(t, "Hello everyone", first.Content)
	require.NotEmpty(t, first.Time)

	_, err = svc.Send(ctx, "bob", "Hi alice")
	require.NoError(t, err)

	messages, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, "alice", messages[0].From)
	require.Equal(t, "bob", messages[1].From)
}

func TestMessageServiceSanitizesContent(t *testing.T) {
	svc, _ := newMessageService(t)
	ctx := context.Background()

	message, err := svc.Send(ctx, "alice", "  see you <script>alert(1)</script> at noon  ")
	require.NoError(t, err)
	require.NotContains(t, message.Content, "<script>")
	require.Contains(t, message.Content, "see you")

	_, err = svc.Send(ctx, "alice", "   ")
	require.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.Send(ctx, "alice", "<script>only markup</script>")
	require.ErrorIs(t, err, ErrEmptyMessage)
}
