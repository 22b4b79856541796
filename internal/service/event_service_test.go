package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusmesh/portal-api/internal/models"
)

func TestEventServiceAddAssignsSequentialIDs(t *testing.T) {
	catalogRepo, _ := newTestRepos(t)
	svc := NewEventService(catalogRepo, testLogger())
	ctx := context.Background()

	first, err := svc.AddEvent(ctx, models.Event{Title: "Orientation", Date: "2025-09-15"})
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)
	require.Equal(t, "Event", first.Type)

	second, err := svc.AddEvent(ctx, models.Event{Title: "Midterms", Date: "2025-10-10", Type: "Exam"})
	require.NoError(t, err)
	require.Equal(t, 2, second.ID)
	require.Equal(t, "Exam", second.Type)
}

func TestEventServiceIDReuseAfterDeletingNewest(t *testing.T) {
	catalogRepo, _ := newTestRepos(t)
	svc := NewEventService(catalogRepo, testLogger())
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := svc.AddEvent(ctx, models.Event{Title: title, Date: "2025-09-15"})
		require.NoError(t, err)
	}

	// Deleting the highest id frees it for the next insert.
	require.NoError(t, svc.DeleteEvent(ctx, 3))

	replacement, err := svc.AddEvent(ctx, models.Event{Title: "Four", Date: "2025-09-16"})
	require.NoError(t, err)
	require.Equal(t, 3, replacement.ID)

	events, err := svc.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
}

func TestEventServiceAddValidation(t *testing.T) {
	catalogRepo, _ := newTestRepos(t)
	svc := NewEventService(catalogRepo, testLogger())
	ctx := context.Background()

	_, err := svc.AddEvent(ctx, models.Event{Title: "  ", Date: "2025-09-15"})
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.AddEvent(ctx, models.Event{Title: "No Date"})
	require.ErrorIs(t, err, ErrMissingFields)
}
