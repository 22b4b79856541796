package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
)

func newNotificationFixture(t *testing.T) (NotificationService, repository.CatalogRepository, repository.UserRepository) {
	t.Helper()
	catalogRepo, userRepo := newTestRepos(t)
	return NewNotificationService(catalogRepo, userRepo, testLogger()), catalogRepo, userRepo
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func TestNotificationRefreshGeneratesWindowedReminders(t *testing.T) {
	svc, catalogRepo, userRepo := newNotificationFixture(t)
	ctx := context.Background()

	now := time.Now()
	soon := isoDate(now.Add(48 * time.Hour))
	farAssignment := isoDate(now.Add(10 * 24 * time.Hour))
	past := isoDate(now.Add(-48 * time.Hour))
	soonEvent := isoDate(now.Add(5 * 24 * time.Hour))
	farEvent := isoDate(now.Add(20 * 24 * time.Hour))

	require.NoError(t, catalogRepo.SaveAssignments(ctx, models.AssignmentBook{
		"CS101": {
			{ID: 1, Title: "Due Soon", Due: soon},
			{ID: 2, Title: "Due Later", Due: farAssignment},
			{ID: 3, Title: "Already Past", Due: past},
		},
		"MA101": {{ID: 1, Title: "Not Registered", Due: soon}},
	}))
	require.NoError(t, catalogRepo.SaveEvents(ctx, []models.Event{
		{ID: 1, Title: "Hackathon", Date: soonEvent, Time: "09:00"},
		{ID: 2, Title: "Convocation", Date: farEvent},
	}))
	require.NoError(t, userRepo.SaveRegisteredCourses(ctx, "alice", []string{"CS101"}))

	added, err := svc.Refresh(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 2, added)

	notifications, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	require.Equal(t, fmt.Sprintf("Assignment %q for CS101 is due on %s.", "Due Soon", soon), notifications[0].Message)
	require.Equal(t, fmt.Sprintf("Hackathon is happening on %s at 09:00.", soonEvent), notifications[1].Message)
	require.False(t, notifications[0].Read)
}

func TestNotificationRefreshDedupsOnMessageText(t *testing.T) {
	svc, catalogRepo, userRepo := newNotificationFixture(t)
	ctx := context.Background()

	soon := isoDate(time.Now().Add(24 * time.Hour))
	require.NoError(t, catalogRepo.SaveAssignments(ctx, models.AssignmentBook{
		"CS101": {{ID: 1, Title: "Lab", Due: soon}},
	}))
	require.NoError(t, userRepo.SaveRegisteredCourses(ctx, "alice", []string{"CS101"}))

	added, err := svc.Refresh(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 1, added)

	added, err = svc.Refresh(ctx, "alice")
	require.NoError(t, err)
	require.Zero(t, added)

	notifications, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
}

func TestNotificationMarkReadAndClear(t *testing.T) {
	svc, _, userRepo := newNotificationFixture(t)
	ctx := context.Background()

	require.NoError(t, userRepo.SaveNotifications(ctx, "alice", []models.Notification{
		{Message: "one", Date: "9/1/2026, 10:00:00 AM"},
		{Message: "two", Date: "9/1/2026, 10:05:00 AM"},
	}))

	require.NoError(t, svc.MarkRead(ctx, "alice", 1))

	notifications, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.False(t, notifications[0].Read)
	require.True(t, notifications[1].Read)

	// Out-of-range indexes change nothing.
	require.NoError(t, svc.MarkRead(ctx, "alice", -1))
	require.NoError(t, svc.MarkRead(ctx, "alice", 5))

	require.NoError(t, svc.ClearAll(ctx, "alice"))
	notifications, err = svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, notifications)
}

func TestNotificationRefreshSkipsUnparseableDates(t *testing.T) {
	svc, catalogRepo, userRepo := newNotificationFixture(t)
	ctx := context.Background()

	require.NoError(t, catalogRepo.SaveAssignments(ctx, models.AssignmentBook{
		"CS101": {{ID: 1, Title: "Vague", Due: "sometime soon"}},
	}))
	require.NoError(t, userRepo.SaveRegisteredCourses(ctx, "alice", []string{"CS101"}))

	added, err := svc.Refresh(ctx, "alice")
	require.NoError(t, err)
	require.Zero(t, added)
}
