package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusmesh/portal-api/internal/models"
)

func TestSubmissionServiceSubmitAndOverwrite(t *testing.T) {
	_, userRepo := newTestRepos(t)
	svc := NewSubmissionService(userRepo, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, "alice", "CS101", 1, "draft.pdf"))

	submissions, err := userRepo.Submissions(ctx, "alice")
	require.NoError(t, err)
	require.True(t, submissions["CS101_1"].Submitted)
	require.Equal(t, "draft.pdf", submissions["CS101_1"].File)

	// Re-submitting replaces the record in place.
	require.NoError(t, svc.Submit(ctx, "alice", "CS101", 1, "  final.pdf  "))

	submissions, err = userRepo.Submissions(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	require.Equal(t, "final.pdf", submissions["CS101_1"].File)
}

func TestSubmissionServiceAppendsReceiptEveryTime(t *testing.T) {
	_, userRepo := newTestRepos(t)
	svc := NewSubmissionService(userRepo, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, "alice", "CS101", 1, "a.pdf"))
	require.NoError(t, svc.Submit(ctx, "alice", "CS101", 1, "b.pdf"))

	notifications, err := userRepo.Notifications(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	require.Equal(t, "You submitted CS101 assignment 1.", notifications[0].Message)
	require.Equal(t, notifications[0].Message, notifications[1].Message)
}

func TestSubmissionServiceRecordsWithoutCatalogCheck(t *testing.T) {
	_, userRepo := newTestRepos(t)
	svc := NewSubmissionService(userRepo, testLogger())
	ctx := context.Background()

	// Submitting against an id that no catalog entry backs still persists;
	// views simply never join it.
	require.NoError(t, svc.Submit(ctx, "alice", "ZZ999", 7, ""))

	submissions, err := userRepo.Submissions(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, models.SubmissionStatus{Submitted: true}, submissions["ZZ999_7"])
}
