package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusmesh/portal-api/internal/models"
)

func TestCatalogServiceAddCourse(t *testing.T) {
	catalogRepo, _ := newTestRepos(t)
	svc := NewCatalogService(catalogRepo, testLogger())
	ctx := context.Background()

	course := models.Course{Code: "CS201", Name: "Data Structures", Credits: 4, Schedule: models.Schedule{Day: "Monday", Time: "10:00-11:00"}}
	require.NoError(t, svc.AddCourse(ctx, course))

	require.ErrorIs(t, svc.AddCourse(ctx, course), ErrDuplicateCourse)
	require.ErrorIs(t, svc.AddCourse(ctx, models.Course{Code: "", Name: "X", Credits: 1}), ErrMissingFields)
	require.ErrorIs(t, svc.AddCourse(ctx, models.Course{Code: "CS202", Name: "X", Credits: 0}), ErrMissingFields)

	courses, err := svc.Courses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
}

func TestCatalogServiceDeleteCourse(t *testing.T) {
	catalogRepo, _ := newTestRepos(t)
	svc := NewCatalogService(catalogRepo, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.AddCourse(ctx, models.Course{Code: "CS201", Name: "Data Structures", Credits: 4}))
	require.NoError(t, svc.AddCourse(ctx, models.Course{Code: "CS202", Name: "Algorithms", Credits: 4}))

	require.NoError(t, svc.DeleteCourse(ctx, "CS201"))
	// Deleting an unknown code is a no-op.
	require.NoError(t, svc.DeleteCourse(ctx, "ZZ999"))

	courses, err := svc.Courses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "CS202", courses[0].Code)
}

func TestCatalogServiceNoticesPrependNewestFirst(t *testing.T) {
	catalogRepo, _ := newTestRepos(t)
	svc := NewCatalogService(catalogRepo, testLogger())
	ctx := context.Background()

	first, err := svc.AddNotice(ctx, "First", "First content")
	require.NoError(t, err)
	require.Equal(t, time.Now().Format("January 2, 2006"), first.Date)

	second, err := svc.AddNotice(ctx, "Second", "Second content")
	require.NoError(t, err)

	notices, err := svc.Notices(ctx)
	require.NoError(t, err)
	require.Len(t, notices, 2)
	require.Equal(t, second.Title, notices[0].Title)
	require.Equal(t, first.Title, notices[1].Title)
}

func TestCatalogServiceNoticeSanitization(t *testing.T) {
	catalogRepo, _ := newTestRepos(t)
	svc := NewCatalogService(catalogRepo, testLogger())
	ctx := context.Background()

	notice, err := svc.AddNotice(ctx, "Exam <b>Update</b>", "Room changed <script>alert(1)</script> to B-204")
	require.NoError(t, err)
	require.Equal(t, "Exam Update", notice.Title)
	require.NotContains(t, notice.Content, "<script>")
	require.Contains(t, notice.Content, "Room changed")

	_, err = svc.AddNotice(ctx, "<script></script>", "content")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestCatalogServiceDeleteNoticeByPosition(t *testing.T) {
	catalogRepo, _ := newTestRepos(t)
	svc := NewCatalogService(catalogRepo, testLogger())
	ctx := context.Background()

	_, err := svc.AddNotice(ctx, "Oldest", "c")
	require.NoError(t, err)
	_, err = svc.AddNotice(ctx, "Middle", "c")
	require.NoError(t, err)
	_, err = svc.AddNotice(ctx, "Newest", "c")
	require.NoError(t, err)

	// Index is positional in the displayed (newest-first) order.
	require.NoError(t, svc.DeleteNotice(ctx, 1))

	notices, err := svc.Notices(ctx)
	require.NoError(t, err)
	require.Len(t, notices, 2)
	require.Equal(t, "Newest", notices[0].Title)
	require.Equal(t, "Oldest", notices[1].Title)

	// Out-of-range indexes are silent no-ops.
	require.NoError(t, svc.DeleteNotice(ctx, -1))
	require.NoError(t, svc.DeleteNotice(ctx, 99))

	notices, err = svc.Notices(ctx)
	require.NoError(t, err)
	require.Len(t, notices, 2)
}
