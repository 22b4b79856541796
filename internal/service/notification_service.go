package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/observability"
	"github.com/campusmesh/portal-api/internal/repository"
)

const (
	assignmentReminderWindow = 3 * 24 * time.Hour
	eventReminderWindow      = 7 * 24 * time.Hour
)

// NotificationService maintains per-user reminder lists. Refresh is invoked
// on demand, never on a timer; generated reminders dedup on exact message
// text, so refreshing twice on unchanged data adds nothing.
type NotificationService interface {
	Refresh(ctx context.Context, username string) (added int, err error)
	List(ctx context.Context, username string) ([]models.Notification, error)
	MarkRead(ctx context.Context, username string, index int) error
	ClearAll(ctx context.Context, username string) error
}

type notificationService struct {
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
	logger      zerolog.Logger
	tracer      trace.Tracer
}

// NewNotificationService constructs the notification service.
func NewNotificationService(catalogRepo repository.CatalogRepository, userRepo repository.UserRepository, logger zerolog.Logger) NotificationService {
	return &notificationService{
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		logger:      logger.With().Str("component", "notification_service").Logger(),
		tracer:      otel.Tracer("github.com/campusmesh/portal-api/internal/service/notification"),
	}
}

func (s *notificationService) Refresh(ctx context.Context, username string) (int, error) {
	spanCtx, span := s.tracer.Start(ctx, "notifications.refresh", trace.WithAttributes(
		attribute.String("notification.username", username),
	))
	defer span.End()

	notifications, err := s.userRepo.Notifications(spanCtx, username)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	seen := make(map[string]struct{}, len(notifications))
	for _, notification := range notifications {
		seen[notification.Message] = struct{}{}
	}

	now := time.Now()
	stamp := displayTimestamp(now)
	added := 0

	appendOnce := func(message string) {
		if _, dup := seen[message]; dup {
			return
		}
		notifications = append(notifications, models.Notification{Message: message, Date: stamp, Read: false})
		seen[message] = struct{}{}
		added++
	}

	registered, err := s.userRepo.RegisteredCourses(spanCtx, username)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	assignments, _, err := s.catalogRepo.Assignments(spanCtx)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	for _, code := range registered {
		for _, assignment := range assignments[code] {
			due, err := time.ParseInLocation("2006-01-02", assignment.Due, time.Local)
			if err != nil {
				continue
			}
			if diff := due.Sub(now); diff > 0 && diff <= assignmentReminderWindow {
				appendOnce(fmt.Sprintf("Assignment %q for %s is due on %s.", assignment.Title, code, assignment.Due))
			}
		}
	}

	events, _, err := s.catalogRepo.Events(spanCtx)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	for _, event := range events {
		date, err := time.ParseInLocation("2006-01-02", event.Date, time.Local)
		if err != nil {
			continue
		}
		if diff := date.Sub(now); diff > 0 && diff <= eventReminderWindow {
			message := fmt.Sprintf("%s is happening on %s", event.Title, event.Date)
			if event.Time != "" {
				message += " at " + event.Time
			}
			appendOnce(message + ".")
		}
	}

	if added == 0 {
		return 0, nil
	}

	if err := s.userRepo.SaveNotifications(spanCtx, username, notifications); err != nil {
		span.RecordError(err)
		return 0, err
	}

	observability.RemindersGenerated().Add(float64(added))

	return added, nil
}

func (s *notificationService) List(ctx context.Context, username string) ([]models.Notification, error) {
	return s.userRepo.Notifications(ctx, username)
}

// MarkRead is a no-op for an out-of-range index.
func (s *notificationService) MarkRead(ctx context.Context, username string, index int) error {
	notifications, err := s.userRepo.Notifications(ctx, username)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(notifications) {
		return nil
	}

	notifications[index].Read = true

	return s.userRepo.SaveNotifications(ctx, username, notifications)
}

func (s *notificationService) ClearAll(ctx context.Context, username string) error {
	return s.userRepo.SaveNotifications(ctx, username, []models.Notification{})
}

// displayTimestamp renders the locale-style stamp shown next to a
// notification or chat message.
func displayTimestamp(t time.Time) string {
	return t.Format("1/2/2006, 3:04:05 PM")
}
