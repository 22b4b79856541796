package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
)

// SubmissionService records assignment hand-ins. Re-submitting overwrites
// the prior record; only the chosen file name is kept, never file content.
type SubmissionService interface {
	Submit(ctx context.Context, username, course string, id int, fileName string) error
}

type submissionService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
	tracer   trace.Tracer
}

// NewSubmissionService constructs the submission service.
func NewSubmissionService(userRepo repository.UserRepository, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		userRepo: userRepo,
		logger:   logger.With().Str("component", "submission_service").Logger(),
		tracer:   otel.Tracer("github.com/campusmesh/portal-api/internal/service/submission"),
	}
}

func (s *submissionService) Submit(ctx context.Context, username, course string, id int, fileName string) error {
	spanCtx, span := s.tracer.Start(ctx, "submissions.submit", trace.WithAttributes(
		attribute.String("submission.course", course),
		attribute.Int("submission.id", id),
	))
	defer span.End()

	submissions, err := s.userRepo.Submissions(spanCtx, username)
	if err != nil {
		span.RecordError(err)
		return err
	}

	submissions[submissionKey(course, id)] = models.SubmissionStatus{
		Submitted: true,
		File:      strings.TrimSpace(fileName),
	}

	if err := s.userRepo.SaveSubmissions(spanCtx, username, submissions); err != nil {
		span.RecordError(err)
		return err
	}

	// Submission receipts are appended every time, unlike deadline reminders
	// which dedup on message text.
	notifications, err := s.userRepo.Notifications(spanCtx, username)
	if err != nil {
		span.RecordError(err)
		return err
	}
	notifications = append(notifications, models.Notification{
		Message: fmt.Sprintf("You submitted %s assignment %d.", course, id),
		Date:    displayTimestamp(time.Now()),
		Read:    false,
	})
	if err := s.userRepo.SaveNotifications(spanCtx, username, notifications); err != nil {
		span.RecordError(err)
		return err
	}

	s.logger.Info().Str("username", username).Str("course", course).Int("id", id).Msg("assignment submitted")

	return nil
}
