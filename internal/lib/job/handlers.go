package job

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SabihaEylul/nextjswebb/internal/lib/email"
	"github.com/hibiken/asynq"
)

func sprint(args []any) string {
	return strings.TrimSpace(fmt.Sprintln(args...))
}

func (j *JobService) handleContactNotificationTask(ctx context.Context, t *asynq.Task) error {
	var p ContactNotificationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A payload that cannot be decoded will never succeed.
		return fmt.Errorf("failed to unmarshal contact notification payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", "contact_notification").
		Str("message_id", p.MessageID).
		Logger()

	log.Info().Msg("Processing contact notification task")

	err := j.emails.SendContactNotification(ctx, p.To, email.ContactNotification{
		MessageID:  p.MessageID,
		Name:       p.Name,
		Email:      p.Email,
		Message:    p.Message,
		ReceivedAt: p.ReceivedAt,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to send contact notification")
		return err
	}

	log.Info().Msg("Successfully sent contact notification")
	return nil
}
