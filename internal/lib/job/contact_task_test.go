package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SabihaEylul/nextjswebb/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	requests []*resend.SendEmailRequest
	err      error
}

func (s *stubSender) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.requests = append(s.requests, params)
	return &resend.SendEmailResponse{Id: "sent"}, nil
}

func newTestJobService(sender email.Sender, notify string) *JobService {
	logger := zerolog.Nop()
	return &JobService{
		logger: &logger,
		emails: email.NewClientWithSender(sender, "Salon <salon@example.com>", &logger),
		notify: notify,
	}
}

func TestNewContactNotificationTask(t *testing.T) {
	received := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	task, err := NewContactNotificationTask(ContactNotificationPayload{
		To:         "owner@example.com",
		MessageID:  "m1",
		Name:       "Zeynep",
		Email:      "zeynep@example.com",
		Message:    "Merhaba",
		ReceivedAt: received,
	})
	require.NoError(t, err)
	require.Equal(t, TaskContactNotification, task.Type())

	var decoded ContactNotificationPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	require.Equal(t, "m1", decoded.MessageID)
	require.True(t, received.Equal(decoded.ReceivedAt))
}

func TestHandleContactNotificationTask(t *testing.T) {
	t.Run("sends email", func(t *testing.T) {
		sender := &stubSender{}
		j := newTestJobService(sender, "owner@example.com")

		task, err := NewContactNotificationTask(ContactNotificationPayload{
			To:      "owner@example.com",
			Name:    "Zeynep",
			Email:   "zeynep@example.com",
			Message: "Merhaba",
		})
		require.NoError(t, err)

		require.NoError(t, j.handleContactNotificationTask(context.Background(), task))
		require.Len(t, sender.requests, 1)
		require.Equal(t, []string{"owner@example.com"}, sender.requests[0].To)
	})

	t.Run("provider failure is retried", func(t *testing.T) {
		j := newTestJobService(&stubSender{err: errors.New("down")}, "owner@example.com")

		task, err := NewContactNotificationTask(ContactNotificationPayload{To: "owner@example.com"})
		require.NoError(t, err)

		err = j.handleContactNotificationTask(context.Background(), task)
		require.Error(t, err)
		require.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("bad payload is not retried", func(t *testing.T) {
		j := newTestJobService(&stubSender{}, "owner@example.com")

		err := j.handleContactNotificationTask(context.Background(), asynq.NewTask(TaskContactNotification, []byte("{")))
		require.ErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestEnqueueWithoutRecipientIsNoop(t *testing.T) {
	j := newTestJobService(&stubSender{}, "")
	require.NoError(t, j.EnqueueContactNotification(context.Background(), "m1", "Zeynep", "z@example.com", "Merhaba", time.Now()))
}
