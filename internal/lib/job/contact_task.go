package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// TaskContactNotification emails a new contact message to the salon.
const TaskContactNotification = "email:contact_notification"

type ContactNotificationPayload struct {
	To         string    `json:"to"`
	MessageID  string    `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// NewContactNotificationTask builds the task with 3 retries and a 30s
// timeout on the default queue.
func NewContactNotificationTask(p ContactNotificationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskContactNotification,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueContactNotification queues a notification for a stored contact
// message. It is a no-op when no recipient is configured.
func (j *JobService) EnqueueContactNotification(ctx context.Context, messageID, name, email, message string, receivedAt time.Time) error {
	if j.notify == "" {
		return nil
	}

	task, err := NewContactNotificationTask(ContactNotificationPayload{
		To:         j.notify,
		MessageID:  messageID,
		Name:       name,
		Email:      email,
		Message:    message,
		ReceivedAt: receivedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to build contact notification task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue contact notification: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("contact notification enqueued")

	return nil
}
