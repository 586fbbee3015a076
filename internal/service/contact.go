package service

import (
	"context"

	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ContactService struct {
	store    ContactStore
	notifier ContactNotifier
}

// NewContactService builds the service. notifier may be nil, in which
// case messages are only stored.
func NewContactService(store ContactStore, notifier ContactNotifier) *ContactService {
	return &ContactService{store: store, notifier: notifier}
}

func (s *ContactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	return s.store.ListContactMessages(ctx)
}

func (s *ContactService) Get(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	return s.store.GetContactMessageByID(ctx, id)
}

// Create stores the message and queues the owner notification. A failed
// enqueue is logged; the visitor's submission still succeeds.
func (s *ContactService) Create(ctx context.Context, fields model.ContactFields) (*model.ContactMessage, error) {
	message, err := s.store.CreateContactMessage(ctx, fields)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("event", "contact_message_received").
		Str("message_id", message.ID.String()).
		Msg("Contact message stored")

	if s.notifier != nil {
		err := s.notifier.EnqueueContactNotification(ctx,
			message.ID.String(), message.Name, message.Email, message.Message, message.CreatedAt)
		if err != nil {
			logger.Error().
				Err(err).
				Str("message_id", message.ID.String()).
				Msg("Failed to enqueue contact notification")
		}
	}

	return message, nil
}

func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) (*model.DeleteResponse, error) {
	if err := s.store.DeleteContactMessage(ctx, id); err != nil {
		return nil, err
	}
	return &model.DeleteResponse{Message: "Contact message deleted successfully", ID: id}, nil
}
