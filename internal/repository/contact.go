package repository

import (
	"context"
	"fmt"

	"github.com/SabihaEylul/nextjswebb/internal/errs"
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const contactColumns = `id, name, email, message, created_at`

type ContactRepository struct {
	server *server.Server
}

func NewContactRepository(s *server.Server) *ContactRepository {
	return &ContactRepository{server: s}
}

func (r *ContactRepository) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		SELECT `+contactColumns+`
		FROM contact_messages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list contact messages query: %w", err)
	}

	messages, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ContactMessage])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:contact_messages: %w", err)
	}

	return messages, nil
}

func (r *ContactRepository) GetContactMessageByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		SELECT `+contactColumns+`
		FROM contact_messages
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get contact message query for id=%s: %w", id, err)
	}

	message, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.ContactMessage])
	if err != nil {
		return nil, notFound(err, "Contact message", "CONTACT_MESSAGE_NOT_FOUND", "collect row from table:contact_messages")
	}

	return &message, nil
}

func (r *ContactRepository) CreateContactMessage(ctx context.Context, fields model.ContactFields) (*model.ContactMessage, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		INSERT INTO contact_messages (name, email, message)
		VALUES (@name, @email, @message)
		RETURNING `+contactColumns,
		pgx.NamedArgs{
			"name":    fields.Name,
			"email":   fields.Email,
			"message": fields.Message,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create contact message query: %w", err)
	}

	message, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ContactMessage])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:contact_messages: %w", err)
	}

	return &message, nil
}

func (r *ContactRepository) DeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	result, err := r.server.DB.Pool.Exec(ctx, `
		DELETE FROM contact_messages
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to execute delete contact message query for id=%s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		code := "CONTACT_MESSAGE_NOT_FOUND"
		return errs.NewNotFoundError("Contact message not found", true, &code)
	}

	return nil
}
