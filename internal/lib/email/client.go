// Package email sends transactional email through Resend.
//
// Bodies are rendered from HTML templates embedded in the binary, so
// the worker does not depend on files next to the executable.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/SabihaEylul/nextjswebb/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Sender is the part of the Resend API the client uses.
type Sender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type Client struct {
	sender Sender
	from   string
	logger *zerolog.Logger
}

func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return NewClientWithSender(resend.NewClient(cfg.Integration.ResendAPIKey).Emails, cfg.Integration.FromAddress, logger)
}

func NewClientWithSender(sender Sender, from string, logger *zerolog.Logger) *Client {
	return &Client{
		sender: sender,
		from:   from,
		logger: logger,
	}
}

// SendEmail renders templateName with data and sends it to a single
// recipient. replyTo may be empty.
func (c *Client) SendEmail(ctx context.Context, to, replyTo, subject string, templateName Template, data map[string]string) error {
	body, err := Render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}
	if replyTo != "" {
		params.ReplyTo = replyTo
	}

	sent, err := c.sender.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	c.logger.Debug().
		Str("template", string(templateName)).
		Str("email_id", sent.Id).
		Msg("email accepted by provider")

	return nil
}

// ContactNotification is what the salon owner receives for each contact
// form submission.
type ContactNotification struct {
	MessageID  string
	Name       string
	Email      string
	Message    string
	ReceivedAt time.Time
}

// SendContactNotification mails a contact form submission to the owner.
// Replying to the notification answers the visitor directly.
func (c *Client) SendContactNotification(ctx context.Context, to string, n ContactNotification) error {
	data := map[string]string{
		"MessageID":  n.MessageID,
		"Name":       n.Name,
		"Email":      n.Email,
		"Message":    n.Message,
		"ReceivedAt": n.ReceivedAt.Format("2006-01-02 15:04"),
	}

	return c.SendEmail(
		ctx,
		to,
		n.Email,
		fmt.Sprintf("Yeni iletişim mesajı: %s", n.Name),
		TemplateContactNotification,
		data,
	)
}
