package client

import (
	"bytes"
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"

	"cineiut.com/catalog/internal/core/domain"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// FromName is the sender display name, the address is Username.
	FromName string
	Timeout  time.Duration
}

// SMTPMailer dials the SMTP server for every send and closes the connection
// before returning, on success and failure alike. Each send uses its own
// client so concurrent sends do not wait on each other.
type SMTPMailer struct {
	opts []mail.Option
	from SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	// Fail at startup on bad options rather than on the first send.
	if _, err := mail.NewClient(cfg.Host, opts...); err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &SMTPMailer{
		opts: opts,
		from: cfg,
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, message domain.Mail) error {
	msg, err := m.buildMessage(message)
	if err != nil {
		return err
	}

	c, err := mail.NewClient(m.from.Host, m.opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", message.To, err)
	}

	log.WithFields(log.Fields{
		"to":          message.To,
		"subject":     message.Subject,
		"attachments": len(message.Attachments),
	}).Debug("Mail sent")
	return nil
}

func (m *SMTPMailer) buildMessage(message domain.Mail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.from.FromName, m.from.Username); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(message.To); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidAddress, err)
	}
	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextPlain, message.Text)
	if message.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, message.HTML)
	}

	for _, attachment := range message.Attachments {
		err := msg.AttachReader(
			attachment.Filename,
			bytes.NewReader(attachment.Data),
			mail.WithFileContentType(mail.ContentType(attachment.ContentType)),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to attach %s: %w", attachment.Filename, err)
		}
	}

	return msg, nil
}
