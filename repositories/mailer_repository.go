package repositories

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/naturetrails/trails-backend/utils"
)

// Email is a plain-text message sent fire-and-forget on certain creates
// (registration invitations, password resets).
type Email struct {
	To      string
	Subject string
	Body    string
}

type EmailSender interface {
	SendEmail(ctx context.Context, email Email) error
}

type SmtpConfiguration struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

type SmtpEmailSender struct {
	config SmtpConfiguration
}

func NewSmtpEmailSender(config SmtpConfiguration) *SmtpEmailSender {
	return &SmtpEmailSender{config: config}
}

func (s *SmtpEmailSender) SendEmail(ctx context.Context, email Email) error {
	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	message := strings.Join([]string{
		fmt.Sprintf("From: %s", s.config.Sender),
		fmt.Sprintf("To: %s", email.To),
		fmt.Sprintf("Subject: %s", email.Subject),
		"",
		email.Body,
	}, "\r\n")

	err := smtp.SendMail(
		fmt.Sprintf("%s:%s", s.config.Host, s.config.Port),
		auth,
		s.config.Sender,
		[]string{email.To},
		[]byte(message),
	)
	return errors.Wrap(err, "error sending email")
}

// LogEmailSender logs messages instead of delivering them. Used when no SMTP
// host is configured, typically in development.
type LogEmailSender struct{}

func (LogEmailSender) SendEmail(ctx context.Context, email Email) error {
	utils.LoggerFromContext(ctx).InfoContext(ctx, "email not sent (no smtp host configured)",
		"to", email.To, "subject", email.Subject)
	return nil
}
