package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// Mailer отправляет одно письмо
type Mailer interface {
	Send(ctx context.Context, n Notification) error
}

// SendGridMailer отправляет письма через SendGrid
type SendGridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

// NewSendGridMailer создает отправителя SendGrid
func NewSendGridMailer(apiKey, fromName, fromEmail string) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send отправляет уведомление как текстовое письмо
func (m *SendGridMailer) Send(ctx context.Context, n Notification) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(n.To, n.To)

	message := mail.NewSingleEmail(from, n.Subject, to, n.Body, "")
	if n.CC != "" && len(message.Personalizations) > 0 {
		message.Personalizations[0].AddCCs(mail.NewEmail(n.CC, n.CC))
	}

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
}

// LogMailer пишет письма в лог вместо отправки. Используется, когда SENDGRID_API_KEY не задан.
type LogMailer struct {
	logger *logrus.Logger
}

// NewLogMailer создает LogMailer
func NewLogMailer(logger *logrus.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, n Notification) error {
	m.logger.WithFields(logrus.Fields{
		"kind":    n.Kind,
		"to":      n.To,
		"cc":      n.CC,
		"subject": n.Subject,
	}).Info("Email delivery is not configured, notification logged")
	return nil
}
