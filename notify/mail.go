package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/slipway-ci/slipway/config"
)

// Mailer delivers a rendered notification.
type Mailer interface {
	Send(ctx context.Context, subject, htmlBody string) error
}

// SMTPMailer sends notifications through an SMTP relay.
type SMTPMailer struct {
	cfg config.MailRef
}

// NewSMTPMailer creates a mailer for the given transport config.
func NewSMTPMailer(cfg config.MailRef) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid sender %q: %w", m.cfg.From, err)
	}
	if err := msg.To(m.cfg.To...); err != nil {
		return fmt.Errorf("invalid recipients: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if user := m.cfg.Username(); user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(user),
			mail.WithPassword(m.cfg.Password()),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
