package mail

import (
	"fmt"
	"log"

	gomail "github.com/wneessen/go-mail"

	"github.com/sitebeam/config"
)

// Mailer sends outbound notification email. Sends are best effort: callers
// log and continue on failure, the outbox carries the durable copy.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer is the production mailer over go-mail
type SMTPMailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

// NewMailer builds a mailer from config. When no SMTP host is configured a
// logging no-op mailer is returned so dev environments work out of the box.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set, outbound email disabled")
		return &noopMailer{}
	}
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

// Send delivers one plain-text message
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(m.host,
		gomail.WithPort(m.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.user),
		gomail.WithPassword(m.password),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	return client.DialAndSend(msg)
}

type noopMailer struct{}

func (n *noopMailer) Send(to, subject, body string) error {
	log.Printf("mail (disabled): to=%s subject=%q", to, subject)
	return nil
}
