package mailer

import (
	"gopkg.in/gomail.v2"
)

// Mailer delivers a message to a user's email address. Implementations are
// boundary collaborators: callers must treat failures as non-fatal.
type Mailer interface {
	Send(toEmail, subject, body string) error
}

// Config holds SMTP connection details.
type Config struct {
	Host     string
	Port     int
	Sender   string
	Email    string
	Password string
}

// SMTPMailer sends mail over SMTP via gomail.
type SMTPMailer struct {
	cfg Config
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers a single HTML email.
func (m *SMTPMailer) Send(toEmail, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.cfg.Email, m.cfg.Sender))
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Email, m.cfg.Password)
	return dialer.DialAndSend(msg)
}
