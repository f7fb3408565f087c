package email

import (
	"gopkg.in/gomail.v2"
)

// Mailer sends a single transactional email. Callers on the auth and
// booking paths treat failures as best-effort and never let them fail
// the operation that triggered the send.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// SMTPMailer sends mail through a gomail SMTP dialer.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(to, subject, html, text string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	if text == "" {
		text = subject
	}
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	return m.dialer.DialAndSend(msg)
}
