package notify

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender отправляет письма через SMTP.
// Аутентификация включается только если задан пользователь — локальные
// релеи (Mailpit и т.п.) работают без нее.
type SMTPSender struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPSender создает новый SMTP sender
func NewSMTPSender(addr, from, user, password string) *SMTPSender {
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@smc-reservations.local"
	}

	var auth smtp.Auth
	if user != "" {
		host := addr
		if idx := strings.LastIndex(addr, ":"); idx >= 0 {
			host = addr[:idx]
		}
		auth = smtp.PlainAuth("", user, password, host)
	}

	return &SMTPSender{
		addr: strings.TrimSpace(addr),
		from: from,
		auth: auth,
	}
}

// Send отправляет HTML письмо одному получателю
func (s *SMTPSender) Send(to string, subject string, htmlBody string) error {
	msg := buildMessage(s.from, to, subject, htmlBody)
	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	return nil
}

func buildMessage(from, to, subject, htmlBody string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		htmlBody,
	)
}
