package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"vitrina/config"
)

// SMTPSender отправляет письма через обычный SMTP-релей без аутентификации
// (локальный postfix либо внутренний релей).
type SMTPSender struct {
	host string
	port string
	from string
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		host: cfg.Host,
		port: cfg.Port,
		from: cfg.From,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	msg := s.buildMessage(to, subject, body)

	if err := smtp.SendMail(addr, nil, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("ошибка отправки письма: %w", err)
	}

	return nil
}

func (s *SMTPSender) buildMessage(to, subject, body string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %s\r\n", s.from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return b.String()
}
