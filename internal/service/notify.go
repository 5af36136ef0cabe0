package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends through the operator's own mailbox (Gmail by default).
type SMTPMailer struct {
	host     string
	port     string
	user     string
	auth     smtp.Auth
	sendMail sendMailFunc
}

func NewSMTPMailer(host, port, user, pass string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		user:     user,
		auth:     smtp.PlainAuth("", user, pass, host),
		sendMail: smtp.SendMail,
	}
}

var errHeaderInjection = errors.New("header value contains a line break")

func (m *SMTPMailer) SendMail(_ context.Context, email Email) error {
	msg, err := buildMessage(m.user, email)
	if err != nil {
		return fmt.Errorf("failed to build email to %q: %w", email.To, err)
	}
	addr := m.host + ":" + m.port
	if err := m.sendMail(addr, m.auth, m.user, []string{email.To}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", email.To, err)
	}
	return nil
}

// buildMessage refuses any header value with CR or LF in it.
func buildMessage(from string, email Email) ([]byte, error) {
	for _, v := range []string{from, email.To, email.ReplyTo, email.Subject} {
		if strings.ContainsAny(v, "\r\n") {
			return nil, errHeaderInjection
		}
	}

	var b strings.Builder
	b.WriteString("From: " + formatAddress(from) + "\r\n")
	b.WriteString("To: " + formatAddress(email.To) + "\r\n")
	if email.ReplyTo != "" {
		b.WriteString("Reply-To: " + formatAddress(email.ReplyTo) + "\r\n")
	}
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", email.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(email.Body, "\n", "\r\n"))
	return []byte(b.String()), nil
}

func formatAddress(addr string) string {
	return (&mail.Address{Address: addr}).String()
}
