package service

import (
	"context"
	"fmt"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"jarcafe/internal/utils"
)

// Email is a single plain-text message. ReplyTo is optional.
type Email struct {
	To      string
	ToName  string
	ReplyTo string
	Subject string
	Body    string
}

type Mailer interface {
	SendMail(ctx context.Context, email Email) error
}

type Messenger interface {
	SendWhatsApp(ctx context.Context, to, body string) error
}

type sendGridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridMailer struct {
	client    sendGridClient
	fromEmail string
	fromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *SendGridMailer) SendMail(ctx context.Context, email Email) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(email.ToName, email.To)
	message := mail.NewSingleEmail(from, email.Subject, to, email.Body, "")
	if email.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", email.ReplyTo))
	}

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", email.To, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioMessenger sends WhatsApp messages through the Twilio Messages API.
type TwilioMessenger struct {
	api  messageCreator
	from string
}

func NewTwilioMessenger(accountSid, authToken, fromNumber string) *TwilioMessenger {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})
	return &TwilioMessenger{
		api:  client.Api,
		from: utils.WhatsAppAddress(fromNumber),
	}
}

// SendWhatsApp ignores ctx; the Twilio client has no context-aware call.
func (m *TwilioMessenger) SendWhatsApp(_ context.Context, to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(utils.WhatsAppAddress(to))
	params.SetFrom(m.from)
	params.SetBody(body)

	if _, err := m.api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio whatsapp to %s: %w", to, err)
	}
	return nil
}
