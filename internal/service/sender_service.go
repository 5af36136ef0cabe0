package service

import (
	"context"
	"fmt"
	"jarcafe/internal/entities"
	"jarcafe/internal/utils"
	"strings"
)

const (
	cafeName              = "The Jar Café"
	noMessagePlaceholder  = "No additional message"
	userConfirmationTitle = "Your Reservation is Confirmed - " + cafeName
)

// SenderService turns validated requests into notification jobs. The
// messenger is nil when WhatsApp is not configured.
type SenderService struct {
	mailer      Mailer
	messenger   Messenger
	adminEmail  string
	countryCode string
}

func NewSenderService(mailer Mailer, messenger Messenger, adminEmail, countryCode string) *SenderService {
	return &SenderService{
		mailer:      mailer,
		messenger:   messenger,
		adminEmail:  adminEmail,
		countryCode: countryCode,
	}
}

func (s *SenderService) WhatsAppEnabled() bool {
	return s.messenger != nil
}

// ReservationJobs builds the admin email, the guest confirmation and, when
// enabled, the WhatsApp confirmation.
func (s *SenderService) ReservationJobs(req entities.ReservationRequest) []Job {
	jobs := []Job{
		s.mailJob(ChannelAdminEmail, adminReservationEmail(s.adminEmail, req)),
		s.mailJob(ChannelUserEmail, userConfirmationEmail(req)),
	}
	if s.messenger != nil {
		to := utils.NormalizePhone(req.Phone, s.countryCode)
		body := whatsAppConfirmation(entities.NewReservationEmailData(req))
		jobs = append(jobs, Job{
			Channel:   ChannelWhatsApp,
			Recipient: to,
			Send: func(ctx context.Context) error {
				return s.messenger.SendWhatsApp(ctx, to, body)
			},
		})
	}
	return jobs
}

func (s *SenderService) ContactJob(req entities.ContactRequest) Job {
	return s.mailJob(ChannelContactEmail, Email{
		To:      s.adminEmail,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New Message from %s", singleLine(req.Name)),
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", req.Name, req.Email, req.Message),
	})
}

func (s *SenderService) mailJob(channel string, email Email) Job {
	return Job{
		Channel:   channel,
		Recipient: email.To,
		Send: func(ctx context.Context) error {
			return s.mailer.SendMail(ctx, email)
		},
	}
}

func adminReservationEmail(to string, req entities.ReservationRequest) Email {
	message := req.Message
	if message == "" {
		message = noMessagePlaceholder
	}
	return Email{
		To:      to,
		Subject: fmt.Sprintf("New Reservation from %s", singleLine(req.Name)),
		Body: fmt.Sprintf(
			"Name: %s\nEmail: %s\nPhone: %s\nPersons: %s\nDate: %s\nTime: %s\nMessage: %s",
			req.Name, req.Email, req.Phone, req.Person, req.ReservationDate, req.Time, message,
		),
	}
}

func userConfirmationEmail(req entities.ReservationRequest) Email {
	data := entities.NewReservationEmailData(req)
	return Email{
		To:      req.Email,
		ToName:  data.UserName,
		Subject: userConfirmationTitle,
		Body: fmt.Sprintf(
			"Dear %s,\n\nThank you for making a reservation at %s!\n\n"+
				"Here are your reservation details:\n"+
				"Date: %s\n"+
				"Time: %s\n"+
				"Persons: %s\n\n"+
				"We look forward to serving you!\n\n"+
				"Best Regards,\n%s",
			data.UserName, cafeName, data.Date, data.Time, data.Persons, cafeName,
		),
	}
}

func whatsAppConfirmation(data entities.ReservationEmailData) string {
	return fmt.Sprintf(
		"Hello %s, your reservation at %s is confirmed!\n\nDate: %s\nTime: %s\nPersons: %s\n\nSee you soon! ☕",
		data.UserName, cafeName, data.Date, data.Time, data.Persons,
	)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// singleLine keeps user text that ends up in a subject on one line.
func singleLine(s string) string {
	return lineBreaks.Replace(s)
}
