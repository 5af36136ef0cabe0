package service

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"jarcafe/internal/entities"
	"testing"
)

const adminAddress = "owner@thejarcafe.test"

func sampleReservation() entities.ReservationRequest {
	return entities.ReservationRequest{
		Name:            "A",
		Email:           "a@x.com",
		Phone:           "5550100",
		Person:          "2",
		ReservationDate: "2025-06-01",
		Time:            "19:00",
	}
}

func TestReservationJobsWithoutWhatsApp(t *testing.T) {
	mailer := NewMockMailer()
	sender := NewSenderService(mailer, nil, adminAddress, "91")

	jobs := sender.ReservationJobs(sampleReservation())
	require.Len(t, jobs, 2)
	assert.Equal(t, ChannelAdminEmail, jobs[0].Channel)
	assert.Equal(t, adminAddress, jobs[0].Recipient)
	assert.Equal(t, ChannelUserEmail, jobs[1].Channel)
	assert.Equal(t, "a@x.com", jobs[1].Recipient)
	assert.False(t, sender.WhatsAppEnabled())
}

func TestAdminEmailEnumeratesAllFields(t *testing.T) {
	email := adminReservationEmail(adminAddress, sampleReservation())
	assert.Equal(t, "New Reservation from A", email.Subject)
	assert.Equal(t,
		"Name: A\nEmail: a@x.com\nPhone: 5550100\nPersons: 2\nDate: 2025-06-01\nTime: 19:00\nMessage: No additional message",
		email.Body,
	)

	req := sampleReservation()
	req.Message = "Window seat please"
	email = adminReservationEmail(adminAddress, req)
	assert.Contains(t, email.Body, "Message: Window seat please")
}

func TestUserConfirmationOmitsPhoneAndMessage(t *testing.T) {
	req := sampleReservation()
	req.Message = "secret note"
	email := userConfirmationEmail(req)

	assert.Equal(t, "a@x.com", email.To)
	assert.Equal(t, "Your Reservation is Confirmed - The Jar Café", email.Subject)
	assert.Contains(t, email.Body, "Dear A,")
	assert.Contains(t, email.Body, "Date: 2025-06-01\nTime: 19:00\nPersons: 2")
	assert.NotContains(t, email.Body, "5550100")
	assert.NotContains(t, email.Body, "secret note")
}

func TestWhatsAppJobUsesNormalizedPhone(t *testing.T) {
	cases := map[string]string{
		"9876543210":    "+919876543210",
		"+447700900000": "+447700900000",
	}
	for phone, want := range cases {
		messenger := NewMockMessenger()
		sender := NewSenderService(NewMockMailer(), messenger, adminAddress, "91")
		req := sampleReservation()
		req.Phone = phone

		jobs := sender.ReservationJobs(req)
		require.Len(t, jobs, 3)
		assert.Equal(t, ChannelWhatsApp, jobs[2].Channel)
		assert.Equal(t, want, jobs[2].Recipient)

		require.NoError(t, jobs[2].Send(context.Background()))
		msgs := messenger.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, want, msgs[0].To)
		assert.Contains(t, msgs[0].Body, "Hello A, your reservation at The Jar Café is confirmed!")
		assert.Contains(t, msgs[0].Body, "Persons: 2")
	}
}

func TestContactJob(t *testing.T) {
	mailer := NewMockMailer()
	sender := NewSenderService(mailer, nil, adminAddress, "91")

	job := sender.ContactJob(entities.ContactRequest{Name: "B", Email: "b@x.com", Message: "Do you cater?"})
	require.NoError(t, job.Send(context.Background()))

	sent := mailer.Emails()
	require.Len(t, sent, 1)
	assert.Equal(t, adminAddress, sent[0].To)
	assert.Equal(t, "b@x.com", sent[0].ReplyTo)
	assert.Equal(t, "New Message from B", sent[0].Subject)
	assert.Equal(t, "Name: B\nEmail: b@x.com\n\nMessage:\nDo you cater?", sent[0].Body)
}

func TestSubjectsStayOnOneLine(t *testing.T) {
	req := sampleReservation()
	req.Name = "A\r\nBcc: c@x.com\nX"

	email := adminReservationEmail(adminAddress, req)
	assert.Equal(t, "New Reservation from A Bcc: c@x.com X", email.Subject)
	assert.Contains(t, email.Body, "Name: A\r\nBcc: c@x.com\nX")
}
