package service

import (
	"context"
	"errors"
	"sync"
)

// MockMailer records sent emails. Recipients listed in FailFor get an error.
type MockMailer struct {
	mu      sync.Mutex
	Sent    []Email
	FailFor map[string]bool
}

func NewMockMailer() *MockMailer {
	return &MockMailer{FailFor: make(map[string]bool)}
}

func (m *MockMailer) SendMail(_ context.Context, email Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sent = append(m.Sent, email)
	if m.FailFor[email.To] {
		return errors.New("mock mail send failure")
	}
	return nil
}

func (m *MockMailer) Emails() []Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Email(nil), m.Sent...)
}

type MockMessage struct {
	To   string
	Body string
}

type MockMessenger struct {
	mu   sync.Mutex
	Sent []MockMessage

	// Fail makes every send return an error.
	Fail bool
}

func NewMockMessenger() *MockMessenger {
	return &MockMessenger{}
}

func (m *MockMessenger) SendWhatsApp(_ context.Context, to, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sent = append(m.Sent, MockMessage{To: to, Body: body})
	if m.Fail {
		return errors.New("mock whatsapp send failure")
	}
	return nil
}

func (m *MockMessenger) Messages() []MockMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockMessage(nil), m.Sent...)
}
