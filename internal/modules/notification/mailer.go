package notification

import (
	"context"
	"log"
)

// Mailer is the delivery collaborator for one-time codes. The demo has no
// real email provider; delivery means the dev console and the event hub.
type Mailer interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}

type Broadcaster interface {
	Broadcast(event Event)
}

type Event struct {
	Type    string `json:"type"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// DevMailer logs verification codes and pushes them to any connected demo
// consoles. Never fails: code delivery is fire-and-forget in the demo.
type DevMailer struct {
	enabled bool
	hub     Broadcaster
}

func NewDevMailer(enabled bool, hub Broadcaster) *DevMailer {
	return &DevMailer{enabled: enabled, hub: hub}
}

func (m *DevMailer) SendVerificationCode(_ context.Context, email, code string) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] verification code email=%s code=%s", email, code)
	}
	if m.hub != nil {
		m.hub.Broadcast(Event{
			Type:    "verification_code",
			Email:   email,
			Message: code,
		})
	}
	return nil
}
