package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/shaharia-lab/salon-notify/internal/notification"
)

// --- stub mailer ---

type stubMailer struct {
	mu sync.Mutex
	// errFor maps a recipient to the error its send should return.
	errFor map[string]error
	sent   []notification.Email
}

func (m *stubMailer) Name() string { return "smtp" }

func (m *stubMailer) Send(_ context.Context, email notification.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.errFor[email.To]; err != nil {
		return err
	}
	m.sent = append(m.sent, email)
	return nil
}

// factory returns a MailerFactory handing out m and a counter of its calls.
func (m *stubMailer) factory() (notification.MailerFactory, *int) {
	calls := 0
	return func(notification.SMTPConfig) notification.Mailer {
		calls++
		return m
	}, &calls
}

// --- stub messenger ---

type stubMessenger struct {
	sid  string
	err  error
	to   string
	body string
	sent int
}

func (m *stubMessenger) Name() string { return "twilio" }

func (m *stubMessenger) Send(_ context.Context, to, body string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.to, m.body = to, body
	m.sent++
	return m.sid, nil
}

func (m *stubMessenger) factory() (notification.MessengerFactory, *int) {
	calls := 0
	return func(notification.WhatsAppConfig) notification.Messenger {
		calls++
		return m
	}, &calls
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- recording publisher ---

type publishedEvent struct {
	Type    string
	Channel string
	Payload map[string]string
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(eventType, channel string, payload map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Type: eventType, Channel: channel, Payload: payload})
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
