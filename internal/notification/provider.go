// Package notification renders checkout receipts and bill summaries and
// delivers them through email (SMTP) and WhatsApp (Twilio) providers.
package notification

import "context"

// Attachment is a file sent along with an Email.
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Email is the content to be delivered by a Mailer.
type Email struct {
	To          string
	Subject     string
	HTML        string
	Text        string
	Reference   string
	Attachments []Attachment
}

// Mailer is the interface for email delivery backends.
type Mailer interface {
	// Name returns the provider identifier (e.g. "smtp").
	Name() string
	// Send delivers the email using the provider's transport.
	Send(ctx context.Context, email Email) error
}

// Messenger is the interface for WhatsApp delivery backends.
type Messenger interface {
	// Name returns the provider identifier (e.g. "twilio").
	Name() string
	// Send delivers body to the recipient and returns the provider's message id.
	Send(ctx context.Context, to, body string) (string, error)
}

// MailerFactory builds a Mailer for the given SMTP settings.
type MailerFactory func(SMTPConfig) Mailer

// MessengerFactory builds a Messenger for the given WhatsApp settings.
type MessengerFactory func(WhatsAppConfig) Messenger
