package notification

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// ReferenceHeader carries the dispatch reference on every outgoing email.
const ReferenceHeader = "X-Checkout-Reference"

// SMTPProvider delivers emails via SMTP using the go-mail library.
type SMTPProvider struct {
	config SMTPConfig
}

// NewSMTPProvider creates a new SMTPProvider with the given configuration.
func NewSMTPProvider(config SMTPConfig) *SMTPProvider {
	return &SMTPProvider{config: config}
}

// NewSMTPMailer is a MailerFactory backed by SMTPProvider.
func NewSMTPMailer(config SMTPConfig) Mailer {
	return NewSMTPProvider(config)
}

// Name returns the provider identifier.
func (p *SMTPProvider) Name() string { return "smtp" }

// Send delivers email using the configured SMTP server.
func (p *SMTPProvider) Send(ctx context.Context, email Email) error {
	m, err := p.buildMessage(email)
	if err != nil {
		return err
	}

	c, err := mail.NewClient(p.config.Host, p.clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	return c.DialAndSendWithContext(ctx, m)
}

func (p *SMTPProvider) buildMessage(email Email) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(p.config.FromName, p.config.FromAddr); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(email.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", email.To, err)
	}

	m.Subject(email.Subject)
	m.SetDate()
	if email.Reference != "" {
		m.SetGenHeader(ReferenceHeader, email.Reference)
	}

	// Plain-text fallback for clients that don't render HTML.
	m.SetBodyString(mail.TypeTextPlain, email.Text)
	if email.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	}

	for _, a := range email.Attachments {
		ct := a.ContentType
		if ct == "" {
			ct = string(mail.TypeAppOctetStream)
		}
		if err := m.AttachReader(a.FileName, bytes.NewReader(a.Data),
			mail.WithFileContentType(mail.ContentType(ct))); err != nil {
			return nil, fmt.Errorf("attaching %q: %w", a.FileName, err)
		}
	}
	return m, nil
}

func (p *SMTPProvider) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(p.config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(p.config.Username),
		mail.WithPassword(p.config.Password),
		mail.WithTLSPolicy(tlsPolicyFromEncryption(p.config.Encryption)),
	}
	if p.config.Encryption == "ssl_tls" {
		opts = append(opts, mail.WithSSL())
	}
	return opts
}

// tlsPolicyFromEncryption converts the encryption string to a go-mail TLSPolicy.
func tlsPolicyFromEncryption(enc string) mail.TLSPolicy {
	switch enc {
	case "ssl_tls", "starttls":
		return mail.TLSMandatory
	default:
		return mail.NoTLS
	}
}

// EncryptionForPort returns the encryption mode implied by an SMTP port:
// 465 is implicit TLS, everything else negotiates STARTTLS.
func EncryptionForPort(port int) string {
	if port == 465 {
		return "ssl_tls"
	}
	return "starttls"
}
