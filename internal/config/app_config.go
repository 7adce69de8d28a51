package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/shaharia-lab/salon-notify/internal/notification"
)

const (
	defaultSMTPHost = "smtp.gmail.com"
	defaultSMTPPort = 587
)

// AppConfig holds all application-level configuration loaded from environment variables.
type AppConfig struct {
	// Port is the HTTP server port. Defaults to 8990.
	Port int `envconfig:"PORT" default:"8990"`

	// LogLevel sets the minimum log level (debug, info, warn, error). Defaults to info.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogDir is where system.log is written. Logs go to stderr when empty.
	LogDir string `envconfig:"LOG_DIR"`

	// Environment controls whether internal error details are returned to
	// callers. Anything other than "production" includes them.
	Environment string `envconfig:"APP_ENV" default:"production"`

	// AllowedOrigins lists the origins allowed to call the API from a browser.
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// ProfileFile is an optional YAML file with the business profile.
	ProfileFile string `envconfig:"SALON_PROFILE_FILE"`

	// OTLPEndpoint enables trace export over OTLP/gRPC when set. The exporter
	// reads the remaining OTEL_EXPORTER_OTLP_* variables itself.
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// Raw mail settings. Use SMTP for the resolved values.
	AdminEmail       string `envconfig:"ADMIN_EMAIL"`
	OwnerEmail       string `envconfig:"OWNER_EMAIL"`
	EmailUser        string `envconfig:"EMAIL_USER"`
	SMTPUser         string `envconfig:"SMTP_USER"`
	EmailPassword    string `envconfig:"EMAIL_PASSWORD"`
	SMTPPassword     string `envconfig:"SMTP_PASSWORD"`
	EmailAppPassword string `envconfig:"EMAIL_APP_PASSWORD"`
	SMTPHost         string `envconfig:"SMTP_HOST"`
	SMTPPort         int    `envconfig:"SMTP_PORT"`

	TwilioAccountSID     string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken      string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppNumber string `envconfig:"TWILIO_WHATSAPP_NUMBER"`

	// Resolved provider settings, filled by Load.
	SMTP     notification.SMTPConfig      `ignored:"true"`
	WhatsApp notification.WhatsAppConfig  `ignored:"true"`
	Profile  notification.BusinessProfile `ignored:"true"`
}

// Load reads AppConfig from environment variables using envconfig and
// resolves the provider settings.
func Load() (*AppConfig, error) {
	var c AppConfig
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	profile, err := LoadProfile(c.ProfileFile)
	if err != nil {
		return nil, err
	}
	c.Profile = profile
	c.resolve()
	return &c, nil
}

// resolve applies the fallback precedence for every provider setting.
// Each list is ordered from highest to lowest priority:
//
//	sender mailbox:  EMAIL_USER > SMTP_USER
//	mailbox secret:  EMAIL_PASSWORD > SMTP_PASSWORD > EMAIL_APP_PASSWORD
//	admin recipient: ADMIN_EMAIL > OWNER_EMAIL > sender mailbox
//	SMTP host/port:  SMTP_HOST/SMTP_PORT > smtp.gmail.com:587
func (c *AppConfig) resolve() {
	sender := firstNonEmpty(c.EmailUser, c.SMTPUser)
	port := c.SMTPPort
	if port == 0 {
		port = defaultSMTPPort
	}

	c.SMTP = notification.SMTPConfig{
		Host:       firstNonEmpty(c.SMTPHost, defaultSMTPHost),
		Port:       port,
		Username:   sender,
		Password:   firstNonEmpty(c.EmailPassword, c.SMTPPassword, c.EmailAppPassword),
		FromAddr:   sender,
		FromName:   c.Profile.Name,
		AdminAddr:  firstNonEmpty(c.AdminEmail, c.OwnerEmail, sender),
		Encryption: notification.EncryptionForPort(port),
	}
	c.WhatsApp = notification.WhatsAppConfig{
		AccountSID: c.TwilioAccountSID,
		AuthToken:  c.TwilioAuthToken,
		FromNumber: c.TwilioWhatsAppNumber,
	}
}

// SlogLevel converts the LogLevel string to a slog.Level.
// Unknown values default to slog.LevelInfo.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction reports whether internal error details must be withheld
// from API responses.
func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
