package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shaharia-lab/salon-notify/internal/notification"
)

func TestSMTPConfig_Configured(t *testing.T) {
	assert.False(t, notification.SMTPConfig{Username: "owner@example.com"}.Configured())
	assert.True(t, notification.SMTPConfig{Password: "secret"}.Configured())
}

func TestWhatsAppConfig_Missing(t *testing.T) {
	tests := []struct {
		name   string
		config notification.WhatsAppConfig
		want   []string
	}{
		{
			name: "complete",
			config: notification.WhatsAppConfig{
				AccountSID: "AC123",
				AuthToken:  "token",
				FromNumber: "whatsapp:+14155238886",
			},
		},
		{
			name:   "empty",
			config: notification.WhatsAppConfig{},
			want:   []string{"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_WHATSAPP_NUMBER"},
		},
		{
			name:   "token only missing",
			config: notification.WhatsAppConfig{AccountSID: "AC123", FromNumber: "whatsapp:+1"},
			want:   []string{"TWILIO_AUTH_TOKEN"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.Missing())
		})
	}
}

func TestBusinessProfile_WithDefaults(t *testing.T) {
	p := notification.BusinessProfile{Name: "Glow Studio", Currency: "$"}.WithDefaults()

	assert.Equal(t, "Glow Studio", p.Name)
	assert.Equal(t, "$", p.Currency)
	assert.Equal(t, notification.DefaultProfile().Hours, p.Hours)
	assert.Equal(t, notification.DefaultProfile().Address, p.Address)
}
