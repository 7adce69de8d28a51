package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaharia-lab/salon-notify/internal/billing"
	"github.com/shaharia-lab/salon-notify/internal/metrics"
	"github.com/shaharia-lab/salon-notify/internal/notification"
	"github.com/shaharia-lab/salon-notify/internal/service"
)

const customerPhone = "whatsapp:+911234567890"

func configuredTwilio() notification.WhatsAppConfig {
	return notification.WhatsAppConfig{
		AccountSID: "AC0123456789",
		AuthToken:  "token",
		FromNumber: "whatsapp:+14155238886",
	}
}

func newWhatsAppSvc(cfg notification.WhatsAppConfig, messenger *stubMessenger, rec *metrics.Recorder) (service.WhatsAppService, *int) {
	factory, calls := messenger.factory()
	svc := service.NewWhatsAppService(cfg, notification.DefaultProfile(), factory, rec, nil, discardLogger())
	return svc, calls
}

func TestSendBill_PDFBranch(t *testing.T) {
	messenger := &stubMessenger{sid: "SM123"}
	rec := metrics.New()
	svc, _ := newWhatsAppSvc(configuredTwilio(), messenger, rec)

	result, err := svc.SendBill(context.Background(), &billing.WhatsAppBillRequest{
		PhoneNumber:    customerPhone,
		CustomerName:   "Meera",
		InvoiceID:      "INV-1001",
		TotalAmount:    billing.NewAmount(1000),
		DiscountAmount: billing.NewAmount(100),
		PaidAmount:     billing.NewAmount(1000),
		Items:          []billing.LineItem{{Name: "Facial", Quantity: billing.NewAmount(1), Price: billing.NewAmount(1100)}},
		PDF:            "JVBERi0xLjQ=",
		PDFFileName:    "INV-1001.pdf",
		Message:        "ignored when a pdf is present",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bill sent successfully via WhatsApp", result.Message)
	assert.Equal(t, "SM123", result.MessageSID)
	assert.Equal(t, customerPhone, messenger.to)
	assert.Contains(t, messenger.body, "🎁 Discount: -₹100.00")
	assert.Contains(t, messenger.body, "✅ *PAID IN FULL*")
	assert.NotContains(t, messenger.body, "ignored when a pdf is present")
	assert.InDelta(t, 1, testutil.ToFloat64(rec.Deliveries().WithLabelValues("whatsapp", metrics.OutcomeSent)), 0)
}

func TestSendBill_MessageBranch(t *testing.T) {
	messenger := &stubMessenger{sid: "SM456"}
	svc, _ := newWhatsAppSvc(configuredTwilio(), messenger, metrics.New())

	result, err := svc.SendBill(context.Background(), &billing.WhatsAppBillRequest{
		PhoneNumber: customerPhone,
		Message:     "Hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "Message sent successfully via WhatsApp", result.Message)
	assert.Equal(t, "SM456", result.MessageSID)
	assert.Equal(t, "Hello", messenger.body)
}

func TestSendBill_PDFWithoutFileNameFallsBackToMessage(t *testing.T) {
	messenger := &stubMessenger{sid: "SM789"}
	svc, _ := newWhatsAppSvc(configuredTwilio(), messenger, metrics.New())

	result, err := svc.SendBill(context.Background(), &billing.WhatsAppBillRequest{
		PhoneNumber: customerPhone,
		PDF:         "JVBERi0xLjQ=",
		Message:     "See you soon",
	})
	require.NoError(t, err)
	assert.Equal(t, "Message sent successfully via WhatsApp", result.Message)
	assert.Equal(t, "See you soon", messenger.body)
}

func TestSendBill_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		req     *billing.WhatsAppBillRequest
		wantMsg string
	}{
		{
			name:    "missing phone",
			req:     &billing.WhatsAppBillRequest{Message: "Hello"},
			wantMsg: "Phone number is required",
		},
		{
			name:    "blank phone",
			req:     &billing.WhatsAppBillRequest{PhoneNumber: "   ", Message: "Hello"},
			wantMsg: "Phone number is required",
		},
		{
			name:    "no content",
			req:     &billing.WhatsAppBillRequest{PhoneNumber: customerPhone},
			wantMsg: "No message content provided",
		},
		{
			name: "invalid pdf",
			req: &billing.WhatsAppBillRequest{
				PhoneNumber: customerPhone,
				PDF:         "%%%",
				PDFFileName: "bill.pdf",
			},
			wantMsg: "Invalid PDF payload",
		},
		{
			name: "negative paid amount",
			req: &billing.WhatsAppBillRequest{
				PhoneNumber: customerPhone,
				PaidAmount:  billing.NewAmount(-5),
				Message:     "Hello",
			},
			wantMsg: "paidAmount must not be negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messenger := &stubMessenger{}
			svc, calls := newWhatsAppSvc(configuredTwilio(), messenger, metrics.New())

			result, err := svc.SendBill(context.Background(), tt.req)
			assert.Nil(t, result)

			var ve *service.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantMsg, ve.Message)
			assert.Zero(t, *calls)
			assert.Zero(t, messenger.sent)
		})
	}
}

func TestSendBill_NotConfigured(t *testing.T) {
	cfg := configuredTwilio()
	cfg.AuthToken = ""
	messenger := &stubMessenger{}
	rec := metrics.New()
	svc, calls := newWhatsAppSvc(cfg, messenger, rec)

	_, err := svc.SendBill(context.Background(), &billing.WhatsAppBillRequest{
		PhoneNumber: customerPhone,
		Message:     "Hello",
	})

	var ce *service.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "WhatsApp service is not configured", ce.Message)
	assert.Equal(t, []string{"TWILIO_AUTH_TOKEN"}, ce.Missing)
	assert.Zero(t, *calls)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.Deliveries().WithLabelValues("whatsapp", metrics.OutcomeNotConfigured)), 0)
}

func TestSendBill_PhoneCheckedBeforeConfiguration(t *testing.T) {
	svc, _ := newWhatsAppSvc(notification.WhatsAppConfig{}, &stubMessenger{}, metrics.New())

	_, err := svc.SendBill(context.Background(), &billing.WhatsAppBillRequest{Message: "Hello"})

	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Phone number is required", ve.Message)
}

func TestSendBill_ConfigurationCheckedBeforeContent(t *testing.T) {
	svc, _ := newWhatsAppSvc(notification.WhatsAppConfig{}, &stubMessenger{}, metrics.New())

	_, err := svc.SendBill(context.Background(), &billing.WhatsAppBillRequest{PhoneNumber: customerPhone})

	var ce *service.ConfigurationError
	assert.ErrorAs(t, err, &ce)
}

func TestSendBill_ProviderFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name: "provider message",
			err: &notification.ProviderError{
				Provider: "twilio",
				Message:  "The 'To' number whatsapp:+911234567890 is not a valid phone number.",
				Err:      errors.New("status 400"),
			},
			wantMsg: "The 'To' number whatsapp:+911234567890 is not a valid phone number.",
		},
		{
			name:    "provider without message",
			err:     &notification.ProviderError{Provider: "twilio", Err: errors.New("status 500")},
			wantMsg: "Failed to send WhatsApp message",
		},
		{
			name:    "plain error",
			err:     errors.New("dial tcp: i/o timeout"),
			wantMsg: "dial tcp: i/o timeout",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := metrics.New()
			svc, _ := newWhatsAppSvc(configuredTwilio(), &stubMessenger{err: tt.err}, rec)

			_, err := svc.SendBill(context.Background(), &billing.WhatsAppBillRequest{
				PhoneNumber: customerPhone,
				Message:     "Hello",
			})

			var de *service.DeliveryError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, "twilio", de.Provider)
			assert.Equal(t, tt.wantMsg, de.Message)
			assert.InDelta(t, 1, testutil.ToFloat64(rec.Deliveries().WithLabelValues("whatsapp", metrics.OutcomeFailed)), 0)
		})
	}
}

func TestSendBill_PublishesEvents(t *testing.T) {
	events := &recordingPublisher{}

	okFactory, _ := (&stubMessenger{sid: "SM42"}).factory()
	svc := service.NewWhatsAppService(configuredTwilio(), notification.DefaultProfile(), okFactory, nil, events, discardLogger())
	_, err := svc.SendBill(context.Background(), &billing.WhatsAppBillRequest{
		PhoneNumber: customerPhone,
		InvoiceID:   "INV-9",
		Message:     "Hello",
	})
	require.NoError(t, err)

	failFactory, _ := (&stubMessenger{err: errors.New("boom")}).factory()
	svc = service.NewWhatsAppService(configuredTwilio(), notification.DefaultProfile(), failFactory, nil, events, discardLogger())
	_, err = svc.SendBill(context.Background(), &billing.WhatsAppBillRequest{PhoneNumber: customerPhone, Message: "Hello"})
	require.Error(t, err)

	assert.Equal(t, []string{service.EventWhatsAppMessageSent, service.EventWhatsAppMessageError}, events.types())
	assert.Equal(t, "SM42", events.events[0].Payload["sid"])
	assert.Equal(t, "INV-9", events.events[0].Payload["invoice"])
	assert.Equal(t, "boom", events.events[1].Payload["error"])
}
