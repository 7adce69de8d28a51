package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shaharia-lab/salon-notify/internal/billing"
	"github.com/shaharia-lab/salon-notify/internal/metrics"
	"github.com/shaharia-lab/salon-notify/internal/notification"
)

const (
	channelWhatsApp = "whatsapp"

	msgPhoneRequired          = "Phone number is required"
	msgNoContent              = "No message content provided"
	msgWhatsAppNotConfigured  = "WhatsApp service is not configured"
	noteWhatsAppNotConfigured = "Contact the administrator to configure the Twilio WhatsApp credentials."
	msgWhatsAppFailed         = "Failed to send WhatsApp message"
	msgBillSent               = "Bill sent successfully via WhatsApp"
	msgMessageSent            = "Message sent successfully via WhatsApp"
)

// WhatsAppResult is the outcome of a successful WhatsApp send.
type WhatsAppResult struct {
	Message    string `json:"message"`
	MessageSID string `json:"messageSid"`
}

// WhatsAppService sends bill summaries and free-form messages over WhatsApp.
type WhatsAppService interface {
	// SendBill validates req, picks the bill-summary or free-form branch and
	// sends the resulting text to req.PhoneNumber.
	SendBill(ctx context.Context, req *billing.WhatsAppBillRequest) (*WhatsAppResult, error)
}

// whatsAppServiceImpl implements WhatsAppService.
type whatsAppServiceImpl struct {
	config       notification.WhatsAppConfig
	profile      notification.BusinessProfile
	newMessenger notification.MessengerFactory
	metrics      *metrics.Recorder
	events       EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// NewWhatsAppService creates a new WhatsAppService. events may be nil.
func NewWhatsAppService(
	config notification.WhatsAppConfig,
	profile notification.BusinessProfile,
	newMessenger notification.MessengerFactory,
	rec *metrics.Recorder,
	events EventPublisher,
	logger *slog.Logger,
) WhatsAppService {
	return &whatsAppServiceImpl{
		config:       config,
		profile:      profile,
		newMessenger: newMessenger,
		metrics:      rec,
		events:       publisherOrNoop(events),
		logger:       logger,
		now:          time.Now,
	}
}

// SendBill implements WhatsAppService.
func (s *whatsAppServiceImpl) SendBill(ctx context.Context, req *billing.WhatsAppBillRequest) (*WhatsAppResult, error) {
	if err := s.validate(req); err != nil {
		s.metrics.Delivery(channelWhatsApp, metrics.OutcomeRejected)
		return nil, err
	}

	if missing := s.config.Missing(); len(missing) > 0 {
		s.logger.Error("whatsapp service not configured", "missing", missing)
		s.metrics.Delivery(channelWhatsApp, metrics.OutcomeNotConfigured)
		return nil, &ConfigurationError{
			Message: msgWhatsAppNotConfigured,
			Note:    noteWhatsAppNotConfigured,
			Missing: missing,
		}
	}

	body, success, err := s.compose(req)
	if err != nil {
		s.metrics.Delivery(channelWhatsApp, metrics.OutcomeRejected)
		return nil, err
	}

	messenger := s.newMessenger(s.config)
	sendCtx, span := startProviderSpan(ctx, "whatsapp.message", channelWhatsApp, messenger.Name())
	start := time.Now()
	sid, err := messenger.Send(sendCtx, req.PhoneNumber, body)
	s.metrics.ObserveProvider(channelWhatsApp, time.Since(start))
	endProviderSpan(span, err)
	if err != nil {
		s.logger.Error("failed to send whatsapp message", "to", req.PhoneNumber, "error", err)
		s.metrics.Delivery(channelWhatsApp, metrics.OutcomeFailed)
		de := &DeliveryError{
			Provider: messenger.Name(),
			Message:  providerMessage(err),
			Err:      err,
		}
		s.events.Publish(EventWhatsAppMessageError, channelWhatsApp, map[string]string{
			"invoice": req.InvoiceID,
			"error":   de.Message,
		})
		return nil, de
	}

	s.logger.Info("whatsapp message sent", "to", req.PhoneNumber, "sid", sid)
	s.metrics.Delivery(channelWhatsApp, metrics.OutcomeSent)
	s.events.Publish(EventWhatsAppMessageSent, channelWhatsApp, map[string]string{
		"invoice": req.InvoiceID,
		"sid":     sid,
	})
	return &WhatsAppResult{Message: success, MessageSID: sid}, nil
}

// compose selects the message body. A PDF with a file name produces the
// structured bill summary; otherwise the free-form message is sent as is.
// The PDF itself is decoded but not delivered: attaching media requires a
// hosted URL, which this service does not provide.
func (s *whatsAppServiceImpl) compose(req *billing.WhatsAppBillRequest) (body, success string, err error) {
	switch {
	case req.HasPDF():
		pdf, err := billing.DecodePDF(req.PDF)
		if err != nil {
			return "", "", &ValidationError{Field: "pdf", Message: msgInvalidPDF}
		}
		s.logger.Info("pdf received, sending text summary only",
			"file", req.PDFFileName, "bytes", len(pdf), "invoice", req.InvoiceID)
		return notification.RenderWhatsAppBill(req, s.profile, s.now()), msgBillSent, nil
	case req.HasMessage():
		return req.Message, msgMessageSent, nil
	default:
		return "", "", &ValidationError{Message: msgNoContent}
	}
}

func (s *whatsAppServiceImpl) validate(req *billing.WhatsAppBillRequest) error {
	req.Normalize()
	errs := billing.Validate(req)
	if len(errs) == 0 {
		return nil
	}
	if billing.Has(errs, "phoneNumber", "required") {
		return &ValidationError{Message: msgPhoneRequired}
	}
	return &ValidationError{Field: errs[0].Field, Message: errs[0].Message()}
}

// providerMessage returns the provider's own error text, or a generic
// message when it gave none.
func providerMessage(err error) string {
	msg := err.Error()
	var pe *notification.ProviderError
	if errors.As(err, &pe) {
		msg = pe.Message
	}
	if msg == "" {
		return msgWhatsAppFailed
	}
	return msg
}
