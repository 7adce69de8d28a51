package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shaharia-lab/salon-notify/internal/billing"
	"github.com/shaharia-lab/salon-notify/internal/metrics"
	"github.com/shaharia-lab/salon-notify/internal/notification"
)

const (
	channelEmail = "email"

	msgCheckoutRequired    = "Customer name and total amount are required"
	msgEmailNotConfigured  = "Email service is not configured. Please set the EMAIL_PASSWORD environment variable."
	noteEmailNotConfigured = "Contact the administrator to configure the SMTP credentials for the sending mailbox."
	msgInvalidPDF          = "Invalid PDF payload"
	msgCheckoutSent        = "Checkout email sent successfully"
)

// CheckoutResult is the outcome of a successful checkout email.
type CheckoutResult struct {
	Message      string `json:"message"`
	BillAmount   string `json:"billAmount"`
	CustomerName string `json:"customerName"`
}

// CheckoutService emails checkout receipts.
type CheckoutService interface {
	// SendCheckoutEmail validates bill, renders the receipt and mails it to
	// the admin recipient, then best-effort to the customer.
	SendCheckoutEmail(ctx context.Context, bill *billing.CheckoutBill) (*CheckoutResult, error)
}

// checkoutServiceImpl implements CheckoutService.
type checkoutServiceImpl struct {
	smtp      notification.SMTPConfig
	profile   notification.BusinessProfile
	newMailer notification.MailerFactory
	metrics   *metrics.Recorder
	events    EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewCheckoutService creates a new CheckoutService. newMailer is only called
// once a request has passed validation and the SMTP secret is configured.
// events may be nil.
func NewCheckoutService(
	smtp notification.SMTPConfig,
	profile notification.BusinessProfile,
	newMailer notification.MailerFactory,
	rec *metrics.Recorder,
	events EventPublisher,
	logger *slog.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		smtp:      smtp,
		profile:   profile,
		newMailer: newMailer,
		metrics:   rec,
		events:    publisherOrNoop(events),
		logger:    logger,
		now:       time.Now,
	}
}

// SendCheckoutEmail implements CheckoutService.
func (s *checkoutServiceImpl) SendCheckoutEmail(ctx context.Context, bill *billing.CheckoutBill) (*CheckoutResult, error) {
	if err := s.validate(bill); err != nil {
		s.metrics.Delivery(channelEmail, metrics.OutcomeRejected)
		return nil, err
	}

	if !s.smtp.Configured() {
		s.logger.Error("email service not configured", "missing", "EMAIL_PASSWORD")
		s.metrics.Delivery(channelEmail, metrics.OutcomeNotConfigured)
		return nil, &ConfigurationError{
			Message: msgEmailNotConfigured,
			Note:    noteEmailNotConfigured,
			Missing: []string{"EMAIL_PASSWORD"},
		}
	}

	attachments, err := s.attachments(bill)
	if err != nil {
		s.metrics.Delivery(channelEmail, metrics.OutcomeRejected)
		return nil, err
	}

	view := notification.NewReceiptView(bill, s.profile, s.now())
	html, err := notification.RenderReceiptHTML(view)
	if err != nil {
		return nil, fmt.Errorf("rendering receipt: %w", err)
	}
	text := notification.RenderReceiptText(view)
	ref := uuid.NewString()

	mailer := s.newMailer(s.smtp)
	admin := notification.Email{
		To:          s.smtp.AdminAddr,
		Subject:     notification.AdminSubject(view),
		HTML:        html,
		Text:        text,
		Reference:   ref,
		Attachments: attachments,
	}

	sendCtx, span := startProviderSpan(ctx, "checkout.admin_email", channelEmail, mailer.Name())
	start := time.Now()
	err = mailer.Send(sendCtx, admin)
	s.metrics.ObserveProvider(channelEmail, time.Since(start))
	endProviderSpan(span, err)
	if err != nil {
		s.logger.Error("failed to send checkout email",
			"reference", ref, "customer", bill.CustomerName, "error", err)
		s.metrics.Delivery(channelEmail, metrics.OutcomeFailed)
		s.events.Publish(EventCheckoutEmailFailed, channelEmail, map[string]string{
			"reference": ref,
			"customer":  bill.CustomerName,
			"error":     err.Error(),
		})
		return nil, &DeliveryError{
			Provider: mailer.Name(),
			Message:  notification.DescribeSMTPError(err),
			Err:      err,
		}
	}
	s.logger.Info("checkout email sent",
		"reference", ref, "customer", bill.CustomerName, "total", view.BillAmount)
	s.metrics.Delivery(channelEmail, metrics.OutcomeSent)
	s.events.Publish(EventCheckoutEmailSent, channelEmail, map[string]string{
		"reference": ref,
		"customer":  bill.CustomerName,
		"total":     view.BillAmount,
	})

	if bill.CustomerEmail != "" {
		customer := admin
		customer.To = bill.CustomerEmail
		customer.Subject = notification.CustomerSubject(view)
		s.sendCustomerCopy(ctx, mailer, customer)
	}

	return &CheckoutResult{
		Message:      msgCheckoutSent,
		BillAmount:   view.BillAmount,
		CustomerName: bill.CustomerName,
	}, nil
}

// sendCustomerCopy is a best-effort side notification: its outcome is
// logged and counted but never affects the checkout response.
func (s *checkoutServiceImpl) sendCustomerCopy(ctx context.Context, mailer notification.Mailer, email notification.Email) {
	ctx, span := startProviderSpan(ctx, "checkout.customer_email", channelEmail, mailer.Name())
	err := mailer.Send(ctx, email)
	endProviderSpan(span, err)
	if err != nil {
		s.logger.Warn("failed to send customer copy",
			"reference", email.Reference, "to", email.To, "error", err)
		s.metrics.Delivery(channelEmail, metrics.OutcomeSecondaryError)
		s.events.Publish(EventCustomerCopyFailed, channelEmail, map[string]string{
			"reference": email.Reference,
			"error":     err.Error(),
		})
		return
	}
	s.logger.Info("customer copy sent", "reference", email.Reference, "to", email.To)
	s.events.Publish(EventCustomerCopySent, channelEmail, map[string]string{"reference": email.Reference})
}

func (s *checkoutServiceImpl) validate(bill *billing.CheckoutBill) error {
	bill.Normalize()
	errs := billing.Validate(bill)
	if len(errs) == 0 {
		return nil
	}
	if billing.Has(errs, "customerName", "required") || billing.Has(errs, "totalAmount", "required") {
		return &ValidationError{Message: msgCheckoutRequired}
	}
	return &ValidationError{Field: errs[0].Field, Message: errs[0].Message()}
}

func (s *checkoutServiceImpl) attachments(bill *billing.CheckoutBill) ([]notification.Attachment, error) {
	if !bill.HasAttachment() {
		return nil, nil
	}
	data, err := billing.DecodePDF(bill.PDF)
	if err != nil {
		return nil, &ValidationError{Field: "pdf", Message: msgInvalidPDF}
	}
	return []notification.Attachment{{
		FileName:    bill.PDFFileName,
		ContentType: "application/pdf",
		Data:        data,
	}}, nil
}
