package service

// Delivery lifecycle events published by the notifiers.
const (
	EventCheckoutEmailSent    = "checkout_notifier.email.sent"
	EventCheckoutEmailFailed  = "checkout_notifier.email.failed"
	EventCustomerCopySent     = "checkout_notifier.customer_copy.sent"
	EventCustomerCopyFailed   = "checkout_notifier.customer_copy.failed"
	EventWhatsAppMessageSent  = "whatsapp_notifier.message.sent"
	EventWhatsAppMessageError = "whatsapp_notifier.message.failed"
)

// EventPublisher is the interface for publishing delivery events.
// Services use this interface to emit events without depending on a concrete
// event bus implementation.
type EventPublisher interface {
	Publish(eventType, channel string, payload map[string]string)
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, string, map[string]string) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}
