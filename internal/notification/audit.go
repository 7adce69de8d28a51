package notification

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/shaharia-lab/salon-notify/internal/eventbus"
)

// AuditHandler records every delivery event as one structured log line so
// that sent and failed notifications can be traced by reference or invoice.
type AuditHandler struct {
	logger *slog.Logger
}

// NewAuditHandler creates a new AuditHandler writing to logger.
func NewAuditHandler(logger *slog.Logger) *AuditHandler {
	return &AuditHandler{logger: logger}
}

// describeEvent returns a readable summary for well-known event types.
// Unknown types fall back to the raw event type string.
func describeEvent(eventType string) string {
	switch eventType {
	case "checkout_notifier.email.sent":
		return "Checkout receipt delivered to admin"
	case "checkout_notifier.email.failed":
		return "Checkout receipt delivery failed"
	case "checkout_notifier.customer_copy.sent":
		return "Customer receipt copy delivered"
	case "checkout_notifier.customer_copy.failed":
		return "Customer receipt copy failed"
	case "whatsapp_notifier.message.sent":
		return "WhatsApp message delivered"
	case "whatsapp_notifier.message.failed":
		return "WhatsApp message failed"
	}
	return eventType
}

// Handle implements eventbus.Listener.
func (h *AuditHandler) Handle(e eventbus.Event) {
	attrs := []any{
		slog.String("event", e.Type),
		slog.String("channel", e.Channel),
		slog.Time("occurred_at", e.Timestamp),
	}

	keys := make([]string, 0, len(e.Payload))
	for k := range e.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.String(k, e.Payload[k]))
	}

	if strings.HasSuffix(e.Type, ".failed") {
		h.logger.Warn(describeEvent(e.Type), attrs...)
		return
	}
	h.logger.Info(describeEvent(e.Type), attrs...)
}
