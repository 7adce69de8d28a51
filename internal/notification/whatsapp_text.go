package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/shaharia-lab/salon-notify/internal/billing"
)

const (
	border  = "━━━━━━━━━━━━━━━━━━━━"
	divider = "────────────────────"
)

// RenderWhatsAppBill renders the structured bill summary sent over WhatsApp.
// Monetary values always carry two decimals. The discount line appears only
// for a positive discount, and exactly one of the balance-due and paid-in-full
// lines is written.
func RenderWhatsAppBill(req *billing.WhatsAppBillRequest, profile BusinessProfile, now time.Time) string {
	cur := profile.Currency
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line(border)
	line("✨ *%s* ✨", strings.ToUpper(profile.Name))
	line(border)
	line("")
	line("👤 *Customer:* %s", orDefault(req.CustomerName, defaultCustomerName))
	line("📅 *Date:* %s", now.Format(dateLayout))
	line("🧾 *Invoice:* %s", orDefault(req.InvoiceID, defaultInvoiceID))
	line("")
	line(divider)
	line("*Services*")
	for _, it := range req.Items {
		line("• %s x%d", orDefault(it.Name, "Service"), it.Qty())
		line("   %s", FormatMoney(cur, it.LineTotal()))
	}
	line(divider)

	subtotal := req.Subtotal.Decimal
	if !req.Subtotal.Set {
		subtotal = billing.ItemsTotal(req.Items)
	}
	line("Subtotal: %s", FormatMoney(cur, subtotal))
	if req.DiscountAmount.IsPositive() {
		line("🎁 Discount: -%s", FormatMoney(cur, req.DiscountAmount.Decimal))
	}
	line("*💰 Total: %s*", FormatMoney(cur, req.TotalAmount.Decimal))
	line("Paid: %s", FormatMoney(cur, req.PaidAmount.Decimal))
	if balance, due := billing.Balance(req.TotalAmount.Decimal, req.PaidAmount.Decimal); due {
		line("⚠️ *Balance Due: %s*", FormatMoney(cur, balance))
	} else {
		line("✅ *PAID IN FULL*")
	}
	line("💳 Payment: %s", PaymentLabel(req.PaymentMode))
	line("")
	line(border)
	line("Thank you for visiting %s! 💖", profile.Name)
	line("📍 %s", profile.Address)
	line("📞 %s", profile.Phone)
	line("🕐 %s", profile.Hours)
	b.WriteString(border)

	return b.String()
}
