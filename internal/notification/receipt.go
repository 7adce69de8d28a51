package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/shaharia-lab/salon-notify/internal/billing"
)

// ReceiptLine is one row of the rendered line-item table.
type ReceiptLine struct {
	Description string
	Quantity    int64
	UnitPrice   string
	LineTotal   string
}

// ReceiptView is the validated, pre-formatted data the checkout email
// templates are rendered from.
type ReceiptView struct {
	Business      BusinessProfile
	CustomerName  string
	CustomerPhone string
	Date          string
	PaymentMethod string
	Notes         string

	Items []ReceiptLine

	Subtotal string
	Discount string
	Tax      string
	Total    string
	Paid     string
	Balance  string

	ShowDiscount bool
	ShowTax      bool
	// HasBalance selects the outstanding-balance line; otherwise the
	// paid-in-full indicator is shown.
	HasBalance bool

	// BillAmount is the total with two decimals and no currency glyph.
	BillAmount string
}

// NewReceiptView formats bill for rendering. When the bill carries no
// subtotal the sum of its line totals is used.
func NewReceiptView(bill *billing.CheckoutBill, profile BusinessProfile, now time.Time) ReceiptView {
	cur := profile.Currency

	lines := make([]ReceiptLine, 0, len(bill.Items))
	for _, it := range bill.Items {
		lines = append(lines, ReceiptLine{
			Description: orDefault(it.Name, "Service"),
			Quantity:    it.Qty(),
			UnitPrice:   FormatMoney(cur, it.UnitPrice()),
			LineTotal:   FormatMoney(cur, it.LineTotal()),
		})
	}

	subtotal := bill.Subtotal.Decimal
	if !bill.Subtotal.Set {
		subtotal = billing.ItemsTotal(bill.Items)
	}
	balance, due := bill.Outstanding()

	return ReceiptView{
		Business:      profile,
		CustomerName:  bill.CustomerName,
		CustomerPhone: orDefault(bill.CustomerPhone, "N/A"),
		Date:          DisplayDate(bill.CheckoutDate, now),
		PaymentMethod: paymentMethodOrDefault(bill.PaymentMethod),
		Notes:         bill.Notes,
		Items:         lines,
		Subtotal:      FormatMoney(cur, subtotal),
		Discount:      FormatMoney(cur, bill.Discount.Decimal),
		Tax:           FormatMoney(cur, bill.Tax.Decimal),
		Total:         FormatMoney(cur, bill.TotalAmount.Decimal),
		Paid:          FormatMoney(cur, bill.PaidAmount.Decimal),
		Balance:       FormatMoney(cur, balance),
		ShowDiscount:  bill.Discount.IsPositive(),
		ShowTax:       bill.Tax.IsPositive(),
		HasBalance:    due,
		BillAmount:    FormatAmount(bill.TotalAmount.Decimal),
	}
}

// AdminSubject is the subject of the owner's copy of a checkout receipt.
func AdminSubject(v ReceiptView) string {
	return fmt.Sprintf("🛍️ New Checkout - %s - %s", v.CustomerName, v.Total)
}

// CustomerSubject is the subject of the customer's copy of a checkout receipt.
func CustomerSubject(v ReceiptView) string {
	return fmt.Sprintf("🧾 Your Receipt from %s - %s", v.Business.Name, v.Total)
}

// RenderReceiptText renders the plain-text fallback of the receipt.
func RenderReceiptText(v ReceiptView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New checkout at %s\n\n", v.Business.Name)
	fmt.Fprintf(&b, "Customer: %s\n", v.CustomerName)
	fmt.Fprintf(&b, "Total: %s\n", v.Total)
	fmt.Fprintf(&b, "Payment method: %s\n", v.PaymentMethod)
	if v.HasBalance {
		fmt.Fprintf(&b, "Outstanding balance: %s\n", v.Balance)
	} else {
		b.WriteString("Status: PAID IN FULL\n")
	}
	return b.String()
}
