package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one billed service or product.
type LineItem struct {
	Name     string `json:"name"`
	Quantity Amount `json:"quantity" validate:"omitempty,gte=0,lte=1e15"`
	Price    Amount `json:"price" validate:"omitempty,gte=0,lte=1e15"`
}

// Qty returns the item quantity as a whole number, defaulting to 1 when the
// quantity is missing or below one. Validated quantities never exceed
// MaxAmount, so the integer part always fits in an int64.
func (i LineItem) Qty() int64 {
	q := i.Quantity.IntPart()
	if q < 1 {
		return 1
	}
	return q
}

// UnitPrice returns the item price, zero when absent.
func (i LineItem) UnitPrice() decimal.Decimal {
	return i.Price.Decimal
}

// LineTotal returns price x quantity.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(i.Qty()))
}

// CheckoutBill is the payload of the checkout email endpoint.
type CheckoutBill struct {
	CustomerName  string     `json:"customerName" validate:"required"`
	CustomerEmail string     `json:"customerEmail"`
	CustomerPhone string     `json:"customerPhone"`
	Items         []LineItem `json:"items" validate:"dive"`
	Subtotal      Amount     `json:"subtotal" validate:"omitempty,gte=0,lte=1e15"`
	Tax           Amount     `json:"tax" validate:"omitempty,gte=0,lte=1e15"`
	Discount      Amount     `json:"discount" validate:"omitempty,gte=0,lte=1e15"`
	TotalAmount   Amount     `json:"totalAmount" validate:"required,gte=0,lte=1e15"`
	PaidAmount    Amount     `json:"paidAmount" validate:"omitempty,gte=0,lte=1e15"`
	PaymentMethod string     `json:"paymentMethod"`
	CheckoutDate  string     `json:"checkoutDate"`
	Notes         string     `json:"notes"`

	// PDF is an optional base64 receipt produced by the checkout UI. It is
	// attached to the email only when PDFFileName is also present.
	PDF         string `json:"pdf"`
	PDFFileName string `json:"pdfFileName"`
}

// Outstanding returns totalAmount - paidAmount and whether it is positive.
func (b *CheckoutBill) Outstanding() (decimal.Decimal, bool) {
	return Balance(b.TotalAmount.Decimal, b.PaidAmount.Decimal)
}

// HasAttachment reports whether the bill carries a PDF to attach.
func (b *CheckoutBill) HasAttachment() bool {
	return strings.TrimSpace(b.PDF) != "" && strings.TrimSpace(b.PDFFileName) != ""
}

// WhatsAppBillRequest is the payload of the WhatsApp bill endpoint.
type WhatsAppBillRequest struct {
	PhoneNumber    string     `json:"phoneNumber" validate:"required"`
	CustomerName   string     `json:"customerName"`
	InvoiceID      string     `json:"invoiceId"`
	TotalAmount    Amount     `json:"totalAmount" validate:"omitempty,gte=0,lte=1e15"`
	Items          []LineItem `json:"items" validate:"dive"`
	Subtotal       Amount     `json:"subtotal" validate:"omitempty,gte=0,lte=1e15"`
	DiscountAmount Amount     `json:"discountAmount" validate:"omitempty,gte=0,lte=1e15"`
	PaidAmount     Amount     `json:"paidAmount" validate:"omitempty,gte=0,lte=1e15"`
	PaymentMode    string     `json:"paymentMode"`
	PDF            string     `json:"pdf"`
	PDFFileName    string     `json:"pdfFileName"`
	Message        string     `json:"message"`
}

// HasPDF reports whether both the PDF payload and its file name are present.
func (r *WhatsAppBillRequest) HasPDF() bool {
	return r.PDF != "" && r.PDFFileName != ""
}

// HasMessage reports whether a free-form message was supplied.
func (r *WhatsAppBillRequest) HasMessage() bool {
	return r.Message != ""
}

// Balance returns max(0, total - paid) and whether anything is still due.
func Balance(total, paid decimal.Decimal) (decimal.Decimal, bool) {
	due := total.Sub(paid)
	if due.IsPositive() {
		return due, true
	}
	return decimal.Zero, false
}

// ItemsTotal sums the line totals of items.
func ItemsTotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
