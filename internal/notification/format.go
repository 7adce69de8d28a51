package notification

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultPaymentMethod = "Cash"
	defaultCustomerName  = "Valued Customer"
	defaultInvoiceID     = "N/A"
	dateLayout           = "02 Jan 2006"
)

// FormatMoney renders d with the currency glyph and exactly two decimals,
// e.g. "₹1250.00".
func FormatMoney(currency string, d decimal.Decimal) string {
	return currency + d.StringFixed(2)
}

// FormatAmount renders d with exactly two decimals and no currency glyph.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// PaymentLabel returns the upper-cased payment method, "CASH" when empty.
func PaymentLabel(method string) string {
	method = strings.TrimSpace(method)
	if method == "" {
		method = defaultPaymentMethod
	}
	return strings.ToUpper(method)
}

// paymentMethodOrDefault keeps the caller's casing for the email receipt.
func paymentMethodOrDefault(method string) string {
	if method == "" {
		return defaultPaymentMethod
	}
	return method
}

// DisplayDate returns the caller-supplied date verbatim, or now formatted as
// "02 Jan 2006" when none was given.
func DisplayDate(supplied string, now time.Time) string {
	if supplied != "" {
		return supplied
	}
	return now.Format(dateLayout)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
