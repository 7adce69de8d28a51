package billing

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one field rejected during validation.
type FieldError struct {
	// Field is the JSON path of the field, e.g. "items[0].price".
	Field string
	// Rule is the failed validation tag ("required", "gte", ...).
	Rule string
}

// Message returns a human-readable description of the problem.
func (e FieldError) Message() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "gte":
		return fmt.Sprintf("%s must not be negative", e.Field)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		// Unset amounts validate as absent; set ones as their float value so
		// numeric rules apply. Out-of-range amounts surface as +Inf and fail lte.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			a, ok := field.Interface().(Amount)
			if !ok || !a.Set {
				return nil
			}
			if a.outOfRange {
				return math.Inf(1)
			}
			f, _ := a.Float64()
			return f
		}, Amount{})
		validate = v
	})
	return validate
}

// Validate checks v against its struct tags in a single pass and returns
// every rejected field. A nil slice means v is valid.
func Validate(v any) []FieldError {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Rule: "invalid"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe.Namespace()), Rule: fe.Tag()})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// Has reports whether errs contains a failure of rule on field.
func Has(errs []FieldError, field, rule string) bool {
	for _, e := range errs {
		if e.Field == field && e.Rule == rule {
			return true
		}
	}
	return false
}

// Normalize trims whitespace from the free-text fields of a checkout bill so
// that a blank customer name fails validation.
func (b *CheckoutBill) Normalize() {
	b.CustomerName = strings.TrimSpace(b.CustomerName)
	b.CustomerEmail = strings.TrimSpace(b.CustomerEmail)
	b.CustomerPhone = strings.TrimSpace(b.CustomerPhone)
	b.PaymentMethod = strings.TrimSpace(b.PaymentMethod)
	b.CheckoutDate = strings.TrimSpace(b.CheckoutDate)
	b.Notes = strings.TrimSpace(b.Notes)
}

// Normalize trims whitespace from the identifying fields of the request.
func (r *WhatsAppBillRequest) Normalize() {
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.InvoiceID = strings.TrimSpace(r.InvoiceID)
	r.PaymentMode = strings.TrimSpace(r.PaymentMode)
	r.PDF = strings.TrimSpace(r.PDF)
	r.PDFFileName = strings.TrimSpace(r.PDFFileName)
}
