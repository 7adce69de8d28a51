package billing_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaharia-lab/salon-notify/internal/billing"
)

func TestValidate_CheckoutBill(t *testing.T) {
	tests := []struct {
		name     string
		bill     billing.CheckoutBill
		wantErrs []billing.FieldError
	}{
		{
			name: "valid",
			bill: billing.CheckoutBill{CustomerName: "Asha", TotalAmount: billing.NewAmount(500)},
		},
		{
			name:     "missing customer name",
			bill:     billing.CheckoutBill{TotalAmount: billing.NewAmount(500)},
			wantErrs: []billing.FieldError{{Field: "customerName", Rule: "required"}},
		},
		{
			name:     "missing total",
			bill:     billing.CheckoutBill{CustomerName: "Asha"},
			wantErrs: []billing.FieldError{{Field: "totalAmount", Rule: "required"}},
		},
		{
			name:     "zero total counts as missing",
			bill:     billing.CheckoutBill{CustomerName: "Asha", TotalAmount: billing.NewAmount(0)},
			wantErrs: []billing.FieldError{{Field: "totalAmount", Rule: "required"}},
		},
		{
			name: "negative paid amount",
			bill: billing.CheckoutBill{
				CustomerName: "Asha",
				TotalAmount:  billing.NewAmount(500),
				PaidAmount:   billing.NewAmount(-1),
			},
			wantErrs: []billing.FieldError{{Field: "paidAmount", Rule: "gte"}},
		},
		{
			name: "negative item price",
			bill: billing.CheckoutBill{
				CustomerName: "Asha",
				TotalAmount:  billing.NewAmount(500),
				Items:        []billing.LineItem{{Name: "Haircut", Price: billing.NewAmount(-5)}},
			},
			wantErrs: []billing.FieldError{{Field: "items[0].price", Rule: "gte"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErrs, billing.Validate(&tt.bill))
		})
	}
}

func TestValidate_OutOfRangeAmounts(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    billing.FieldError
	}{
		{"huge total", `{"customerName":"A","totalAmount":1e999999999}`, billing.FieldError{Field: "totalAmount", Rule: "lte"}},
		{"negative huge paid", `{"customerName":"A","totalAmount":5,"paidAmount":-1e999999999}`, billing.FieldError{Field: "paidAmount", Rule: "lte"}},
		{"above cap", `{"customerName":"A","totalAmount":5000000000000000}`, billing.FieldError{Field: "totalAmount", Rule: "lte"}},
		{"item quantity", `{"customerName":"A","totalAmount":5,"items":[{"name":"Wash","quantity":1e20}]}`, billing.FieldError{Field: "items[0].quantity", Rule: "lte"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bill billing.CheckoutBill
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &bill))
			assert.Equal(t, []billing.FieldError{tt.want}, billing.Validate(&bill))
			assert.Equal(t, tt.want.Field+" is invalid", tt.want.Message())
		})
	}
}

func TestValidate_WhatsAppBillRequest(t *testing.T) {
	errs := billing.Validate(&billing.WhatsAppBillRequest{Message: "Hello"})
	assert.True(t, billing.Has(errs, "phoneNumber", "required"))

	assert.Empty(t, billing.Validate(&billing.WhatsAppBillRequest{PhoneNumber: "whatsapp:+911234567890"}))
}

func TestFieldError_Message(t *testing.T) {
	assert.Equal(t, "customerName is required", billing.FieldError{Field: "customerName", Rule: "required"}.Message())
	assert.Equal(t, "tax must not be negative", billing.FieldError{Field: "tax", Rule: "gte"}.Message())
	assert.Equal(t, "pdf is invalid", billing.FieldError{Field: "pdf", Rule: "base64"}.Message())
}

func TestCheckoutBill_Normalize(t *testing.T) {
	bill := billing.CheckoutBill{CustomerName: "   ", TotalAmount: billing.NewAmount(10)}
	bill.Normalize()
	assert.True(t, billing.Has(billing.Validate(&bill), "customerName", "required"))
}
