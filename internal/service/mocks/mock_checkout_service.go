package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shaharia-lab/salon-notify/internal/billing"
	"github.com/shaharia-lab/salon-notify/internal/service"
)

// MockCheckoutService is a mock implementation of service.CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

//nolint:revive
func (m *MockCheckoutService) SendCheckoutEmail(ctx context.Context, bill *billing.CheckoutBill) (*service.CheckoutResult, error) {
	args := m.Called(ctx, bill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckoutResult), args.Error(1)
}
