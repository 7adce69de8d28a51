package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shaharia-lab/salon-notify/internal/billing"
	"github.com/shaharia-lab/salon-notify/internal/service"
)

// MockWhatsAppService is a mock implementation of service.WhatsAppService.
type MockWhatsAppService struct {
	mock.Mock
}

//nolint:revive
func (m *MockWhatsAppService) SendBill(ctx context.Context, req *billing.WhatsAppBillRequest) (*service.WhatsAppResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WhatsAppResult), args.Error(1)
}
