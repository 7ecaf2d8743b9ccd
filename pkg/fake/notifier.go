package fake

import (
	"context"

	"github.com/stretchr/testify/mock"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
)

var _ api.PaymentNotifierV1 = (*Notifier)(nil)

// Notifier is a fake implementation of api.PaymentNotifierV1.
type Notifier struct {
	mock.Mock
}

// ProcessPaymentWebhook mocks a ProcessPaymentWebhook call.
func (n *Notifier) ProcessPaymentWebhook(ctx context.Context, req api.PaymentWebhookRequest) (api.PaymentWebhookResponse, error) {
	args := n.Called(ctx, req)
	res := args.Get(0).(api.PaymentWebhookResponse)
	return res, args.Error(1)
}
