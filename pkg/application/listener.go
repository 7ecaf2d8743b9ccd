package application

import (
	"context"

	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
	"go.uber.org/zap"
)

// NewLogListener returns a Listener that records every payment status change in the given logger.
// It's used when no other component consumes payments.
func NewLogListener(logger *zap.Logger) Listener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ListenerFunc(func(ctx context.Context, payment *model.Payment) error {
		logger.Info("payment status received",
			zap.String("payment_id", payment.ID),
			zap.String("status", string(payment.Status)),
			zap.Float64("amount", payment.Amount),
			zap.String("customer_id", payment.CustomerID),
			zap.Bool("paid", payment.IsPaid()),
			zap.Any("metadata", payment.Metadata),
		)
		return nil
	})
}
