package application

import (
	"context"
	"time"

	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
	"go.uber.org/zap"
)

// PaymentGetter fetches a single payment. It's implemented by *client.Payments.
type PaymentGetter interface {
	Get(ctx context.Context, ref any) (*model.Payment, error)
}

// Listener is notified with the current state of a payment every time Mollie calls the webhook.
type Listener interface {
	OnPayment(ctx context.Context, payment *model.Payment) error
}

// ListenerFunc allows using ordinary functions as a Listener.
type ListenerFunc func(ctx context.Context, payment *model.Payment) error

// OnPayment calls f(ctx, payment).
func (f ListenerFunc) OnPayment(ctx context.Context, payment *model.Payment) error {
	return f(ctx, payment)
}

// service contains the business logic to process Mollie payment webhooks.
type service struct {
	// logger is used to log relevant information when running this service.
	logger *zap.Logger

	// payments is used to fetch the payment named by a webhook call.
	payments PaymentGetter

	// listener receives the fetched payments. It may be nil.
	listener Listener

	// timeout is the maximum amount of time spent processing a single webhook call.
	timeout time.Duration
}

// ProcessPaymentWebhook fetches the payment named by the webhook call and hands it to the listener.
func (s *service) ProcessPaymentWebhook(ctx context.Context, req api.PaymentWebhookRequest) (api.PaymentWebhookResponse, error) {
	if err := req.Validate(); err != nil {
		return api.PaymentWebhookResponse{}, err
	}

	s.logger.Info("processing payment webhook", zap.String("payment_id", req.ID))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ch := make(chan api.PaymentWebhookResponse, 1)
	errs := make(chan error, 1)
	go func() {
		payment, err := s.payments.Get(ctx, req.ID)
		if err != nil {
			errs <- err
			return
		}

		if s.listener != nil {
			if err = s.listener.OnPayment(ctx, payment); err != nil {
				errs <- err
				return
			}
		}

		ch <- api.PaymentWebhookResponse{
			ID:     payment.ID,
			Status: string(payment.Status),
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Error("payment webhook timed out", zap.String("payment_id", req.ID), zap.Error(ctx.Err()))
		return api.PaymentWebhookResponse{}, ctx.Err()
	case err := <-errs:
		s.logger.Error("failed to process payment webhook", zap.String("payment_id", req.ID), zap.Error(err))
		return api.PaymentWebhookResponse{}, err
	case res := <-ch:
		s.logger.Info("payment webhook processed", zap.String("payment_id", res.ID), zap.String("status", res.Status))
		return res, nil
	}
}

// Service holds methods to process notifications sent by Mollie.
type Service interface {
	api.PaymentNotifierV1
}

// Options contains a set of components needed to configure the webhook service.
type Options struct {
	// Payments fetches the payments named by webhook calls.
	Payments PaymentGetter

	// Listener is notified with every fetched payment.
	Listener Listener

	// Logger contains a logger mechanism. If set to nil, logs are discarded.
	Logger *zap.Logger

	// Timeout is used to prevent long process runs. Defaults to 30 seconds.
	Timeout time.Duration
}

// NewWebhookService initializes a new Service implementation.
func NewWebhookService(opts Options) Service {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	return &service{
		logger:   opts.Logger,
		payments: opts.Payments,
		listener: opts.Listener,
		timeout:  opts.Timeout,
	}
}
