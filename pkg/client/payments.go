package client

import (
	"context"

	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
)

// Payments manages payments.
// Mollie docs: https://www.mollie.com/nl/docs/reference/payments/create
type Payments struct {
	resource
}

// Get returns the payment referenced by ref, or the scoped payment when ref is nil.
func (r *Payments) Get(ctx context.Context, ref any) (*model.Payment, error) {
	if r.err != nil {
		return nil, r.err
	}
	id, err := model.ResolveID[*model.Payment](ref, r.scope.PaymentID)
	if err != nil {
		return nil, err
	}
	return getRecord[model.Payment](ctx, r.resource, path("payments", id), nil)
}

// All returns every payment of the website profile.
func (r *Payments) All(ctx context.Context) ([]*model.Payment, error) {
	if r.err != nil {
		return nil, r.err
	}
	return listRecords[model.Payment](ctx, r.resource, "payments")
}

// Create creates a payment. Redirect the consumer to Payment.PaymentURL to complete it.
func (r *Payments) Create(ctx context.Context, req api.CreatePaymentRequest) (*model.Payment, error) {
	if r.err != nil {
		return nil, r.err
	}
	return postRecord[model.Payment](ctx, r.resource, "payments", req, req.Params(r.locale))
}

// Refunds returns the refunds resource of the scoped payment.
func (r *Payments) Refunds() *PaymentRefunds {
	return &PaymentRefunds{resource: r.resource}
}

// PaymentRefunds manages the refunds of a payment.
// Mollie docs: https://www.mollie.com/nl/docs/reference/refunds/create
type PaymentRefunds struct {
	resource
}

func (r *PaymentRefunds) paymentID() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if len(r.scope.PaymentID) == 0 {
		return "", errNoPayment("payment refunds")
	}
	return r.scope.PaymentID, nil
}

// Get returns the refund referenced by ref.
func (r *PaymentRefunds) Get(ctx context.Context, ref any) (*model.Refund, error) {
	paymentID, err := r.paymentID()
	if err != nil {
		return nil, err
	}
	id, err := model.ResolveID[*model.Refund](ref, "")
	if err != nil {
		return nil, err
	}
	return getRecord[model.Refund](ctx, r.resource, path("payments", paymentID, "refunds", id), nil)
}

// All returns every refund of the payment.
func (r *PaymentRefunds) All(ctx context.Context) ([]*model.Refund, error) {
	paymentID, err := r.paymentID()
	if err != nil {
		return nil, err
	}
	return listRecords[model.Refund](ctx, r.resource, path("payments", paymentID, "refunds"))
}

// Create refunds the payment, either partially or fully when req.Amount is nil.
func (r *PaymentRefunds) Create(ctx context.Context, req api.CreateRefundRequest) (*model.Refund, error) {
	paymentID, err := r.paymentID()
	if err != nil {
		return nil, err
	}
	return postRecord[model.Refund](ctx, r.resource, path("payments", paymentID, "refunds"), req, req.Params())
}

// Cancel cancels the refund referenced by ref. Only pending refunds can be cancelled.
func (r *PaymentRefunds) Cancel(ctx context.Context, ref any) error {
	paymentID, err := r.paymentID()
	if err != nil {
		return err
	}
	id, err := model.ResolveID[*model.Refund](ref, "")
	if err != nil {
		return err
	}
	_, err = r.requester.Delete(ctx, path("payments", paymentID, "refunds", id))
	return err
}

// Refunds lists the refunds of every payment.
// Mollie docs: https://www.mollie.com/nl/docs/reference/refunds/list-all
type Refunds struct {
	resource
}

// All returns every refund of the website profile.
func (r *Refunds) All(ctx context.Context) ([]*model.Refund, error) {
	if r.err != nil {
		return nil, r.err
	}
	return listRecords[model.Refund](ctx, r.resource, "refunds")
}
