package model

import (
	"fmt"
	"time"
)

// RefundStatus is the status of a refund.
type RefundStatus string

const (
	RefundStatusPending    RefundStatus = "pending"
	RefundStatusProcessing RefundStatus = "processing"
	RefundStatusRefunded   RefundStatus = "refunded"
)

// Refund is a refund of a Mollie payment.
// Mollie docs: https://www.mollie.com/nl/docs/reference/refunds/get
type Refund struct {
	base

	// Resource is always "refund".
	Resource string

	// ID is the refund ID.
	//	Example: re_4qqhO89gsT
	ID string

	// Payment is the refunded payment. The API may return either the full payment or its ID only.
	Payment *Payment

	Amount      float64
	Description string
	Status      RefundStatus

	RefundedDatetime time.Time
}

// Kind returns the name of the refund model.
func (r *Refund) Kind() string {
	return "refund"
}

// Identifier returns the refund ID.
func (r *Refund) Identifier() string {
	if r == nil {
		return ""
	}
	return r.ID
}

func (r *Refund) IsPending() bool    { return r.Status == RefundStatusPending }
func (r *Refund) IsProcessing() bool { return r.Status == RefundStatusProcessing }
func (r *Refund) IsRefunded() bool   { return r.Status == RefundStatusRefunded }

func (r *Refund) assign(field string, value any) (err error) {
	switch field {
	case "resource":
		r.Resource, err = toString(value)
	case "id":
		r.ID, err = toString(value)
	case "payment":
		r.Payment, err = toPayment(value)
	case "amount":
		r.Amount, err = toOptionalFloat(value)
	case "description":
		r.Description, err = toString(value)
	case "status":
		var s string
		s, err = toString(value)
		r.Status = RefundStatus(s)
	case "refundedDatetime":
		r.RefundedDatetime, err = toTime(value)
	default:
		return errUndeclared
	}
	return err
}

// toPayment hydrates a nested payment. Errors raised by the payment model are returned as is.
func toPayment(value any) (*Payment, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return &Payment{ID: v}, nil
	case map[string]any, RawRecord:
		return Hydrate[Payment](v)
	}
	return nil, fmt.Errorf("expected a payment object or ID, got %T", value)
}
