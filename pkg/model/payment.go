package model

import (
	"time"

	"github.com/sosodev/duration"
)

// PaymentStatus is the status of a payment.
type PaymentStatus string

const (
	PaymentStatusOpen        PaymentStatus = "open"
	PaymentStatusCancelled   PaymentStatus = "cancelled"
	PaymentStatusExpired     PaymentStatus = "expired"
	PaymentStatusFailed      PaymentStatus = "failed"
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusPaid        PaymentStatus = "paid"
	PaymentStatusPaidOut     PaymentStatus = "paidout"
	PaymentStatusRefunded    PaymentStatus = "refunded"
	PaymentStatusChargedBack PaymentStatus = "charged_back"
)

// Payment is a Mollie payment.
// Mollie docs: https://www.mollie.com/nl/docs/reference/payments/get
type Payment struct {
	base

	// Resource is always "payment".
	Resource string

	// ID is the payment ID.
	//	Example: tr_7UhSN1zuXS
	ID string

	// Mode is either "live" or "test".
	Mode string

	Status PaymentStatus

	CreatedDatetime   time.Time
	PaidDatetime      time.Time
	CancelledDatetime time.Time
	ExpiredDatetime   time.Time
	FailedDatetime    time.Time

	// ExpiryPeriod is the time the payment remains open since its creation.
	ExpiryPeriod *duration.Duration

	Amount          float64
	AmountRefunded  float64
	AmountRemaining float64

	Description string
	Method      string

	// Metadata is the value stored along with the payment, already decoded.
	Metadata any

	// Details contains method specific information, such as the consumer bank account.
	Details map[string]any

	Locale      string
	CountryCode string

	ProfileID    string
	SettlementID string

	CustomerID     string
	MandateID      string
	SubscriptionID string
	RecurringType  string

	// Links contains paymentUrl, webhookUrl, redirectUrl and related resource URLs.
	Links map[string]any
}

// Kind returns the name of the payment model.
func (p *Payment) Kind() string {
	return "payment"
}

// Identifier returns the payment ID.
func (p *Payment) Identifier() string {
	if p == nil {
		return ""
	}
	return p.ID
}

// PaymentURL returns the URL the consumer should be redirected to in order to pay.
// It returns an empty string once the payment is no longer open.
func (p *Payment) PaymentURL() string {
	u, _ := p.Links["paymentUrl"].(string)
	return u
}

func (p *Payment) IsOpen() bool        { return p.Status == PaymentStatusOpen }
func (p *Payment) IsCancelled() bool   { return p.Status == PaymentStatusCancelled }
func (p *Payment) HasExpired() bool    { return p.Status == PaymentStatusExpired }
func (p *Payment) HasFailed() bool     { return p.Status == PaymentStatusFailed }
func (p *Payment) IsPending() bool     { return p.Status == PaymentStatusPending }
func (p *Payment) IsPaidOut() bool     { return p.Status == PaymentStatusPaidOut }
func (p *Payment) IsRefunded() bool    { return p.Status == PaymentStatusRefunded }
func (p *Payment) IsChargedBack() bool { return p.Status == PaymentStatusChargedBack }

// IsPaid returns true if the payment has been paid, regardless of later refunds or charge backs.
func (p *Payment) IsPaid() bool {
	return !p.PaidDatetime.IsZero()
}

func (p *Payment) assign(field string, value any) (err error) {
	switch field {
	case "resource":
		p.Resource, err = toString(value)
	case "id":
		p.ID, err = toString(value)
	case "mode":
		p.Mode, err = toString(value)
	case "status":
		var s string
		s, err = toString(value)
		p.Status = PaymentStatus(s)
	case "createdDatetime":
		p.CreatedDatetime, err = toTime(value)
	case "paidDatetime":
		p.PaidDatetime, err = toTime(value)
	case "cancelledDatetime":
		p.CancelledDatetime, err = toTime(value)
	case "expiredDatetime":
		p.ExpiredDatetime, err = toTime(value)
	case "failedDatetime":
		p.FailedDatetime, err = toTime(value)
	case "expiryPeriod":
		p.ExpiryPeriod, err = toPeriod(value)
	case "amount":
		p.Amount, err = toOptionalFloat(value)
	case "amountRefunded":
		p.AmountRefunded, err = toOptionalFloat(value)
	case "amountRemaining":
		p.AmountRemaining, err = toOptionalFloat(value)
	case "description":
		p.Description, err = toString(value)
	case "method":
		p.Method, err = toString(value)
	case "metadata":
		p.Metadata = value
	case "details":
		p.Details, err = toObject(value)
	case "locale":
		p.Locale, err = toString(value)
	case "countryCode":
		p.CountryCode, err = toString(value)
	case "profileId":
		p.ProfileID, err = toString(value)
	case "settlementId":
		p.SettlementID, err = toString(value)
	case "customerId":
		p.CustomerID, err = toString(value)
	case "mandateId":
		p.MandateID, err = toString(value)
	case "subscriptionId":
		p.SubscriptionID, err = toString(value)
	case "recurringType":
		p.RecurringType, err = toString(value)
	case "links":
		p.Links, err = toObject(value)
	default:
		return errUndeclared
	}
	return err
}
