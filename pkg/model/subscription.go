package model

import "time"

// SubscriptionStatus is the status of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusSuspended SubscriptionStatus = "suspended"
	SubscriptionStatusCompleted SubscriptionStatus = "completed"
)

// Subscription charges a customer a fixed amount on a regular interval.
// Mollie docs: https://www.mollie.com/nl/docs/reference/subscriptions/get
type Subscription struct {
	base

	Resource string

	// ID is the subscription ID.
	//	Example: sub_rVKGtNd6s3
	ID string

	CustomerID string
	Mode       string
	Status     SubscriptionStatus

	Amount float64

	// Times is the total number of charges, nil for ongoing subscriptions.
	Times *int

	// Interval is the time between charges.
	//	Example: 1 month
	Interval string

	Description string

	// Method is the payment method used for charges, empty when any valid mandate is used.
	Method string

	StartDate         time.Time
	CreatedDatetime   time.Time
	CancelledDatetime time.Time

	// Links contains the webhookUrl of the subscription.
	Links map[string]any
}

// Kind returns the name of the subscription model.
func (s *Subscription) Kind() string {
	return "subscription"
}

// Identifier returns the subscription ID.
func (s *Subscription) Identifier() string {
	if s == nil {
		return ""
	}
	return s.ID
}

func (s *Subscription) IsPending() bool   { return s.Status == SubscriptionStatusPending }
func (s *Subscription) IsActive() bool    { return s.Status == SubscriptionStatusActive }
func (s *Subscription) IsCancelled() bool { return s.Status == SubscriptionStatusCancelled }
func (s *Subscription) IsSuspended() bool { return s.Status == SubscriptionStatusSuspended }
func (s *Subscription) IsCompleted() bool { return s.Status == SubscriptionStatusCompleted }

func (s *Subscription) assign(field string, value any) (err error) {
	switch field {
	case "resource":
		s.Resource, err = toString(value)
	case "id":
		s.ID, err = toString(value)
	case "customerId":
		s.CustomerID, err = toString(value)
	case "mode":
		s.Mode, err = toString(value)
	case "status":
		var status string
		status, err = toString(value)
		s.Status = SubscriptionStatus(status)
	case "amount":
		s.Amount, err = toOptionalFloat(value)
	case "times":
		s.Times, err = toInt(value)
	case "interval":
		s.Interval, err = toString(value)
	case "description":
		s.Description, err = toString(value)
	case "method":
		s.Method, err = toString(value)
	case "startDate":
		s.StartDate, err = toTime(value)
	case "createdDatetime":
		s.CreatedDatetime, err = toTime(value)
	case "cancelledDatetime":
		s.CancelledDatetime, err = toTime(value)
	case "links":
		s.Links, err = toObject(value)
	default:
		return errUndeclared
	}
	return err
}
