package model

import "time"

// MandateStatus is the status of a mandate.
type MandateStatus string

const (
	MandateStatusValid   MandateStatus = "valid"
	MandateStatusInvalid MandateStatus = "invalid"
	MandateStatusPending MandateStatus = "pending"
)

// Mandate allows recurring payments to be charged on a customer's account.
// Mollie docs: https://www.mollie.com/nl/docs/reference/mandates/get
type Mandate struct {
	base

	// Resource is always "mandate".
	Resource string

	// ID is the mandate ID.
	//	Example: mdt_pWUnw6pkBN
	ID string

	Status MandateStatus

	// Method is either directdebit or creditcard.
	Method string

	CustomerID string

	// Details contains the consumer account, or the card holder and card number for credit cards.
	Details map[string]any

	MandateReference string
	SignatureDate    time.Time
	CreatedDatetime  time.Time
}

// Kind returns the name of the mandate model.
func (m *Mandate) Kind() string {
	return "mandate"
}

// Identifier returns the mandate ID.
func (m *Mandate) Identifier() string {
	if m == nil {
		return ""
	}
	return m.ID
}

// IsValid returns true if payments can be charged on the mandate.
func (m *Mandate) IsValid() bool {
	return m.Status == MandateStatusValid
}

func (m *Mandate) IsInvalid() bool { return m.Status == MandateStatusInvalid }
func (m *Mandate) IsPending() bool { return m.Status == MandateStatusPending }

func (m *Mandate) assign(field string, value any) (err error) {
	switch field {
	case "resource":
		m.Resource, err = toString(value)
	case "id":
		m.ID, err = toString(value)
	case "status":
		var s string
		s, err = toString(value)
		m.Status = MandateStatus(s)
	case "method":
		m.Method, err = toString(value)
	case "customerId":
		m.CustomerID, err = toString(value)
	case "details":
		m.Details, err = toObject(value)
	case "mandateReference":
		m.MandateReference, err = toString(value)
	case "signatureDate":
		m.SignatureDate, err = toTime(value)
	case "createdDatetime":
		m.CreatedDatetime, err = toTime(value)
	default:
		return errUndeclared
	}
	return err
}
