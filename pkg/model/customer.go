package model

import "time"

// Customer is a Mollie customer.
// Mollie docs: https://www.mollie.com/nl/docs/reference/customers/get
type Customer struct {
	base

	// Resource is always "customer".
	Resource string

	// ID is the customer ID.
	//	Example: cst_8wmqcHMN4U
	ID string

	// Mode is either "live" or "test".
	Mode string

	Name  string
	Email string

	// Locale is used to render the payment screens shown to the customer.
	Locale string

	// Metadata is the value stored along with the customer, already decoded.
	Metadata any

	// RecentlyUsedMethods contains the payment methods used by the customer, most recent first.
	RecentlyUsedMethods []string

	CreatedDatetime time.Time
}

// Kind returns the name of the customer model.
func (c *Customer) Kind() string {
	return "customer"
}

// Identifier returns the customer ID.
func (c *Customer) Identifier() string {
	if c == nil {
		return ""
	}
	return c.ID
}

func (c *Customer) assign(field string, value any) (err error) {
	switch field {
	case "resource":
		c.Resource, err = toString(value)
	case "id":
		c.ID, err = toString(value)
	case "mode":
		c.Mode, err = toString(value)
	case "name":
		c.Name, err = toString(value)
	case "email":
		c.Email, err = toString(value)
	case "locale":
		c.Locale, err = toString(value)
	case "metadata":
		c.Metadata = value
	case "recentlyUsedMethods":
		c.RecentlyUsedMethods, err = toStrings(value)
	case "createdDatetime":
		c.CreatedDatetime, err = toTime(value)
	default:
		return errUndeclared
	}
	return err
}
