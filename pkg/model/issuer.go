package model

// Issuer is a bank, or other issuer, available for a payment method such as iDEAL.
// Mollie docs: https://www.mollie.com/nl/docs/reference/issuers/get
type Issuer struct {
	base

	Resource string

	// ID is the issuer ID, sent as the issuer parameter when creating a payment.
	//	Example: ideal_ABNANL2A
	ID string

	Name string

	// Method is the payment method the issuer belongs to.
	Method string
}

// Kind returns the name of the issuer model.
func (i *Issuer) Kind() string {
	return "issuer"
}

// Identifier returns the issuer ID.
func (i *Issuer) Identifier() string {
	if i == nil {
		return ""
	}
	return i.ID
}

func (i *Issuer) assign(field string, value any) (err error) {
	switch field {
	case "resource":
		i.Resource, err = toString(value)
	case "id":
		i.ID, err = toString(value)
	case "name":
		i.Name, err = toString(value)
	case "method":
		i.Method, err = toString(value)
	default:
		return errUndeclared
	}
	return err
}
