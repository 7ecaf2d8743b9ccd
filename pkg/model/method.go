package model

import (
	"fmt"
	"html"
)

// MethodAmount is the range of amounts a payment method accepts.
type MethodAmount struct {
	Minimum float64
	Maximum float64
}

// MethodImage contains the URLs of the payment method icons.
type MethodImage struct {
	Normal string
	Bigger string
}

// Method is a payment method enabled on the website profile.
// Mollie docs: https://www.mollie.com/nl/docs/reference/methods/get
type Method struct {
	base

	Resource string

	// ID is the payment method.
	//	Example: ideal
	ID string

	// Description is the display name of the method, in the locale of the request.
	Description string

	Amount MethodAmount
	Images MethodImage
}

// Kind returns the name of the method model.
func (m *Method) Kind() string {
	return "method"
}

// Identifier returns the method ID.
func (m *Method) Identifier() string {
	if m == nil {
		return ""
	}
	return m.ID
}

// MinimumAmount returns the minimum payment amount in EURO.
func (m *Method) MinimumAmount() float64 {
	return m.Amount.Minimum
}

// MaximumAmount returns the maximum payment amount in EURO.
func (m *Method) MaximumAmount() float64 {
	return m.Amount.Maximum
}

// Image returns an HTML img tag of the method icon in the given size, either "normal" or "bigger".
// It returns an empty string when the icon is not available.
func (m *Method) Image(size string) string {
	var src string
	switch size {
	case "normal":
		src = m.Images.Normal
	case "bigger":
		src = m.Images.Bigger
	}
	if len(src) == 0 {
		return ""
	}
	return fmt.Sprintf(`<img src="%s" alt="%s">`, html.EscapeString(src), html.EscapeString(m.Description))
}

func (m *Method) assign(field string, value any) (err error) {
	switch field {
	case "resource":
		m.Resource, err = toString(value)
	case "id":
		m.ID, err = toString(value)
	case "description":
		m.Description, err = toString(value)
	case "amount":
		m.Amount, err = toMethodAmount(value)
	case "image":
		m.Images, err = toMethodImage(value)
	default:
		return errUndeclared
	}
	return err
}

func toMethodAmount(value any) (MethodAmount, error) {
	obj, err := toObject(value)
	if err != nil {
		return MethodAmount{}, err
	}
	var amount MethodAmount
	for k, v := range obj {
		f, err := toOptionalFloat(v)
		if err != nil {
			return MethodAmount{}, err
		}
		switch k {
		case "minimum":
			amount.Minimum = f
		case "maximum":
			amount.Maximum = f
		default:
			return MethodAmount{}, fmt.Errorf("unexpected amount member %q", k)
		}
	}
	return amount, nil
}

func toMethodImage(value any) (MethodImage, error) {
	obj, err := toObject(value)
	if err != nil {
		return MethodImage{}, err
	}
	var image MethodImage
	for k, v := range obj {
		s, err := toString(v)
		if err != nil {
			return MethodImage{}, err
		}
		switch k {
		case "normal":
			image.Normal = s
		case "bigger":
			image.Bigger = s
		default:
			return MethodImage{}, fmt.Errorf("unexpected image member %q", k)
		}
	}
	return image, nil
}
