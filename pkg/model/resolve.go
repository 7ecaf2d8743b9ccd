package model

import (
	"fmt"

	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
)

// Identifiable is implemented by the models that have a Mollie resource ID.
type Identifiable interface {
	Record

	// Identifier returns the resource ID. It returns an empty string on a nil model.
	Identifier() string
}

// ResolveID returns the resource ID referenced by ref, falling back to ambient when ref is empty.
//
// ref may be nil, an ID string or a model of type T:
//
//	id, err := model.ResolveID[*model.Customer]("cst_2", "cst_1")    // "cst_2"
//	id, err := model.ResolveID[*model.Customer](nil, "cst_1")        // "cst_1"
//	id, err := model.ResolveID[*model.Customer](customer, "cst_1")   // customer.ID
//	id, err := model.ResolveID[*model.Customer](nil, "")             // api.ErrMissingIdentifier
func ResolveID[T Identifiable](ref any, ambient string) (string, error) {
	var zero T
	kind := zero.Kind()

	switch v := ref.(type) {
	case nil:
	case T:
		if id := v.Identifier(); len(id) > 0 {
			return id, nil
		}
	case string:
		if len(v) > 0 {
			return v, nil
		}
	default:
		return "", fmt.Errorf("%w: %s argument must either be a %s model or an ID string, got %T", api.ErrTypeMismatch, kind, kind, ref)
	}

	if len(ambient) > 0 {
		return ambient, nil
	}
	return "", fmt.Errorf("%w: no %s ID was given", api.ErrMissingIdentifier, kind)
}
