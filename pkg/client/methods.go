package client

import (
	"context"
	"net/url"

	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
)

// Methods lists the payment methods enabled on the website profile.
// Mollie docs: https://www.mollie.com/nl/docs/reference/methods/list
type Methods struct {
	resource
}

// Get returns the payment method referenced by ref, or the scoped method when ref is nil. Descriptions
// are translated to the client locale.
func (r *Methods) Get(ctx context.Context, ref any) (*model.Method, error) {
	if r.err != nil {
		return nil, r.err
	}
	id, err := model.ResolveID[*model.Method](ref, r.scope.MethodID)
	if err != nil {
		return nil, err
	}
	return getRecord[model.Method](ctx, r.resource, path("methods", id), r.params())
}

// All returns every enabled payment method.
func (r *Methods) All(ctx context.Context) ([]*model.Method, error) {
	if r.err != nil {
		return nil, r.err
	}
	p := "methods"
	if params := r.params(); params != nil {
		p += "?" + params.Encode()
	}
	return listRecords[model.Method](ctx, r.resource, p)
}

func (r *Methods) params() url.Values {
	if len(r.locale) == 0 {
		return nil
	}
	return url.Values{"locale": {r.locale}}
}

// Issuers lists the issuers available for payment methods such as iDEAL.
// Mollie docs: https://www.mollie.com/nl/docs/reference/issuers/list
type Issuers struct {
	resource
}

// Get returns the issuer referenced by ref, or the scoped issuer when ref is nil.
func (r *Issuers) Get(ctx context.Context, ref any) (*model.Issuer, error) {
	if r.err != nil {
		return nil, r.err
	}
	id, err := model.ResolveID[*model.Issuer](ref, r.scope.IssuerID)
	if err != nil {
		return nil, err
	}
	return getRecord[model.Issuer](ctx, r.resource, path("issuers", id), nil)
}

// All returns every issuer.
func (r *Issuers) All(ctx context.Context) ([]*model.Issuer, error) {
	if r.err != nil {
		return nil, r.err
	}
	return listRecords[model.Issuer](ctx, r.resource, "issuers")
}
