package client

import (
	"context"

	"github.com/samber/lo"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
)

// Mandates manages the mandates of a customer.
// Mollie docs: https://www.mollie.com/nl/docs/reference/mandates/create
type Mandates struct {
	resource
}

func (r *Mandates) customerID() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if len(r.scope.CustomerID) == 0 {
		return "", errNoCustomer("mandates")
	}
	return r.scope.CustomerID, nil
}

// Get returns the mandate referenced by ref.
func (r *Mandates) Get(ctx context.Context, ref any) (*model.Mandate, error) {
	customerID, err := r.customerID()
	if err != nil {
		return nil, err
	}
	id, err := model.ResolveID[*model.Mandate](ref, "")
	if err != nil {
		return nil, err
	}
	return getRecord[model.Mandate](ctx, r.resource, path("customers", customerID, "mandates", id), nil)
}

// All returns every mandate of the customer.
func (r *Mandates) All(ctx context.Context) ([]*model.Mandate, error) {
	customerID, err := r.customerID()
	if err != nil {
		return nil, err
	}
	return listRecords[model.Mandate](ctx, r.resource, path("customers", customerID, "mandates"))
}

// Create creates a direct debit mandate for the customer.
func (r *Mandates) Create(ctx context.Context, req api.CreateMandateRequest) (*model.Mandate, error) {
	customerID, err := r.customerID()
	if err != nil {
		return nil, err
	}
	return postRecord[model.Mandate](ctx, r.resource, path("customers", customerID, "mandates"), req, req.Params())
}

// Revoke revokes the mandate referenced by ref. Payments can no longer be charged on it.
func (r *Mandates) Revoke(ctx context.Context, ref any) error {
	customerID, err := r.customerID()
	if err != nil {
		return err
	}
	id, err := model.ResolveID[*model.Mandate](ref, "")
	if err != nil {
		return err
	}
	_, err = r.requester.Delete(ctx, path("customers", customerID, "mandates", id))
	return err
}

// HasValid returns true if the customer has at least one valid mandate.
func (r *Mandates) HasValid(ctx context.Context) (bool, error) {
	mandates, err := r.All(ctx)
	if err != nil {
		return false, err
	}
	return lo.ContainsBy(mandates, func(m *model.Mandate) bool {
		return m.IsValid()
	}), nil
}
