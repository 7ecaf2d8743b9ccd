package client

import (
	"context"

	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
)

// Subscriptions manages the subscriptions of a customer. Creating a subscription requires the customer to
// have a valid mandate.
// Mollie docs: https://www.mollie.com/nl/docs/reference/subscriptions/create
type Subscriptions struct {
	resource
}

func (r *Subscriptions) customerID() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if len(r.scope.CustomerID) == 0 {
		return "", errNoCustomer("subscriptions")
	}
	return r.scope.CustomerID, nil
}

// Get returns the subscription referenced by ref.
func (r *Subscriptions) Get(ctx context.Context, ref any) (*model.Subscription, error) {
	customerID, err := r.customerID()
	if err != nil {
		return nil, err
	}
	id, err := model.ResolveID[*model.Subscription](ref, "")
	if err != nil {
		return nil, err
	}
	return getRecord[model.Subscription](ctx, r.resource, path("customers", customerID, "subscriptions", id), nil)
}

// All returns every subscription of the customer.
func (r *Subscriptions) All(ctx context.Context) ([]*model.Subscription, error) {
	customerID, err := r.customerID()
	if err != nil {
		return nil, err
	}
	return listRecords[model.Subscription](ctx, r.resource, path("customers", customerID, "subscriptions"))
}

// Create creates a subscription for the customer.
func (r *Subscriptions) Create(ctx context.Context, req api.CreateSubscriptionRequest) (*model.Subscription, error) {
	customerID, err := r.customerID()
	if err != nil {
		return nil, err
	}
	return postRecord[model.Subscription](ctx, r.resource, path("customers", customerID, "subscriptions"), req, req.Params())
}

// Cancel cancels the subscription referenced by ref and returns it with its new status.
func (r *Subscriptions) Cancel(ctx context.Context, ref any) (*model.Subscription, error) {
	customerID, err := r.customerID()
	if err != nil {
		return nil, err
	}
	id, err := model.ResolveID[*model.Subscription](ref, "")
	if err != nil {
		return nil, err
	}
	raw, err := r.requester.Delete(ctx, path("customers", customerID, "subscriptions", id))
	if err != nil || raw == nil {
		return nil, err
	}
	return model.Hydrate[model.Subscription](raw)
}
