package client

import (
	"context"

	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
)

// Customers manages Mollie customers.
// Mollie docs: https://www.mollie.com/nl/docs/reference/customers/create
type Customers struct {
	resource
}

// Get returns the customer referenced by ref, or the scoped customer when ref is nil.
func (r *Customers) Get(ctx context.Context, ref any) (*model.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	id, err := model.ResolveID[*model.Customer](ref, r.scope.CustomerID)
	if err != nil {
		return nil, err
	}
	return getRecord[model.Customer](ctx, r.resource, path("customers", id), nil)
}

// All returns every customer of the website profile.
func (r *Customers) All(ctx context.Context) ([]*model.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	return listRecords[model.Customer](ctx, r.resource, "customers")
}

// Create creates a new customer. The client locale is used when req doesn't set one.
func (r *Customers) Create(ctx context.Context, req api.CreateCustomerRequest) (*model.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	return postRecord[model.Customer](ctx, r.resource, "customers", req, req.Params(r.locale))
}

// Update changes the customer referenced by ref, or the scoped customer when ref is nil.
func (r *Customers) Update(ctx context.Context, ref any, req api.UpdateCustomerRequest) (*model.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	id, err := model.ResolveID[*model.Customer](ref, r.scope.CustomerID)
	if err != nil {
		return nil, err
	}
	return postRecord[model.Customer](ctx, r.resource, path("customers", id), req, req.Params())
}

// Payments returns the payments resource of the scoped customer.
func (r *Customers) Payments() *CustomerPayments {
	return &CustomerPayments{resource: r.resource}
}

// Mandates returns the mandates resource of the scoped customer.
func (r *Customers) Mandates() *Mandates {
	return &Mandates{resource: r.resource}
}

// Subscriptions returns the subscriptions resource of the scoped customer.
func (r *Customers) Subscriptions() *Subscriptions {
	return &Subscriptions{resource: r.resource}
}

// CustomerPayments manages the payments of a customer.
// Mollie docs: https://www.mollie.com/nl/docs/reference/customers/create-payment
type CustomerPayments struct {
	resource
}

func (r *CustomerPayments) customerID() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if len(r.scope.CustomerID) == 0 {
		return "", errNoCustomer("customer payments")
	}
	return r.scope.CustomerID, nil
}

// All returns every payment of the customer.
func (r *CustomerPayments) All(ctx context.Context) ([]*model.Payment, error) {
	id, err := r.customerID()
	if err != nil {
		return nil, err
	}
	return listRecords[model.Payment](ctx, r.resource, path("customers", id, "payments"))
}

// Create creates a payment for the customer. Set req.RecurringType to charge the customer's mandate.
func (r *CustomerPayments) Create(ctx context.Context, req api.CreatePaymentRequest) (*model.Payment, error) {
	id, err := r.customerID()
	if err != nil {
		return nil, err
	}
	return postRecord[model.Payment](ctx, r.resource, path("customers", id, "payments"), req, req.Params(r.locale))
}
