package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"gitlab.com/ignitionrobotics/billing/mollie/internal/conf"
	"gitlab.com/ignitionrobotics/billing/mollie/internal/metrics"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/adapter"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
	"go.uber.org/zap"
)

// Options is used to pass options to NewClient.
type Options struct {
	// Requester performs the API requests. If nil, an HTTP requester is created using APIKey and Endpoint.
	Requester adapter.Requester

	// APIKey is the live or test key of the website profile.
	APIKey string

	// Endpoint is the base URL of the Mollie API. Defaults to https://api.mollie.nl/v1.
	Endpoint string

	// Locale is the default locale sent when creating customers and payments.
	Locale string

	// Timeout is the maximum duration of a single HTTP request.
	Timeout time.Duration

	// CircuitBreaker enables a circuit breaker around HTTP requests.
	CircuitBreaker bool

	// Logger is used to trace HTTP requests. If nil, logs are discarded.
	Logger *zap.Logger

	// Metrics is updated after every HTTP request.
	Metrics *metrics.Collectors
}

// Client is the entry point of the Mollie API. It's safe for concurrent use as long as its requester is.
type Client struct {
	requester adapter.Requester
	locale    string
}

// NewClient initializes a new Client.
func NewClient(opts Options) (*Client, error) {
	requester := opts.Requester
	if requester == nil {
		cfg := conf.Mollie{
			APIKey:         opts.APIKey,
			Endpoint:       opts.Endpoint,
			Locale:         opts.Locale,
			Timeout:        opts.Timeout,
			CircuitBreaker: opts.CircuitBreaker,
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		requester = adapter.NewHTTPAdapter(cfg, adapter.WithLogger(opts.Logger), adapter.WithMetrics(opts.Metrics))
	}
	return &Client{
		requester: requester,
		locale:    opts.Locale,
	}, nil
}

// NewClientFromConfig initializes a new Client using the HTTP requester.
func NewClientFromConfig(cfg conf.Mollie, logger *zap.Logger, m *metrics.Collectors) (*Client, error) {
	return NewClient(Options{
		APIKey:         cfg.APIKey,
		Endpoint:       cfg.Endpoint,
		Locale:         cfg.Locale,
		Timeout:        cfg.Timeout,
		CircuitBreaker: cfg.CircuitBreaker,
		Logger:         logger,
		Metrics:        m,
	})
}

// Scope contains the IDs of the parent resources an operation runs under. It's set when a resource is
// created and never changes afterwards.
type Scope struct {
	CustomerID string
	PaymentID  string
	MethodID   string
	IssuerID   string
}

// resource contains the state shared by every resource.
type resource struct {
	requester adapter.Requester
	scope     Scope
	locale    string

	// err is returned by every operation when the resource couldn't be created.
	err error
}

// Scope returns the scope of the resource.
func (r resource) Scope() Scope {
	return r.scope
}

func (c *Client) resource(scope Scope, err error) resource {
	return resource{requester: c.requester, scope: scope, locale: c.locale, err: err}
}

// scopeID resolves the ID a scoped resource is created for. A missing reference leaves the scope empty.
func scopeID[T model.Identifiable](ref any) (string, error) {
	id, err := model.ResolveID[T](ref, "")
	if errors.Is(err, api.ErrMissingIdentifier) {
		return "", nil
	}
	return id, err
}

// Customers returns the customers resource.
func (c *Client) Customers() *Customers {
	return &Customers{resource: c.resource(Scope{}, nil)}
}

// Customer returns the customers resource scoped to the given customer, either a *model.Customer or an ID.
//
//	Example: client.Customer("cst_8wmqcHMN4U").Payments().All(ctx)
func (c *Client) Customer(ref any) *Customers {
	id, err := scopeID[*model.Customer](ref)
	return &Customers{resource: c.resource(Scope{CustomerID: id}, err)}
}

// Payments returns the payments resource.
func (c *Client) Payments() *Payments {
	return &Payments{resource: c.resource(Scope{}, nil)}
}

// Payment returns the payments resource scoped to the given payment, either a *model.Payment or an ID.
func (c *Client) Payment(ref any) *Payments {
	id, err := scopeID[*model.Payment](ref)
	return &Payments{resource: c.resource(Scope{PaymentID: id}, err)}
}

// Refunds returns the resource listing the refunds of every payment.
func (c *Client) Refunds() *Refunds {
	return &Refunds{resource: c.resource(Scope{}, nil)}
}

// Methods returns the payment methods resource.
func (c *Client) Methods() *Methods {
	return &Methods{resource: c.resource(Scope{}, nil)}
}

// Method returns the payment methods resource scoped to the given method.
func (c *Client) Method(ref any) *Methods {
	id, err := scopeID[*model.Method](ref)
	return &Methods{resource: c.resource(Scope{MethodID: id}, err)}
}

// Issuers returns the issuers resource.
func (c *Client) Issuers() *Issuers {
	return &Issuers{resource: c.resource(Scope{}, nil)}
}

// Issuer returns the issuers resource scoped to the given issuer.
func (c *Client) Issuer(ref any) *Issuers {
	id, err := scopeID[*model.Issuer](ref)
	return &Issuers{resource: c.resource(Scope{IssuerID: id}, err)}
}

// validator is implemented by every request type.
type validator interface {
	Validate() error
}

// getRecord fetches a single resource and hydrates it.
func getRecord[T any, P interface {
	*T
	model.Record
}](ctx context.Context, r resource, path string, params url.Values) (P, error) {
	raw, err := r.requester.Get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errEmptyResponse(path)
	}
	return model.Hydrate[T, P](raw)
}

// listRecords fetches every page of a list resource and hydrates its items.
func listRecords[T any, P interface {
	*T
	model.Record
}](ctx context.Context, r resource, path string) ([]P, error) {
	items, err := r.requester.GetAll(ctx, path)
	if err != nil {
		return nil, err
	}
	return model.HydrateAll[T, P](items)
}

// postRecord validates req, sends body and hydrates the returned resource.
func postRecord[T any, P interface {
	*T
	model.Record
}](ctx context.Context, r resource, path string, req validator, body map[string]any) (P, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	raw, err := r.requester.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errEmptyResponse(path)
	}
	return model.Hydrate[T, P](raw)
}

// path joins the given segments, escaping IDs.
//
//	Example: path("customers", "cst_8wmqcHMN4U", "mandates") -> customers/cst_8wmqcHMN4U/mandates
func path(segments ...string) string {
	var p string
	for i, s := range segments {
		if i > 0 {
			p += "/"
		}
		p += url.PathEscape(s)
	}
	return p
}

// errEmptyResponse is returned when Mollie answers a request expecting a resource without a body.
func errEmptyResponse(path string) error {
	return fmt.Errorf("%w: %s: empty response body", api.ErrInvalidFormat, path)
}

// errNoCustomer is returned by customer scoped resources created without a customer.
func errNoCustomer(name string) error {
	return fmt.Errorf("%w: the %s resource requires a customer, use Client.Customer", api.ErrMissingIdentifier, name)
}

// errNoPayment is returned by payment scoped resources created without a payment.
func errNoPayment(name string) error {
	return fmt.Errorf("%w: the %s resource requires a payment, use Client.Payment", api.ErrMissingIdentifier, name)
}
