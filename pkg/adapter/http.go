package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sony/gobreaker"
	"gitlab.com/ignitionrobotics/billing/mollie/internal/conf"
	"gitlab.com/ignitionrobotics/billing/mollie/internal/metrics"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
	"go.uber.org/zap"
)

// userAgent is sent along with every request.
const userAgent = "Mollie/Go ignitionrobotics-billing"

// httpAdapter implements Requester using the Mollie REST API.
type httpAdapter struct {
	// apiKey is sent as a bearer token.
	apiKey string

	// endpoint is the base URL of the API, without a trailing slash.
	endpoint string

	client  *http.Client
	logger  *zap.Logger
	metrics *metrics.Collectors
	cb      *gobreaker.CircuitBreaker
}

// Option configures the HTTP adapter.
type Option func(*httpAdapter)

// WithLogger sets the logger used to trace requests.
func WithLogger(logger *zap.Logger) Option {
	return func(a *httpAdapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithHTTPClient replaces the HTTP client used to perform requests.
func WithHTTPClient(client *http.Client) Option {
	return func(a *httpAdapter) {
		if client != nil {
			a.client = client
		}
	}
}

// WithMetrics sets the collectors updated after every request.
func WithMetrics(m *metrics.Collectors) Option {
	return func(a *httpAdapter) {
		a.metrics = m
	}
}

// NewHTTPAdapter initializes a new Requester using the Mollie REST API. cfg is expected to be validated
// already, see conf.Mollie.Validate.
func NewHTTPAdapter(cfg conf.Mollie, opts ...Option) Requester {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if len(endpoint) == 0 {
		endpoint = conf.DefaultEndpoint
	}

	a := &httpAdapter{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if cfg.CircuitBreaker {
		logger := a.logger
		a.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "mollie",
			MaxRequests: 1,
			Interval:    60 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			IsSuccessful: isSuccessful,
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Warn("circuit breaker state changed",
					zap.String("name", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		})
	}
	return a
}

// Get performs a GET request. Only 200 OK is accepted.
func (a *httpAdapter) Get(ctx context.Context, path string, params url.Values) (model.RawRecord, error) {
	return a.do(ctx, http.MethodGet, a.resolve(path, params), nil, http.StatusOK)
}

// GetAll fetches every page of a list resource.
func (a *httpAdapter) GetAll(ctx context.Context, path string) ([]model.RawRecord, error) {
	return Paginate(ctx, a, path)
}

// Post performs a POST request. Mollie answers 201 Created on creation and 200 OK on updates.
func (a *httpAdapter) Post(ctx context.Context, path string, body any) (model.RawRecord, error) {
	return a.do(ctx, http.MethodPost, a.resolve(path, nil), body, http.StatusOK, http.StatusCreated)
}

// Delete performs a DELETE request. A 204 No Content response returns a nil record.
func (a *httpAdapter) Delete(ctx context.Context, path string) (model.RawRecord, error) {
	return a.do(ctx, http.MethodDelete, a.resolve(path, nil), nil, http.StatusOK, http.StatusNoContent)
}

// resolve returns the absolute URL of path. Absolute URLs, such as pagination links, are kept as is.
func (a *httpAdapter) resolve(path string, params url.Values) string {
	target := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		target = a.endpoint + "/" + strings.TrimLeft(a.trimVersion(path), "/")
	}
	if len(params) == 0 {
		return target
	}
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + params.Encode()
}

// trimVersion removes the endpoint path from links that already include it.
//
//	Example: /v1/customers?offset=10 -> /customers?offset=10
func (a *httpAdapter) trimVersion(path string) string {
	u, err := url.Parse(a.endpoint)
	if err != nil || len(u.Path) == 0 || u.Path == "/" {
		return path
	}
	if strings.HasPrefix(path, u.Path+"/") || strings.HasPrefix(path, u.Path+"?") {
		return strings.TrimPrefix(path, u.Path)
	}
	return path
}

// response is a received HTTP response.
type response struct {
	status int
	body   []byte
}

// do performs the request and decodes the response body.
func (a *httpAdapter) do(ctx context.Context, method, target string, payload any, accepted ...int) (model.RawRecord, error) {
	failure := fmt.Sprintf("Mollie API %s request failed", method)

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: marshal request body failed: %s", api.ErrInvalidArgument, err.Error())
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &api.RequestError{Message: failure, URL: target, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	a.logger.Debug("sending request to Mollie API", zap.String("method", method), zap.String("url", target))

	start := time.Now()
	res, err := a.send(req, accepted)
	a.observe(method, res, time.Since(start))

	if err != nil {
		var reqErr *api.RequestError
		if !errors.As(err, &reqErr) {
			err = &api.RequestError{Message: failure, URL: target, Err: err}
		}
		a.logger.Warn("Mollie API request failed",
			zap.String("method", method),
			zap.String("url", target),
			zap.Error(err),
		)
		return nil, err
	}

	if res.status == http.StatusNoContent || len(bytes.TrimSpace(res.body)) == 0 {
		return nil, nil
	}

	var record model.RawRecord
	if err = json.Unmarshal(res.body, &record); err != nil {
		return nil, fmt.Errorf("%w: %s: unable to decode Mollie response: %s", api.ErrInvalidFormat, target, err.Error())
	}
	return record, nil
}

// send performs the request, through the circuit breaker when enabled. Unexpected status codes are
// returned as an *api.RequestError along with the response.
func (a *httpAdapter) send(req *http.Request, accepted []int) (*response, error) {
	exec := func() (any, error) {
		res, err := a.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		b, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, err
		}
		out := &response{status: res.StatusCode, body: b}
		if !lo.Contains(accepted, res.StatusCode) {
			return out, newRequestError(req, out)
		}
		return out, nil
	}

	if a.cb == nil {
		v, err := exec()
		res, _ := v.(*response)
		return res, err
	}

	v, err := a.cb.Execute(exec)
	res, _ := v.(*response)
	return res, err
}

// newRequestError creates the error returned for an unexpected status code.
func newRequestError(req *http.Request, res *response) *api.RequestError {
	var body map[string]any
	if err := json.Unmarshal(res.body, &body); err != nil {
		body = nil
	}
	return &api.RequestError{
		Message:    fmt.Sprintf("Mollie API %s request failed", req.Method),
		StatusCode: res.status,
		URL:        req.URL.String(),
		Body:       body,
	}
}

// observe updates the request metrics.
func (a *httpAdapter) observe(method string, res *response, elapsed time.Duration) {
	if a.metrics == nil {
		return
	}
	status := "error"
	if res != nil {
		status = strconv.Itoa(res.status)
	}
	a.metrics.RequestsTotal.WithLabelValues(method, status).Inc()
	a.metrics.RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// isSuccessful reports client errors as successful calls so only transport failures and server errors
// trip the circuit breaker.
func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode > 0 && reqErr.StatusCode < http.StatusInternalServerError
	}
	return false
}
