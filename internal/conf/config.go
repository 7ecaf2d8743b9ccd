package conf

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
)

// DefaultEndpoint is the base URL of the Mollie API.
const DefaultEndpoint = "https://api.mollie.nl/v1"

// apiKeyPattern matches live and test Mollie API keys.
var apiKeyPattern = regexp.MustCompile(`^(live|test)_\w+$`)

// Mollie contains the needed config to interact with the Mollie API.
type Mollie struct {
	// APIKey is the live or test key of the website profile.
	//	Example: test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM
	APIKey string `env:"MOLLIE_API_KEY,required"`

	// Endpoint is the base URL of the Mollie API, only changed for testing purposes.
	Endpoint string `env:"MOLLIE_API_ENDPOINT" envDefault:"https://api.mollie.nl/v1"`

	// Locale is the default locale of the payment screens.
	Locale string `env:"MOLLIE_LOCALE"`

	// Timeout is the maximum duration of a single HTTP request to the Mollie API.
	Timeout time.Duration `env:"MOLLIE_REQUEST_TIMEOUT" envDefault:"30s"`

	// CircuitBreaker enables a circuit breaker around Mollie API requests.
	CircuitBreaker bool `env:"MOLLIE_CIRCUIT_BREAKER_ENABLED" envDefault:"false"`
}

// Parse fills Mollie data from an external source.
func (c *Mollie) Parse() error {
	if err := env.Parse(c); err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks the API key and normalizes the endpoint, dropping any trailing slash.
// An empty endpoint is replaced with DefaultEndpoint.
func (c *Mollie) Validate() error {
	if len(c.APIKey) == 0 {
		return api.ErrMissingAPIKey
	}
	c.APIKey = strings.TrimSpace(c.APIKey)
	if !apiKeyPattern.MatchString(c.APIKey) {
		return fmt.Errorf("%w: it should start with 'test_' or 'live_'", api.ErrInvalidAPIKey)
	}

	if len(c.Endpoint) == 0 {
		c.Endpoint = DefaultEndpoint
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || len(u.Host) == 0 {
		return fmt.Errorf("%w: %s", api.ErrInvalidEndpoint, c.Endpoint)
	}
	c.Endpoint = strings.TrimRight(c.Endpoint, "/")
	return nil
}

// Config contains the needed config to start the Mollie webhook HTTP server.
type Config struct {
	// Mollie contains configuration for the Mollie client.
	Mollie Mollie

	// Port is the TCP port to listen to for incoming HTTP requests.
	Port uint `env:"MOLLIE_WEBHOOK_HTTP_SERVER_PORT" envDefault:"80"`

	// Timeout is the amount of time a webhook call waits for the payment to be fetched until it fails due
	// to timeout.
	Timeout time.Duration `env:"MOLLIE_WEBHOOK_TIMEOUT" envDefault:"30s"`
}

// Parse fills Config data from an external source.
func (c *Config) Parse() error {
	if err := env.Parse(c); err != nil {
		return err
	}
	return c.Mollie.Validate()
}
