package mailpit

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Timeouts, proxies, TLS and
// connection pooling are all controlled through it; the library never
// overrides the transport's ambient policy per call.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout. Ignored if WithHTTPClient is
// also supplied after it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets a logger for per-request debug output. The default
// discards everything. Credentials are never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
