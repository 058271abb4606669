package mailpit

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"
)

// DefaultTimeout is the default HTTP client timeout. Replace it with
// WithTimeout or supply your own transport with WithHTTPClient.
const DefaultTimeout = 30 * time.Second

// Client is a handle to a Mailpit server. It is immutable after
// construction; all methods are independent single round trips and safe
// to invoke concurrently.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a client for the Mailpit server at baseURL. The URL must
// be absolute. No network activity occurs at construction.
func New(baseURL string, opts ...Option) (*Client, error) {
	return newClient(baseURL, "", opts)
}

// NewWithAuth creates a client that authenticates every request with
// HTTP Basic Auth. The credential header is computed once here and never
// appears in log output. Construction fails if username or password
// contain characters illegal in a header value.
func NewWithAuth(baseURL, username, password string, opts ...Option) (*Client, error) {
	encoded := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	header := "Basic " + encoded
	if !httpguts.ValidHeaderFieldValue(header) {
		return nil, &ConfigError{Message: "credentials produce an invalid Authorization header value"}
	}
	return newClient(baseURL, header, opts)
}

func newClient(baseURL, authHeader string, opts []Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, &ConfigError{Message: "parse base URL", Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, &ConfigError{Message: fmt.Sprintf("base URL %q is not an absolute URL", baseURL)}
	}

	c := &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		authHeader: authHeader,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// do performs a single HTTP exchange. A non-nil body is JSON-encoded.
// The returned response has already passed status classification; the
// caller owns the body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authHeader != "" {
		req.Header.Set("Authorization", c.authHeader)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Str("method", method).Str("path", path).Err(err).Msg("mailpit request failed")
		return nil, &NetworkError{URL: reqURL, Err: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("mailpit request")

	if err := checkResponse(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return resp, nil
}

// doJSON performs an exchange and decodes the response body into result.
// A nil result discards the body.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, result any) error {
	resp, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

// doText performs an exchange and returns the response body as text.
func (c *Client) doText(ctx context.Context, method, path string, query url.Values, body any) (string, error) {
	data, err := c.doBytes(ctx, method, path, query, body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// doBytes performs an exchange and returns the raw response body.
func (c *Client) doBytes(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	resp, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: resp.Request.URL.String(), Err: err}
	}
	return data, nil
}

// doOK performs an exchange for a mutating operation whose success is
// signalled by the literal response body "ok". Any other 2xx body yields
// false without raising an error; this mirrors the server contract.
func (c *Client) doOK(ctx context.Context, method, path string, query url.Values, body any) (bool, error) {
	text, err := c.doText(ctx, method, path, query, body)
	if err != nil {
		return false, err
	}
	return text == "ok", nil
}

// boolParam renders a boolean query parameter the way the API expects.
func boolParam(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
