package mailpit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrAttachmentFilenameMissing is returned by AttachmentBuilder.Build
	// when no filename was set.
	ErrAttachmentFilenameMissing = errors.New("attachment filename missing")

	// ErrAttachmentContentMissing is returned by AttachmentBuilder.Build
	// when no content was set.
	ErrAttachmentContentMissing = errors.New("attachment content missing")
)

// MailpitError is implemented by all typed errors produced by this package.
type MailpitError interface {
	error
	MailpitError() // marker method
}

// ConfigError indicates invalid client configuration: the base URL does
// not parse as an absolute URL, or the Basic-Auth credential cannot be
// used as a header value. It is raised at construction, before any
// network activity.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mailpit configuration: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("mailpit configuration: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// MailpitError implements the MailpitError interface.
func (e *ConfigError) MailpitError() {}

// NetworkError indicates the HTTP exchange could not complete (DNS
// failure, connection refused, timeout, TLS failure). It wraps whatever
// the transport reported.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("mailpit network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MailpitError implements the MailpitError interface.
func (e *NetworkError) MailpitError() {}

// APIError indicates the server answered with a non-2xx status. Body
// holds the raw response text verbatim; Message is populated when the
// body parses as the structured error shape {"Error":"..."} and is empty
// otherwise.
type APIError struct {
	StatusCode int
	Body       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("mailpit API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("mailpit API error %d", e.StatusCode)
}

// IsNotFound reports whether the error is a 404 response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// MailpitError implements the MailpitError interface.
func (e *APIError) MailpitError() {}

// DecodeError indicates a 2xx response whose body failed to decode into
// the operation's result type.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("mailpit decode %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MailpitError implements the MailpitError interface.
func (e *DecodeError) MailpitError() {}

// checkResponse classifies a completed exchange by status code family.
// 2xx responses pass through unchanged; anything else is drained into an
// APIError. An unparseable error body is tolerated, the raw text is
// always retained.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: resp.Request.URL.String(), Err: err}
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	var parsed struct {
		Error string `json:"Error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Message = parsed.Error
	}

	return apiErr
}
