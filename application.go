package mailpit

import (
	"context"
	"net/http"
)

// AppInformation contains basic runtime information, message totals and
// the latest release version.
type AppInformation struct {
	// Database path.
	Database string `json:"Database"`
	// Database size in bytes.
	DatabaseSize int64 `json:"DatabaseSize"`
	// Latest Mailpit version.
	LatestVersion string `json:"LatestVersion"`
	// Total number of messages in the database.
	Messages int `json:"Messages"`
	// Runtime statistics.
	RuntimeStats RuntimeStats `json:"RuntimeStats"`
	// Tags and message totals per tag.
	Tags map[string]int `json:"Tags"`
	// Total number of unread messages in the database.
	Unread int `json:"Unread"`
	// Current Mailpit version.
	Version string `json:"Version"`
}

// RuntimeStats contains the server's runtime statistics.
type RuntimeStats struct {
	// Current memory usage in bytes.
	Memory int64 `json:"Memory"`
	// Database runtime messages deleted.
	MessagesDeleted int `json:"MessagesDeleted"`
	// Accepted runtime SMTP messages.
	SMTPAccepted int `json:"SMTPAccepted"`
	// Total runtime accepted messages size in bytes.
	SMTPAcceptedSize int64 `json:"SMTPAcceptedSize"`
	// Ignored runtime SMTP messages (--ignore-duplicate-ids).
	SMTPIgnored int `json:"SMTPIgnored"`
	// Rejected runtime SMTP messages.
	SMTPRejected int `json:"SMTPRejected"`
	// Server uptime in seconds.
	Uptime int64 `json:"Uptime"`
}

// WebUIConfig contains configuration settings for the web UI.
type WebUIConfig struct {
	// Whether Chaos support is enabled at runtime.
	ChaosEnabled bool `json:"ChaosEnabled"`
	// Whether messages with duplicate IDs are ignored.
	DuplicatesIgnored bool `json:"DuplicatesIgnored"`
	// Whether the delete button should be hidden.
	HideDeleteAllButton bool `json:"HideDeleteAllButton"`
	// Optional label identifying this Mailpit instance.
	Label string `json:"Label"`
	// Message relay configuration.
	MessageRelay MessageRelay `json:"MessageRelay"`
	// Whether SpamAssassin is enabled.
	SpamAssassin bool `json:"SpamAssassin"`
}

// MessageRelay describes the server's message relay (release)
// configuration.
type MessageRelay struct {
	// Only allow relaying to these recipients (regex).
	AllowedRecipients string `json:"AllowedRecipients"`
	// Block relaying to these recipients (regex).
	BlockedRecipients string `json:"BlockedRecipients"`
	// Whether message relaying (release) is enabled.
	Enabled bool `json:"Enabled"`
	// Overrides the "From" address for all relayed messages.
	OverrideFrom string `json:"OverrideFrom"`
	// Preserve the original Message-IDs when relaying messages.
	PreserveMessageIDs bool `json:"PreserveMessageIDs"`
	// Enforced Return-Path (if set) for relay bounces.
	ReturnPath string `json:"ReturnPath"`
	// The configured SMTP server address.
	SMTPServer string `json:"SMTPServer"`
}

// Info returns basic runtime information, message totals and the latest
// release version.
//
// GET /api/v1/info
func (c *Client) Info(ctx context.Context) (*AppInformation, error) {
	var result AppInformation
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/info", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// WebUIConfig returns configuration settings for the web UI.
//
// GET /api/v1/webui
func (c *Client) WebUIConfig(ctx context.Context) (*WebUIConfig, error) {
	var result WebUIConfig
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/webui", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
