package mailpit

import (
	"context"
	"net/http"
)

// ChaosTrigger configures one fault-injection trigger.
type ChaosTrigger struct {
	// SMTP error code to return, 400-599. Validated server-side.
	ErrorCode int `json:"ErrorCode"`
	// Probability (chance) of triggering the error, 0-100. Validated
	// server-side.
	Probability int `json:"Probability"`
}

// ChaosTriggers is the server's current Chaos trigger configuration.
type ChaosTriggers struct {
	Authentication ChaosTrigger `json:"Authentication"`
	Recipient      ChaosTrigger `json:"Recipient"`
	Sender         ChaosTrigger `json:"Sender"`
}

// ChaosTriggersConfig sets the Chaos trigger configuration. Nil triggers
// are omitted from the request and reset server-side to their defaults
// with 0% probability.
type ChaosTriggersConfig struct {
	Authentication *ChaosTrigger `json:"Authentication,omitempty"`
	Recipient      *ChaosTrigger `json:"Recipient,omitempty"`
	Sender         *ChaosTrigger `json:"Sender,omitempty"`
}

// ChaosTriggers returns the current Chaos trigger configuration. The
// server returns an error if Chaos is not enabled at runtime.
//
// GET /api/v1/chaos
func (c *Client) ChaosTriggers(ctx context.Context) (*ChaosTriggers, error) {
	var result ChaosTriggers
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/chaos", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SetChaosTriggers sets the Chaos trigger configuration and returns the
// updated values. A nil config sends an empty object, resetting all
// triggers to their defaults.
//
// PUT /api/v1/chaos
func (c *Client) SetChaosTriggers(ctx context.Context, config *ChaosTriggersConfig) (*ChaosTriggers, error) {
	if config == nil {
		config = &ChaosTriggersConfig{}
	}

	var result ChaosTriggers
	if err := c.doJSON(ctx, http.MethodPut, "/api/v1/chaos", nil, config, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
