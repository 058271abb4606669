package mailpit

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chaosTriggersFixture = `{
  "Authentication": {"ErrorCode": 451, "Probability": 5},
  "Recipient": {"ErrorCode": 451, "Probability": 0},
  "Sender": {"ErrorCode": 451, "Probability": 0}
}`

func TestChaosTriggers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/chaos", r.URL.Path)
		w.Write([]byte(chaosTriggersFixture))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	triggers, err := client.ChaosTriggers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 451, triggers.Authentication.ErrorCode)
	assert.Equal(t, 5, triggers.Authentication.Probability)
	assert.Equal(t, 0, triggers.Recipient.Probability)
	assert.Equal(t, 0, triggers.Sender.Probability)
}

func TestChaosTriggers_NotEnabled(t *testing.T) {
	client := newErrorServer(t, http.StatusBadRequest, `{"Error":"Chaos is not enabled"}`)

	_, err := client.ChaosTriggers(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Chaos is not enabled", apiErr.Message)
}

func TestSetChaosTriggers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/chaos", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"Authentication":{"ErrorCode":451,"Probability":5}}`, string(body))

		w.Write([]byte(chaosTriggersFixture))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	triggers, err := client.SetChaosTriggers(context.Background(), &ChaosTriggersConfig{
		Authentication: &ChaosTrigger{ErrorCode: 451, Probability: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, triggers.Authentication.Probability)
}

func TestSetChaosTriggers_NilResets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(body))
		w.Write([]byte(chaosTriggersFixture))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	_, err = client.SetChaosTriggers(context.Background(), nil)
	require.NoError(t, err)
}
