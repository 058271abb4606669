package mailpit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/info", r.URL.Path)
		w.Write([]byte(`{
		  "Database": "/data/mailpit.db",
		  "DatabaseSize": 13824,
		  "LatestVersion": "v1.21.5",
		  "Messages": 15,
		  "RuntimeStats": {
		    "Memory": 1048576,
		    "MessagesDeleted": 2,
		    "SMTPAccepted": 17,
		    "SMTPAcceptedSize": 40960,
		    "SMTPIgnored": 1,
		    "SMTPRejected": 0,
		    "Uptime": 3600
		  },
		  "Tags": {"backups": 4},
		  "Unread": 3,
		  "Version": "v1.21.4"
		}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	info, err := client.Info(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/data/mailpit.db", info.Database)
	assert.Equal(t, int64(13824), info.DatabaseSize)
	assert.Equal(t, "v1.21.4", info.Version)
	assert.Equal(t, "v1.21.5", info.LatestVersion)
	assert.Equal(t, 15, info.Messages)
	assert.Equal(t, 3, info.Unread)
	assert.Equal(t, 4, info.Tags["backups"])

	assert.Equal(t, 17, info.RuntimeStats.SMTPAccepted)
	assert.Equal(t, int64(40960), info.RuntimeStats.SMTPAcceptedSize)
	assert.Equal(t, 1, info.RuntimeStats.SMTPIgnored)
	assert.Equal(t, int64(3600), info.RuntimeStats.Uptime)
}

func TestWebUIConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/webui", r.URL.Path)
		w.Write([]byte(`{
		  "ChaosEnabled": true,
		  "DuplicatesIgnored": false,
		  "HideDeleteAllButton": false,
		  "Label": "staging",
		  "MessageRelay": {
		    "AllowedRecipients": "@example\\.com$",
		    "BlockedRecipients": "",
		    "Enabled": true,
		    "OverrideFrom": "relay@example.com",
		    "PreserveMessageIDs": true,
		    "ReturnPath": "bounces@example.com",
		    "SMTPServer": "smtp.example.com:25"
		  },
		  "SpamAssassin": true
		}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	config, err := client.WebUIConfig(context.Background())
	require.NoError(t, err)

	assert.True(t, config.ChaosEnabled)
	assert.True(t, config.SpamAssassin)
	assert.Equal(t, "staging", config.Label)

	relay := config.MessageRelay
	assert.True(t, relay.Enabled)
	assert.Equal(t, "smtp.example.com:25", relay.SMTPServer)
	assert.True(t, relay.PreserveMessageIDs)
	assert.Equal(t, "bounces@example.com", relay.ReturnPath)
}
