package mailpit

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messagesSummaryFixture = `{
  "messages": [
    {
      "Attachments": 2,
      "Bcc": [{"Address": "bcc@example.com", "Name": ""}],
      "Cc": [{"Address": "cc@example.com", "Name": "Carbon Copy"}],
      "Created": "2024-03-05T11:39:00.000Z",
      "From": {"Address": "sender@example.com", "Name": "Sender"},
      "ID": "4oRBnPtCXgAqZniRhzLNmS",
      "MessageID": "a1b2c3@example.com",
      "Read": false,
      "ReplyTo": [],
      "Size": 1024,
      "Snippet": "Hello there",
      "Subject": "Test subject",
      "Tags": ["backups"],
      "To": [{"Address": "rcpt@example.com", "Name": "Recipient"}],
      "Username": "smtp-user"
    }
  ],
  "messages_count": 1,
  "messages_unread": 1,
  "start": 0,
  "tags": ["backups"],
  "total": 15,
  "unread": 3
}`

func TestListMessages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/messages", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery, "unset options must not appear in the query")
		w.Write([]byte(messagesSummaryFixture))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	summary, err := client.ListMessages(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.MessagesCount)
	assert.Equal(t, 15, summary.Total)
	assert.Equal(t, 3, summary.Unread)
	assert.Equal(t, []string{"backups"}, summary.Tags)

	require.Len(t, summary.Messages, 1)
	msg := summary.Messages[0]
	assert.Equal(t, "4oRBnPtCXgAqZniRhzLNmS", msg.ID)
	assert.Equal(t, "a1b2c3@example.com", msg.MessageID)
	assert.Equal(t, "sender@example.com", msg.From.Address)
	assert.Equal(t, "Sender", msg.From.Name)
	assert.Equal(t, 2, msg.Attachments)
	assert.Equal(t, "Hello there", msg.Snippet)
	assert.False(t, msg.Read)
	assert.Equal(t, time.Date(2024, 3, 5, 11, 39, 0, 0, time.UTC), msg.Created.UTC())
	assert.Equal(t, "smtp-user", msg.Username)
}

func TestListMessages_Pagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("start"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		w.Write([]byte(messagesSummaryFixture))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	start, limit := 25, 50
	_, err = client.ListMessages(context.Background(), &ListMessagesOptions{Start: &start, Limit: &limit})
	require.NoError(t, err)
}

func TestListMessages_PartialOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.False(t, r.URL.Query().Has("start"))
		w.Write([]byte(messagesSummaryFixture))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	limit := 100
	_, err = client.ListMessages(context.Background(), &ListMessagesOptions{Limit: &limit})
	require.NoError(t, err)
}

func TestSetReadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/messages", r.URL.Path)
		assert.Equal(t, "Pacific/Auckland", r.URL.Query().Get("tz"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"IDs":["4oRBnPtCXgAqZniRhzLNmS","hXayS6wnCgNnt6aFTvmOF6"],"Read":true,"Search":"tag:backups"}`, string(body))

		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	ok, err := client.SetReadStatus(context.Background(), SetReadStatusOptions{
		Read:     true,
		IDs:      []string{"4oRBnPtCXgAqZniRhzLNmS", "hXayS6wnCgNnt6aFTvmOF6"},
		Search:   "tag:backups",
		Timezone: "Pacific/Auckland",
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSetReadStatus_Defaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		// no IDs and no search: the server updates all messages
		assert.Equal(t, `{"Read":false}`, string(body))

		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	ok, err := client.SetReadStatus(context.Background(), SetReadStatusOptions{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteMessages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/messages", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"IDs":["4oRBnPtCXgAqZniRhzLNmS"]}`, string(body))

		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	ok, err := client.DeleteMessages(context.Background(), []string{"4oRBnPtCXgAqZniRhzLNmS"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteAllMessages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"IDs":[]}`, string(body))
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	ok, err := client.DeleteAllMessages(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/search", r.URL.Path)
		assert.Equal(t, "tag:backups is:unread", r.URL.Query().Get("query"))
		assert.False(t, r.URL.Query().Has("start"))
		assert.False(t, r.URL.Query().Has("limit"))
		assert.False(t, r.URL.Query().Has("tz"))
		w.Write([]byte(messagesSummaryFixture))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	summary, err := client.Search(context.Background(), "tag:backups is:unread", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MessagesCount)
}

func TestSearch_WithOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "subject:invoice", r.URL.Query().Get("query"))
		assert.Equal(t, "10", r.URL.Query().Get("start"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "Europe/Berlin", r.URL.Query().Get("tz"))
		w.Write([]byte(messagesSummaryFixture))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	start, limit := 10, 20
	_, err = client.Search(context.Background(), "subject:invoice", &SearchOptions{
		Start:    &start,
		Limit:    &limit,
		Timezone: "Europe/Berlin",
	})
	require.NoError(t, err)
}

func TestDeleteBySearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/search", r.URL.Path)
		assert.Equal(t, "older-than:30d", r.URL.Query().Get("query"))
		assert.False(t, r.URL.Query().Has("tz"))
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	ok, err := client.DeleteBySearch(context.Background(), "older-than:30d", "")
	require.NoError(t, err)
	assert.True(t, ok)
}
