package mailpit

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// MessageSummary is one entry of a message listing. Unlike Message it
// carries only an attachment count.
type MessageSummary struct {
	MessageCore

	// Number of attachments.
	Attachments int `json:"Attachments"`
	// Received date and time.
	Created time.Time `json:"Created"`
	// Read status.
	Read bool `json:"Read"`
	// Message snippet, up to 250 characters.
	Snippet string `json:"Snippet"`
}

// MessagesSummary is a paginated list of messages. Note that the
// envelope fields use lowercase wire names, unlike the rest of the API.
type MessagesSummary struct {
	// Messages in the current page.
	Messages []MessageSummary `json:"messages"`
	// Total number of messages matching the current query.
	MessagesCount int `json:"messages_count"`
	// Total number of unread messages matching the current query.
	MessagesUnread int `json:"messages_unread"`
	// Pagination offset.
	Start int `json:"start"`
	// All current tags.
	Tags []string `json:"tags"`
	// Total number of messages in the mailbox.
	Total int `json:"total"`
	// Total number of unread messages in the mailbox.
	Unread int `json:"unread"`
}

// ListMessagesOptions holds optional parameters for ListMessages. Nil
// fields are omitted from the query entirely.
type ListMessagesOptions struct {
	// Pagination offset.
	Start *int
	// Maximum number of messages to return.
	Limit *int
}

// SearchOptions holds optional parameters for Search and DeleteBySearch.
type SearchOptions struct {
	// Pagination offset.
	Start *int
	// Maximum number of messages to return.
	Limit *int
	// Timezone (IANA name) used to interpret date searches.
	Timezone string
}

// SetReadStatusOptions selects which messages SetReadStatus updates and
// the status to set. If neither IDs nor Search is given, the server
// updates all messages.
type SetReadStatusOptions struct {
	// Read status to set. Defaults to false.
	Read bool
	// Optional message database IDs.
	IDs []string
	// Optional search to match messages against.
	Search string
	// Timezone (IANA name) used to interpret date searches.
	Timezone string
}

// ListMessages returns messages ordered from newest to oldest.
//
// GET /api/v1/messages
func (c *Client) ListMessages(ctx context.Context, opts *ListMessagesOptions) (*MessagesSummary, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Start != nil {
			query.Set("start", strconv.Itoa(*opts.Start))
		}
		if opts.Limit != nil {
			query.Set("limit", strconv.Itoa(*opts.Limit))
		}
	}

	var result MessagesSummary
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/messages", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SetReadStatus sets the read status of the selected messages.
//
// PUT /api/v1/messages
func (c *Client) SetReadStatus(ctx context.Context, opts SetReadStatusOptions) (bool, error) {
	query := url.Values{}
	if opts.Timezone != "" {
		query.Set("tz", opts.Timezone)
	}

	body := struct {
		IDs    []string `json:"IDs,omitempty"`
		Read   bool     `json:"Read"`
		Search string   `json:"Search,omitempty"`
	}{
		IDs:    opts.IDs,
		Read:   opts.Read,
		Search: opts.Search,
	}

	return c.doOK(ctx, http.MethodPut, "/api/v1/messages", query, body)
}

// DeleteMessages deletes the messages with the given database IDs. An
// empty or nil list deletes all messages.
//
// DELETE /api/v1/messages
func (c *Client) DeleteMessages(ctx context.Context, ids []string) (bool, error) {
	if ids == nil {
		ids = []string{}
	}
	body := struct {
		IDs []string `json:"IDs"`
	}{ids}
	return c.doOK(ctx, http.MethodDelete, "/api/v1/messages", nil, body)
}

// DeleteAllMessages deletes all messages. It is a convenience wrapper
// around DeleteMessages with an empty ID list.
func (c *Client) DeleteAllMessages(ctx context.Context) (bool, error) {
	return c.DeleteMessages(ctx, nil)
}

// Search returns messages matching a search, sorted by received date
// descending.
//
// GET /api/v1/search
func (c *Client) Search(ctx context.Context, searchQuery string, opts *SearchOptions) (*MessagesSummary, error) {
	query := url.Values{}
	query.Set("query", searchQuery)
	if opts != nil {
		if opts.Start != nil {
			query.Set("start", strconv.Itoa(*opts.Start))
		}
		if opts.Limit != nil {
			query.Set("limit", strconv.Itoa(*opts.Limit))
		}
		if opts.Timezone != "" {
			query.Set("tz", opts.Timezone)
		}
	}

	var result MessagesSummary
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/search", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteBySearch deletes all messages matching a search.
//
// DELETE /api/v1/search
func (c *Client) DeleteBySearch(ctx context.Context, searchQuery, timezone string) (bool, error) {
	query := url.Values{}
	query.Set("query", searchQuery)
	if timezone != "" {
		query.Set("tz", timezone)
	}
	return c.doOK(ctx, http.MethodDelete, "/api/v1/search", query, nil)
}
