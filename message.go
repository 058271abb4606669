package mailpit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// MessageIDLatest is the sentinel message ID accepted by all per-message
// operations to address the most recent message.
const MessageIDLatest = "latest"

// Address represents a single mail address. An address such as
// "Barry Gibbs <bg@example.com>" is represented as
// Address{Name: "Barry Gibbs", Address: "bg@example.com"}.
//
// The server returns addresses under the "Address" key but the send API
// expects them under "Email"; the JSON methods below handle both.
type Address struct {
	Address string
	Name    string
}

// MarshalJSON serializes the address for the send API.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Email string `json:"Email"`
		Name  string `json:"Name"`
	}{a.Address, a.Name})
}

// UnmarshalJSON parses an address as returned by the message APIs.
func (a *Address) UnmarshalJSON(data []byte) error {
	var raw struct {
		Address string `json:"Address"`
		Name    string `json:"Name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Address = raw.Address
	a.Name = raw.Name
	return nil
}

// MessageCore holds the fields shared by list entries and full message
// records. MessageSummary and Message embed it and add their own
// attachment representation.
type MessageCore struct {
	// Database ID.
	ID string `json:"ID"`
	// Message ID.
	MessageID string `json:"MessageID"`
	// From address.
	From Address `json:"From"`
	// To addresses.
	To []Address `json:"To"`
	// Cc addresses.
	Cc []Address `json:"Cc"`
	// Bcc addresses.
	Bcc []Address `json:"Bcc"`
	// Reply-To addresses.
	ReplyTo []Address `json:"ReplyTo"`
	// Message subject.
	Subject string `json:"Subject"`
	// Message size in bytes.
	Size int64 `json:"Size"`
	// Message tags.
	Tags []string `json:"Tags"`
	// Username used for authentication (if provided) with the SMTP or
	// Send API.
	Username string `json:"Username"`
}

// AttachmentInfo describes one attachment of a stored message.
type AttachmentInfo struct {
	// Attachment part ID.
	PartID string `json:"PartID"`
	// File name.
	FileName string `json:"FileName"`
	// Content type.
	ContentType string `json:"ContentType"`
	// Content ID.
	ContentID string `json:"ContentID"`
	// Size in bytes.
	Size int64 `json:"Size"`
}

// ListUnsubscribe summarizes the List-Unsubscribe and
// List-Unsubscribe-Post headers including validation of the link
// structure.
type ListUnsubscribe struct {
	// Validation errors (if any).
	Errors string `json:"Errors"`
	// List-Unsubscribe header value.
	Header string `json:"Header"`
	// List-Unsubscribe-Post value (if set).
	HeaderPost string `json:"HeaderPost"`
	// Detected links, maximum one email and one HTTP(S) link.
	Links []string `json:"Links"`
}

// Message is a full message record excluding physical attachment
// content.
type Message struct {
	MessageCore

	// Message attachments.
	Attachments []AttachmentInfo `json:"Attachments"`
	// Inline message attachments.
	Inline []AttachmentInfo `json:"Inline"`
	// Message date (if set), else date received.
	Date time.Time `json:"Date"`
	// Message body HTML.
	HTML string `json:"HTML"`
	// Message body text.
	Text string `json:"Text"`
	// Return-Path.
	ReturnPath string `json:"ReturnPath"`
	// List-Unsubscribe header summary.
	ListUnsubscribe ListUnsubscribe `json:"ListUnsubscribe"`
}

// MessageHeaders maps a header name to its ordered values. The server
// returns header keys alphabetically.
type MessageHeaders map[string][]string

// RenderHTMLOptions holds optional parameters for RenderMessageHTML.
type RenderHTMLOptions struct {
	// Embed inline images as data URIs. Omitted from the query when nil.
	Embed *bool
}

// Message returns a message by database ID, marking it as read
// server-side. The ID may be MessageIDLatest.
//
// GET /api/v1/message/{id}
func (c *Client) Message(ctx context.Context, id string) (*Message, error) {
	var result Message
	path := fmt.Sprintf("/api/v1/message/%s", url.PathEscape(id))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MessageHeaders returns the message headers. Header keys are returned
// alphabetically by the server.
//
// GET /api/v1/message/{id}/headers
func (c *Client) MessageHeaders(ctx context.Context, id string) (MessageHeaders, error) {
	var result MessageHeaders
	path := fmt.Sprintf("/api/v1/message/%s/headers", url.PathEscape(id))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// MessagePart returns an attachment part's raw bytes. The response
// content type mirrors the attachment's.
//
// GET /api/v1/message/{id}/part/{partID}
func (c *Client) MessagePart(ctx context.Context, id, partID string) ([]byte, error) {
	path := fmt.Sprintf("/api/v1/message/%s/part/%s", url.PathEscape(id), url.PathEscape(partID))
	return c.doBytes(ctx, http.MethodGet, path, nil, nil)
}

// MessagePartThumbnail returns a cropped 180x120 JPEG thumbnail of an
// image attachment. Smaller images are padded; non-image parts yield a
// blank image.
//
// GET /api/v1/message/{id}/part/{partID}/thumb
func (c *Client) MessagePartThumbnail(ctx context.Context, id, partID string) ([]byte, error) {
	path := fmt.Sprintf("/api/v1/message/%s/part/%s/thumb", url.PathEscape(id), url.PathEscape(partID))
	return c.doBytes(ctx, http.MethodGet, path, nil, nil)
}

// MessageSource returns the full RFC 5322 source as plain text.
//
// GET /api/v1/message/{id}/raw
func (c *Client) MessageSource(ctx context.Context, id string) (string, error) {
	path := fmt.Sprintf("/api/v1/message/%s/raw", url.PathEscape(id))
	return c.doText(ctx, http.MethodGet, path, nil, nil)
}

// ReleaseMessage relays a message to the given recipients via the
// pre-configured external SMTP server. Only enabled if message relaying
// has been configured server-side.
//
// POST /api/v1/message/{id}/release
func (c *Client) ReleaseMessage(ctx context.Context, id string, to []string) (bool, error) {
	if to == nil {
		to = []string{}
	}
	body := struct {
		To []string `json:"To"`
	}{to}
	path := fmt.Sprintf("/api/v1/message/%s/release", url.PathEscape(id))
	return c.doOK(ctx, http.MethodPost, path, nil, body)
}

// RenderMessageHTML renders just the message's HTML part. Inline images
// are rewritten to link to the API unless opts.Embed is set. A message
// without an HTML part yields a 404 APIError.
//
// GET /view/{id}.html
func (c *Client) RenderMessageHTML(ctx context.Context, id string, opts *RenderHTMLOptions) (string, error) {
	query := url.Values{}
	if opts != nil && opts.Embed != nil {
		query.Set("embed", boolParam(*opts.Embed))
	}
	path := fmt.Sprintf("/view/%s.html", url.PathEscape(id))
	return c.doText(ctx, http.MethodGet, path, query, nil)
}

// RenderMessageText renders just the message's text part.
//
// GET /view/{id}.txt
func (c *Client) RenderMessageText(ctx context.Context, id string) (string, error) {
	path := fmt.Sprintf("/view/%s.txt", url.PathEscape(id))
	return c.doText(ctx, http.MethodGet, path, nil, nil)
}
