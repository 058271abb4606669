package mailpit

import (
	"context"
	"encoding/base64"
	"net/http"
)

// SendRequest is a complete outbound message for the send API.
type SendRequest struct {
	// Attachments built with AttachmentBuilder.
	Attachments []Attachment `json:"Attachments,omitempty"`
	// Bcc recipients, email addresses only.
	Bcc []string `json:"Bcc,omitempty"`
	// Cc recipients.
	Cc []Address `json:"Cc,omitempty"`
	// "From" sender.
	From Address `json:"From"`
	// Message body (HTML).
	HTML string `json:"HTML,omitempty"`
	// Optional headers.
	Headers map[string]string `json:"Headers,omitempty"`
	// Optional Reply-To recipients.
	ReplyTo []Address `json:"ReplyTo,omitempty"`
	// Subject.
	Subject string `json:"Subject"`
	// Mailpit tags.
	Tags []string `json:"Tags,omitempty"`
	// Message body (text).
	Text string `json:"Text,omitempty"`
	// "To" recipients.
	To []Address `json:"To"`
}

// SendResponse is the confirmation returned by the send API.
type SendResponse struct {
	// Database ID of the stored message.
	ID string `json:"ID"`
}

// Attachment is an outbound file attachment with its content already
// base64-encoded. Construct one with NewAttachment; once built, the
// encoded form is final.
type Attachment struct {
	// Base64-encoded file content.
	Content string `json:"Content"`
	// Optional Content-ID (cid). If set, the file is attached inline.
	ContentID string `json:"ContentID,omitempty"`
	// Optional content type. If empty, the server auto-detects it.
	ContentType string `json:"ContentType,omitempty"`
	// Filename.
	Filename string `json:"Filename"`
}

// AttachmentBuilder accumulates attachment fields; Build is the only
// fallible step.
type AttachmentBuilder struct {
	filename    string
	content     []byte
	contentID   string
	contentType string
}

// NewAttachment returns an AttachmentBuilder for creating an Attachment.
func NewAttachment() *AttachmentBuilder {
	return &AttachmentBuilder{}
}

// Filename sets the attachment filename. Required.
func (b *AttachmentBuilder) Filename(name string) *AttachmentBuilder {
	b.filename = name
	return b
}

// Content sets the file content. Required; base64-encoded on Build.
func (b *AttachmentBuilder) Content(data []byte) *AttachmentBuilder {
	b.content = data
	return b
}

// ContentID sets an optional Content-ID (cid). If set, the file is
// attached inline.
func (b *AttachmentBuilder) ContentID(id string) *AttachmentBuilder {
	b.contentID = id
	return b
}

// ContentType sets an optional content type. If unset, the server
// auto-detects it.
func (b *AttachmentBuilder) ContentType(contentType string) *AttachmentBuilder {
	b.contentType = contentType
	return b
}

// Build validates the accumulated fields and returns the attachment with
// its content base64-encoded. It fails with
// ErrAttachmentFilenameMissing, then ErrAttachmentContentMissing, when a
// mandatory field was not set.
func (b *AttachmentBuilder) Build() (Attachment, error) {
	if b.filename == "" {
		return Attachment{}, ErrAttachmentFilenameMissing
	}
	if b.content == nil {
		return Attachment{}, ErrAttachmentContentMissing
	}

	return Attachment{
		Content:     base64.StdEncoding.EncodeToString(b.content),
		ContentID:   b.contentID,
		ContentType: b.contentType,
		Filename:    b.filename,
	}, nil
}

// Send submits a message via the HTTP send API and returns the stored
// message's database ID.
//
// POST /api/v1/send
func (c *Client) Send(ctx context.Context, msg SendRequest) (*SendResponse, error) {
	var result SendResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/send", nil, msg, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
