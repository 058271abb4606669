package mailpit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Tags returns all unique message tags, in server-defined order.
//
// GET /api/v1/tags
func (c *Client) Tags(ctx context.Context) ([]string, error) {
	var result []string
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/tags", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SetMessageTags overwrites the tags of the given messages. Pass an
// empty tag list to remove all tags from the messages.
//
// PUT /api/v1/tags
func (c *Client) SetMessageTags(ctx context.Context, ids, tags []string) (bool, error) {
	if ids == nil {
		ids = []string{}
	}
	if tags == nil {
		tags = []string{}
	}
	body := struct {
		IDs  []string `json:"IDs"`
		Tags []string `json:"Tags"`
	}{ids, tags}
	return c.doOK(ctx, http.MethodPut, "/api/v1/tags", nil, body)
}

// RenameTag renames an existing tag.
//
// PUT /api/v1/tags/{tag}
func (c *Client) RenameTag(ctx context.Context, tag, name string) (bool, error) {
	body := struct {
		Name string `json:"Name"`
	}{name}
	path := fmt.Sprintf("/api/v1/tags/%s", url.PathEscape(tag))
	return c.doOK(ctx, http.MethodPut, path, nil, body)
}

// DeleteTag deletes a tag. Messages keep existing but lose the tag.
//
// DELETE /api/v1/tags/{tag}
func (c *Client) DeleteTag(ctx context.Context, tag string) (bool, error) {
	path := fmt.Sprintf("/api/v1/tags/%s", url.PathEscape(tag))
	return c.doOK(ctx, http.MethodDelete, path, nil, nil)
}
