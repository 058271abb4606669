package mailpit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// HTMLCheckResponse is the result of the message HTML compatibility
// checker.
type HTMLCheckResponse struct {
	// All platforms tested, mainly for the web UI.
	Platforms map[string][]string `json:"Platforms"`
	// Total weighted result for all scores.
	Total HTMLTotalScores `json:"Total"`
	// Warnings from tests.
	Warnings []HTMLWarning `json:"Warnings"`
}

// HTMLTotalScores is the total weighted result for all scores.
type HTMLTotalScores struct {
	// Total number of HTML nodes detected in the message.
	Nodes int `json:"Nodes"`
	// Overall percentage partially supported.
	Partial float64 `json:"Partial"`
	// Overall percentage supported.
	Supported float64 `json:"Supported"`
	// Total number of tests done.
	Tests int `json:"Tests"`
	// Overall percentage unsupported.
	Unsupported float64 `json:"Unsupported"`
}

// HTMLWarning is a single warning from the HTML checker.
type HTMLWarning struct {
	// Category, one of css or html.
	Category string `json:"Category"`
	// Description.
	Description string `json:"Description"`
	// Keywords.
	Keywords string `json:"Keywords"`
	// Notes based on results, keyed by note number.
	NotesByNumber map[string]string `json:"NotesByNumber"`
	// Test results.
	Results []HTMLWarningResult `json:"Results"`
	// Score summary.
	Score HTMLWarningScore `json:"Score"`
	// Slug identifier.
	Slug string `json:"Slug"`
	// Tags.
	Tags []string `json:"Tags"`
	// Friendly title.
	Title string `json:"Title"`
	// URL to caniemail.com.
	URL string `json:"URL"`
}

// HTMLWarningResult is one platform's test result.
type HTMLWarningResult struct {
	// Family, eg Outlook, Mozilla Thunderbird.
	Family string `json:"Family"`
	// Friendly name combining family, platform and version.
	Name string `json:"Name"`
	// Note number for partially supported, if applicable.
	NoteNumber string `json:"NoteNumber"`
	// Platform, eg ios, android, windows.
	Platform string `json:"Platform"`
	// Support, one of yes, no, partial.
	Support string `json:"Support"`
	// Family version, eg 4.7.1, 2019-10, 10.3.
	Version string `json:"Version"`
}

// HTMLWarningScore is a warning's score summary.
type HTMLWarningScore struct {
	// Number of matches in the document.
	Found int `json:"Found"`
	// Percentage partially supported.
	Partial float64 `json:"Partial"`
	// Percentage supported.
	Supported float64 `json:"Supported"`
	// Percentage unsupported.
	Unsupported float64 `json:"Unsupported"`
}

// LinkCheckResponse is the result of the message link checker.
type LinkCheckResponse struct {
	// Total number of errors.
	Errors int `json:"Errors"`
	// Tested links.
	Links []TestedLink `json:"Links"`
}

// TestedLink is one tested link.
type TestedLink struct {
	// HTTP status definition.
	Status string `json:"Status"`
	// HTTP status code.
	StatusCode int `json:"StatusCode"`
	// Link URL.
	URL string `json:"URL"`
}

// LinkCheckOptions holds optional parameters for LinkCheck.
type LinkCheckOptions struct {
	// Follow redirects. Omitted from the query when nil.
	Follow *bool
}

// SpamAssassinResponse is a SpamAssassin check result.
type SpamAssassinResponse struct {
	// If populated, SpamAssassin reported an error (eg not enabled
	// server-side). This is part of the body, not a client error.
	Error string `json:"Error"`
	// Whether the message is spam.
	IsSpam bool `json:"IsSpam"`
	// Spam rules triggered.
	Rules []SpamRule `json:"Rules"`
	// Total spam score based on triggered rules.
	Score float64 `json:"Score"`
}

// SpamRule is one triggered SpamAssassin rule.
type SpamRule struct {
	// Rule description.
	Description string `json:"Description"`
	// Rule name.
	Name string `json:"Name"`
	// Rule score.
	Score float64 `json:"Score"`
}

// HTMLCheck returns the summary of the message HTML checker.
//
// GET /api/v1/message/{id}/html-check
func (c *Client) HTMLCheck(ctx context.Context, id string) (*HTMLCheckResponse, error) {
	var result HTMLCheckResponse
	path := fmt.Sprintf("/api/v1/message/%s/html-check", url.PathEscape(id))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LinkCheck tests the message's links and returns the results.
//
// GET /api/v1/message/{id}/link-check
func (c *Client) LinkCheck(ctx context.Context, id string, opts *LinkCheckOptions) (*LinkCheckResponse, error) {
	query := url.Values{}
	if opts != nil && opts.Follow != nil {
		query.Set("follow", boolParam(*opts.Follow))
	}

	var result LinkCheckResponse
	path := fmt.Sprintf("/api/v1/message/%s/link-check", url.PathEscape(id))
	if err := c.doJSON(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SpamAssassinCheck returns the SpamAssassin summary of the message.
// Only meaningful if SpamAssassin is enabled server-side; a disabled
// checker is reported in the response body, not as an error.
//
// GET /api/v1/message/{id}/sa-check
func (c *Client) SpamAssassinCheck(ctx context.Context, id string) (*SpamAssassinResponse, error) {
	var result SpamAssassinResponse
	path := fmt.Sprintf("/api/v1/message/%s/sa-check", url.PathEscape(id))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
