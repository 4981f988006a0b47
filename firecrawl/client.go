// Package firecrawl provides a Firecrawl-backed implementation of
// newsimport.Extractor. The provider fetches the page, renders it, and
// returns the main content as markdown together with page metadata.
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rferraz/newsimport"
)

// DefaultBaseURL is the hosted Firecrawl API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// DefaultTimeout bounds a single scrape call. Scrape APIs render the target
// page before responding, so latencies in the tens of seconds are normal.
const DefaultTimeout = 30 * time.Second

// Ensure Client implements newsimport.Extractor at compile time.
var _ newsimport.Extractor = (*Client)(nil)

// Client calls the Firecrawl scrape API.
type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Useful for self-hosted instances.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the timeout for scrape calls.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client. The configured timeout is
// applied to it.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a Client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{}
	}
	c.client.Timeout = c.timeout
	return c
}

type scrapeRequest struct {
	URL             string   `json:"url"`
	Formats         []string `json:"formats"`
	OnlyMainContent bool     `json:"onlyMainContent"`
}

type scrapeResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Data    *scrapeData `json:"data"`
}

type scrapeData struct {
	Markdown string         `json:"markdown"`
	Metadata scrapeMetadata `json:"metadata"`
}

type scrapeMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OGImage     string `json:"ogImage"`
}

// Extract requests the main content of rawURL as markdown.
// A missing API key is a configuration error and fails before any network
// call is made.
func (c *Client) Extract(ctx context.Context, rawURL string) (*newsimport.ExtractResult, error) {
	if c.apiKey == "" {
		return nil, newsimport.Errorf(newsimport.EINVALID, "firecrawl API key required")
	}

	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, newsimport.Errorf(newsimport.EINVALID, "invalid article URL %q", rawURL)
	}

	body, err := json.Marshal(scrapeRequest{
		URL:             rawURL,
		Formats:         []string{"markdown"},
		OnlyMainContent: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, newsimport.Errorf(newsimport.EUNAVAILABLE, "firecrawl request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newsimport.Errorf(newsimport.EUNAVAILABLE, "firecrawl response unreadable: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newsimport.Errorf(newsimport.EUNAVAILABLE, "firecrawl HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var sr scrapeResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return nil, newsimport.Errorf(newsimport.EUNAVAILABLE, "firecrawl response malformed: %v", err)
	}

	if !sr.Success || sr.Data == nil {
		msg := sr.Error
		if msg == "" {
			msg = "no data returned"
		}
		return nil, newsimport.Errorf(newsimport.EUNAVAILABLE, "firecrawl extraction failed: %s", msg)
	}

	if strings.TrimSpace(sr.Data.Markdown) == "" {
		return nil, newsimport.Errorf(newsimport.EUNAVAILABLE, "firecrawl returned no content for %s", rawURL)
	}

	return &newsimport.ExtractResult{
		Markdown: sr.Data.Markdown,
		Metadata: newsimport.Metadata{
			Title:       sr.Data.Metadata.Title,
			Description: sr.Data.Metadata.Description,
			OGImage:     sr.Data.Metadata.OGImage,
		},
	}, nil
}
