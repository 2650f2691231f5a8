package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/singleflight"
)

// Summary is the wire payload returned by a page-summary endpoint.
type Summary struct {
	Title       string `json:"title"`
	Lang        string `json:"lang"`
	Extract     string `json:"extract"`
	ExtractHTML string `json:"extract_html"`
}

// Client fetches page summaries from a REST endpoint; the content-variant
// code selects the first path segment of each request. Concurrent fetches for
// the same language and title collapse into a single request. Safe for
// concurrent use.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	acceptHeader string
	group        singleflight.Group
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithAcceptLanguage sets the Accept-Language value sent with every request,
// typically a header synthesized by variant.SynthesizeAcceptLanguage.
func WithAcceptLanguage(header string) ClientOption {
	return func(c *Client) {
		c.acceptHeader = header
	}
}

// NewClient creates a summary client for the given base URL. Requests are
// issued to {baseURL}/{lang}/page/summary/{title}.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the summary of title in the given content-variant language.
// The HTML extract, when present, is reduced to sanitized plain text and
// replaces the Extract field.
func (c *Client) Fetch(ctx context.Context, lang, title string) (Summary, error) {
	if lang == "" {
		return Summary{}, ErrEmptyLang
	}
	if title == "" {
		return Summary{}, ErrEmptyTitle
	}

	key := lang + "/" + title
	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.fetch(ctx, lang, title)
	})
	if err != nil {
		return Summary{}, err
	}
	return v.(Summary), nil
}

func (c *Client) fetch(ctx context.Context, lang, title string) (Summary, error) {
	endpoint := fmt.Sprintf("%s/%s/page/summary/%s", c.baseURL, url.PathEscape(lang), url.PathEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Summary{}, err
	}
	req.Header.Set("Accept", "application/json")
	if c.acceptHeader != "" {
		req.Header.Set("Accept-Language", c.acceptHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Summary{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Summary{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return Summary{}, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var s Summary
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return Summary{}, errors.Join(ErrDecodeFailed, err)
	}

	if s.ExtractHTML != "" {
		s.Extract = plainText(s.ExtractHTML)
		s.ExtractHTML = ""
	}
	if s.Lang == "" {
		s.Lang = lang
	}
	return s, nil
}

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

// plainText strips all HTML from s and unescapes the remaining entities.
func plainText(s string) string {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
