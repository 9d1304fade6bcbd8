package schedule

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultSourceURL is the published CSV export of the schedule sheet
const DefaultSourceURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vTvjmZv4KBVS3ExQ2Dhsc_18xHrMfzuAHk5afjdel9MXqLGjuxtU1rvs3VnpmjIxzj7Ngh-F49xa99t/pub?output=csv"

// Client handles HTTP requests to the published schedule sheet
type Client struct {
	httpClient *http.Client
	sourceURL  string
}

// Option customizes a Client
type Option func(*Client)

// WithSourceURL points the client at a different published CSV document
func WithSourceURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.sourceURL = url
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new schedule client
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		sourceURL: DefaultSourceURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SourceURL returns the document this client reads from
func (c *Client) SourceURL() string {
	return c.sourceURL
}

// FetchCourses downloads the sheet and parses it into courses
func (c *Client) FetchCourses(ctx context.Context) ([]Course, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sourceURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "dersctl/1.0")
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", c.sourceURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, c.sourceURL)
	}

	// Google answers with a regular web page instead of CSV when the sheet
	// is no longer published. Surface its title so the log says why.
	if mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type")); mediaType == "text/html" {
		doc, err := goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("source returned HTML instead of CSV: %w", err)
		}
		title := strings.TrimSpace(doc.Find("title").First().Text())
		return nil, fmt.Errorf("source returned an HTML page (%q) instead of CSV", title)
	}

	courses, err := ParseCourses(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule CSV: %w", err)
	}
	return courses, nil
}
