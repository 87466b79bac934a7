// Package encora fetches a user's recording collection from the Encora API.
package encora

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/faizmokh/curtaincall/internal/catalog"
	"github.com/faizmokh/curtaincall/internal/version"
)

const (
	// DefaultRetryAfter is used when a 429 response carries no usable delay.
	DefaultRetryAfter = 5 * time.Second

	// DefaultMaxRateLimitWaits bounds consecutive 429 responses for one page.
	DefaultMaxRateLimitWaits = 20
)

// Client pages through the collection endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	perPage    int
	maxWaits   int
	sleep      func(ctx context.Context, d time.Duration) error
	notify     func(message string)
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSleep replaces the rate-limit wait, mainly for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) { c.sleep = sleep }
}

// WithNotify receives human-readable progress messages.
func WithNotify(notify func(message string)) Option {
	return func(c *Client) { c.notify = notify }
}

// WithMaxRateLimitWaits bounds how often a single page is retried after 429.
func WithMaxRateLimitWaits(n int) Option {
	return func(c *Client) { c.maxWaits = n }
}

// NewClient creates a client for the collection endpoint at baseURL.
func NewClient(baseURL, apiKey string, perPage int, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		perPage:    perPage,
		maxWaits:   DefaultMaxRateLimitWaits,
		sleep:      sleepContext,
		notify:     func(string) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type page struct {
	Data        []catalog.Entry `json:"data"`
	NextPageURL *string         `json:"next_page_url"`
}

// StatusError reports a non-success response from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("encora: HTTP %d: %s", e.StatusCode, e.Body)
}

// Collection fetches every page, following next_page_url until it is empty.
func (c *Client) Collection(ctx context.Context) ([]catalog.Entry, error) {
	var results []catalog.Entry

	next := c.baseURL
	for pageNum := 1; next != ""; pageNum++ {
		c.notify(fmt.Sprintf("Requesting page %d...", pageNum))

		p, err := c.fetchPage(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", pageNum, err)
		}
		results = append(results, p.Data...)

		next = ""
		if p.NextPageURL != nil {
			next = *p.NextPageURL
		}
	}

	return results, nil
}

func (c *Client) fetchPage(ctx context.Context, rawURL string) (page, error) {
	target, err := c.pageURL(rawURL)
	if err != nil {
		return page{}, err
	}

	for waits := 0; ; waits++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return page{}, err
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", version.UserAgent())

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return page{}, err
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			delay := retryAfter(resp.Header)
			drain(resp)
			if waits >= c.maxWaits {
				return page{}, &StatusError{StatusCode: resp.StatusCode, Body: "rate limit persisted"}
			}
			c.notify(fmt.Sprintf("Rate limit hit. Waiting %s...", delay))
			if err := c.sleep(ctx, delay); err != nil {
				return page{}, err
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return page{}, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		}

		var p page
		err = json.NewDecoder(resp.Body).Decode(&p)
		resp.Body.Close()
		if err != nil {
			return page{}, fmt.Errorf("decode page: %w", err)
		}
		return p, nil
	}
}

// pageURL pins per_page on every request, including server-provided next links.
func (c *Client) pageURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse page url: %w", err)
	}
	if c.perPage > 0 {
		q := u.Query()
		q.Set("per_page", strconv.Itoa(c.perPage))
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func retryAfter(h http.Header) time.Duration {
	for _, name := range []string{"Retry-After", "RetryAfter"} {
		raw := strings.TrimSpace(h.Get(name))
		if raw == "" {
			continue
		}
		if seconds, err := strconv.Atoi(raw); err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return DefaultRetryAfter
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
