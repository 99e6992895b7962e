// Package flickr implements the slideshow result provider on top of the
// Flickr REST API.
package flickr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/llehouerou/gesture/internal/photo"
	"github.com/llehouerou/gesture/internal/provider"
)

const (
	DefaultBaseURL = "https://www.flickr.com"
	userAgent      = "Gesture/0.1 (https://github.com/llehouerou/gesture)"
	searchMethod   = "flickr.photos.search"

	// Retry configuration
	maxRetries   = 3
	initialDelay = 2 * time.Second
	maxDelay     = 30 * time.Second
)

// ErrMissingAPIKey is returned by Fetch when the client has no API key.
var ErrMissingAPIKey = errors.New("flickr api key not configured")

// Client searches Flickr for photos.
type Client struct {
	httpClient   *http.Client
	apiKey       string
	baseURL      string
	initialDelay time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API host.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetryDelay sets the first backoff delay.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.initialDelay = d
	}
}

// NewClient creates a new Flickr API client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		apiKey:       apiKey,
		baseURL:      DefaultBaseURL,
		initialDelay: initialDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch searches photos by relevance and returns them in result order.
func (c *Client) Fetch(ctx context.Context, query string, pageSize int) ([]photo.Item, error) {
	if c.apiKey == "" {
		return nil, provider.Unavailable(query, ErrMissingAPIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query, pageSize), http.NoBody)
	if err != nil {
		return nil, provider.Unavailable(query, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	slog.Debug("flickr search", "query", query, "per_page", pageSize)

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return nil, provider.Unavailable(query, fmt.Errorf("execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, provider.Unavailable(query, fmt.Errorf("API status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, provider.Malformed(query, fmt.Errorf("decode response: %w", err))
	}

	if result.Stat != "ok" {
		return nil, provider.Unavailable(query, fmt.Errorf("API error %d: %s", result.Code, result.Message))
	}
	if result.Photos == nil {
		return nil, provider.Malformed(query, errors.New("response has no photos"))
	}
	if len(result.Photos.Photos) == 0 {
		return nil, provider.Empty(query)
	}

	items := convertPhotos(result.Photos.Photos)
	if len(items) == 0 {
		return nil, provider.Malformed(query, photo.ErrNoVariant)
	}

	slog.Info("flickr search done", "query", query, "returned", len(result.Photos.Photos), "usable", len(items))
	return items, nil
}

func (c *Client) searchURL(query string, pageSize int) string {
	extras := []string{"owner_name"}
	for _, s := range sizeSuffixes {
		extras = append(extras, "url_"+s.suffix)
	}

	params := url.Values{}
	params.Set("method", searchMethod)
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	params.Set("nojsoncallback", "1")
	params.Set("sort", "relevance")
	params.Set("content_type", "1")
	params.Set("media", "photos")
	params.Set("extras", strings.Join(extras, ","))
	params.Set("per_page", strconv.Itoa(pageSize))
	params.Set("text", query)

	return fmt.Sprintf("%s/services/rest?%s", c.baseURL, params.Encode())
}

// doRequestWithRetry executes an HTTP request with exponential backoff retry.
// Retries on 5xx errors and network errors.
func (c *Client) doRequestWithRetry(req *http.Request) (*http.Response, error) {
	var lastErr error
	delay := c.initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(req.Context(), delay); err != nil {
				return nil, err
			}
			delay = min(delay*2, maxDelay)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if req.Context().Err() != nil {
				return nil, err
			}
			lastErr = err
			continue
		}

		// Success or client error (4xx) - don't retry
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned status %d", resp.StatusCode)
		slog.Warn("flickr request failed, retrying", "attempt", attempt+1, "error", lastErr)
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", maxRetries+1, lastErr)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// convertPhotos turns raw API photos into items, dropping photos that carry
// no usable size.
func convertPhotos(raw []rawPhoto) []photo.Item {
	items := make([]photo.Item, 0, len(raw))
	for _, p := range raw {
		it := convertPhoto(p)
		if _, err := photo.Select(it); err != nil {
			slog.Warn("skipping photo without sizes", "id", it.ID)
			continue
		}
		items = append(items, it)
	}
	return items
}

func convertPhoto(p rawPhoto) photo.Item {
	id := p.str("id")
	owner := p.str("owner")

	label := p.str("ownername")
	if label == "" {
		label = owner
	}

	it := photo.Item{
		ID:               id,
		Title:            p.str("title"),
		AttributionLabel: label,
		AttributionURL:   SourceURL(owner, id),
	}

	for _, s := range sizeSuffixes {
		u := p.str("url_" + s.suffix)
		w, okW := p.num("width_" + s.suffix)
		h, okH := p.num("height_" + s.suffix)
		if u == "" || !okW || !okH {
			continue
		}
		it.Variants = append(it.Variants, photo.Variant{
			Bucket: s.bucket,
			Width:  w,
			Height: h,
			URL:    u,
		})
	}
	return it
}

// SourceURL returns the public page of a photo.
func SourceURL(owner, id string) string {
	return fmt.Sprintf("https://flickr.com/photos/%s/%s", owner, id)
}

// Verify Client implements provider.Provider at compile time.
var _ provider.Provider = (*Client)(nil)
