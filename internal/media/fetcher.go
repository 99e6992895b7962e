// Package media downloads photo images for display. It keeps at most the
// images the caller asks it to retain (the current photo and the next one).
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	maxImageBytes  = 32 << 20
)

// ErrTooLarge is returned when an image exceeds the size limit.
var ErrTooLarge = errors.New("image too large")

// Image is a downloaded image.
type Image struct {
	URL         string
	ContentType string
	Data        []byte
}

// Size returns the image size in bytes.
func (i *Image) Size() int {
	return len(i.Data)
}

type entry struct {
	done   chan struct{}
	cancel context.CancelFunc
	img    *Image
	err    error
}

// Fetcher downloads images over HTTP. Concurrent requests for the same URL
// share one download.
type Fetcher struct {
	client *http.Client
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	entries map[string]*entry
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets the HTTP client used for downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// New creates a fetcher.
func New(opts ...Option) *Fetcher {
	ctx, cancel := context.WithCancel(context.Background())
	f := &Fetcher{
		client:  &http.Client{Timeout: defaultTimeout},
		ctx:     ctx,
		cancel:  cancel,
		entries: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Get returns the image at url, downloading it unless it is already held or
// in flight. A failed download is not kept, so the next Get retries.
func (f *Fetcher) Get(ctx context.Context, url string) (*Image, error) {
	if url == "" {
		return nil, errors.New("empty image url")
	}

	f.mu.Lock()
	e, ok := f.entries[url]
	if !ok {
		e = f.startLocked(url)
	}
	f.mu.Unlock()

	select {
	case <-e.done:
		return e.img, e.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Prefetch starts downloading url in the background.
func (f *Fetcher) Prefetch(url string) {
	if url == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[url]; ok {
		return
	}
	f.startLocked(url)
}

// Retain drops every image whose URL is not in keep, cancelling its
// download if it is still in flight.
func (f *Fetcher) Retain(keep ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for url, e := range f.entries {
		if !slices.Contains(keep, url) {
			e.cancel()
			delete(f.entries, url)
		}
	}
}

// Close abandons in-flight downloads and drops all images.
func (f *Fetcher) Close() {
	f.cancel()
	f.mu.Lock()
	clear(f.entries)
	f.mu.Unlock()
}

func (f *Fetcher) startLocked(url string) *entry {
	ctx, cancel := context.WithCancel(f.ctx)
	e := &entry{done: make(chan struct{}), cancel: cancel}
	f.entries[url] = e
	go f.load(ctx, url, e)
	return e
}

func (f *Fetcher) load(ctx context.Context, url string, e *entry) {
	defer e.cancel()
	e.img, e.err = f.download(ctx, url)
	if e.err != nil {
		if ctx.Err() != nil {
			slog.Debug("image download abandoned", "url", url)
		} else {
			slog.Warn("image download failed", "url", url, "error", e.err)
		}
		f.mu.Lock()
		if f.entries[url] == e {
			delete(f.entries, url)
		}
		f.mu.Unlock()
	}
	close(e.done)
}

func (f *Fetcher) download(ctx context.Context, url string) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, ErrTooLarge
	}

	slog.Debug("image downloaded", "url", url, "bytes", len(data))
	return &Image{
		URL:         url,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
