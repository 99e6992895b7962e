package app

import (
	"context"

	"github.com/llehouerou/gesture/internal/media"
)

// ImageFetcher downloads photos. Implemented by *media.Fetcher.
type ImageFetcher interface {
	Get(ctx context.Context, url string) (*media.Image, error)
	Prefetch(url string)
	Retain(keep ...string)
}

// ClipboardWriter copies text to the system clipboard.
type ClipboardWriter func(text string) error

var _ ImageFetcher = (*media.Fetcher)(nil)
