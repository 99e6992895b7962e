// Package provider defines the contract between the slideshow and the
// external image index that feeds it.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/llehouerou/gesture/internal/photo"
)

// Provider fetches an ordered page of search results.
type Provider interface {
	// Fetch returns up to pageSize items matching query. Each call is an
	// independent request; implementations keep no state between calls.
	Fetch(ctx context.Context, query string, pageSize int) ([]photo.Item, error)
}

// Kind classifies a provider failure.
type Kind int

const (
	// KindUnavailable covers transport failures and error responses.
	KindUnavailable Kind = iota
	// KindMalformed means the response could not be understood.
	KindMalformed
	// KindEmpty means the query matched nothing.
	KindEmpty
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "Unavailable"
	case KindMalformed:
		return "Malformed"
	case KindEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Sentinels matched by Error.Is.
var (
	ErrUnavailable = errors.New("provider unavailable")
	ErrMalformed   = errors.New("malformed provider response")
	ErrEmptyResult = errors.New("no results")
)

// Error is returned by providers for every failed fetch.
type Error struct {
	Kind  Kind
	Query string
	Err   error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindEmpty:
		return fmt.Sprintf("no results for %q", e.Query)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.sentinel(), e.Err)
	default:
		return e.sentinel().Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindMalformed:
		return ErrMalformed
	case KindEmpty:
		return ErrEmptyResult
	default:
		return ErrUnavailable
	}
}

// Unavailable wraps err as a KindUnavailable failure.
func Unavailable(query string, err error) *Error {
	return &Error{Kind: KindUnavailable, Query: query, Err: err}
}

// Malformed wraps err as a KindMalformed failure.
func Malformed(query string, err error) *Error {
	return &Error{Kind: KindMalformed, Query: query, Err: err}
}

// Empty reports that query matched nothing.
func Empty(query string) *Error {
	return &Error{Kind: KindEmpty, Query: query}
}

// KindOf returns the kind of a provider error, and false when err is not
// one.
func KindOf(err error) (Kind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
