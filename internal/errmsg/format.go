// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/gesture/internal/flickr"
	"github.com/llehouerou/gesture/internal/provider"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Slideshow
	OpSearch Op = "search photos"

	// Photos
	OpImageFetch  Op = "download photo"
	OpImageRender Op = "display photo"

	// Search form preferences
	OpPrefsLoad  Op = "load search preferences"
	OpPrefsSave  Op = "save search preferences"
	OpRecentLoad Op = "load recent searches"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %s", op, Describe(err))
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %s", op, context, Describe(err))
}

// Describe explains err in user terms. Provider errors are reduced to
// their kind; anything else is shown as is.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, flickr.ErrMissingAPIKey) {
		return "no Flickr API key configured (set " + apiKeyHint + ")"
	}
	kind, ok := provider.KindOf(err)
	if !ok {
		return err.Error()
	}
	switch kind {
	case provider.KindEmpty:
		return "no photos found"
	case provider.KindMalformed:
		return "the photo service returned unusable data"
	default:
		var perr *provider.Error
		if errors.As(err, &perr) && perr.Err != nil {
			return "the photo service is unavailable: " + perr.Err.Error()
		}
		return "the photo service is unavailable"
	}
}

// IsNotice reports whether err is an expected outcome to show as a notice
// rather than an error.
func IsNotice(err error) bool {
	kind, ok := provider.KindOf(err)
	return ok && kind == provider.KindEmpty
}

const apiKeyHint = "FLICKR_API_KEY or flickr.api_key"
