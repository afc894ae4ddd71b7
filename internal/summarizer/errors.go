package summarizer

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Kind classifies summarization failures.
type Kind string

const (
	// KindExhausted means a transient failure persisted through every attempt.
	KindExhausted Kind = "retry_exhausted"
	// KindPermanent means the failure is not worth retrying (bad credential,
	// malformed request, oversized transcript).
	KindPermanent Kind = "permanent"
)

// Error wraps the last underlying cause of a failed summarization.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("summarize (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// transient reports whether err is expected to resolve on retry. Rate limits,
// server errors, and network timeouts qualify; everything else fails fast.
func transient(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests,
			apiErr.Code == http.StatusRequestTimeout,
			apiErr.Code >= http.StatusInternalServerError:
			return true
		default:
			return false
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	// Fallback for providers that surface quota errors as opaque strings.
	msg := err.Error()
	for _, marker := range []string{"429", "quota", "RESOURCE_EXHAUSTED", "connection reset", "unexpected EOF"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
