package marketplace

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates a transport-level failure: the API could not
	// be reached or did not produce a response in time.
	ErrUnavailable = errors.New("marketplace is unreachable")

	// ErrRejected indicates the API answered with a non-2xx status.
	// Use errors.As with *RejectedError to read the backend message.
	ErrRejected = errors.New("marketplace rejected the request")
)

// RejectedError carries the backend refusal details. Message is taken from
// the response body when present, otherwise a generic fallback.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("marketplace rejected the request (%d): %s", e.Status, e.Message)
}

// Is makes errors.Is(err, ErrRejected) match any rejection.
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

// UserMessage returns the text suitable for a user-facing notification.
// Both error classes collapse into one message; no recovery path
// differentiates them.
func UserMessage(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) && rejected.Message != "" {
		return rejected.Message
	}
	if errors.Is(err, ErrUnavailable) {
		return "The service is temporarily unavailable. Please try again."
	}
	if err != nil {
		return "An unknown error occurred"
	}
	return ""
}
