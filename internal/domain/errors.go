package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Workflow error taxonomy. Everything here is returned synchronously to
// the caller with enough context for a specific message; only notification
// failures are swallowed (logged by the usecase, never surfaced).
var (
	// ErrMentorNotFound: the mentor key the client saw no longer matches
	// any row. Recoverable, the client should re-fetch the catalog.
	ErrMentorNotFound = errors.New("mentor not found")

	// ErrCapacityExhausted: the freshly-read row has no available
	// capacity left. The catalog the requester saw was stale.
	ErrCapacityExhausted = errors.New("mentor has no available capacity")

	// ErrDataSourceUnavailable: the record store could not be reached.
	// Surfaced as a generic failure, never retried automatically.
	ErrDataSourceUnavailable = errors.New("record store unavailable")
)

// ValidationError reports the requester fields that were missing or
// malformed, as display-ready messages.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid requester profile: %s", strings.Join(e.Messages, "; "))
}

// DuplicateRequestError is the one-request-per-requester rule violation.
// It carries the prior request's context for display, not as a fatal error.
type DuplicateRequestError struct {
	PriorDate   string
	PriorMentor string
}

func (e *DuplicateRequestError) Error() string {
	return fmt.Sprintf("requester already has a pending request from %s with %s", e.PriorDate, e.PriorMentor)
}
