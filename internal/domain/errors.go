package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimitExceeded is returned when the upstream API throttled a call
	// and the single bounded retry was also throttled
	ErrRateLimitExceeded = errors.New("upstream rate limit exceeded")

	// ErrParticipantNotFound is returned when the target player did not take
	// part in the requested match
	ErrParticipantNotFound = errors.New("participant not found in match")

	// ErrPlayerNotFound is returned when a player is not in the database
	ErrPlayerNotFound = errors.New("player not found")

	// ErrRebuildInProgress is returned when an aggregate rebuild is requested
	// while a previous run is still in flight
	ErrRebuildInProgress = errors.New("aggregate rebuild already in progress")

	// ErrIngestQueueFull is returned when an async ingestion submission is
	// rejected because the worker queue is at capacity
	ErrIngestQueueFull = errors.New("ingestion queue full")
)

// UpstreamError represents a non-retryable failure talking to the upstream
// game-data API: transport errors, malformed payloads, and any non-2xx
// response other than throttling
type UpstreamError struct {
	// StatusCode is the HTTP status code, or 0 for transport/decode failures
	StatusCode int
	// URL is the request URL that failed
	URL string
	// Err is the underlying cause, if any
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream error (status %d) calling %s: %v", e.StatusCode, e.URL, e.Err)
	}
	return fmt.Sprintf("upstream error (status %d) calling %s", e.StatusCode, e.URL)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
