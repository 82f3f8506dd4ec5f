package search

import (
	"errors"
	"fmt"
)

// Every error here is terminal for its search invocation: the caller must
// re-issue the query, there is no retry or backoff.
var (
	// ErrMissingAPIKey means the provider credential was never configured.
	// Search stays disabled until it is.
	ErrMissingAPIKey = errors.New("YouTube API key is not configured")

	// ErrNoResults means the search call matched nothing.
	ErrNoResults = errors.New("No videos found for this search query")

	// ErrEmptyQuery rejects blank queries before any provider call.
	ErrEmptyQuery = errors.New("search query is empty")
)

// ProviderError carries the provider's own message so it can be surfaced to
// the user verbatim.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("YouTube API Error: %s", e.Message)
}
