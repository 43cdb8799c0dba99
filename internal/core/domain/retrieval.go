package domain

import (
	"context"
	"io"
)

// SimilarityIndex is a nearest-neighbour index over the chunks of one
// analyzed document set. An index is owned by exactly one session and is
// discarded, never updated, when a new analysis starts.
type SimilarityIndex interface {
	// Search returns up to k chunk texts ordered by similarity to query.
	Search(ctx context.Context, query string, k int) ([]string, error)
	Len() int
}

// GenerationRequest is the full parameter set sent to the text-completion
// backend. MaxTokens == 0 leaves the backend default in place.
type GenerationRequest struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

type AnalyzeRequest struct {
	// Identity is the raw client signal (typically the User-Agent header)
	// the quota limiter keys on. Empty means the sentinel identity.
	Identity  string
	Mode      ModeName
	Documents []io.Reader
}

type AnalyzeResult struct {
	Session      *Session
	QuotaMessage string
}
