package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/The-Apinke/sumpro/internal/core/domain"
)

const (
	// retrieveTopK is the fan-out per retrieval query when assembling a
	// summary context.
	retrieveTopK = 4
	// contextChunkCap bounds the deduplicated chunk list fed into a prompt.
	contextChunkCap = 20
)

// assembleContext runs each query against the index and merges the hits into
// one prompt context: first-seen order, duplicates dropped, capped at
// contextChunkCap chunks. A non-empty section is prefixed to every query to
// steer retrieval toward that part of the document.
func assembleContext(ctx context.Context, index domain.SimilarityIndex, queries []string, section string) (string, error) {
	seen := make(map[string]struct{})
	var merged []string

	for _, query := range queries {
		if section != "" {
			query = fmt.Sprintf("%s %s", section, query)
		}
		hits, err := index.Search(ctx, query, retrieveTopK)
		if err != nil {
			return "", fmt.Errorf("search %q: %w", query, err)
		}
		for _, hit := range hits {
			if _, ok := seen[hit]; ok {
				continue
			}
			seen[hit] = struct{}{}
			merged = append(merged, hit)
		}
	}

	if len(merged) > contextChunkCap {
		merged = merged[:contextChunkCap]
	}
	return strings.Join(merged, "\n\n"), nil
}

// clip truncates s to at most n runes.
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
