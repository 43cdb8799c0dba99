// Package memindex holds a session's chunk embeddings in process memory and
// answers similarity queries over them. Indexes live and die with their
// session; nothing is persisted.
package memindex

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/The-Apinke/sumpro/internal/core/domain"
	"github.com/The-Apinke/sumpro/internal/core/ports"
)

const defaultTopK = 4

type Builder struct {
	embedder ports.Embedder
}

func NewBuilder(embedder ports.Embedder) *Builder {
	return &Builder{embedder: embedder}
}

func (b *Builder) Build(ctx context.Context, chunks []string) (domain.SimilarityIndex, error) {
	vectors, err := b.embedder.Embed(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embeddings/chunks mismatch: %d/%d", len(vectors), len(chunks))
	}

	entries := make([]entry, len(chunks))
	for i, chunk := range chunks {
		entries[i] = entry{
			text:   chunk,
			vector: vectors[i],
			norm:   norm(vectors[i]),
		}
	}
	return &Index{embedder: b.embedder, entries: entries}, nil
}

type entry struct {
	text   string
	vector []float32
	norm   float64
}

type Index struct {
	embedder ports.Embedder
	entries  []entry
}

// Search embeds the query and returns the texts of the k most similar chunks
// by cosine similarity. Ties keep insertion order.
func (idx *Index) Search(ctx context.Context, query string, k int) ([]string, error) {
	if len(idx.entries) == 0 {
		return nil, nil
	}
	if k <= 0 {
		k = defaultTopK
	}

	queryVector, err := idx.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	queryNorm := norm(queryVector)

	type scored struct {
		pos   int
		score float64
	}
	ranked := make([]scored, len(idx.entries))
	for i, e := range idx.entries {
		ranked[i] = scored{pos: i, score: cosine(queryVector, queryNorm, e.vector, e.norm)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	results := make([]string, k)
	for i := 0; i < k; i++ {
		results[i] = idx.entries[ranked[i].pos].text
	}
	return results, nil
}

func (idx *Index) Len() int {
	return len(idx.entries)
}

func norm(vector []float32) float64 {
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

func cosine(a []float32, aNorm float64, b []float32, bNorm float64) float64 {
	if aNorm == 0 || bNorm == 0 || len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (aNorm * bNorm)
}
