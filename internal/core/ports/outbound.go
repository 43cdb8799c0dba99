package ports

import (
	"context"
	"io"

	"github.com/The-Apinke/sumpro/internal/core/domain"
)

// AnalysisQuota gates entry to the analysis pipeline per identity per day.
type AnalysisQuota interface {
	Check(identity string) (allowed bool, message string)
}

// TextExtractor converts uploaded PDF byte streams into one concatenated
// text blob, documents joined by a newline.
type TextExtractor interface {
	Extract(ctx context.Context, docs []io.Reader) (string, error)
}

// Chunker splits extracted text into overlapping, size-bounded chunks.
type Chunker interface {
	Split(text string) []string
}

// Embedder builds vectors for chunks and query text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// IndexBuilder embeds a chunk sequence and produces the session's
// similarity index.
type IndexBuilder interface {
	Build(ctx context.Context, chunks []string) (domain.SimilarityIndex, error)
}

// TextGenerator is the opaque text-completion backend.
type TextGenerator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)
}

// SessionStore keeps live sessions addressable by id.
type SessionStore interface {
	Get(id string) (*domain.Session, error)
	Put(sess *domain.Session)
	Delete(id string)
}
