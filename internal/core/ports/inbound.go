package ports

import (
	"context"

	"github.com/The-Apinke/sumpro/internal/core/domain"
)

// DocumentAnalyzer is the inbound contract for starting a new analysis:
// quota check, extraction, indexing and the initial mode summary.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResult, error)
}

// WidgetGenerator produces auxiliary artifacts from an analyzed session.
type WidgetGenerator interface {
	Generate(ctx context.Context, sess *domain.Session, widget domain.Widget) (*domain.WidgetResult, error)
}

// ConversationService answers free-form follow-up questions against the
// session's index and recent history.
type ConversationService interface {
	Answer(ctx context.Context, sess *domain.Session, question string) (string, error)
}
