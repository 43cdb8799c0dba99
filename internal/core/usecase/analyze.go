// Package usecase implements the analysis pipeline and the conversational
// follow-ups it unlocks.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/The-Apinke/sumpro/internal/core/domain"
	"github.com/The-Apinke/sumpro/internal/core/ports"
)

// AnalyzeUseCase runs the full pipeline for a new analysis: quota check,
// text extraction, chunking, index construction and the opening summary.
// The session is committed to the store only once every stage succeeded;
// a failure anywhere leaves no partial session behind.
type AnalyzeUseCase struct {
	quota      ports.AnalysisQuota
	extractor  ports.TextExtractor
	chunker    ports.Chunker
	indexer    ports.IndexBuilder
	summarizer *Summarizer
	sessions   ports.SessionStore
}

func NewAnalyzeUseCase(
	quota ports.AnalysisQuota,
	extractor ports.TextExtractor,
	chunker ports.Chunker,
	indexer ports.IndexBuilder,
	summarizer *Summarizer,
	sessions ports.SessionStore,
) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		quota:      quota,
		extractor:  extractor,
		chunker:    chunker,
		indexer:    indexer,
		summarizer: summarizer,
		sessions:   sessions,
	}
}

func (uc *AnalyzeUseCase) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResult, error) {
	// Validated before the quota check so a bad upload never burns an
	// allowance slot.
	if len(req.Documents) == 0 {
		return nil, domain.WrapError(domain.ErrEmptyInput, "analyze", errors.New("no documents uploaded"))
	}
	if _, err := domain.ParseModeName(string(req.Mode)); err != nil {
		return nil, err
	}

	allowed, quotaMessage := uc.quota.Check(req.Identity)
	if !allowed {
		return nil, domain.WrapError(domain.ErrQuotaExceeded, "check analysis quota", errors.New(quotaMessage))
	}

	text, err := uc.extractor.Extract(ctx, req.Documents)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, domain.WrapError(domain.ErrEmptyInput, "analyze", errors.New("no extractable text"))
	}

	chunks := uc.chunker.Split(text)
	if len(chunks) == 0 {
		return nil, domain.WrapError(domain.ErrEmptyInput, "analyze", errors.New("no chunks produced"))
	}

	index, err := uc.indexer.Build(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	summary, err := uc.summarizer.Summarize(ctx, index, req.Mode, "")
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	sess := domain.NewSession(uuid.NewString())
	sess.Mode = req.Mode
	sess.Chunks = chunks
	sess.Index = index
	sess.Summary = summary
	sess.Append(domain.RoleAssistant, fmt.Sprintf("**%s Analysis**\n\n%s", req.Mode.DisplayName(), summary))
	uc.sessions.Put(sess)

	return &domain.AnalyzeResult{Session: sess, QuotaMessage: quotaMessage}, nil
}
