package usecase

import (
	"context"
	"fmt"

	"github.com/The-Apinke/sumpro/internal/core/domain"
	"github.com/The-Apinke/sumpro/internal/core/ports"
)

const (
	summaryTemperature = 0.5
	summaryMaxTokens   = 2000
)

// Summarizer produces the mode-shaped document summary from retrieved
// context. With a non-empty section it narrows both retrieval and the
// instruction to that section.
type Summarizer struct {
	generator ports.TextGenerator
}

func NewSummarizer(generator ports.TextGenerator) *Summarizer {
	return &Summarizer{generator: generator}
}

func (s *Summarizer) Summarize(ctx context.Context, index domain.SimilarityIndex, mode domain.ModeName, section string) (string, error) {
	def, ok := modeDefinitions[mode]
	if !ok {
		return "", domain.WrapError(domain.ErrInvalidInput, "summarize", fmt.Errorf("unknown mode %q", mode))
	}

	promptContext, err := assembleContext(ctx, index, def.queries, section)
	if err != nil {
		return "", fmt.Errorf("assemble context: %w", err)
	}

	sectionNote := ""
	if section != "" {
		sectionNote = fmt.Sprintf("\nFocus on: %s\n", section)
	}
	prompt := fmt.Sprintf("%s%s\n\nContext:\n%s\n\nSummary:", def.template, sectionNote, promptContext)

	return s.generator.Generate(ctx, domain.GenerationRequest{
		Prompt:      prompt,
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
}
