package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/The-Apinke/sumpro/internal/core/domain"
	"github.com/The-Apinke/sumpro/internal/core/ports"
)

const widgetTemperature = 0.4

// WidgetUseCase generates the auxiliary artifacts for an analyzed session.
// Each generated artifact is also appended to the session transcript, the
// way the opening summary is.
type WidgetUseCase struct {
	generator ports.TextGenerator
}

func NewWidgetUseCase(generator ports.TextGenerator) *WidgetUseCase {
	return &WidgetUseCase{generator: generator}
}

func (uc *WidgetUseCase) Generate(ctx context.Context, sess *domain.Session, widget domain.Widget) (*domain.WidgetResult, error) {
	if !sess.Mode.Supports(widget) {
		return nil, domain.WrapError(domain.ErrInvalidInput, "generate widget",
			fmt.Errorf("widget %q not available in mode %q", widget, sess.Mode))
	}

	switch widget {
	case domain.WidgetEmail:
		return uc.email(ctx, sess)
	case domain.WidgetQuestions:
		return uc.questions(ctx, sess)
	case domain.WidgetConcepts:
		return uc.concepts(ctx, sess)
	case domain.WidgetStructure:
		return uc.structure(ctx, sess)
	default:
		return nil, domain.WrapError(domain.ErrInvalidInput, "generate widget",
			fmt.Errorf("unknown widget %q", widget))
	}
}

func (uc *WidgetUseCase) email(ctx context.Context, sess *domain.Session) (*domain.WidgetResult, error) {
	hits, err := sess.Index.Search(ctx, "decisions actions", 3)
	if err != nil {
		return nil, fmt.Errorf("search email context: %w", err)
	}
	emailContext := strings.Join(hits, "\n")

	prompt := fmt.Sprintf(`Draft professional follow-up email:

Summary: %s
Context: %s

Include: recap, action items with owners, next steps

Email:`, clip(sess.Summary, 500), clip(emailContext, 800))

	email, err := uc.generator.Generate(ctx, domain.GenerationRequest{Prompt: prompt, Temperature: widgetTemperature})
	if err != nil {
		return nil, fmt.Errorf("generate email: %w", err)
	}

	content := "**Here's a draft email you can use:**\n\n" + email
	sess.Append(domain.RoleAssistant, content)
	return &domain.WidgetResult{Widget: domain.WidgetEmail, Content: content}, nil
}

var questionInstructions = map[domain.ModeName]string{
	domain.ModeProfessional: "Generate 3 clarifying questions probing decisions and assumptions",
	domain.ModeTech:         "Generate 3 deep technical questions about implementation and approaches",
	domain.ModeDigest:       "Generate 3 follow-up questions about implications and applications",
}

func (uc *WidgetUseCase) questions(ctx context.Context, sess *domain.Session) (*domain.WidgetResult, error) {
	prompt := fmt.Sprintf("%s\n\nSummary: %s\n\nOne per line, no numbering:\n",
		questionInstructions[sess.Mode], clip(sess.Summary, 400))

	response, err := uc.generator.Generate(ctx, domain.GenerationRequest{Prompt: prompt, Temperature: widgetTemperature})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	var questions []string
	for _, line := range strings.Split(response, "\n") {
		question := strings.TrimLeft(strings.TrimSpace(line), "0123456789.-) ")
		if question == "" {
			continue
		}
		questions = append(questions, question)
		if len(questions) == 3 {
			break
		}
	}

	var b strings.Builder
	b.WriteString("**Here are some questions to help you think deeper:**\n\n")
	for i, q := range questions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + q)
	}
	content := b.String()
	sess.Append(domain.RoleAssistant, content)
	return &domain.WidgetResult{Widget: domain.WidgetQuestions, Content: content, Items: questions}, nil
}

func (uc *WidgetUseCase) concepts(ctx context.Context, sess *domain.Session) (*domain.WidgetResult, error) {
	hits, err := sess.Index.Search(ctx, "key concepts", 5)
	if err != nil {
		return nil, fmt.Errorf("search concepts context: %w", err)
	}
	conceptContext := strings.Join(hits, "\n")

	prompt := fmt.Sprintf("List 3-5 key concepts with brief explanations:\n\nContext: %s\n\nFormat: Concept: Explanation\n",
		clip(conceptContext, 1000))

	concepts, err := uc.generator.Generate(ctx, domain.GenerationRequest{Prompt: prompt, Temperature: widgetTemperature})
	if err != nil {
		return nil, fmt.Errorf("generate concepts: %w", err)
	}

	content := "**The key concepts you need to know:**\n\n" + concepts
	sess.Append(domain.RoleAssistant, content)
	return &domain.WidgetResult{Widget: domain.WidgetConcepts, Content: content}, nil
}

func (uc *WidgetUseCase) structure(ctx context.Context, sess *domain.Session) (*domain.WidgetResult, error) {
	if len(sess.Structure) == 0 {
		outline, err := uc.generateStructure(ctx, sess)
		if err != nil {
			return nil, err
		}
		sess.Structure = outline
	}

	if len(sess.Structure) == 0 {
		content := "Couldn't find a clear structure in this document. But you can still ask me specific questions about it."
		sess.Append(domain.RoleAssistant, content)
		return &domain.WidgetResult{Widget: domain.WidgetStructure, Content: content}, nil
	}

	content := "**Document Structure:**\n\n" + strings.Join(sess.Structure, "\n") +
		"\n\n*Want to explore a section? Just ask - for example, 'tell me about section 2'*"
	sess.Append(domain.RoleAssistant, content)
	return &domain.WidgetResult{Widget: domain.WidgetStructure, Content: content, Items: sess.Structure}, nil
}

func (uc *WidgetUseCase) generateStructure(ctx context.Context, sess *domain.Session) ([]string, error) {
	hits, err := sess.Index.Search(ctx, "table of contents chapters", 3)
	if err != nil {
		return nil, fmt.Errorf("search structure context: %w", err)
	}
	structureContext := strings.Join(hits, "\n\n")

	prompt := fmt.Sprintf("Identify main sections. Return numbered list:\n1. [Title] - [Description]\n\nContext: %s\n\nMax 8:\n",
		clip(structureContext, 1500))

	response, err := uc.generator.Generate(ctx, domain.GenerationRequest{Prompt: prompt, Temperature: widgetTemperature})
	if err != nil {
		return nil, fmt.Errorf("generate structure: %w", err)
	}

	// Only lines whose trimmed form starts with their section number count
	// as outline entries; preamble or commentary from the model is dropped.
	var outline []string
	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] < '0' || trimmed[0] > '9' {
			continue
		}
		outline = append(outline, trimmed)
	}
	return outline, nil
}
