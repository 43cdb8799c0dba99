package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/The-Apinke/sumpro/internal/core/domain"
	"github.com/The-Apinke/sumpro/internal/core/ports"
)

const (
	qaTemperature = 0.2
	qaTopK        = 5
	// historyDepth messages, each truncated to historyClipRunes, make up
	// the conversational context of a follow-up answer.
	historyDepth     = 4
	historyClipRunes = 200
)

const sectionMissingAnswer = "That section number doesn't exist. Check the structure I showed you earlier to see what's available."

// ChatUseCase answers follow-up questions. Questions referencing a known
// outline entry are routed to a section-focused summary; everything else is
// retrieval-grounded QA over the session's index with recent history.
type ChatUseCase struct {
	generator  ports.TextGenerator
	summarizer *Summarizer
}

func NewChatUseCase(generator ports.TextGenerator, summarizer *Summarizer) *ChatUseCase {
	return &ChatUseCase{generator: generator, summarizer: summarizer}
}

// Answer resolves the question and appends both the question and the answer
// to the session transcript. On failure the transcript is left untouched.
func (uc *ChatUseCase) Answer(ctx context.Context, sess *domain.Session, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", domain.WrapError(domain.ErrInvalidInput, "answer", fmt.Errorf("empty question"))
	}

	answer, err := uc.resolve(ctx, sess, question)
	if err != nil {
		return "", err
	}

	sess.Append(domain.RoleUser, question)
	sess.Append(domain.RoleAssistant, answer)
	return answer, nil
}

func (uc *ChatUseCase) resolve(ctx context.Context, sess *domain.Session, question string) (string, error) {
	// Section routing only engages once an outline exists; before that,
	// "section 2" is just words in a regular question.
	if number, ok := parseSectionRef(question); ok && len(sess.Structure) > 0 {
		if number < 1 || number > len(sess.Structure) {
			return sectionMissingAnswer, nil
		}
		section := sess.Structure[number-1]
		summary, err := uc.summarizer.Summarize(ctx, sess.Index, sess.Mode, section)
		if err != nil {
			return "", fmt.Errorf("summarize section: %w", err)
		}
		return "**Here's what you need to know about that section:**\n\n" + summary, nil
	}
	return uc.answerFromIndex(ctx, sess, question)
}

func (uc *ChatUseCase) answerFromIndex(ctx context.Context, sess *domain.Session, question string) (string, error) {
	hits, err := sess.Index.Search(ctx, question, qaTopK)
	if err != nil {
		return "", fmt.Errorf("search question context: %w", err)
	}
	questionContext := strings.Join(hits, "\n\n")

	// History includes the question being answered, matching how the
	// transcript will read once the answer is appended.
	pending := make([]domain.Message, 0, len(sess.Messages)+1)
	pending = append(pending, sess.Messages...)
	pending = append(pending, domain.Message{Role: domain.RoleUser, Content: question})

	historyPart := ""
	if len(pending) > 1 {
		start := len(pending) - historyDepth
		if start < 0 {
			start = 0
		}
		lines := make([]string, 0, historyDepth)
		for _, msg := range pending[start:] {
			lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, clip(msg.Content, historyClipRunes)))
		}
		historyPart = fmt.Sprintf("History:\n%s\n\n", strings.Join(lines, "\n"))
	}

	prompt := fmt.Sprintf("%sContext:\n%s\n\nQuestion: %s\n\nAnswer:", historyPart, questionContext, question)

	return uc.generator.Generate(ctx, domain.GenerationRequest{Prompt: prompt, Temperature: qaTemperature})
}
