package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/The-Apinke/sumpro/internal/core/domain"
)

func TestGenerateRejectsUnsupportedWidget(t *testing.T) {
	uc := NewWidgetUseCase(&fakeGenerator{})
	sess := analyzedSession(domain.ModeDigest, &fakeIndex{})

	_, err := uc.Generate(context.Background(), sess, domain.WidgetEmail)
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGenerateEmail(t *testing.T) {
	generator := &fakeGenerator{responses: []string{"Hi team,\n\nRecap below."}}
	uc := NewWidgetUseCase(generator)
	index := &fakeIndex{defaultHits: []string{"decision chunk", "action chunk"}}
	sess := analyzedSession(domain.ModeProfessional, index)

	result, err := uc.Generate(context.Background(), sess, domain.WidgetEmail)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if index.queriesSeen[0] != "decisions actions" || index.lastK != 3 {
		t.Fatalf("unexpected retrieval: query %q k=%d", index.queriesSeen[0], index.lastK)
	}
	if !strings.HasPrefix(result.Content, "**Here's a draft email you can use:**\n\n") {
		t.Fatalf("unexpected content %q", result.Content)
	}
	if generator.requests[0].Temperature != 0.4 {
		t.Fatalf("unexpected temperature %v", generator.requests[0].Temperature)
	}
	if !promptContains(generator.prompts, "Summary: the summary") {
		t.Fatalf("summary missing from prompt:\n%s", generator.prompts[0])
	}
	last := sess.Messages[len(sess.Messages)-1]
	if last.Role != domain.RoleAssistant || last.Content != result.Content {
		t.Fatal("email must be appended to the transcript")
	}
}

func TestGenerateQuestionsParsesAndCapsAtThree(t *testing.T) {
	generator := &fakeGenerator{responses: []string{
		"1. What drove the decision?\n\n2) Who owns the rollout?\n- What are the risks?\nWhat about budget?",
	}}
	uc := NewWidgetUseCase(generator)
	sess := analyzedSession(domain.ModeProfessional, &fakeIndex{})

	result, err := uc.Generate(context.Background(), sess, domain.WidgetQuestions)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	want := []string{
		"What drove the decision?",
		"Who owns the rollout?",
		"What are the risks?",
	}
	if len(result.Items) != len(want) {
		t.Fatalf("expected %d questions, got %d: %v", len(want), len(result.Items), result.Items)
	}
	for i, q := range want {
		if result.Items[i] != q {
			t.Fatalf("question %d: got %q, want %q", i, result.Items[i], q)
		}
	}
	if !strings.HasPrefix(result.Content, "**Here are some questions to help you think deeper:**\n\n- ") {
		t.Fatalf("unexpected content %q", result.Content)
	}
	if !promptContains(generator.prompts, "Generate 3 clarifying questions probing decisions and assumptions") {
		t.Fatalf("mode instruction missing from prompt:\n%s", generator.prompts[0])
	}
}

func TestGenerateQuestionsUsesModeInstruction(t *testing.T) {
	generator := &fakeGenerator{responses: []string{"q1\nq2\nq3"}}
	uc := NewWidgetUseCase(generator)
	sess := analyzedSession(domain.ModeTech, &fakeIndex{})

	if _, err := uc.Generate(context.Background(), sess, domain.WidgetQuestions); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !promptContains(generator.prompts, "Generate 3 deep technical questions about implementation and approaches") {
		t.Fatalf("tech instruction missing from prompt:\n%s", generator.prompts[0])
	}
}

func TestGenerateConcepts(t *testing.T) {
	generator := &fakeGenerator{responses: []string{"Concept: Explanation"}}
	uc := NewWidgetUseCase(generator)
	index := &fakeIndex{defaultHits: []string{"concept chunk"}}
	sess := analyzedSession(domain.ModeTech, index)

	result, err := uc.Generate(context.Background(), sess, domain.WidgetConcepts)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if index.queriesSeen[0] != "key concepts" || index.lastK != 5 {
		t.Fatalf("unexpected retrieval: query %q k=%d", index.queriesSeen[0], index.lastK)
	}
	if !strings.HasPrefix(result.Content, "**The key concepts you need to know:**\n\n") {
		t.Fatalf("unexpected content %q", result.Content)
	}
}

func TestGenerateStructureKeepsNumberedLinesAndCaches(t *testing.T) {
	generator := &fakeGenerator{responses: []string{
		"Here is the outline:\n1. Introduction - background\n2. Methods - approach\nNot an entry\n  3. Results - findings",
	}}
	uc := NewWidgetUseCase(generator)
	sess := analyzedSession(domain.ModeTech, &fakeIndex{defaultHits: []string{"toc chunk"}})

	result, err := uc.Generate(context.Background(), sess, domain.WidgetStructure)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	// The third entry is indented in the raw response; trimming happens
	// before the leading-digit check, so it still counts.
	want := []string{
		"1. Introduction - background",
		"2. Methods - approach",
		"3. Results - findings",
	}
	if len(result.Items) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(result.Items), result.Items)
	}
	for i, entry := range want {
		if result.Items[i] != entry {
			t.Fatalf("entry %d: got %q, want %q", i, result.Items[i], entry)
		}
	}
	if !strings.Contains(result.Content, "*Want to explore a section? Just ask - for example, 'tell me about section 2'*") {
		t.Fatalf("explore hint missing from content %q", result.Content)
	}

	// Second call serves the cached outline without regenerating.
	if _, err := uc.Generate(context.Background(), sess, domain.WidgetStructure); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if generator.calls != 1 {
		t.Fatalf("expected the cached outline to be reused, got %d generation calls", generator.calls)
	}
}

func TestGenerateStructureWithoutNumberedLines(t *testing.T) {
	generator := &fakeGenerator{responses: []string{"The document has no obvious sections."}}
	uc := NewWidgetUseCase(generator)
	sess := analyzedSession(domain.ModeTech, &fakeIndex{defaultHits: []string{"chunk"}})

	result, err := uc.Generate(context.Background(), sess, domain.WidgetStructure)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.Items) != 0 {
		t.Fatalf("expected no outline entries, got %v", result.Items)
	}
	if result.Content != "Couldn't find a clear structure in this document. But you can still ask me specific questions about it." {
		t.Fatalf("unexpected fallback content %q", result.Content)
	}
}
