package usecase

import (
	"context"
	"io"
	"strings"

	"github.com/The-Apinke/sumpro/internal/core/domain"
)

type fakeIndex struct {
	// results maps a query to the chunks returned for it; queries with no
	// entry fall back to the default slice.
	results     map[string][]string
	defaultHits []string
	searchErr   error
	queriesSeen []string
	lastK       int
	size        int
}

func (f *fakeIndex) Search(_ context.Context, query string, k int) ([]string, error) {
	f.queriesSeen = append(f.queriesSeen, query)
	f.lastK = k
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if hits, ok := f.results[query]; ok {
		return hits, nil
	}
	return f.defaultHits, nil
}

func (f *fakeIndex) Len() int { return f.size }

type fakeGenerator struct {
	// responses are returned in call order; the last one repeats.
	responses []string
	err       error
	prompts   []string
	requests  []domain.GenerationRequest
	calls     int
}

func (f *fakeGenerator) Generate(_ context.Context, req domain.GenerationRequest) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, req.Prompt)
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "generated text", nil
	}
	idx := f.calls - 1
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx], nil
}

type fakeQuota struct {
	allowed bool
	message string
	calls   int
}

func (f *fakeQuota) Check(string) (bool, string) {
	f.calls++
	return f.allowed, f.message
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(context.Context, []io.Reader) (string, error) {
	return f.text, f.err
}

type fakeChunker struct {
	chunks []string
}

func (f *fakeChunker) Split(string) []string { return f.chunks }

type fakeIndexBuilder struct {
	index domain.SimilarityIndex
	err   error
}

func (f *fakeIndexBuilder) Build(context.Context, []string) (domain.SimilarityIndex, error) {
	return f.index, f.err
}

type fakeSessionStore struct {
	stored []*domain.Session
}

func (f *fakeSessionStore) Get(id string) (*domain.Session, error) {
	for _, sess := range f.stored {
		if sess.ID == id {
			return sess, nil
		}
	}
	return nil, domain.ErrSessionNotFound
}

func (f *fakeSessionStore) Put(sess *domain.Session) {
	f.stored = append(f.stored, sess)
}

func (f *fakeSessionStore) Delete(id string) {
	for i, sess := range f.stored {
		if sess.ID == id {
			f.stored = append(f.stored[:i], f.stored[i+1:]...)
			return
		}
	}
}

func analyzedSession(mode domain.ModeName, index domain.SimilarityIndex) *domain.Session {
	sess := domain.NewSession("sess-test")
	sess.Mode = mode
	sess.Index = index
	sess.Summary = "the summary"
	sess.Append(domain.RoleAssistant, "**"+mode.DisplayName()+" Analysis**\n\nthe summary")
	return sess
}

func promptContains(prompts []string, needle string) bool {
	for _, p := range prompts {
		if strings.Contains(p, needle) {
			return true
		}
	}
	return false
}
