package chunking

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitShortTextSingleChunk(t *testing.T) {
	s := NewSplitter(1000, 200)
	chunks := s.Split("one small paragraph")
	if len(chunks) != 1 || chunks[0] != "one small paragraph" {
		t.Fatalf("expected single untouched chunk, got %v", chunks)
	}
}

func TestSplitEmptyText(t *testing.T) {
	s := NewSplitter(1000, 200)
	if chunks := s.Split("   \n\n "); len(chunks) != 0 {
		t.Fatalf("expected no chunks for blank text, got %v", chunks)
	}
}

func TestSplitRespectsSizeBound(t *testing.T) {
	s := NewSplitter(100, 20)
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("Sentence number content with several words here. ")
	}
	chunks := s.Split(b.String())
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if n := utf8.RuneCountInString(chunk); n > 100 {
			t.Fatalf("chunk %d exceeds bound: %d runes", i, n)
		}
	}
}

func TestSplitPrefersParagraphBoundaries(t *testing.T) {
	s := NewSplitter(40, 0)
	text := "first paragraph body text here\n\nsecond paragraph body text here"
	chunks := s.Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected paragraph split into 2 chunks, got %v", chunks)
	}
	if chunks[0] != "first paragraph body text here" {
		t.Fatalf("unexpected first chunk %q", chunks[0])
	}
	if chunks[1] != "second paragraph body text here" {
		t.Fatalf("unexpected second chunk %q", chunks[1])
	}
}

func TestSplitDeterministic(t *testing.T) {
	s := NewSplitter(80, 16)
	var b strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString("alpha beta gamma delta epsilon zeta eta theta. ")
	}
	text := b.String()

	first := s.Split(text)
	second := s.Split(text)
	if len(first) != len(second) {
		t.Fatalf("re-chunking changed chunk count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("re-chunking changed chunk %d", i)
		}
	}
}

func TestSplitOverlapCarriesContext(t *testing.T) {
	s := NewSplitter(50, 20)
	text := strings.Repeat("word ", 60)
	chunks := s.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	// Neighbouring chunks share a suffix/prefix of the word stream.
	tail := chunks[0][len(chunks[0])-9:]
	if !strings.Contains(chunks[1], tail) {
		t.Fatalf("expected chunk overlap, tail %q not found in %q", tail, chunks[1])
	}
}

func TestSplitHardCutWithoutSeparators(t *testing.T) {
	s := NewSplitter(64, 16)
	text := strings.Repeat("x", 200)
	chunks := s.Split(text)
	if len(chunks) < 3 {
		t.Fatalf("expected hard cuts, got %d chunks", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 64 {
			t.Fatalf("hard-cut chunk %d exceeds bound: %d", i, len(chunk))
		}
	}
}

func TestNewSplitterNormalizesArguments(t *testing.T) {
	s := NewSplitter(0, -1)
	if s.ChunkSize != 1000 || s.Overlap != 0 {
		t.Fatalf("expected defaults 1000/0, got %d/%d", s.ChunkSize, s.Overlap)
	}
	s = NewSplitter(100, 100)
	if s.Overlap != 25 {
		t.Fatalf("expected overlap clamped to quarter of chunk size, got %d", s.Overlap)
	}
}
