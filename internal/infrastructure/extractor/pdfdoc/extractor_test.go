package pdfdoc

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestExtractNoDocuments(t *testing.T) {
	e := New()
	text, err := e.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text for no documents, got %q", text)
	}
}

func TestExtractMalformedDocument(t *testing.T) {
	e := New()
	docs := []io.Reader{strings.NewReader("not a pdf at all")}
	_, err := e.Extract(context.Background(), docs)
	if err == nil {
		t.Fatalf("expected error for malformed pdf bytes")
	}
	if !strings.Contains(err.Error(), "extract document 1") {
		t.Fatalf("expected document position in error, got %v", err)
	}
}

func TestExtractCancelledContext(t *testing.T) {
	e := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Extract(ctx, []io.Reader{strings.NewReader("x")})
	if err == nil {
		t.Fatalf("expected context error")
	}
}
