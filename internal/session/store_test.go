package session

import (
	"errors"
	"testing"
	"time"

	"github.com/The-Apinke/sumpro/internal/core/domain"
)

func TestPutAndGetRoundTrip(t *testing.T) {
	store := NewStore(time.Hour)
	sess := domain.NewSession("sess-1")
	sess.Mode = domain.ModeDigest

	store.Put(sess)

	got, err := store.Get("sess-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != sess {
		t.Fatal("expected the same session instance back")
	}
}

func TestGetUnknownSession(t *testing.T) {
	store := NewStore(time.Hour)

	_, err := store.Get("missing")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteRemovesSession(t *testing.T) {
	store := NewStore(time.Hour)
	store.Put(domain.NewSession("sess-2"))

	store.Delete("sess-2")

	if _, err := store.Get("sess-2"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestExpiredSessionIsGone(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	store.Put(domain.NewSession("sess-3"))

	time.Sleep(30 * time.Millisecond)

	if _, err := store.Get("sess-3"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after TTL, got %v", err)
	}
}
