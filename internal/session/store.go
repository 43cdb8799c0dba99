// Package session keeps analysis sessions in memory with a TTL, so an
// abandoned conversation and its chunk index are reclaimed without any
// explicit cleanup call.
package session

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/The-Apinke/sumpro/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		cache: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (s *Store) Get(id string) (*domain.Session, error) {
	value, ok := s.cache.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	sess, ok := value.(*domain.Session)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Put stores the session and restarts its TTL, so active conversations
// keep their session alive.
func (s *Store) Put(sess *domain.Session) {
	s.cache.Set(sess.ID, sess, s.ttl)
}

func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}
