// Package quota implements the per-identity daily analysis allowance.
//
// Identity is derived from a weak, spoofable client signal (a header string)
// and is hashed only for key normalization. Collisions between distinct real
// users are acceptable; this is a soft abuse deterrent, not an
// authentication or billing control.
package quota

import (
	"crypto/md5"
	"fmt"
	"sync"
	"time"
)

const sentinelIdentity = "unknown"

type record struct {
	count int
	reset time.Time
}

type Limiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	records map[string]record
}

// NewLimiter returns a limiter allowing max analyses per identity per
// window. State is process-scoped and never persisted; a multi-instance
// deployment would need to externalize it with atomic increments.
func NewLimiter(max int, window time.Duration) *Limiter {
	if max <= 0 {
		max = 2
	}
	if window <= 0 {
		window = 24 * time.Hour
	}
	return &Limiter{
		max:     max,
		window:  window,
		now:     time.Now,
		records: make(map[string]record),
	}
}

// Check consumes one analysis from the identity's daily allowance. The
// stored record is mutated on every call: an expired window is re-anchored
// to the checking call even when that call ends in a denial.
func (l *Limiter) Check(identity string) (bool, string) {
	key := identityKey(identity)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[key]
	if !ok || now.After(rec.reset) {
		rec = record{count: 0, reset: now.Add(l.window)}
	}

	if rec.count >= l.max {
		l.records[key] = rec
		hours := int(rec.reset.Sub(now).Hours())
		return false, fmt.Sprintf("You've hit your daily limit. Thanks for using SumPro! Resets in %dh.", hours)
	}

	rec.count++
	l.records[key] = rec
	return true, fmt.Sprintf("%d analyses left today", l.max-rec.count)
}

func identityKey(identity string) string {
	if identity == "" {
		identity = sentinelIdentity
	}
	return fmt.Sprintf("%x", md5.Sum([]byte(identity)))
}
