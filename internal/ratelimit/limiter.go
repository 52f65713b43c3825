package ratelimit

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Limiter decides whether an action keyed by caller identity may proceed.
type Limiter interface {
	Allow(key string) bool
}

// MemoryLimiter is a sliding-window limiter held in process memory.
// Each key keeps the timestamps of its admitted requests inside the window.
// The number of tracked keys is bounded; the least recently used key is
// evicted once the bound is reached.
type MemoryLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	keys   *lru.Cache[string, []time.Time]
	now    func() time.Time
}

// Option configures a MemoryLimiter
type Option func(*MemoryLimiter)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(l *MemoryLimiter) { l.now = now }
}

// NewMemoryLimiter admits at most max requests per key within window,
// tracking no more than maxKeys keys at once.
func NewMemoryLimiter(max int, window time.Duration, maxKeys int, opts ...Option) (*MemoryLimiter, error) {
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}
	cache, err := lru.New[string, []time.Time](maxKeys)
	if err != nil {
		return nil, err
	}

	l := &MemoryLimiter{
		max:    max,
		window: window,
		keys:   cache,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Allow records a request for key and reports whether it is within the limit.
// Rejected requests are not recorded.
func (l *MemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	stamps, _ := l.keys.Get(key)
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.max {
		l.keys.Add(key, kept)
		return false
	}

	l.keys.Add(key, append(kept, now))
	return true
}

// Len returns the number of keys currently tracked
func (l *MemoryLimiter) Len() int {
	return l.keys.Len()
}

// Unlimited admits every request
type Unlimited struct{}

// Allow always returns true
func (Unlimited) Allow(string) bool { return true }
