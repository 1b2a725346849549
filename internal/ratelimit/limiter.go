package ratelimit

import (
	"pricerelay/internal/observability"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	DefaultWindow = 60 * time.Second
	DefaultLimit  = 60
)

// Limiter is a sliding-window limiter: a key is admitted while fewer than limit
// admissions fall inside the trailing window.
type Limiter struct {
	window time.Duration
	limit  int
	clock  clockwork.Clock

	metrics *observability.Metrics

	mu      sync.Mutex
	buckets map[string][]time.Time
}

// Allow prunes the key's expired timestamps and records an admission if there is room.
func (l *Limiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	stamps := prune(l.buckets[key], now.Add(-l.window))
	if len(stamps) >= l.limit {
		l.buckets[key] = stamps
		return false
	}
	l.buckets[key] = append(stamps, now)
	return true
}

// Sweep drops buckets with no admission inside the window and returns the number kept.
func (l *Limiter) Sweep() int {
	cutoff := l.clock.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, stamps := range l.buckets {
		stamps = prune(stamps, cutoff)
		if len(stamps) == 0 {
			delete(l.buckets, key)
			continue
		}
		l.buckets[key] = stamps
	}
	l.metrics.RecordLimiterBuckets(len(l.buckets))
	return len(l.buckets)
}

// prune drops timestamps at or before cutoff. stamps is ordered oldest first.
func prune(stamps []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(stamps) && !stamps[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return stamps
	}
	return append(stamps[:0], stamps[i:]...)
}

func NewLimiter(limit int, window time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Limiter{
		window:  window,
		limit:   limit,
		clock:   clock,
		metrics: metrics,
		buckets: make(map[string][]time.Time),
	}
}
