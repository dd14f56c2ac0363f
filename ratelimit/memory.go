package ratelimit

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	cleanupInterval = 10 * time.Minute
	idleTTL         = 30 * time.Minute
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per key in process memory
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   rate.Limit
	burst   int
	stop    chan struct{}
}

// NewMemoryLimiter returns a limiter that forgets keys idle for longer than
// idleTTL. Close stops the cleanup.
func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	cfg = cfg.withDefaults()

	l := &MemoryLimiter{
		entries: make(map[string]*entry),
		limit:   rate.Limit(float64(cfg.PerMinute) / window.Seconds()),
		burst:   cfg.Burst,
		stop:    make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *MemoryLimiter) Allow(key string) (bool, error) {
	return l.allowAt(key, time.Now()), nil
}

func (l *MemoryLimiter) allowAt(key string, now time.Time) bool {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

func (l *MemoryLimiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			if n := l.sweep(now); n > 0 {
				log.WithField("prefix", logPrefix).Debugf("removed %d idle limiters", n)
			}
		}
	}
}

// sweep removes the limiters that have not been used since idleTTL before now
func (l *MemoryLimiter) sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for key, e := range l.entries {
		if now.Sub(e.lastSeen) > idleTTL {
			delete(l.entries, key)
			count++
		}
	}
	return count
}

func (l *MemoryLimiter) Close() {
	close(l.stop)
}
