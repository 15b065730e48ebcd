package ratelimit

import (
	"context"
	"sync"
	"time"
)

type windowCounter struct {
	windowStart time.Time
	count       int
}

// memoryLimiter is a process-local fixed-window counter. Suitable for a
// single-instance deployment; use the Redis limiter when running more
// than one replica.
type memoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*windowCounter
	now     func() time.Time
}

// NewMemory creates an in-memory limiter allowing limit requests per minute.
func NewMemory(limit int) Limiter {
	return &memoryLimiter{
		limit:   limit,
		window:  time.Minute,
		entries: make(map[string]*windowCounter),
		now:     time.Now,
	}
}

func (m *memoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	entry, ok := m.entries[key]
	if !ok || now.Sub(entry.windowStart) >= m.window {
		m.entries[key] = &windowCounter{windowStart: now, count: 1}
		m.evictStale(now)
		return true, nil
	}

	entry.count++
	return entry.count <= m.limit, nil
}

func (m *memoryLimiter) Limit() int {
	return m.limit
}

// evictStale drops counters whose window has long passed so the map does
// not grow with every principal ever seen. Called under mu.
func (m *memoryLimiter) evictStale(now time.Time) {
	for key, entry := range m.entries {
		if now.Sub(entry.windowStart) >= 2*m.window {
			delete(m.entries, key)
		}
	}
}
