package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"
)

func newTestLimiter(limit int, now func() time.Time) *memoryLimiter {
	return &memoryLimiter{
		limit:   limit,
		window:  time.Minute,
		entries: make(map[string]*windowCounter),
		now:     now,
	}
}

func TestMemoryLimiterAllowsWithinBudget(t *testing.T) {
	limiter := NewMemory(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "user-1")
		if err != nil {
			t.Fatalf("Allow() error = %v", err)
		}
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, err := limiter.Allow(ctx, "user-1")
	if err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if allowed {
		t.Error("request over budget should be denied")
	}
}

func TestMemoryLimiterIsolatesKeys(t *testing.T) {
	limiter := NewMemory(1)
	ctx := context.Background()

	if allowed, _ := limiter.Allow(ctx, "user-1"); !allowed {
		t.Fatal("first request for user-1 should be allowed")
	}
	if allowed, _ := limiter.Allow(ctx, "user-2"); !allowed {
		t.Error("user-2 should have an independent budget")
	}
	if allowed, _ := limiter.Allow(ctx, "user-1"); allowed {
		t.Error("second request for user-1 should be denied")
	}
}

func TestMemoryLimiterWindowReset(t *testing.T) {
	current := time.Now()
	limiter := newTestLimiter(1, func() time.Time { return current })
	ctx := context.Background()

	if allowed, _ := limiter.Allow(ctx, "user-1"); !allowed {
		t.Fatal("first request should be allowed")
	}
	if allowed, _ := limiter.Allow(ctx, "user-1"); allowed {
		t.Fatal("second request in the same window should be denied")
	}

	current = current.Add(time.Minute + time.Second)
	if allowed, _ := limiter.Allow(ctx, "user-1"); !allowed {
		t.Error("request in a fresh window should be allowed")
	}
}

func TestMemoryLimiterEvictsStaleEntries(t *testing.T) {
	current := time.Now()
	limiter := newTestLimiter(10, func() time.Time { return current })
	ctx := context.Background()

	limiter.Allow(ctx, "user-1")
	current = current.Add(3 * time.Minute)
	limiter.Allow(ctx, "user-2")

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	if _, ok := limiter.entries["user-1"]; ok {
		t.Error("stale entry for user-1 should have been evicted")
	}
	if _, ok := limiter.entries["user-2"]; !ok {
		t.Error("active entry for user-2 should remain")
	}
}

func TestMemoryLimiterConcurrentAccess(t *testing.T) {
	limiter := NewMemory(1000)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if _, err := limiter.Allow(ctx, "shared"); err != nil {
					t.Errorf("Allow() error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	// 500 requests consumed, budget of 1000 still has headroom.
	if allowed, _ := limiter.Allow(ctx, "shared"); !allowed {
		t.Error("request within budget should be allowed after concurrent access")
	}
}
