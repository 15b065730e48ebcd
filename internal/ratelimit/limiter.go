// Package ratelimit provides per-principal request rate limiting with
// interchangeable in-memory and Redis backends.
package ratelimit

import "context"

// Limiter decides whether the caller identified by key may proceed.
// Implementations count requests in fixed one-minute windows.
type Limiter interface {
	// Allow records one request for key and reports whether it is within
	// the window's budget.
	Allow(ctx context.Context, key string) (bool, error)

	// Limit returns the per-minute budget, for error reporting.
	Limit() int
}
