package errors

import "fmt"

// RateLimitError is returned when a caller exceeds its request quota.
// It is a distinct type so clients can tell "slow down" apart from
// "fix your input".
type RateLimitError struct {
	Key   string `json:"-"`
	Limit int    `json:"limit"`
}

// NewRateLimitError creates a new rate limit error for the given caller key.
func NewRateLimitError(key string, limit int) *RateLimitError {
	return &RateLimitError{
		Key:   key,
		Limit: limit,
	}
}

// Error returns the error message.
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("request rate limit of %d per minute exceeded", e.Limit)
}
