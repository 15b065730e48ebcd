package postgres

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrInvalidUUID = errors.New("invalid UUID format")
)

// pq error codes this service cares about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a unique-constraint violation.
// The alert promotion path relies on this to tell an expected lost race
// apart from a genuine persistence failure.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == codeUniqueViolation
	}
	return false
}

// IsForeignKeyViolation reports whether err is a foreign-key violation.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == codeForeignKeyViolation
	}
	return false
}
