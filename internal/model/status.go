package model

import "strings"

// AlertStatus is the alert lifecycle enum. New alerts open as OPEN;
// triage moves them to ACKNOWLEDGED or RESOLVED (in either direction,
// there is no forward-only rule).
type AlertStatus string

const (
	StatusOpen         AlertStatus = "OPEN"
	StatusAcknowledged AlertStatus = "ACKNOWLEDGED"
	StatusResolved     AlertStatus = "RESOLVED"
)

// AlertStatuses lists all valid status values.
var AlertStatuses = []AlertStatus{StatusOpen, StatusAcknowledged, StatusResolved}

// UpdatableStatuses lists the statuses a client may set. OPEN is a
// creation default, never an update target.
var UpdatableStatuses = []AlertStatus{StatusAcknowledged, StatusResolved}

// ParseAlertStatus matches input case-insensitively against the status enum.
// Returns the normalized uppercase value and whether the input was valid.
func ParseAlertStatus(value string) (AlertStatus, bool) {
	normalized := AlertStatus(strings.ToUpper(strings.TrimSpace(value)))
	for _, s := range AlertStatuses {
		if s == normalized {
			return s, true
		}
	}
	return "", false
}

// IsUpdatable reports whether the status is an allowed update target.
func (s AlertStatus) IsUpdatable() bool {
	for _, u := range UpdatableStatuses {
		if s == u {
			return true
		}
	}
	return false
}

// AlertStatusNames returns the valid status values as strings.
func AlertStatusNames() []string {
	names := make([]string, len(AlertStatuses))
	for i, s := range AlertStatuses {
		names[i] = string(s)
	}
	return names
}

// UpdatableStatusNames returns the allowed update targets as strings.
func UpdatableStatusNames() []string {
	names := make([]string, len(UpdatableStatuses))
	for i, s := range UpdatableStatuses {
		names[i] = string(s)
	}
	return names
}
