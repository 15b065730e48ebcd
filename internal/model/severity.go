package model

import "strings"

// Severity is the closed severity enum for ingested events.
// Stored normalized uppercase.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Severities lists all valid severity values in display order.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// ParseSeverity matches input case-insensitively against the severity enum.
// Returns the normalized uppercase value and whether the input was valid.
func ParseSeverity(value string) (Severity, bool) {
	normalized := Severity(strings.ToUpper(strings.TrimSpace(value)))
	for _, s := range Severities {
		if s == normalized {
			return s, true
		}
	}
	return "", false
}

// IsAlertWorthy reports whether an event of this severity must be promoted
// to an alert. Only HIGH and CRITICAL qualify.
func (s Severity) IsAlertWorthy() bool {
	return s == SeverityHigh || s == SeverityCritical
}

// SeverityNames returns the valid severity values as strings.
func SeverityNames() []string {
	names := make([]string, len(Severities))
	for i, s := range Severities {
		names[i] = string(s)
	}
	return names
}
