package model

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Severity
		ok    bool
	}{
		{"uppercase low", "LOW", SeverityLow, true},
		{"uppercase medium", "MEDIUM", SeverityMedium, true},
		{"uppercase high", "HIGH", SeverityHigh, true},
		{"uppercase critical", "CRITICAL", SeverityCritical, true},
		{"lowercase", "high", SeverityHigh, true},
		{"mixed case", "CrItIcAl", SeverityCritical, true},
		{"surrounding whitespace", "  low  ", SeverityLow, true},
		{"empty", "", "", false},
		{"unknown", "EXTREME", "", false},
		{"partial", "HIG", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSeverity(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseSeverity(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSeverityIsAlertWorthy(t *testing.T) {
	tests := []struct {
		severity Severity
		want     bool
	}{
		{SeverityLow, false},
		{SeverityMedium, false},
		{SeverityHigh, true},
		{SeverityCritical, true},
	}

	for _, tt := range tests {
		if got := tt.severity.IsAlertWorthy(); got != tt.want {
			t.Errorf("%s.IsAlertWorthy() = %v, want %v", tt.severity, got, tt.want)
		}
	}
}
