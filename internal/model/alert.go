package model

import "time"

// Alert is a triage record derived from exactly one alert-worthy event.
// Title, description and severity are copied from the triggering event at
// promotion time and are immutable afterwards; only Status (and with it
// UpdatedAt) changes.
type Alert struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Severity    Severity    `json:"severity"`
	Status      AlertStatus `json:"status"`

	// EventID references the triggering event. At most one alert exists
	// per event, enforced by a partial unique index on the column.
	EventID *string `json:"event_id,omitempty"`

	// EventType is read from the joined event row, never stored on the alert.
	EventType string `json:"event_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
