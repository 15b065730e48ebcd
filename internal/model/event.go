package model

import "time"

// Event is an ingested security observation. Events are immutable once
// created: no API updates or deletes them.
type Event struct {
	ID          string    `json:"id"`
	SourceName  string    `json:"source_name"`
	EventType   string    `json:"event_type"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
