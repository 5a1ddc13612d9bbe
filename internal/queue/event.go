// Package queue defines message payloads exchanged over the message broker.
package queue

// SeatingIngestedEvent is published after a spreadsheet upload has been
// persisted.  It carries enough for downstream consumers to log or audit the
// ingest without querying the primary database.
type SeatingIngestedEvent struct {
	FileName     string `json:"file_name"`
	Inserted     int    `json:"inserted"`
	DateOverride string `json:"date_override,omitempty"`
	IngestedAt   string `json:"ingested_at"`
}
