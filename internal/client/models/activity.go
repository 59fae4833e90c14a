package models

import "time"

// ActivityLogEntry records one completed upload.
type ActivityLogEntry struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	Release   string    `json:"release"`
	Timestamp time.Time `json:"timestamp"`
	UserTag   string    `json:"user"`
}

// TimestampISO returns the entry time as an ISO-8601 UTC string.
func (e ActivityLogEntry) TimestampISO() string {
	return e.Timestamp.UTC().Format(time.RFC3339Nano)
}
