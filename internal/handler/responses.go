package handler

import "time"

// formatTimestamp renders a timestamp as RFC 3339 in UTC, or nil when
// the timestamp is unset (only possible before first persistence).
func formatTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

// DeleteResponse confirms a successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
