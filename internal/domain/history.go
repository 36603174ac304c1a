package domain

import "time"

// HistoryEntry records one answered query. Entries are immutable once
// created and owned exclusively by the history store.
type HistoryEntry struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Query         string    `json:"query"`
	Result        string    `json:"result"`
	OperationType string    `json:"operation_type"`
}
