package model

import "time"

// FetchRecord is one audited call to the upstream endpoint.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
type FetchRecord struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	StatusCode  int       `json:"status_code"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	LatencyMs   int64     `json:"latency_ms"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}
