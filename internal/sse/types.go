package sse

import "github.com/osse101/MartianPotato_Go/internal/domain"

// ConnectedPayload is the first message on every stream
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
}

// NoticePayload is a player notice
type NoticePayload struct {
	Title    string          `json:"title"`
	Message  string          `json:"message"`
	Severity domain.Severity `json:"severity"`
}

// SavedPayload reports a completed save
type SavedPayload struct {
	Keys   int    `json:"keys"`
	Source string `json:"source"`
}
