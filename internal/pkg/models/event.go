package models

import (
	"encoding/json"
	"time"
)

// Event is the envelope every published domain event travels in
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Now returns the current time in UTC. Every persisted and published timestamp goes through it.
func Now() time.Time {
	return time.Now().UTC()
}
