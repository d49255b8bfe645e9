package models

import "time"

// ServiceCategory is a kind of work helpers offer. Immutable once created.
type ServiceCategory struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CategoryCreatedEvent is published after a category is added
type CategoryCreatedEvent struct {
	Category ServiceCategory `json:"category"`
}
