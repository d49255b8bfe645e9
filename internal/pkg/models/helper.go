package models

import "time"

// Helper is a service provider account
type Helper struct {
	ID         string      `json:"id"`
	FullName   string      `json:"full_name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	CategoryID string      `json:"category_id"`
	Location   *Coordinate `json:"location,omitempty"`
	Geohash    string      `json:"-"`
	Available  bool        `json:"available"`
	Approved   bool        `json:"approved"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Eligible reports whether the helper may be matched to a request for categoryID
func (h *Helper) Eligible(categoryID string) bool {
	return h != nil && h.Available && h.Approved && h.CategoryID == categoryID
}

// HelperQuery narrows the eligible helper listing
type HelperQuery struct {
	CategoryID string
	Near       *Coordinate
	RadiusKm   float64
}

// HelperFilter narrows the admin helper listing
type HelperFilter struct {
	Approved *bool
}

// HelperAvailabilityEvent is published when a helper toggles availability
type HelperAvailabilityEvent struct {
	HelperID  string `json:"helper_id"`
	Available bool   `json:"available"`
}

// HelperApprovedEvent is published when an admin approves a helper
type HelperApprovedEvent struct {
	HelperID   string `json:"helper_id"`
	CategoryID string `json:"category_id"`
}
