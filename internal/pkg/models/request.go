package models

import "time"

// RequestStatus represents the lifecycle state of a service request
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAccepted   RequestStatus = "accepted"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusRejected   RequestStatus = "rejected"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:    nil,
	RequestStatusAccepted:   {RequestStatusInProgress, RequestStatusCompleted, RequestStatusRejected, RequestStatusCancelled},
	RequestStatusInProgress: {RequestStatusCompleted, RequestStatusCancelled},
	RequestStatusCompleted:  nil,
	RequestStatusRejected:   nil,
	RequestStatusCancelled:  nil,
}

// Valid reports whether s belongs to the closed status set
func (s RequestStatus) Valid() bool {
	_, ok := requestTransitions[s]
	return ok
}

// Terminal reports whether no further transitions are possible from s
func (s RequestStatus) Terminal() bool {
	switch s {
	case RequestStatusCompleted, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is allowed
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ServiceRequest is a requester's job and its lifecycle state.
// Status accepted implies HelperID is set.
type ServiceRequest struct {
	ID          string        `json:"id"`
	RequesterID string        `json:"requester_id"`
	CategoryID  string        `json:"category_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    *Coordinate   `json:"location,omitempty"`
	Address     string        `json:"address,omitempty"`
	HelperID    *string       `json:"helper_id,omitempty"`
	DistanceKm  *float64      `json:"distance_km,omitempty"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// AssignedTo reports whether helperID is the request's assigned helper
func (r *ServiceRequest) AssignedTo(helperID string) bool {
	return r.HelperID != nil && *r.HelperID == helperID
}

// SubmitRequestInput holds what a requester sends when asking for help
type SubmitRequestInput struct {
	CategoryID  string
	Title       string
	Description string
	Location    *Coordinate
	Address     string
}

// RequestFilter narrows request listings
type RequestFilter struct {
	RequesterID string
	HelperID    string
	Limit       int
}

// RequestCreatedEvent is published after a request is persisted
type RequestCreatedEvent struct {
	Request ServiceRequest `json:"request"`
}

// RequestAssignedEvent is published when a new request is matched to a helper
type RequestAssignedEvent struct {
	RequestID  string  `json:"request_id"`
	HelperID   string  `json:"helper_id"`
	DistanceKm float64 `json:"distance_km"`
}

// RequestStatusChangedEvent is published after a status update commits
type RequestStatusChangedEvent struct {
	RequestID string        `json:"request_id"`
	HelperID  string        `json:"helper_id"`
	From      RequestStatus `json:"from"`
	To        RequestStatus `json:"to"`
}
