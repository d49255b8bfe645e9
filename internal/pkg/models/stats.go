package models

// DashboardStats is the admin overview
type DashboardStats struct {
	TotalUsers     int               `json:"total_users" db:"total_users"`
	TotalHelpers   int               `json:"total_helpers" db:"total_helpers"`
	PendingHelpers int               `json:"pending_helpers" db:"pending_helpers"`
	TotalRequests  int               `json:"total_requests" db:"total_requests"`
	RecentRequests []*ServiceRequest `json:"recent_requests"`
}
