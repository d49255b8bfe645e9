package models

// MatchResult is the outcome of picking a helper for a request
type MatchResult struct {
	Helper     *Helper `json:"helper"`
	DistanceKm float64 `json:"distance_km"`
}

// RankedHelper pairs a candidate with its distance from the requester
type RankedHelper struct {
	Helper     *Helper `json:"helper"`
	DistanceKm float64 `json:"distance_km"`
}
