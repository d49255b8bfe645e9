package models

import "math"

// Coordinate is a point in decimal degrees.
// A location that may be unknown is carried as *Coordinate.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate validates lat/lng and builds a Coordinate
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if !isFinite(lat) || !isFinite(lng) {
		return Coordinate{}, ErrInvalidCoordinate
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinate{}, ErrInvalidCoordinate
	}
	return Coordinate{Latitude: lat, Longitude: lng}, nil
}

// OptionalCoordinate returns nil unless both parts are present.
// A half-set location counts as unknown.
func OptionalCoordinate(lat, lng *float64) (*Coordinate, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	c, err := NewCoordinate(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
