package models

import "time"

// Checkin is an append-only log entry for one visit.
type Checkin struct {
	ID               string  `json:"id"`
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Region           string  `json:"region"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Address          string  `json:"address"`
	IsFirstDiscovery bool    `json:"is_first_discovery"`
	Timestamp        int64   `json:"timestamp"` // unix millis
}

// Time converts the millisecond timestamp to a time in loc.
func (c Checkin) Time(loc *time.Location) time.Time {
	return time.UnixMilli(c.Timestamp).In(loc)
}

// VisitedPlace tracks how often the user has been to a place.
type VisitedPlace struct {
	PlaceID    string  `json:"place_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Region     string  `json:"region"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address"`
	FirstVisit int64   `json:"first_visit"`
	LastVisit  int64   `json:"last_visit"`
	VisitCount int     `json:"visit_count"`
}

// PlaceSnapshot returns the place data of a check-in as an unvisited record.
func (c Checkin) PlaceSnapshot() VisitedPlace {
	return VisitedPlace{
		PlaceID:   c.PlaceID,
		Name:      c.Name,
		Category:  c.Category,
		Region:    c.Region,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Address:   c.Address,
	}
}
