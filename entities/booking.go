package entities

import "gorm.io/gorm"

// Booking is one bookable component of a selected bundle (the flight, the
// hotel, or a paid activity).
type Booking struct {
	gorm.Model             // ID, CreatedAt, UpdatedAt, DeletedAt
	TripID     uint        `json:"trip_id" gorm:"index"`
	PlanID     uint        `json:"plan_id" gorm:"index"`
	Reference  string      `json:"reference" gorm:"uniqueIndex"`
	Kind       string      `json:"kind" gorm:"index"` // flight|hotel|activity
	Name       string      `json:"name"`
	Price      float64     `json:"price"`
	ExternalID string      `json:"external_id"` // booking token / hotel id / activity id
	URL        string      `json:"url"`
	Status     string      `json:"status" gorm:"index"` // pending|confirmed|cancelled
	Notes      string      `json:"notes"`
}
