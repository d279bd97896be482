package entities

import "time"

// ItineraryItem is one persisted itinerary slot. Status is patchable so a
// traveler can walk the plan from planned to booked to done.
type ItineraryItem struct {
	ItemID    uint      `gorm:"primaryKey" json:"item_id"`
	TripID    uint      `gorm:"index" json:"trip_id"`
	PlanID    uint      `gorm:"index" json:"plan_id"`
	Date      time.Time `json:"date"`
	DayNumber int       `json:"day_number"`
	TimeOfDay string    `json:"time_of_day"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind"` // flight|hotel|activity|meal|free|transport
	Cost      float64   `json:"cost"`
	Duration  string    `json:"duration"`
	Notes     string    `json:"notes"`
	Status    string    `json:"status"` // planned|booked|done|skipped
	CreatedAt time.Time
	UpdatedAt time.Time
}
