package entities

import "time"

type Trip struct {
	TripID     uint   `gorm:"primaryKey" json:"trip_id"`
	UserID     string `json:"user_id" gorm:"index"`
	RawRequest string `json:"raw_request"`
	Priority   string `json:"priority"` // economy|balanced|luxury

	CreatedAt time.Time
	UpdatedAt time.Time
}
