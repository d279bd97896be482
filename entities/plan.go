package entities

import "time"

type TripPlan struct {
	PlanID        uint    `gorm:"primaryKey" json:"plan_id"`
	TripID        uint    `json:"trip_id" gorm:"index"`
	Version       int     `json:"version"`
	Destination   string  `json:"destination"`
	ReportText    string  `json:"report_text"`
	SummaryMD     string  `json:"summary_md"`
	SelectionJSON string  `json:"selection_json"`
	TotalCost     float64 `json:"total_cost"`
	BudgetStatus  string  `json:"budget_status"` // within_budget|over_budget
	ErrorOccurred bool    `json:"error_occurred"`
	CreatedAt     time.Time
}
