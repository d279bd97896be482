package repository

import "tripbuddy/entities"

type ScheduleRepository interface {
	BulkInsert([]entities.ItineraryItem) error
	List(tripID uint, from, to string) ([]entities.ItineraryItem, error)
	PatchStatus(itemID uint, status string, notes *string) error
	DeleteByPlan(planID uint) error
}
