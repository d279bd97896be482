package service

import "tripbuddy/entities"

type ScheduleService interface {
	List(tripID uint, from, to string) ([]entities.ItineraryItem, error)
	Patch(itemID uint, status string, notes *string) error
}
