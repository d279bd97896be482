package repository

import "tripbuddy/entities"

type PlanRepository interface {
	CreateTrip(t *entities.Trip) error
	TripByID(tripID uint) (*entities.Trip, error)
	ListTrips(userID string) ([]entities.Trip, error)

	CreatePlan(p *entities.TripPlan) error
	LatestByTrip(tripID uint) (*entities.TripPlan, error)
	ListByTrip(tripID uint) ([]entities.TripPlan, error)
}
