package service

import (
	"tripbuddy/entities"
	"tripbuddy/pkg/plan/types"
)

type PlanService interface {
	CreateTrip(userID, rawRequest, priority string) (*entities.Trip, error)
	ListTrips(userID string) ([]entities.Trip, error)

	// PlanTrip runs the planning pipeline for the trip's raw request and
	// persists the result as a new plan version.
	PlanTrip(tripID uint) (*entities.TripPlan, *types.PlanningState, error)
	LatestPlan(tripID uint) (*entities.TripPlan, error)
	ListPlans(tripID uint) ([]entities.TripPlan, error)
}
