package repositoryImp

import (
	"gorm.io/gorm"

	"tripbuddy/entities"
	"tripbuddy/pkg/plan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) CreateTrip(t *entities.Trip) error { return r.db.Create(t).Error }

func (r *planRepo) TripByID(tripID uint) (*entities.Trip, error) {
	var t entities.Trip
	if err := r.db.First(&t, "trip_id = ?", tripID).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *planRepo) ListTrips(userID string) ([]entities.Trip, error) {
	var ts []entities.Trip
	q := r.db.Order("trip_id DESC")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	return ts, q.Find(&ts).Error
}

func (r *planRepo) CreatePlan(p *entities.TripPlan) error { return r.db.Create(p).Error }

func (r *planRepo) LatestByTrip(tripID uint) (*entities.TripPlan, error) {
	var p entities.TripPlan
	if err := r.db.Where("trip_id = ?", tripID).Order("version DESC").First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) ListByTrip(tripID uint) ([]entities.TripPlan, error) {
	var ps []entities.TripPlan
	if err := r.db.Where("trip_id = ?", tripID).Order("version ASC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}
