package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"tripbuddy/entities"
	"tripbuddy/pkg/schedule/repository"
)

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

func (r *schedRepo) BulkInsert(items []entities.ItineraryItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

func (r *schedRepo) List(tripID uint, from, to string) ([]entities.ItineraryItem, error) {
	var out []entities.ItineraryItem
	var s, e time.Time
	if from != "" {
		s, _ = time.Parse("2006-01-02", from)
	}
	if to != "" {
		e, _ = time.Parse("2006-01-02", to)
	}
	q := r.db.Where("trip_id = ?", tripID)
	if !s.IsZero() {
		q = q.Where("date >= ?", s)
	}
	if !e.IsZero() {
		q = q.Where("date <= ?", e)
	}
	if err := q.Order("date ASC, item_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schedRepo) PatchStatus(itemID uint, status string, notes *string) error {
	upd := map[string]any{"status": status}
	if notes != nil {
		upd["notes"] = *notes
	}
	return r.db.Model(&entities.ItineraryItem{}).Where("item_id = ?", itemID).Updates(upd).Error
}

func (r *schedRepo) DeleteByPlan(planID uint) error {
	return r.db.Where("plan_id = ?", planID).Delete(&entities.ItineraryItem{}).Error
}
