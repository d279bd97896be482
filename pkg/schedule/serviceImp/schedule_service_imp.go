package serviceImp

import (
	"tripbuddy/entities"
	repo "tripbuddy/pkg/schedule/repository"
	"tripbuddy/pkg/schedule/service"
)

type schedSvc struct{ r repo.ScheduleRepository }

func NewScheduleService(r repo.ScheduleRepository) service.ScheduleService { return &schedSvc{r} }

func (s *schedSvc) List(tripID uint, from, to string) ([]entities.ItineraryItem, error) {
	return s.r.List(tripID, from, to)
}

func (s *schedSvc) Patch(itemID uint, status string, notes *string) error {
	return s.r.PatchStatus(itemID, status, notes)
}
