package serviceImp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbuddy/entities"
	bsvc "tripbuddy/pkg/booking/service"
	"tripbuddy/pkg/plan/types"
)

type memPlanRepo struct {
	trips map[uint]*entities.Trip
	plans []entities.TripPlan
	next  uint
}

func newMemPlanRepo() *memPlanRepo {
	return &memPlanRepo{trips: map[uint]*entities.Trip{}, next: 1}
}

func (r *memPlanRepo) CreateTrip(t *entities.Trip) error {
	t.TripID = r.next
	r.next++
	r.trips[t.TripID] = t
	return nil
}

func (r *memPlanRepo) TripByID(id uint) (*entities.Trip, error) {
	t, ok := r.trips[id]
	if !ok {
		return nil, fmt.Errorf("trip %d not found", id)
	}
	return t, nil
}

func (r *memPlanRepo) ListTrips(userID string) ([]entities.Trip, error) {
	var out []entities.Trip
	for _, t := range r.trips {
		if userID == "" || t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memPlanRepo) CreatePlan(p *entities.TripPlan) error {
	p.PlanID = uint(len(r.plans) + 1)
	r.plans = append(r.plans, *p)
	return nil
}

func (r *memPlanRepo) LatestByTrip(tripID uint) (*entities.TripPlan, error) {
	var latest *entities.TripPlan
	for i := range r.plans {
		p := &r.plans[i]
		if p.TripID == tripID && (latest == nil || p.Version > latest.Version) {
			latest = p
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("no plan for trip %d", tripID)
	}
	return latest, nil
}

func (r *memPlanRepo) ListByTrip(tripID uint) ([]entities.TripPlan, error) {
	var out []entities.TripPlan
	for _, p := range r.plans {
		if p.TripID == tripID {
			out = append(out, p)
		}
	}
	return out, nil
}

type memSchedRepo struct{ items []entities.ItineraryItem }

func (r *memSchedRepo) BulkInsert(items []entities.ItineraryItem) error {
	r.items = append(r.items, items...)
	return nil
}

func (r *memSchedRepo) List(tripID uint, from, to string) ([]entities.ItineraryItem, error) {
	return r.items, nil
}

func (r *memSchedRepo) PatchStatus(itemID uint, status string, notes *string) error { return nil }
func (r *memSchedRepo) DeleteByPlan(planID uint) error                              { return nil }

type memBookings struct{ created []entities.Booking }

func (b *memBookings) Create(in *entities.Booking) error { b.created = append(b.created, *in); return nil }
func (b *memBookings) ListByTrip(uint) ([]entities.Booking, error) { return b.created, nil }
func (b *memBookings) UpdatePartial(uint, bsvc.BookingPatch) (*entities.Booking, error) {
	return nil, nil
}

func (b *memBookings) CreateForPlan(tripID, planID uint, sel *types.OptimizationResult) ([]entities.Booking, error) {
	if sel == nil {
		return nil, nil
	}
	n := 0
	if sel.Flight != nil {
		n++
	}
	if sel.Hotel != nil {
		n++
	}
	n += len(sel.Activities)
	for i := 0; i < n; i++ {
		b.created = append(b.created, entities.Booking{TripID: tripID, PlanID: planID})
	}
	return b.created, nil
}

func newTestService() (*PlanSvc, *memPlanRepo, *memSchedRepo, *memBookings) {
	pr := newMemPlanRepo()
	sr := &memSchedRepo{}
	bk := &memBookings{}
	svc := NewPlanService(testPipeline(), nil, nil, pr, sr, bk)
	return svc, pr, sr, bk
}

func TestCreateTripValidation(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateTrip("u1", "   ", "")
	assert.Error(t, err)

	_, err = svc.CreateTrip("u1", "trip to Paris", "first-class")
	assert.Error(t, err)

	tr, err := svc.CreateTrip("u1", "trip to Paris", "")
	require.NoError(t, err)
	assert.Equal(t, "balanced", tr.Priority)
}

func TestPlanTripPersistsEverything(t *testing.T) {
	svc, pr, sr, bk := newTestService()
	tr, err := svc.CreateTrip("u1", "trip to Paris, budget $1000, 2026-09-10 to 2026-09-17", "balanced")
	require.NoError(t, err)

	p, st, err := svc.PlanTrip(tr.TripID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1, p.Version)
	assert.Equal(t, "Paris", p.Destination)
	assert.False(t, p.ErrorOccurred)
	assert.NotEmpty(t, p.ReportText)
	assert.NotEmpty(t, p.SelectionJSON)
	assert.Equal(t, st.Optimization.TotalCost, p.TotalCost)
	assert.Equal(t, st.Optimization.BudgetStatus, p.BudgetStatus)

	// 8 days of slots landed in the schedule
	assert.NotEmpty(t, sr.items)
	assert.Equal(t, tr.TripID, sr.items[0].TripID)
	assert.Equal(t, p.PlanID, sr.items[0].PlanID)
	assert.Equal(t, "planned", sr.items[0].Status)

	// flight + hotel + each selected activity
	want := 2 + len(st.Optimization.Activities)
	assert.Len(t, bk.created, want)

	latest, err := pr.LatestByTrip(tr.TripID)
	require.NoError(t, err)
	assert.Equal(t, p.PlanID, latest.PlanID)
}

func TestPlanTripVersionsIncrement(t *testing.T) {
	svc, _, _, _ := newTestService()
	tr, err := svc.CreateTrip("u1", "trip to Rome", "economy")
	require.NoError(t, err)

	p1, _, err := svc.PlanTrip(tr.TripID)
	require.NoError(t, err)
	p2, _, err := svc.PlanTrip(tr.TripID)
	require.NoError(t, err)
	assert.Equal(t, 1, p1.Version)
	assert.Equal(t, 2, p2.Version)
}

func TestPlanTripUnknownTrip(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, _, err := svc.PlanTrip(99)
	assert.Error(t, err)
}

func TestSlotKind(t *testing.T) {
	assert.Equal(t, "flight", slotKind("Flight Arrival - Delta Airlines"))
	assert.Equal(t, "flight", slotKind("Departure"))
	assert.Equal(t, "hotel", slotKind("Hotel Check-in - Grand Central Hotel"))
	assert.Equal(t, "hotel", slotKind("Hotel Check-out"))
	assert.Equal(t, "meal", slotKind("Welcome Dinner"))
	assert.Equal(t, "meal", slotKind("Breakfast"))
	assert.Equal(t, "free", slotKind("Free Exploration"))
	assert.Equal(t, "activity", slotKind("Louvre Guided Tour"))
}
