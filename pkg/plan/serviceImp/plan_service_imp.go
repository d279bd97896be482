package serviceImp

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tripbuddy/entities"
	"tripbuddy/pkg/ai"
	bsvc "tripbuddy/pkg/booking/service"
	"tripbuddy/pkg/budget"
	gsvc "tripbuddy/pkg/dest/service"
	planrepo "tripbuddy/pkg/plan/repository"
	"tripbuddy/pkg/plan/types"
	schedrepo "tripbuddy/pkg/schedule/repository"
)

type PlanSvc struct {
	pipe      *Pipeline
	llm       ai.Client
	guides    gsvc.GuideService // optional
	repoPlan  planrepo.PlanRepository
	repoSched schedrepo.ScheduleRepository
	bookings  bsvc.Service
}

func NewPlanService(pipe *Pipeline, llm ai.Client, guides gsvc.GuideService, pr planrepo.PlanRepository, sr schedrepo.ScheduleRepository, bk bsvc.Service) *PlanSvc {
	return &PlanSvc{pipe: pipe, llm: llm, guides: guides, repoPlan: pr, repoSched: sr, bookings: bk}
}

func (s *PlanSvc) CreateTrip(userID, rawRequest, priority string) (*entities.Trip, error) {
	if strings.TrimSpace(rawRequest) == "" {
		return nil, fmt.Errorf("raw request is required")
	}
	switch priority {
	case "":
		priority = string(budget.PriorityBalanced)
	case string(budget.PriorityEconomy), string(budget.PriorityBalanced), string(budget.PriorityLuxury):
	default:
		return nil, fmt.Errorf("unknown priority %q", priority)
	}
	t := &entities.Trip{UserID: userID, RawRequest: rawRequest, Priority: priority}
	if err := s.repoPlan.CreateTrip(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *PlanSvc) ListTrips(userID string) ([]entities.Trip, error) {
	return s.repoPlan.ListTrips(userID)
}

func (s *PlanSvc) PlanTrip(tripID uint) (*entities.TripPlan, *types.PlanningState, error) {
	trip, err := s.repoPlan.TripByID(tripID)
	if err != nil {
		return nil, nil, err
	}

	st := s.pipe.Run(trip.RawRequest, budget.Priority(trip.Priority))

	version := 1
	if old, err := s.repoPlan.LatestByTrip(tripID); err == nil && old != nil {
		version = old.Version + 1
	}

	p := &entities.TripPlan{
		TripID:        tripID,
		Version:       version,
		ReportText:    st.FinalResponse,
		ErrorOccurred: st.ErrorOccurred,
	}
	if st.Requirements != nil {
		p.Destination = st.Requirements.Destination
	}
	if o := st.Optimization; o != nil {
		p.TotalCost = o.TotalCost
		p.BudgetStatus = o.BudgetStatus
		if b, err := json.Marshal(o); err == nil {
			p.SelectionJSON = string(b)
		}
	}
	if s.llm != nil && !st.ErrorOccurred {
		var tips []string
		if s.guides != nil && st.Requirements != nil {
			tips = s.guides.Tips(st.Requirements.Destination, 3)
		}
		p.SummaryMD = s.llm.SummarizeTrip(st, tips)
	}
	if err := s.repoPlan.CreatePlan(p); err != nil {
		return nil, nil, err
	}

	if !st.ErrorOccurred && st.Itinerary != nil {
		items := materializeItems(tripID, p.PlanID, st.Itinerary)
		if err := s.repoSched.BulkInsert(items); err != nil {
			return nil, nil, err
		}
		if _, err := s.bookings.CreateForPlan(tripID, p.PlanID, st.Optimization); err != nil {
			return nil, nil, err
		}
	}
	return p, st, nil
}

func (s *PlanSvc) LatestPlan(tripID uint) (*entities.TripPlan, error) {
	return s.repoPlan.LatestByTrip(tripID)
}

func (s *PlanSvc) ListPlans(tripID uint) ([]entities.TripPlan, error) {
	return s.repoPlan.ListByTrip(tripID)
}

// materializeItems flattens an itinerary into patchable schedule rows.
func materializeItems(tripID, planID uint, it *types.Itinerary) []entities.ItineraryItem {
	var items []entities.ItineraryItem
	for _, day := range it.Days {
		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			continue
		}
		for _, slot := range day.Slots {
			items = append(items, entities.ItineraryItem{
				TripID:    tripID,
				PlanID:    planID,
				Date:      date,
				DayNumber: day.DayNumber,
				TimeOfDay: slot.Time,
				Title:     slot.Title,
				Kind:      slotKind(slot.Title),
				Cost:      slot.Cost,
				Duration:  slot.Duration,
				Notes:     slot.Description,
				Status:    "planned",
			})
		}
	}
	return items
}

func slotKind(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "flight") || strings.Contains(t, "departure"):
		return "flight"
	case strings.Contains(t, "check-in") || strings.Contains(t, "check-out"):
		return "hotel"
	case strings.Contains(t, "breakfast") || strings.Contains(t, "dinner"):
		return "meal"
	case strings.Contains(t, "free exploration"):
		return "free"
	default:
		return "activity"
	}
}
