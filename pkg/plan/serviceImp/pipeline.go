package serviceImp

import (
	"fmt"
	"log"
	"time"

	"tripbuddy/pkg/ai"
	"tripbuddy/pkg/budget"
	"tripbuddy/pkg/dest"
	"tripbuddy/pkg/itinerary"
	"tripbuddy/pkg/plan/extract"
	"tripbuddy/pkg/plan/types"
	"tripbuddy/pkg/report"
	"tripbuddy/pkg/search"
)

// Stage names the pipeline steps. RouteNext returns one of these.
type Stage string

const (
	StageExtract          Stage = "extract_requirements"
	StageDestinationInfo  Stage = "get_destination_info"
	StageSearchFlights    Stage = "search_flights"
	StageSearchHotels     Stage = "search_hotels"
	StageSearchActivities Stage = "search_activities"
	StageOptimize         Stage = "optimize_budget"
	StageItinerary        Stage = "generate_itinerary"
	StageFormatResponse   Stage = "format_final_response"
)

// Derived sub-budget ratios for the per-category searches.
const (
	hotelSearchShare    = 0.4
	activitySearchShare = 0.2

	defaultNightlyBudget  = 150.0
	defaultDailyActBudget = 50.0
)

// maxSteps bounds the run loop. Eight stages each run at most once, so any
// run that gets near this is a routing bug, not a long trip.
const maxSteps = 16

// RouteNext picks the next stage from what the state already holds. Pure and
// total: every state maps to exactly one stage, and format_final_response is
// reachable from all of them.
func RouteNext(st *types.PlanningState) Stage {
	if st.ErrorOccurred {
		return StageFormatResponse
	}
	if st.ProcessingComplete {
		return StageFormatResponse
	}
	if st.Requirements == nil {
		return StageExtract
	}
	if st.DestInfo == nil {
		return StageDestinationInfo
	}
	if st.Flights == nil {
		return StageSearchFlights
	}
	if st.Hotels == nil {
		return StageSearchHotels
	}
	if st.Activities == nil {
		return StageSearchActivities
	}
	if !st.OptimizationComplete {
		return StageOptimize
	}
	if st.Itinerary == nil {
		return StageItinerary
	}
	return StageFormatResponse
}

// Pipeline runs the trip-planning state machine. Search adapters and the
// optimizer are injected so tests can drive the machine with fakes.
type Pipeline struct {
	Flights  search.FlightSearcher
	Hotels   search.HotelSearcher
	Acts     search.ActivitySearcher
	Fallback search.Catalog
	Opt      budget.Optimizer
	LLM      ai.Client // optional, nil skips activity suggestions
	Now      func() time.Time
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Run drives the state machine from a raw request to a final response.
// It always terminates: each stage fills the state field RouteNext keys on,
// and a stage panic flips ErrorOccurred which routes straight to formatting.
func (p *Pipeline) Run(raw string, priority budget.Priority) *types.PlanningState {
	st := &types.PlanningState{RawRequest: raw}
	for steps := 0; steps < maxSteps; steps++ {
		stage := RouteNext(st)
		if stage == StageFormatResponse {
			p.stageFormat(st)
			return st
		}
		p.runStage(st, stage, priority)
	}
	st.ErrorOccurred = true
	st.StageError = "pipeline did not converge"
	p.stageFormat(st)
	return st
}

func (p *Pipeline) runStage(st *types.PlanningState, stage Stage, priority budget.Priority) {
	defer func() {
		if r := recover(); r != nil {
			st.ErrorOccurred = true
			st.StageError = fmt.Sprintf("%s: %v", stage, r)
			log.Printf("[plan] stage %s panicked: %v", stage, r)
		}
	}()
	switch stage {
	case StageExtract:
		p.stageExtract(st)
	case StageDestinationInfo:
		p.stageDestInfo(st)
	case StageSearchFlights:
		p.stageSearchFlights(st)
	case StageSearchHotels:
		p.stageSearchHotels(st)
	case StageSearchActivities:
		p.stageSearchActivities(st)
	case StageOptimize:
		p.stageOptimize(st, priority)
	case StageItinerary:
		p.stageItinerary(st)
	}
}

func (p *Pipeline) stageExtract(st *types.PlanningState) {
	ex := extract.Parse(st.RawRequest)
	st.Extracted = ex
	st.Requirements = Resolve(ex, p.now())
}

// Resolve applies the defaulting pass exactly once, at the boundary between
// extraction and the rest of the pipeline. Downstream stages never see nils.
func Resolve(ex types.Requirements, now time.Time) *types.ResolvedRequirements {
	r := &types.ResolvedRequirements{
		Destination:   strDefault(ex.Destination, "Paris"),
		DepartureCity: strDefault(ex.DepartureCity, "New York"),
		Travelers:     intDefault(ex.Travelers, 1),
		BudgetPerHead: floatDefault(ex.BudgetPerHead, 1000.0),
		Preferences:   ex.Preferences,
	}
	if len(r.Preferences) == 0 {
		r.Preferences = []string{"culture", "food"}
	}

	r.DepartureDate = strDefault(ex.DepartureDate, now.AddDate(0, 0, 30).Format("2006-01-02"))
	if ex.ReturnDate != nil {
		r.ReturnDate = *ex.ReturnDate
	} else if dep, err := time.Parse("2006-01-02", r.DepartureDate); err == nil {
		r.ReturnDate = dep.AddDate(0, 0, 7).Format("2006-01-02")
	} else {
		r.ReturnDate = now.AddDate(0, 0, 37).Format("2006-01-02")
	}
	r.CheckinDate = strDefault(ex.CheckinDate, r.DepartureDate)
	r.CheckoutDate = strDefault(ex.CheckoutDate, r.ReturnDate)

	if ex.DurationDays != nil && *ex.DurationDays > 0 {
		r.DurationDays = *ex.DurationDays
	} else if ci, err1 := time.Parse("2006-01-02", r.CheckinDate); err1 == nil {
		if co, err2 := time.Parse("2006-01-02", r.CheckoutDate); err2 == nil {
			if d := int(co.Sub(ci).Hours() / 24); d > 0 {
				r.DurationDays = d
			}
		}
	}
	if r.DurationDays <= 0 {
		r.DurationDays = 7
	}

	if ex.TotalBudget != nil {
		r.TotalBudget = *ex.TotalBudget
	} else {
		r.TotalBudget = r.BudgetPerHead * float64(r.Travelers)
	}
	return r
}

func (p *Pipeline) stageDestInfo(st *types.PlanningState) {
	info := dest.Lookup(st.Requirements.Destination)
	st.DestInfo = &info
}

func (p *Pipeline) stageSearchFlights(st *types.PlanningState) {
	r := st.Requirements
	flights := p.Flights.SearchFlights(search.FlightQuery{
		DepartureCity: r.DepartureCity,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Travelers:     r.Travelers,
		BudgetPerHead: r.BudgetPerHead,
	})
	if len(flights) == 0 {
		flights = p.Fallback.Flights
	}
	st.Flights = flights
}

func (p *Pipeline) stageSearchHotels(st *types.PlanningState) {
	r := st.Requirements
	nightly := defaultNightlyBudget
	if r.DurationDays > 0 {
		nightly = r.BudgetPerHead * hotelSearchShare / float64(r.DurationDays)
	}
	hotels := p.Hotels.SearchHotels(search.HotelQuery{
		Destination:    r.Destination,
		CheckinDate:    r.CheckinDate,
		CheckoutDate:   r.CheckoutDate,
		Travelers:      r.Travelers,
		BudgetPerNight: nightly,
	})
	if len(hotels) == 0 {
		hotels = p.Fallback.Hotels
	}
	st.Hotels = hotels
}

func (p *Pipeline) stageSearchActivities(st *types.PlanningState) {
	r := st.Requirements
	daily := defaultDailyActBudget
	if r.DurationDays > 0 {
		daily = r.BudgetPerHead * activitySearchShare / float64(r.DurationDays)
	}
	acts := p.Acts.SearchActivities(search.ActivityQuery{
		Destination:  r.Destination,
		Preferences:  r.Preferences,
		DailyBudget:  daily,
		DurationDays: r.DurationDays,
	})
	if len(acts) < 2 && p.LLM != nil {
		if extra, err := p.LLM.SuggestActivities(r.Destination, r.Preferences, nil); err == nil {
			acts = append(acts, extra...)
		}
	}
	if len(acts) == 0 {
		acts = p.Fallback.Activities
	}
	st.Activities = acts
}

func (p *Pipeline) stageOptimize(st *types.PlanningState, priority budget.Priority) {
	r := st.Requirements
	res := p.Opt.Optimize(budget.Input{
		Flights:       st.Flights,
		Hotels:        st.Hotels,
		Activities:    st.Activities,
		TotalBudget:   r.TotalBudget,
		BudgetPerHead: r.BudgetPerHead,
		Travelers:     r.Travelers,
		DurationDays:  r.DurationDays,
		Priority:      priority,
	})
	st.Optimization = &res
	st.OptimizationComplete = true
}

func (p *Pipeline) stageItinerary(st *types.PlanningState) {
	r := st.Requirements
	it, err := itinerary.Assemble(itinerary.Params{
		Destination:  r.Destination,
		CheckinDate:  r.CheckinDate,
		CheckoutDate: r.CheckoutDate,
		Flight:       st.Optimization.Flight,
		Hotel:        st.Optimization.Hotel,
		Activities:   st.Optimization.Activities,
	})
	if err != nil {
		st.ErrorOccurred = true
		st.StageError = fmt.Sprintf("%s: %v", StageItinerary, err)
		return
	}
	st.Itinerary = it
}

func (p *Pipeline) stageFormat(st *types.PlanningState) {
	if st.ErrorOccurred {
		st.FinalResponse = report.Apology
	} else {
		st.FinalResponse = report.Build(st)
	}
	st.ProcessingComplete = true
}

func strDefault(v *string, def string) string {
	if v != nil && *v != "" {
		return *v
	}
	return def
}

func intDefault(v *int, def int) int {
	if v != nil && *v > 0 {
		return *v
	}
	return def
}

func floatDefault(v *float64, def float64) float64 {
	if v != nil && *v > 0 {
		return *v
	}
	return def
}
