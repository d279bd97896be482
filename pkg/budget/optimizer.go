// pkg/budget/optimizer.go

package budget

import (
	"fmt"
	"sort"

	"tripbuddy/pkg/plan/types"
	"tripbuddy/pkg/search"
)

type Priority string

const (
	PriorityEconomy  Priority = "economy"
	PriorityBalanced Priority = "balanced"
	PriorityLuxury   Priority = "luxury"
)

// Budget allocation ratios: fixed design constants, not user-tunable.
const (
	flightBudgetRatio   = 0.35
	hotelBudgetRatio    = 0.45
	activityBudgetRatio = 0.20

	// after the flight is chosen, lodging may consume at most this share of
	// what is left of the per-person budget
	hotelRemainderCap = 0.6
)

type Input struct {
	Flights    []types.Flight
	Hotels     []types.Hotel
	Activities []types.Activity

	TotalBudget   float64
	BudgetPerHead float64
	Travelers     int
	DurationDays  int
	Priority      Priority
}

type Optimizer interface {
	Optimize(in Input) types.OptimizationResult
}

type optimizer struct {
	fallback search.Catalog
}

// New builds an optimizer that substitutes offers from the given catalog
// whenever a candidate list is empty.
func New(fallback search.Catalog) Optimizer {
	return &optimizer{fallback: fallback}
}

func (o *optimizer) Optimize(in Input) types.OptimizationResult {
	flights := in.Flights
	if len(flights) == 0 {
		flights = o.fallback.Flights
	}
	hotels := in.Hotels
	if len(hotels) == 0 {
		hotels = o.fallback.Hotels
	}
	activities := in.Activities
	if len(activities) == 0 {
		activities = o.fallback.Activities
	}

	perHead := in.BudgetPerHead
	if in.TotalBudget > 0 && in.Travelers > 0 {
		perHead = in.TotalBudget / float64(in.Travelers)
	}
	priority := in.Priority
	if priority == "" {
		priority = PriorityBalanced
	}

	flightBudget := perHead * flightBudgetRatio
	hotelBudget := perHead * hotelBudgetRatio

	flight := selectFlight(flights, flightBudget, priority)

	remaining := perHead - flight.Price
	hotelCap := hotelBudget
	if cap := remaining * hotelRemainderCap; cap < hotelCap {
		hotelCap = cap
	}
	hotel := selectHotel(hotels, hotelCap, priority)

	selected, activityCost := selectActivities(activities, perHead-flight.Price-hotel.TotalCost)

	totalCost := flight.Price + hotel.TotalCost + activityCost
	budgetRemaining := perHead - totalCost

	mealsMisc := 0.0
	if budgetRemaining > 0 {
		mealsMisc = budgetRemaining * 0.5
	}

	status := "within_budget"
	var recs []string
	cheapestFlight := minFlightPrice(flights)
	cheapestHotel := minHotelNightly(hotels)
	if budgetRemaining < 0 {
		status = "over_budget"
		recs = append(recs,
			"Budget exceeded - consider these options:",
			fmt.Sprintf("Switch to economy flight (save $%.2f)", flight.Price-cheapestFlight),
			fmt.Sprintf("Choose budget hotel (save $%.2f/night)", hotel.PricePerNight-cheapestHotel),
			"Reduce number of paid activities",
		)
	} else {
		recs = append(recs,
			fmt.Sprintf("Great! You have $%.2f remaining", budgetRemaining),
			"Consider upgrading accommodation",
			"Add more premium activities",
			"Set aside for meals and shopping",
		)
	}

	return types.OptimizationResult{
		Flight:          &flight,
		Hotel:           &hotel,
		Activities:      selected,
		TotalCost:       totalCost,
		BudgetRemaining: budgetRemaining,
		Breakdown: types.CostBreakdown{
			Flight:    flight.Price,
			Hotel:     hotel.TotalCost,
			Activity:  activityCost,
			MealsMisc: mealsMisc,
		},
		BudgetStatus:    status,
		Recommendations: recs,
		FlightSavings:   flight.Price - cheapestFlight,
		HotelSavings:    hotel.PricePerNight - cheapestHotel,
	}
}

// BalancedScore is the documented value formula: 60% weight on rating, 40% on
// how far under the category budget the price sits.
func BalancedScore(rating, price, categoryBudget float64) float64 {
	return (rating/5.0)*0.6 + ((categoryBudget-price)/categoryBudget)*0.4
}

func selectFlight(flights []types.Flight, budget float64, priority Priority) types.Flight {
	pool := flights
	var affordable []types.Flight
	for _, f := range flights {
		if f.Price <= budget {
			affordable = append(affordable, f)
		}
	}
	if len(affordable) > 0 {
		pool = affordable
	}

	best := pool[0]
	for _, f := range pool[1:] {
		switch priority {
		case PriorityEconomy:
			if f.Price < best.Price {
				best = f
			}
		case PriorityLuxury:
			if f.Rating > best.Rating {
				best = f
			}
		default:
			if BalancedScore(f.Rating, f.Price, budget) > BalancedScore(best.Rating, best.Price, budget) {
				best = f
			}
		}
	}
	return best
}

func selectHotel(hotels []types.Hotel, budget float64, priority Priority) types.Hotel {
	pool := hotels
	var affordable []types.Hotel
	for _, h := range hotels {
		if h.PricePerNight <= budget {
			affordable = append(affordable, h)
		}
	}
	if len(affordable) > 0 {
		pool = affordable
	}

	best := pool[0]
	for _, h := range pool[1:] {
		switch priority {
		case PriorityEconomy:
			if h.PricePerNight < best.PricePerNight {
				best = h
			}
		case PriorityLuxury:
			if h.Rating > best.Rating {
				best = h
			}
		default:
			if BalancedScore(h.Rating, h.PricePerNight, budget) > BalancedScore(best.Rating, best.PricePerNight, budget) {
				best = h
			}
		}
	}
	return best
}

// selectActivities greedily packs activities by descending rating into the
// remaining budget. Ties keep the incoming order, so the result is stable.
func selectActivities(activities []types.Activity, remaining float64) ([]types.Activity, float64) {
	ranked := make([]types.Activity, len(activities))
	copy(ranked, activities)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rating > ranked[j].Rating })

	var selected []types.Activity
	cost := 0.0
	for _, a := range ranked {
		if cost+a.Price <= remaining {
			selected = append(selected, a)
			cost += a.Price
		}
	}
	return selected, cost
}

func minFlightPrice(flights []types.Flight) float64 {
	min := flights[0].Price
	for _, f := range flights[1:] {
		if f.Price < min {
			min = f.Price
		}
	}
	return min
}

func minHotelNightly(hotels []types.Hotel) float64 {
	min := hotels[0].PricePerNight
	for _, h := range hotels[1:] {
		if h.PricePerNight < min {
			min = h.PricePerNight
		}
	}
	return min
}
