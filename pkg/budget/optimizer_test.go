package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbuddy/pkg/plan/types"
	"tripbuddy/pkg/search"
)

func testFlights() []types.Flight {
	return []types.Flight{
		{Airline: "CheapAir", Price: 200, Rating: 3.5},
		{Airline: "MidAir", Price: 300, Rating: 4.2},
		{Airline: "PoshAir", Price: 340, Rating: 4.9},
	}
}

func testHotels() []types.Hotel {
	return []types.Hotel{
		{Name: "Hostel", PricePerNight: 40, TotalCost: 280, Rating: 3.2},
		{Name: "Comfort", PricePerNight: 90, TotalCost: 630, Rating: 4.0},
		{Name: "Palace", PricePerNight: 180, TotalCost: 1260, Rating: 4.8},
	}
}

func testActivities() []types.Activity {
	return []types.Activity{
		{Name: "Museum", Price: 30, Rating: 4.6},
		{Name: "Food Tour", Price: 55, Rating: 4.8},
		{Name: "Hike", Price: 65, Rating: 4.4},
	}
}

func TestOptimizeEconomyPicksCheapest(t *testing.T) {
	o := New(search.DefaultCatalog())
	res := o.Optimize(Input{
		Flights: testFlights(), Hotels: testHotels(), Activities: testActivities(),
		BudgetPerHead: 1000, Travelers: 1, DurationDays: 7, Priority: PriorityEconomy,
	})
	require.NotNil(t, res.Flight)
	assert.Equal(t, "CheapAir", res.Flight.Airline)
	require.NotNil(t, res.Hotel)
	assert.Equal(t, "Hostel", res.Hotel.Name)
	assert.Zero(t, res.FlightSavings)
	assert.Zero(t, res.HotelSavings)
}

func TestOptimizeLuxuryPicksHighestRated(t *testing.T) {
	o := New(search.DefaultCatalog())
	res := o.Optimize(Input{
		Flights: testFlights(), Hotels: testHotels(), Activities: testActivities(),
		BudgetPerHead: 1000, Travelers: 1, DurationDays: 7, Priority: PriorityLuxury,
	})
	// flight budget 350 keeps all three affordable; luxury takes the rating
	assert.Equal(t, "PoshAir", res.Flight.Airline)
	assert.Equal(t, 4.9, res.Flight.Rating)
}

func TestOptimizeFallbackSubstitution(t *testing.T) {
	o := New(search.DefaultCatalog())
	res := o.Optimize(Input{BudgetPerHead: 1000, Travelers: 1, DurationDays: 7})

	// flight budget 350: nothing affordable, balanced picks Delta over American
	require.NotNil(t, res.Flight)
	assert.Equal(t, "Delta Airlines", res.Flight.Airline)

	// hotel cap is min(450, 0.6*550)=330; both affordable, the cheaper one
	// scores higher on the balanced formula
	require.NotNil(t, res.Hotel)
	assert.Equal(t, "Budget Comfort Inn", res.Hotel.Name)

	// remaining 95 fits the two top-rated activities (55+35) but not the third
	require.Len(t, res.Activities, 2)
	assert.Equal(t, "Local Food & Wine Tasting Tour", res.Activities[0].Name)
	assert.Equal(t, "Art Gallery & Museum Tour", res.Activities[1].Name)

	assert.InDelta(t, 995.0, res.TotalCost, 0.001)
	assert.InDelta(t, 5.0, res.BudgetRemaining, 0.001)
	assert.Equal(t, "within_budget", res.BudgetStatus)
	assert.InDelta(t, 2.5, res.Breakdown.MealsMisc, 0.001)
}

func TestOptimizeOverBudget(t *testing.T) {
	o := New(search.DefaultCatalog())
	res := o.Optimize(Input{BudgetPerHead: 400, Travelers: 1, DurationDays: 7})

	assert.Equal(t, "over_budget", res.BudgetStatus)
	assert.Negative(t, res.BudgetRemaining)
	require.NotEmpty(t, res.Recommendations)
	assert.Equal(t, "Budget exceeded - consider these options:", res.Recommendations[0])
	assert.Empty(t, res.Activities)
	assert.Zero(t, res.Breakdown.MealsMisc)
}

func TestOptimizeTotalBudgetDerivesPerHead(t *testing.T) {
	o := New(search.DefaultCatalog())
	a := o.Optimize(Input{TotalBudget: 3000, Travelers: 3, DurationDays: 7})
	b := o.Optimize(Input{BudgetPerHead: 1000, Travelers: 1, DurationDays: 7})
	assert.Equal(t, b.Flight.Airline, a.Flight.Airline)
	assert.Equal(t, b.Hotel.Name, a.Hotel.Name)
	assert.Equal(t, b.TotalCost, a.TotalCost)
}

func TestOptimizeDoesNotMutateInputs(t *testing.T) {
	o := New(search.DefaultCatalog())
	acts := testActivities()
	o.Optimize(Input{
		Flights: testFlights(), Hotels: testHotels(), Activities: acts,
		BudgetPerHead: 1000, Travelers: 1, DurationDays: 7,
	})
	assert.Equal(t, "Museum", acts[0].Name)
	assert.Equal(t, "Food Tour", acts[1].Name)
	assert.Equal(t, "Hike", acts[2].Name)
}

func TestOptimizeBalancedCoupleOnCatalog(t *testing.T) {
	o := New(search.DefaultCatalog())
	res := o.Optimize(Input{TotalBudget: 3000, Travelers: 2, DurationDays: 7, Priority: PriorityBalanced})

	// per-head 1500, flight budget 525: both catalog flights are affordable,
	// and Delta's price edge outweighs American's rating edge on the formula
	assert.Greater(t, BalancedScore(4.2, 450, 525), BalancedScore(4.5, 520, 525))
	require.NotNil(t, res.Flight)
	assert.Equal(t, "Delta Airlines", res.Flight.Airline)

	// hotel cap min(675, 0.6*1050)=630: Grand Central's rating wins here
	assert.Greater(t, BalancedScore(4.25, 120, 630), BalancedScore(3.9, 65, 630))
	require.NotNil(t, res.Hotel)
	assert.Equal(t, "Grand Central Hotel", res.Hotel.Name)

	// 210 left after flight and hotel fits all three activities (155)
	require.Len(t, res.Activities, 3)
	assert.InDelta(t, 1445.0, res.TotalCost, 0.001)
	assert.InDelta(t, 55.0, res.BudgetRemaining, 0.001)
	assert.Equal(t, "within_budget", res.BudgetStatus)
	assert.InDelta(t, 27.5, res.Breakdown.MealsMisc, 0.001)
	assert.InDelta(t, 55.0, res.HotelSavings, 0.001)
}

func TestOptimizeIsIdempotent(t *testing.T) {
	o := New(search.DefaultCatalog())
	in := Input{
		Flights: testFlights(), Hotels: testHotels(), Activities: testActivities(),
		BudgetPerHead: 1000, Travelers: 1, DurationDays: 7, Priority: PriorityBalanced,
	}
	first := o.Optimize(in)
	second := o.Optimize(in)
	assert.Equal(t, first, second)
}

func TestBalancedScoreFavorsValue(t *testing.T) {
	// same rating, lower price scores higher
	assert.Greater(t, BalancedScore(4.0, 100, 400), BalancedScore(4.0, 300, 400))
	// a much better rating can outweigh a moderate price gap
	assert.Greater(t, BalancedScore(5.0, 250, 400), BalancedScore(3.0, 200, 400))
}
