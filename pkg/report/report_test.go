package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbuddy/pkg/plan/types"
)

func fullState() *types.PlanningState {
	flight := types.Flight{Airline: "Delta Airlines", Price: 450, Duration: "PT8H30M", Stops: 1, Rating: 4.2, BookingToken: "tok1"}
	hotel := types.Hotel{Name: "Grand Central Hotel", Rating: 4.25, PricePerNight: 120, TotalCost: 840, Location: "City Center", Amenities: []string{"WiFi", "Restaurant", "Gym", "Pool"}, BookingURL: "https://example.com/h1"}
	acts := []types.Activity{
		{Name: "Food Tour", Price: 55, Category: "food", Duration: "3.5 hours", Rating: 4.8},
		{Name: "Museum Tour", Price: 35, Category: "culture", Duration: "3 hours", Rating: 4.6},
	}
	return &types.PlanningState{
		Requirements: &types.ResolvedRequirements{
			Destination: "Paris", BudgetPerHead: 1000, Travelers: 2, DurationDays: 7,
		},
		DestInfo: &types.DestinationInfo{
			Country: "France", Currency: "EUR", Language: "French",
			BestTimeToVisit: "April to June", Transportation: []string{"Metro", "Bus"},
		},
		Flights:    []types.Flight{flight},
		Hotels:     []types.Hotel{hotel},
		Activities: acts,
		Optimization: &types.OptimizationResult{
			Flight: &flight, Hotel: &hotel, Activities: acts,
			TotalCost: 1380, BudgetStatus: "over_budget",
		},
		Itinerary: &types.Itinerary{
			Destination: "Paris", TotalDays: 8, TotalCost: 1380,
			Days: []types.Day{{
				Date: "2026-09-10", DayNumber: 1, Title: "Arrival Day", DailyTotal: 500,
				Slots: []types.Slot{{Time: "Morning/Afternoon", Title: "Flight Arrival - Delta Airlines", Description: "Arrive at Paris", Cost: 450}},
			}},
		},
	}
}

func TestBuildFullReport(t *testing.T) {
	out := Build(fullState())

	assert.Contains(t, out, "TRAVEL PLAN FOR PARIS")
	assert.Contains(t, out, "Destination: Paris")
	assert.Contains(t, out, "Travelers: 2")
	assert.Contains(t, out, "Budget per person: $1000.00")
	assert.Contains(t, out, "Country: France")
	assert.Contains(t, out, "Transportation: Metro, Bus")
	assert.Contains(t, out, "1. Delta Airlines - $450.00")
	assert.Contains(t, out, "Rating: 4.2/5")
	assert.Contains(t, out, "1. Grand Central Hotel - $120.00/night")
	assert.Contains(t, out, "Amenities: WiFi, Restaurant, Gym") // capped at 3
	assert.Contains(t, out, "Selected Flight: Delta Airlines - $450.00")
	assert.Contains(t, out, "Selected Activities: 2 activities totaling $90.00")
	assert.Contains(t, out, "Total Trip Cost: $1380.00 per person")
	assert.Contains(t, out, "DAY 1 - Arrival Day (2026-09-10)")
	assert.Contains(t, out, "Flight Booking: Use token tok1")
	assert.Contains(t, out, "Hotel Booking: https://example.com/h1")
	assert.True(t, strings.HasSuffix(out, "All searches used real API data where available."))
}

func TestBuildDegradesOnMissingSections(t *testing.T) {
	out := Build(&types.PlanningState{})

	assert.Contains(t, out, "TRAVEL PLAN FOR UNKNOWN")
	assert.Contains(t, out, "Country: N/A")
	assert.Contains(t, out, "Selected Flight: Unknown - $0.00")
	assert.Contains(t, out, "Hotel Booking: Contact hotel directly")
	assert.NotContains(t, out, "DETAILED ITINERARY")
}

func TestBuildNilState(t *testing.T) {
	require.Equal(t, Apology, Build(nil))
}

func TestBuildCapsOptionLists(t *testing.T) {
	st := fullState()
	for i := 0; i < 10; i++ {
		st.Flights = append(st.Flights, types.Flight{Airline: "Filler Air", Price: 500})
		st.Activities = append(st.Activities, types.Activity{Name: "Filler Activity", Price: 10})
	}
	out := Build(st)
	// flight options cap at 3 (one real + two fillers), activities at 5
	assert.Equal(t, 2, strings.Count(out, "Filler Air"))
	assert.Equal(t, 3, strings.Count(out, "Filler Activity"))
}
