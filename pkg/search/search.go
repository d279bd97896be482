// pkg/search/search.go

package search

import (
	"tripbuddy/pkg/plan/types"
)

// Adapters absorb upstream failures: a broken or empty upstream answer comes
// back as an empty slice, never an error. The caller owns fallback data.

type FlightQuery struct {
	DepartureCity string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Travelers     int
	BudgetPerHead float64
}

type HotelQuery struct {
	Destination    string
	CheckinDate    string
	CheckoutDate   string
	Travelers      int
	BudgetPerNight float64
}

type ActivityQuery struct {
	Destination  string
	Preferences  []string
	DailyBudget  float64
	DurationDays int
}

type FlightSearcher interface {
	SearchFlights(q FlightQuery) []types.Flight
}

type HotelSearcher interface {
	SearchHotels(q HotelQuery) []types.Hotel
}

type ActivitySearcher interface {
	SearchActivities(q ActivityQuery) []types.Activity
}

// NormalizeRating maps any source rating onto the canonical 0..5 scale.
// Review-style 0..10 scores are halved; everything is clamped.
func NormalizeRating(v float64) float64 {
	if v > 5 {
		v = v / 2
	}
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}

// flightRating derives a 0..5 rating from stop count, nonstop being best.
func flightRating(stops int) float64 {
	return NormalizeRating(4.0 + float64(5-stops)*0.2)
}

// airportCodes is the simplified city → IATA mapping the search APIs need.
var airportCodes = map[string]string{
	"new york":    "NYC",
	"paris":       "PAR",
	"london":      "LON",
	"tokyo":       "TYO",
	"los angeles": "LAX",
	"rome":        "ROM",
	"barcelona":   "BCN",
	"madrid":      "MAD",
	"amsterdam":   "AMS",
	"berlin":      "BER",
	"sydney":      "SYD",
	"dubai":       "DXB",
}

func airportCode(city, def string) string {
	if c, ok := airportCodes[lower(city)]; ok {
		return c
	}
	return def
}

func hotelCategory(pricePerNight float64) string {
	switch {
	case pricePerNight > 200:
		return "luxury"
	case pricePerNight > 100:
		return "mid-range"
	default:
		return "budget"
	}
}
