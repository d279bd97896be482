// pkg/itinerary/assembler.go

package itinerary

import (
	"fmt"
	"time"

	"tripbuddy/pkg/plan/types"
)

// Fixed slot costs for the parts of a day no offer covers.
const (
	welcomeDinnerCost   = 50.0
	breakfastCost       = 15.0
	freeExplorationCost = 30.0
	dinnerLeisureCost   = 60.0
)

type Params struct {
	Destination  string
	CheckinDate  string // YYYY-MM-DD
	CheckoutDate string
	Flight       *types.Flight
	Hotel        *types.Hotel
	Activities   []types.Activity
}

// Assemble expands a selection into the day-by-day schedule. The trip spans
// duration+1 calendar days: arrival, duration-1 exploration days, departure.
// Selected activities are consumed in order, one per interior day; extras are
// dropped.
func Assemble(p Params) (*types.Itinerary, error) {
	start, err := time.Parse("2006-01-02", p.CheckinDate)
	if err != nil {
		return nil, fmt.Errorf("bad checkin date %q: %w", p.CheckinDate, err)
	}
	end, err := time.Parse("2006-01-02", p.CheckoutDate)
	if err != nil {
		return nil, fmt.Errorf("bad checkout date %q: %w", p.CheckoutDate, err)
	}
	duration := int(end.Sub(start).Hours() / 24)
	if duration <= 0 {
		return nil, fmt.Errorf("checkout %s is not after checkin %s", p.CheckoutDate, p.CheckinDate)
	}
	if p.Flight == nil || p.Hotel == nil {
		return nil, fmt.Errorf("itinerary needs a selected flight and hotel")
	}

	days := make([]types.Day, 0, duration+1)
	days = append(days, arrivalDay(start, p))

	activityIndex := 0
	for dayNum := 2; dayNum <= duration; dayNum++ {
		date := start.AddDate(0, 0, dayNum-1)
		var main types.Slot
		if activityIndex < len(p.Activities) {
			a := p.Activities[activityIndex]
			activityIndex++
			main = types.Slot{
				Time:        "Mid-Morning to Afternoon",
				Title:       a.Name,
				Description: orDefault(a.Description, "Enjoy local activities"),
				Cost:        a.Price,
				Duration:    orDefault(a.Duration, "3 hours"),
			}
		} else {
			main = types.Slot{
				Time:        "Morning to Afternoon",
				Title:       "Free Exploration",
				Description: fmt.Sprintf("Explore %s at your own pace", p.Destination),
				Cost:        freeExplorationCost,
				Duration:    "4 hours",
			}
		}
		slots := []types.Slot{
			{Time: "Morning", Title: "Breakfast", Description: "Breakfast at hotel or local cafe", Cost: breakfastCost, Duration: "1 hour"},
			main,
			{Time: "Evening", Title: "Dinner & Leisure", Description: "Local dining and evening activities", Cost: dinnerLeisureCost, Duration: "2-3 hours"},
		}
		days = append(days, types.Day{
			Date:       date.Format("2006-01-02"),
			DayNumber:  dayNum,
			Title:      fmt.Sprintf("Day %d - Exploration", dayNum),
			Slots:      slots,
			DailyTotal: sumSlots(slots),
		})
	}

	days = append(days, departureDay(end, duration+1))

	total := 0.0
	for _, d := range days {
		total += d.DailyTotal
	}

	activityCost := 0.0
	for _, a := range p.Activities {
		activityCost += a.Price
	}

	return &types.Itinerary{
		Destination: p.Destination,
		Days:        days,
		TotalDays:   len(days),
		TotalCost:   total,
		Booking: types.BookingSummary{
			Airline:        p.Flight.Airline,
			FlightPrice:    p.Flight.Price,
			BookingToken:   p.Flight.BookingToken,
			HotelName:      p.Hotel.Name,
			HotelTotal:     p.Hotel.TotalCost,
			HotelURL:       p.Hotel.BookingURL,
			ActivityCount:  len(p.Activities),
			ActivitiesCost: activityCost,
		},
	}, nil
}

func arrivalDay(date time.Time, p Params) types.Day {
	slots := []types.Slot{
		{
			Time:        "Morning/Afternoon",
			Title:       "Flight Arrival - " + p.Flight.Airline,
			Description: "Arrive at " + p.Destination,
			Cost:        p.Flight.Price,
			Duration:    orDefault(p.Flight.Duration, "8 hours"),
		},
		{
			Time:        "Late Afternoon",
			Title:       "Hotel Check-in - " + p.Hotel.Name,
			Description: fmt.Sprintf("Check into %s in %s", p.Hotel.Name, orDefault(p.Hotel.Location, "city center")),
			Cost:        0,
			Duration:    "30 minutes",
		},
		{
			Time:        "Evening",
			Title:       "Welcome Dinner",
			Description: "Explore local dining near hotel",
			Cost:        welcomeDinnerCost,
			Duration:    "2 hours",
		},
	}
	return types.Day{
		Date:       date.Format("2006-01-02"),
		DayNumber:  1,
		Title:      "Arrival Day",
		Slots:      slots,
		DailyTotal: sumSlots(slots),
	}
}

func departureDay(date time.Time, dayNum int) types.Day {
	return types.Day{
		Date:      date.Format("2006-01-02"),
		DayNumber: dayNum,
		Title:     "Departure Day",
		Slots: []types.Slot{
			{Time: "Morning", Title: "Hotel Check-out", Description: "Pack and check out of hotel", Cost: 0, Duration: "1 hour"},
			{Time: "Late Morning/Afternoon", Title: "Departure", Description: "Travel to airport and departure", Cost: 0, Duration: "Variable"},
		},
		DailyTotal: 0,
	}
}

func sumSlots(slots []types.Slot) float64 {
	total := 0.0
	for _, s := range slots {
		total += s.Cost
	}
	return total
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
