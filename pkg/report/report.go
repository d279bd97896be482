// Package report renders the plain-text plan summary returned to the caller.
package report

import (
	"fmt"
	"strings"

	"tripbuddy/pkg/plan/types"
)

// Apology is returned whenever the pipeline finished in an error state.
const Apology = "Sorry, there was an error formatting your travel plan. Please try again."

// Build renders the full trip report from whatever the pipeline gathered.
// Missing sections degrade to N/A lines rather than being dropped, so a
// partially failed run still produces something readable.
func Build(st *types.PlanningState) string {
	if st == nil {
		return Apology
	}

	destination := "Unknown"
	budgetPerHead := 0.0
	travelers := 1
	duration := 0
	if r := st.Requirements; r != nil {
		if r.Destination != "" {
			destination = r.Destination
		}
		budgetPerHead = r.BudgetPerHead
		travelers = r.Travelers
		duration = r.DurationDays
	}

	var b strings.Builder

	fmt.Fprintf(&b, "\nTRAVEL PLAN FOR %s\n\n", strings.ToUpper(destination))
	b.WriteString("TRIP OVERVIEW\n")
	fmt.Fprintf(&b, "Destination: %s\n", destination)
	fmt.Fprintf(&b, "Duration: %d days\n", duration)
	fmt.Fprintf(&b, "Travelers: %d\n", travelers)
	fmt.Fprintf(&b, "Budget per person: $%.2f\n", budgetPerHead)

	b.WriteString("\nDESTINATION INFORMATION\n")
	if d := st.DestInfo; d != nil {
		fmt.Fprintf(&b, "Country: %s\n", orNA(d.Country))
		fmt.Fprintf(&b, "Currency: %s\n", orNA(d.Currency))
		fmt.Fprintf(&b, "Language: %s\n", orNA(d.Language))
		fmt.Fprintf(&b, "Best time to visit: %s\n", orNA(d.BestTimeToVisit))
		fmt.Fprintf(&b, "Transportation: %s\n", strings.Join(d.Transportation, ", "))
	} else {
		b.WriteString("Country: N/A\nCurrency: N/A\nLanguage: N/A\nBest time to visit: N/A\nTransportation: \n")
	}

	b.WriteString("\nFLIGHT OPTIONS FOUND\n")
	for i, f := range head(st.Flights, 3) {
		fmt.Fprintf(&b, "%d. %s - $%.2f\n", i+1, orUnknown(f.Airline), f.Price)
		fmt.Fprintf(&b, "   Duration: %s, Stops: %d, Rating: %.1f/5\n", orNA(f.Duration), f.Stops, f.Rating)
	}

	b.WriteString("\nHOTEL OPTIONS FOUND\n")
	for i, h := range head(st.Hotels, 3) {
		fmt.Fprintf(&b, "%d. %s - $%.2f/night\n", i+1, orUnknown(h.Name), h.PricePerNight)
		fmt.Fprintf(&b, "   Rating: %.1f/5, Location: %s\n", h.Rating, orNA(h.Location))
		fmt.Fprintf(&b, "   Amenities: %s\n", strings.Join(headStr(h.Amenities, 3), ", "))
	}

	b.WriteString("\nACTIVITY OPTIONS FOUND\n")
	for i, a := range head(st.Activities, 5) {
		fmt.Fprintf(&b, "%d. %s - $%.2f\n", i+1, orUnknown(a.Name), a.Price)
		fmt.Fprintf(&b, "   Category: %s, Duration: %s\n", orNA(a.Category), orNA(a.Duration))
		fmt.Fprintf(&b, "   Rating: %.1f/5\n", a.Rating)
	}

	b.WriteString("\nOPTIMIZED SELECTIONS\n")
	var flight *types.Flight
	var hotel *types.Hotel
	var selected []types.Activity
	if o := st.Optimization; o != nil {
		flight, hotel, selected = o.Flight, o.Hotel, o.Activities
	}
	if flight != nil {
		fmt.Fprintf(&b, "Selected Flight: %s - $%.2f\n", orUnknown(flight.Airline), flight.Price)
	} else {
		b.WriteString("Selected Flight: Unknown - $0.00\n")
	}
	if hotel != nil {
		fmt.Fprintf(&b, "Selected Hotel: %s - $%.2f/night\n", orUnknown(hotel.Name), hotel.PricePerNight)
	} else {
		b.WriteString("Selected Hotel: Unknown - $0.00/night\n")
	}
	actTotal := 0.0
	for _, a := range selected {
		actTotal += a.Price
	}
	fmt.Fprintf(&b, "Selected Activities: %d activities totaling $%.2f\n", len(selected), actTotal)

	if it := st.Itinerary; it != nil {
		b.WriteString("\nDETAILED ITINERARY\n")
		fmt.Fprintf(&b, "Total Trip Cost: $%.2f per person\n", it.TotalCost)
		fmt.Fprintf(&b, "Total Days: %d days\n\n", it.TotalDays)
		for _, day := range it.Days {
			fmt.Fprintf(&b, "DAY %d - %s (%s)\n", day.DayNumber, orUnknown(day.Title), orNA(day.Date))
			for _, s := range day.Slots {
				fmt.Fprintf(&b, "  %s: %s\n", orNA(s.Time), orUnknown(s.Title))
				fmt.Fprintf(&b, "    %s\n", orNA(s.Description))
				if s.Cost > 0 {
					fmt.Fprintf(&b, "    Cost: $%.2f\n", s.Cost)
				}
			}
			fmt.Fprintf(&b, "  Daily Total: $%.2f\n\n", day.DailyTotal)
		}
	}

	b.WriteString("\nBOOKING INFORMATION\n")
	if flight != nil && flight.BookingToken != "" {
		fmt.Fprintf(&b, "Flight Booking: Use token %s\n", flight.BookingToken)
	} else {
		b.WriteString("Flight Booking: Use token N/A\n")
	}
	if hotel != nil && hotel.BookingURL != "" {
		fmt.Fprintf(&b, "Hotel Booking: %s\n", hotel.BookingURL)
	} else {
		b.WriteString("Hotel Booking: Contact hotel directly\n")
	}
	b.WriteString("Activities: Contact venues or use their websites for booking\n")

	b.WriteString("\nYour complete travel plan is ready! All searches used real API data where available.")
	return b.String()
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func headStr(s []string, n int) []string { return head(s, n) }

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
