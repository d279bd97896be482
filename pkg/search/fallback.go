// pkg/search/fallback.go

package search

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"tripbuddy/pkg/plan/types"
)

// Catalog is the fixed offer set substituted whenever a search comes back
// empty, so selection never runs on zero candidates.
type Catalog struct {
	Flights    []types.Flight
	Hotels     []types.Hotel
	Activities []types.Activity
}

// DefaultCatalog returns the built-in offers. Hotel review scores are on the
// 0..10 scale and pass through the same normalization as live results.
func DefaultCatalog() Catalog {
	return Catalog{
		Flights: []types.Flight{
			{
				Airline:      "Delta Airlines",
				Price:        450.0,
				Duration:     "PT8H30M",
				Stops:        1,
				Rating:       4.2,
				BookingToken: "fallback_flight_1",
			},
			{
				Airline:      "American Airlines",
				Price:        520.0,
				Duration:     "PT7H45M",
				Stops:        0,
				Rating:       4.5,
				BookingToken: "fallback_flight_2",
			},
		},
		Hotels: []types.Hotel{
			{
				Name:          "Grand Central Hotel",
				Rating:        NormalizeRating(8.5),
				ReviewScore:   8.5,
				PricePerNight: 120.0,
				TotalCost:     840.0,
				Location:      "City Center",
				Amenities:     []string{"WiFi", "Restaurant", "Gym", "Pool"},
				Category:      "mid-range",
				HotelID:       "fallback_hotel_1",
			},
			{
				Name:          "Budget Comfort Inn",
				Rating:        NormalizeRating(7.8),
				ReviewScore:   7.8,
				PricePerNight: 65.0,
				TotalCost:     455.0,
				Location:      "Suburb",
				Amenities:     []string{"WiFi", "Parking"},
				Category:      "budget",
				HotelID:       "fallback_hotel_2",
			},
		},
		Activities: []types.Activity{
			{
				Name:        "Local Food & Wine Tasting Tour",
				Description: "Authentic local cuisine tasting",
				Category:    "food",
				Duration:    "3.5 hours",
				Price:       55.0,
				Rating:      4.8,
				ActivityID:  "fallback_activity_1",
			},
			{
				Name:        "Art Gallery & Museum Tour",
				Description: "Explore renowned art collections",
				Category:    "culture",
				Duration:    "3 hours",
				Price:       35.0,
				Rating:      4.6,
				ActivityID:  "fallback_activity_2",
			},
			{
				Name:        "Adventure Park & Trails",
				Description: "Outdoor adventure activities",
				Category:    "adventure",
				Duration:    "4 hours",
				Price:       65.0,
				Rating:      4.4,
				ActivityID:  "fallback_activity_3",
			},
		},
	}
}

// LoadCatalog reads a catalog override CSV with the columns
// kind,name,price,rating,extra (kind = flight|hotel|activity; extra is stops
// for flights, nightly price for hotels, category for activities). Rows that
// do not parse are skipped. An override that produces an empty category keeps
// the built-in list for that category.
func LoadCatalog(path string) (Catalog, error) {
	cat := DefaultCatalog()
	if path == "" {
		return cat, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cat, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	if _, err := cr.Read(); err != nil { // header
		return cat, err
	}

	var flights []types.Flight
	var hotels []types.Hotel
	var acts []types.Activity
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return cat, err
		}
		if len(rec) < 5 {
			continue
		}
		price, err1 := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		rating, err2 := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
		if err1 != nil || err2 != nil || price <= 0 {
			continue
		}
		name := strings.TrimSpace(rec[1])
		extra := strings.TrimSpace(rec[4])
		switch strings.ToLower(strings.TrimSpace(rec[0])) {
		case "flight":
			stops, _ := strconv.Atoi(extra)
			flights = append(flights, types.Flight{
				Airline: name, Price: price, Stops: stops,
				Rating: NormalizeRating(rating), Duration: "PT8H0M",
			})
		case "hotel":
			perNight, _ := strconv.ParseFloat(extra, 64)
			if perNight <= 0 {
				perNight = price / 7
			}
			hotels = append(hotels, types.Hotel{
				Name: name, PricePerNight: perNight, TotalCost: price,
				Rating: NormalizeRating(rating), ReviewScore: rating,
				Location: "City Center", Amenities: []string{"WiFi"},
				Category: hotelCategory(perNight),
			})
		case "activity":
			acts = append(acts, types.Activity{
				Name: name, Price: price, Rating: NormalizeRating(rating),
				Category: orDefault(extra, "culture"), Duration: "3 hours",
			})
		}
	}

	if len(flights) > 0 {
		cat.Flights = flights
	}
	if len(hotels) > 0 {
		cat.Hotels = hotels
	}
	if len(acts) > 0 {
		cat.Activities = acts
	}
	return cat, nil
}
