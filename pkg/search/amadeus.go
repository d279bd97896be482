// pkg/search/amadeus.go

package search

import (
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tripbuddy/pkg/plan/types"
)

// Amadeus talks to the Amadeus self-service APIs (flight offers + hotel
// offers). OAuth2 client-credential tokens are cached until shortly before
// they expire.
type Amadeus struct {
	key     string
	secret  string
	baseURL string
	httpc   *http.Client

	token        string
	tokenExpires time.Time
}

func NewAmadeus(key, secret string) *Amadeus {
	return &Amadeus{
		key:     key,
		secret:  secret,
		baseURL: "https://test.api.amadeus.com/v1",
		httpc:   &http.Client{Timeout: 25 * time.Second},
	}
}

func (a *Amadeus) accessToken() string {
	if a.token != "" && time.Now().Before(a.tokenExpires) {
		return a.token
	}
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {a.key},
		"client_secret": {a.secret},
	}
	req, _ := http.NewRequest("POST", a.baseURL+"/security/oauth2/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if !doJSON(a.httpc, req, &out) || out.AccessToken == "" {
		log.Printf("[search] amadeus token unavailable")
		return ""
	}
	a.token = out.AccessToken
	a.tokenExpires = time.Now().Add(time.Duration(out.ExpiresIn-60) * time.Second)
	return a.token
}

func (a *Amadeus) SearchFlights(q FlightQuery) []types.Flight {
	token := a.accessToken()
	if token == "" {
		return nil
	}

	params := url.Values{
		"originLocationCode":      {airportCode(q.DepartureCity, "NYC")},
		"destinationLocationCode": {airportCode(q.Destination, "PAR")},
		"departureDate":           {q.DepartureDate},
		"adults":                  {strconv.Itoa(q.Travelers)},
		"max":                     {"10"},
	}
	if q.ReturnDate != "" {
		params.Set("returnDate", q.ReturnDate)
	}
	if q.BudgetPerHead > 0 {
		params.Set("maxPrice", strconv.Itoa(int(q.BudgetPerHead)))
	}

	req, _ := http.NewRequest("GET", a.baseURL+"/shopping/flight-offers?"+params.Encode(), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	var out struct {
		Data []struct {
			ID    string `json:"id"`
			Price struct {
				Total string `json:"total"`
			} `json:"price"`
			Itineraries []struct {
				Duration string `json:"duration"`
				Segments []struct {
					CarrierCode string `json:"carrierCode"`
					Departure   struct {
						At string `json:"at"`
					} `json:"departure"`
					Arrival struct {
						At string `json:"at"`
					} `json:"arrival"`
				} `json:"segments"`
			} `json:"itineraries"`
		} `json:"data"`
	}
	if !doJSON(a.httpc, req, &out) {
		return nil
	}

	var flights []types.Flight
	for _, offer := range out.Data {
		if len(flights) >= 5 {
			break
		}
		price, err := strconv.ParseFloat(offer.Price.Total, 64)
		if err != nil || len(offer.Itineraries) == 0 {
			continue
		}
		it := offer.Itineraries[0]
		if len(it.Segments) == 0 {
			continue
		}
		stops := len(it.Segments) - 1
		flights = append(flights, types.Flight{
			Airline:       it.Segments[0].CarrierCode + " Airlines",
			DepartureTime: it.Segments[0].Departure.At,
			ArrivalTime:   it.Segments[len(it.Segments)-1].Arrival.At,
			Price:         price,
			Duration:      it.Duration,
			Stops:         stops,
			Rating:        flightRating(stops),
			BookingToken:  offer.ID,
		})
	}

	// keep the affordable top three
	var affordable []types.Flight
	for _, f := range flights {
		if f.Price <= q.BudgetPerHead {
			affordable = append(affordable, f)
		}
	}
	if len(affordable) > 3 {
		affordable = affordable[:3]
	}
	return affordable
}

// SearchHotels is the backup hotel source; the Booking.com adapter is tried
// first by the combined HotelSearch.
func (a *Amadeus) SearchHotels(q HotelQuery) []types.Hotel {
	token := a.accessToken()
	if token == "" {
		return nil
	}
	nights := nightsBetween(q.CheckinDate, q.CheckoutDate)
	if nights <= 0 {
		return nil
	}

	params := url.Values{
		"cityCode":     {airportCode(q.Destination, "PAR")},
		"checkInDate":  {q.CheckinDate},
		"checkOutDate": {q.CheckoutDate},
		"adults":       {strconv.Itoa(q.Travelers)},
	}
	req, _ := http.NewRequest("GET", a.baseURL+"/shopping/hotel-offers?"+params.Encode(), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	var out struct {
		Data []struct {
			Hotel struct {
				HotelID   string   `json:"hotelId"`
				Name      string   `json:"name"`
				Rating    float64  `json:"rating,string"`
				Amenities []string `json:"amenities"`
				Address   struct {
					CityName string `json:"cityName"`
				} `json:"address"`
			} `json:"hotel"`
			Offers []struct {
				Price struct {
					Total string `json:"total"`
				} `json:"price"`
			} `json:"offers"`
		} `json:"data"`
	}
	if !doJSON(a.httpc, req, &out) {
		return nil
	}

	var hotels []types.Hotel
	for _, ho := range out.Data {
		if len(hotels) >= 5 {
			break
		}
		if len(ho.Offers) == 0 {
			continue
		}
		total, err := strconv.ParseFloat(ho.Offers[0].Price.Total, 64)
		if err != nil {
			continue
		}
		perNight := total / float64(nights)
		if perNight > q.BudgetPerNight {
			continue
		}
		amenities := ho.Hotel.Amenities
		if len(amenities) == 0 {
			amenities = []string{"WiFi"}
		}
		loc := ho.Hotel.Address.CityName
		if loc == "" {
			loc = "City Center"
		}
		hotels = append(hotels, types.Hotel{
			Name:          orDefault(ho.Hotel.Name, "Unknown Hotel"),
			Rating:        NormalizeRating(ho.Hotel.Rating),
			ReviewScore:   ho.Hotel.Rating,
			PricePerNight: perNight,
			TotalCost:     total,
			Location:      loc,
			Amenities:     amenities,
			Category:      hotelCategory(perNight),
			HotelID:       ho.Hotel.HotelID,
		})
	}
	return hotels
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func nightsBetween(checkin, checkout string) int {
	a, err := time.Parse("2006-01-02", checkin)
	if err != nil {
		return 0
	}
	b, err := time.Parse("2006-01-02", checkout)
	if err != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}
