// pkg/search/booking.go

package search

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripbuddy/pkg/plan/types"
)

// BookingCom wraps the booking-com RapidAPI surface: a location lookup
// followed by a hotel search against the resolved destination id.
type BookingCom struct {
	key     string
	baseURL string
	httpc   *http.Client
}

func NewBookingCom(key string) *BookingCom {
	return &BookingCom{
		key:     key,
		baseURL: "https://booking-com.p.rapidapi.com/v1",
		httpc:   &http.Client{Timeout: 25 * time.Second},
	}
}

func (b *BookingCom) get(path string, params url.Values, out any) bool {
	req, _ := http.NewRequest("GET", b.baseURL+path+"?"+params.Encode(), nil)
	req.Header.Set("X-RapidAPI-Key", b.key)
	req.Header.Set("X-RapidAPI-Host", "booking-com.p.rapidapi.com")
	return doJSON(b.httpc, req, out)
}

func (b *BookingCom) destID(query string) string {
	var out []struct {
		DestID any `json:"dest_id"`
	}
	if !b.get("/hotels/locations", url.Values{"name": {query}, "locale": {"en-gb"}}, &out) || len(out) == 0 {
		return ""
	}
	switch v := out[0].DestID.(type) {
	case string:
		return v
	case float64:
		return strconv.Itoa(int(v))
	}
	return ""
}

func (b *BookingCom) SearchHotels(q HotelQuery) []types.Hotel {
	nights := nightsBetween(q.CheckinDate, q.CheckoutDate)
	if nights <= 0 {
		return nil
	}
	destID := b.destID(q.Destination)
	if destID == "" {
		return nil
	}

	params := url.Values{
		"dest_id":            {destID},
		"order_by":           {"popularity"},
		"filter_by_currency": {"USD"},
		"checkin_date":       {q.CheckinDate},
		"checkout_date":      {q.CheckoutDate},
		"adults_number":      {strconv.Itoa(q.Travelers)},
		"room_number":        {"1"},
		"page_number":        {"0"},
		"include_adjacency":  {"true"},
	}
	var out struct {
		Result []struct {
			HotelID       any      `json:"hotel_id"`
			HotelName     string   `json:"hotel_name"`
			ReviewScore   float64  `json:"review_score"`
			MinTotalPrice float64  `json:"min_total_price"`
			District      string   `json:"district"`
			Facilities    []string `json:"hotel_facilities"`
			URL           string   `json:"url"`
		} `json:"result"`
	}
	if !b.get("/hotels/search", params, &out) {
		return nil
	}

	var hotels []types.Hotel
	for _, h := range out.Result {
		if len(hotels) >= 10 {
			break
		}
		perNight := h.MinTotalPrice / float64(nights)
		if perNight <= 0 || perNight > q.BudgetPerNight {
			continue
		}
		amenities := h.Facilities
		if len(amenities) == 0 {
			amenities = []string{"WiFi"}
		}
		hotels = append(hotels, types.Hotel{
			Name:          orDefault(h.HotelName, "Unknown Hotel"),
			Rating:        NormalizeRating(h.ReviewScore),
			ReviewScore:   h.ReviewScore,
			PricePerNight: perNight,
			TotalCost:     perNight * float64(nights),
			Location:      orDefault(h.District, "City Center"),
			Amenities:     amenities,
			Category:      hotelCategory(perNight),
			BookingURL:    h.URL,
			HotelID:       anyID(h.HotelID),
		})
	}
	return hotels
}

func anyID(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.Itoa(int(x))
	}
	return ""
}

// HotelSearch tries Booking.com first and falls back to Amadeus, mirroring
// the upstream preference order.
type HotelSearch struct {
	primary *BookingCom
	backup  *Amadeus
}

func NewHotelSearch(primary *BookingCom, backup *Amadeus) *HotelSearch {
	return &HotelSearch{primary: primary, backup: backup}
}

func (s *HotelSearch) SearchHotels(q HotelQuery) []types.Hotel {
	if s.primary != nil {
		if hotels := s.primary.SearchHotels(q); len(hotels) > 0 {
			if len(hotels) > 5 {
				hotels = hotels[:5]
			}
			return hotels
		}
	}
	if s.backup != nil {
		return s.backup.SearchHotels(q)
	}
	return nil
}
