// pkg/search/getyourguide.go

package search

import (
	"net/http"
	"net/url"
	"time"

	"tripbuddy/pkg/plan/types"
)

type GetYourGuide struct {
	key     string
	baseURL string
	httpc   *http.Client
}

func NewGetYourGuide(key string) *GetYourGuide {
	return &GetYourGuide{
		key:     key,
		baseURL: "https://api.getyourguide.com/v1",
		httpc:   &http.Client{Timeout: 25 * time.Second},
	}
}

func (g *GetYourGuide) SearchActivities(q ActivityQuery) []types.Activity {
	var acts []types.Activity

	// one call per preference, capped to keep request volume down
	prefs := q.Preferences
	if len(prefs) > 2 {
		prefs = prefs[:2]
	}
	for _, pref := range prefs {
		params := url.Values{"q": {q.Destination}, "limit": {"20"}, "category": {pref}}
		req, _ := http.NewRequest("GET", g.baseURL+"/activities?"+params.Encode(), nil)
		req.Header.Set("Authorization", "Bearer "+g.key)

		var out struct {
			Data []struct {
				ID          string `json:"id"`
				Title       string `json:"title"`
				Description string `json:"description"`
				Duration    string `json:"duration"`
				Location    string `json:"location"`
				BookingURL  string `json:"booking_url"`
				Rating      float64 `json:"rating"`
				Price       struct {
					Amount float64 `json:"amount"`
				} `json:"price"`
			} `json:"data"`
		}
		if !doJSON(g.httpc, req, &out) {
			continue
		}

		count := 0
		for _, act := range out.Data {
			if count >= 5 {
				break
			}
			price := act.Price.Amount
			if price == 0 {
				price = 50.0
			}
			if price > q.DailyBudget {
				continue
			}
			desc := act.Description
			if len(desc) > 200 {
				desc = desc[:200]
			}
			rating := act.Rating
			if rating == 0 {
				rating = 4.0
			}
			acts = append(acts, types.Activity{
				Name:        orDefault(act.Title, "Unknown Activity"),
				Description: orDefault(desc, "No description available"),
				Category:    pref,
				Duration:    orDefault(act.Duration, "3 hours"),
				Price:       price,
				Rating:      NormalizeRating(rating),
				Location:    orDefault(act.Location, "Unknown"),
				Website:     act.BookingURL,
				ActivityID:  act.ID,
			})
			count++
		}
	}
	return acts
}
