// pkg/search/tripadvisor.go

package search

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"tripbuddy/pkg/plan/types"
)

// TripAdvisor exposes attractions through the content API; prices are not
// part of the feed, so activities carry a per-category estimate.
type TripAdvisor struct {
	key     string
	baseURL string
	httpc   *http.Client
}

func NewTripAdvisor(key string) *TripAdvisor {
	return &TripAdvisor{
		key:     key,
		baseURL: "https://api.content.tripadvisor.com/api/v1",
		httpc:   &http.Client{Timeout: 25 * time.Second},
	}
}

var categoryPriceEstimates = map[string]float64{
	"culture":    25.0,
	"food":       45.0,
	"adventure":  65.0,
	"relaxation": 35.0,
}

// mapCategory folds a TripAdvisor category name onto the four fixed
// preference categories, defaulting to culture.
func mapCategory(taCategory string) string {
	c := strings.ToLower(taCategory)
	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(c, w) {
				return true
			}
		}
		return false
	}
	switch {
	case contains("museum", "historic", "cultural"):
		return "culture"
	case contains("food", "restaurant", "culinary"):
		return "food"
	case contains("adventure", "outdoor", "sports"):
		return "adventure"
	case contains("spa", "beach", "relaxation"):
		return "relaxation"
	}
	return "culture"
}

func (t *TripAdvisor) locationID(query string) string {
	params := url.Values{"key": {t.key}, "searchQuery": {query}, "language": {"en"}}
	var out struct {
		Data []struct {
			LocationID string `json:"location_id"`
		} `json:"data"`
	}
	req, _ := http.NewRequest("GET", t.baseURL+"/location/search?"+params.Encode(), nil)
	req.Header.Set("accept", "application/json")
	if !doJSON(t.httpc, req, &out) || len(out.Data) == 0 {
		return ""
	}
	return out.Data[0].LocationID
}

func (t *TripAdvisor) SearchActivities(q ActivityQuery) []types.Activity {
	locID := t.locationID(q.Destination)
	if locID == "" {
		return nil
	}

	params := url.Values{"key": {t.key}, "language": {"en"}}
	var out struct {
		Data []struct {
			LocationID  string  `json:"location_id"`
			Name        string  `json:"name"`
			Description string  `json:"description"`
			Rating      float64 `json:"rating,string"`
			Website     string  `json:"website"`
			Category    struct {
				Name string `json:"name"`
			} `json:"category"`
			AddressObj struct {
				AddressString string `json:"address_string"`
			} `json:"address_obj"`
		} `json:"data"`
	}
	req, _ := http.NewRequest("GET", t.baseURL+"/location/"+locID+"/attractions?"+params.Encode(), nil)
	req.Header.Set("accept", "application/json")
	if !doJSON(t.httpc, req, &out) {
		return nil
	}

	wanted := map[string]bool{}
	for _, p := range q.Preferences {
		wanted[p] = true
	}

	var acts []types.Activity
	for _, attr := range out.Data {
		if len(acts) >= 15 {
			break
		}
		cat := mapCategory(attr.Category.Name)
		if !wanted[cat] {
			continue
		}
		price := categoryPriceEstimates[cat]
		if price > q.DailyBudget {
			continue
		}
		desc := attr.Description
		if len(desc) > 200 {
			desc = desc[:200]
		}
		rating := attr.Rating
		if rating == 0 {
			rating = 4.0
		}
		acts = append(acts, types.Activity{
			Name:        orDefault(attr.Name, "Unknown Activity"),
			Description: orDefault(desc, "No description available"),
			Category:    cat,
			Duration:    "2-3 hours",
			Price:       price,
			Rating:      NormalizeRating(rating),
			Location:    orDefault(attr.AddressObj.AddressString, "Unknown"),
			Website:     attr.Website,
			ActivityID:  attr.LocationID,
		})
	}
	return acts
}

// ActivitySearch merges TripAdvisor and GetYourGuide results, deduplicates by
// name, sorts by rating and caps the list at the trip length.
type ActivitySearch struct {
	primary *TripAdvisor
	backup  *GetYourGuide
}

func NewActivitySearch(primary *TripAdvisor, backup *GetYourGuide) *ActivitySearch {
	return &ActivitySearch{primary: primary, backup: backup}
}

func (s *ActivitySearch) SearchActivities(q ActivityQuery) []types.Activity {
	var all []types.Activity
	if s.primary != nil {
		all = append(all, s.primary.SearchActivities(q)...)
	}
	if s.backup != nil {
		all = append(all, s.backup.SearchActivities(q)...)
	}
	if len(all) == 0 {
		return nil
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Rating > all[j].Rating })
	seen := map[string]bool{}
	var unique []types.Activity
	for _, a := range all {
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		unique = append(unique, a)
	}
	if q.DurationDays > 0 && len(unique) > q.DurationDays {
		unique = unique[:q.DurationDays]
	}
	return unique
}
