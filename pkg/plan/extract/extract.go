// pkg/plan/extract/extract.go

package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tripbuddy/pkg/plan/types"
)

// Ordered pattern candidates per field. First textual match wins; we make no
// attempt to reconcile overlapping matches (destination vs. departure city).
var (
	destinationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)trip to ([^,\n.]+)`),
		regexp.MustCompile(`(?i)travel to ([^,\n.]+)`),
		regexp.MustCompile(`(?i)visit ([^,\n.]+)`),
	}
	departurePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)departing from ([^,\n.]+)`),
		regexp.MustCompile(`(?i)from ([^,\n.]+)`),
	}
	datePattern      = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	budgetPattern    = regexp.MustCompile(`\$(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	travelersPattern = regexp.MustCompile(`(?i)travelers?:\s*(\d+)|(\d+)\s+travelers?`)
)

var preferenceKeywords = map[string][]string{
	"culture":    {"culture", "cultural", "museum", "history", "historic", "art"},
	"food":       {"food", "cuisine", "restaurant", "dining", "culinary"},
	"adventure":  {"adventure", "outdoor", "hiking", "climbing", "sports"},
	"relaxation": {"relaxation", "spa", "beach", "wellness", "peaceful"},
}

// preferenceOrder keeps the category list deterministic across runs.
var preferenceOrder = []string{"culture", "food", "adventure", "relaxation"}

// Parse pulls trip requirements out of a raw request. It never fails: fields
// that cannot be read stay nil and downstream defaults take over.
func Parse(text string) types.Requirements {
	var req types.Requirements
	if strings.TrimSpace(text) == "" {
		return req
	}

	if v := firstMatch(destinationPatterns, text); v != "" {
		req.Destination = &v
	}
	if v := firstMatch(departurePatterns, text); v != "" {
		req.DepartureCity = &v
	}

	dates := datePattern.FindAllString(text, -1)
	if len(dates) >= 1 {
		req.DepartureDate = strptr(dates[0])
		req.CheckinDate = strptr(dates[0])
	}
	if len(dates) >= 2 {
		req.ReturnDate = strptr(dates[1])
		req.CheckoutDate = strptr(dates[1])
	}

	if m := budgetPattern.FindStringSubmatch(text); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			req.BudgetPerHead = &v
		}
	}

	if m := travelersPattern.FindStringSubmatch(text); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if n, err := strconv.Atoi(raw); err == nil {
			req.Travelers = &n
		}
	}

	lower := strings.ToLower(text)
	for _, cat := range preferenceOrder {
		for _, kw := range preferenceKeywords[cat] {
			if strings.Contains(lower, kw) {
				req.Preferences = append(req.Preferences, cat)
				break
			}
		}
	}

	if req.DepartureDate != nil && req.ReturnDate != nil {
		if d, ok := daysBetween(*req.DepartureDate, *req.ReturnDate); ok {
			req.DurationDays = &d
		}
	}

	return req
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func daysBetween(from, to string) (int, bool) {
	a, err := time.Parse("2006-01-02", from)
	if err != nil {
		return 0, false
	}
	b, err := time.Parse("2006-01-02", to)
	if err != nil {
		return 0, false
	}
	return int(b.Sub(a).Hours() / 24), true
}

func strptr(s string) *string { return &s }
