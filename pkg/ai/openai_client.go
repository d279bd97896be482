// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tripbuddy/pkg/plan/types"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) SummarizeTrip(st *types.PlanningState, tips []string) string {
	type chatReq struct {
		Model       string              `json:"model"`
		Messages    []map[string]string `json:"messages"`
		Temperature float64             `json:"temperature"`
	}
	reqBody := chatReq{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": "You are a travel concierge who writes concise, friendly trip summaries in Markdown."},
			{"role": "user", "content": renderSummaryPrompt(st, tips)},
		},
		Temperature: 0.2,
	}

	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		// fallback summary (no external call)
		return fallbackSummary(st)
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out.Choices) == 0 {
		return fallbackSummary(st)
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return fallbackSummary(st)
	}
	return content
}

func (c *openAI) SuggestActivities(destination string, preferences []string, tips []string) ([]types.Activity, error) {
	type llmActivity struct {
		Name        string  `json:"name"`
		Description string  `json:"description,omitempty"`
		Category    string  `json:"category"` // culture | food | adventure | relaxation
		Price       float64 `json:"price,omitempty"`
		Duration    string  `json:"duration,omitempty"`
	}
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a travel concierge. Reply ONLY valid JSON."},
			{"role": "user", "content": renderSuggestPrompt(destination, preferences, tips)},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("no choices")
	}

	var payload struct {
		Activities []llmActivity `json:"activities"`
	}
	if err := json.Unmarshal([]byte(out.Choices[0].Message.Content), &payload); err != nil {
		var arr []llmActivity
		if err2 := json.Unmarshal([]byte(out.Choices[0].Message.Content), &arr); err2 != nil {
			return nil, fmt.Errorf("parse suggest_activities: %v / raw: %s", err, out.Choices[0].Message.Content)
		}
		payload.Activities = arr
	}

	res := make([]types.Activity, 0, len(payload.Activities))
	for _, a := range payload.Activities {
		cat := strings.ToLower(strings.TrimSpace(a.Category))
		if cat == "" {
			cat = "culture"
		}
		price := a.Price
		if price <= 0 {
			price = 50
		}
		dur := a.Duration
		if dur == "" {
			dur = "2-3 hours"
		}
		res = append(res, types.Activity{
			Name:        strings.TrimSpace(a.Name),
			Description: strings.TrimSpace(a.Description),
			Category:    cat,
			Price:       price,
			Duration:    dur,
			Rating:      4.0,
			Location:    destination,
		})
	}
	return res, nil
}

func renderSummaryPrompt(st *types.PlanningState, tips []string) string {
	var b strings.Builder
	b.WriteString("Summarize this planned trip for the traveler.\n\n")
	if st.Requirements != nil {
		r := st.Requirements
		fmt.Fprintf(&b, "Trip: %s -> %s, %s to %s, %d traveler(s), budget $%.0f.\n",
			r.DepartureCity, r.Destination, r.DepartureDate, r.ReturnDate, r.Travelers, r.TotalBudget)
	}
	if st.Optimization != nil {
		o := st.Optimization
		if o.Flight != nil {
			fmt.Fprintf(&b, "Flight: %s, $%.2f, %d stop(s).\n", o.Flight.Airline, o.Flight.Price, o.Flight.Stops)
		}
		if o.Hotel != nil {
			fmt.Fprintf(&b, "Hotel: %s, $%.2f/night.\n", o.Hotel.Name, o.Hotel.PricePerNight)
		}
		fmt.Fprintf(&b, "Total per person: $%.2f (%s).\n", o.TotalCost, o.BudgetStatus)
		for _, a := range o.Activities {
			fmt.Fprintf(&b, "Activity: %s ($%.0f, %s).\n", a.Name, a.Price, a.Category)
		}
	}
	if len(tips) > 0 {
		b.WriteString("\nLocal guide notes:\n")
		for _, t := range tips {
			b.WriteString("- " + t + "\n")
		}
	}
	b.WriteString("\nKeep it under 150 words. Mention the budget status.")
	return b.String()
}

func renderSuggestPrompt(destination string, preferences []string, tips []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest 3-5 activities in %s for a traveler who likes: %s.\n",
		destination, strings.Join(preferences, ", "))
	if len(tips) > 0 {
		b.WriteString("Guide notes:\n")
		for _, t := range tips {
			b.WriteString("- " + t + "\n")
		}
	}
	b.WriteString(`Reply as JSON: {"activities":[{"name":"","description":"","category":"culture|food|adventure|relaxation","price":0,"duration":""}]}`)
	return b.String()
}

func fallbackSummary(st *types.PlanningState) string {
	var b strings.Builder
	b.WriteString("## Trip Summary\n")
	if st.Requirements != nil {
		fmt.Fprintf(&b, "Destination: %s\n", st.Requirements.Destination)
		fmt.Fprintf(&b, "Dates: %s to %s\n", st.Requirements.DepartureDate, st.Requirements.ReturnDate)
	}
	if st.Optimization != nil {
		fmt.Fprintf(&b, "Estimated cost per person: $%.2f (%s)\n",
			st.Optimization.TotalCost, st.Optimization.BudgetStatus)
	}
	return b.String()
}
