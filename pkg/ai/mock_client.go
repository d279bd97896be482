// pkg/ai/mock_client.go

package ai

import (
	"strings"

	"tripbuddy/pkg/plan/types"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) SummarizeTrip(st *types.PlanningState, tips []string) string {
	return fallbackSummary(st)
}

func (m *mockClient) SuggestActivities(destination string, preferences []string, tips []string) ([]types.Activity, error) {
	out := make([]types.Activity, 0, 4)
	joined := strings.ToLower(strings.Join(preferences, " "))

	if strings.Contains(joined, "culture") {
		out = append(out, types.Activity{
			Name: "Old Town Walking Tour", Category: "culture", Price: 25,
			Duration: "2-3 hours", Rating: 4.3, Location: destination,
			Description: "Guided walk through the historic quarter",
		})
	}
	if strings.Contains(joined, "food") {
		out = append(out, types.Activity{
			Name: "Local Market Food Tasting", Category: "food", Price: 45,
			Duration: "2 hours", Rating: 4.5, Location: destination,
			Description: "Sample regional specialties with a local guide",
		})
	}
	if strings.Contains(joined, "adventure") {
		out = append(out, types.Activity{
			Name: "Bike Tour", Category: "adventure", Price: 55,
			Duration: "Half day", Rating: 4.2, Location: destination,
		})
	}
	// always offer one low-key option
	out = append(out, types.Activity{
		Name: "Riverside Stroll", Category: "relaxation", Price: 0,
		Duration: "1-2 hours", Rating: 4.0, Location: destination,
	})
	return out, nil
}
