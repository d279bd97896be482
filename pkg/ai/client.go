// pkg/ai/client.go

package ai

import (
	"tripbuddy/pkg/plan/types"
)

type Client interface {
	SummarizeTrip(st *types.PlanningState, tips []string) string

	// SuggestActivities asks the model for extra structured activity ideas
	// when the search results came back thin for the traveler's preferences.
	SuggestActivities(destination string, preferences []string, tips []string) ([]types.Activity, error)
}
