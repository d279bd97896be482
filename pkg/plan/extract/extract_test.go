package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullRequest(t *testing.T) {
	req := Parse("I want to plan a trip to Tokyo, departing from London. " +
		"Dates 2026-09-10 to 2026-09-17. Budget $2,500 per person, 2 travelers. " +
		"We love museums and great food.")

	require.NotNil(t, req.Destination)
	assert.Equal(t, "Tokyo", *req.Destination)
	require.NotNil(t, req.DepartureCity)
	assert.Equal(t, "London", *req.DepartureCity)

	require.NotNil(t, req.DepartureDate)
	assert.Equal(t, "2026-09-10", *req.DepartureDate)
	require.NotNil(t, req.ReturnDate)
	assert.Equal(t, "2026-09-17", *req.ReturnDate)
	assert.Equal(t, "2026-09-10", *req.CheckinDate)
	assert.Equal(t, "2026-09-17", *req.CheckoutDate)

	require.NotNil(t, req.BudgetPerHead)
	assert.Equal(t, 2500.0, *req.BudgetPerHead)
	require.NotNil(t, req.Travelers)
	assert.Equal(t, 2, *req.Travelers)

	assert.Equal(t, []string{"culture", "food"}, req.Preferences)
	require.NotNil(t, req.DurationDays)
	assert.Equal(t, 7, *req.DurationDays)
}

func TestParseEmptyText(t *testing.T) {
	req := Parse("   ")
	assert.Nil(t, req.Destination)
	assert.Nil(t, req.DepartureCity)
	assert.Nil(t, req.DepartureDate)
	assert.Nil(t, req.BudgetPerHead)
	assert.Nil(t, req.Travelers)
	assert.Empty(t, req.Preferences)
	assert.Nil(t, req.DurationDays)
}

func TestParseDestinationVariants(t *testing.T) {
	cases := map[string]string{
		"planning a trip to Rome, in spring": "Rome",
		"we want to travel to Lisbon next month": "Lisbon",
		"hoping to visit Kyoto this year": "Kyoto this year",
	}
	for text, want := range cases {
		req := Parse(text)
		require.NotNil(t, req.Destination, text)
		assert.Equal(t, want, *req.Destination, text)
	}
}

func TestParseFirstPatternWins(t *testing.T) {
	// "departing from" outranks the bare "from" pattern even when "from"
	// appears earlier in the text.
	req := Parse("flying from somewhere, departing from Madrid")
	require.NotNil(t, req.DepartureCity)
	assert.Equal(t, "Madrid", *req.DepartureCity)
}

func TestParseBudgetWithCents(t *testing.T) {
	req := Parse("our budget is $1,250.50 each")
	require.NotNil(t, req.BudgetPerHead)
	assert.Equal(t, 1250.50, *req.BudgetPerHead)
}

func TestParseTravelersColonForm(t *testing.T) {
	req := Parse("travelers: 3")
	require.NotNil(t, req.Travelers)
	assert.Equal(t, 3, *req.Travelers)
}

func TestParsePreferencesOrderIsStable(t *testing.T) {
	// keywords appear in reverse category order; output follows the fixed
	// category order, not text order
	req := Parse("spa and beach, hiking, fine dining, art museums")
	assert.Equal(t, []string{"culture", "food", "adventure", "relaxation"}, req.Preferences)
}

func TestParseSingleDateOnlySetsDeparture(t *testing.T) {
	req := Parse("leaving 2026-05-01")
	require.NotNil(t, req.DepartureDate)
	assert.Equal(t, "2026-05-01", *req.DepartureDate)
	assert.Nil(t, req.ReturnDate)
	assert.Nil(t, req.DurationDays)
}
