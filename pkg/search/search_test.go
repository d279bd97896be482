package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRating(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{4.2, 4.2},
		{8.5, 4.25}, // review score halved
		{10.0, 5.0},
		{12.0, 5.0}, // clamped after halving
		{-1.0, 0.0},
		{0.0, 0.0},
		{5.0, 5.0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, NormalizeRating(c.in), 0.001, "in=%v", c.in)
	}
}

func TestHotelCategory(t *testing.T) {
	assert.Equal(t, "budget", hotelCategory(65))
	assert.Equal(t, "mid-range", hotelCategory(120))
	assert.Equal(t, "luxury", hotelCategory(250))
}

func TestDefaultCatalogRatingsAreCanonical(t *testing.T) {
	cat := DefaultCatalog()
	require.Len(t, cat.Flights, 2)
	require.Len(t, cat.Hotels, 2)
	require.Len(t, cat.Activities, 3)

	for _, h := range cat.Hotels {
		assert.LessOrEqual(t, h.Rating, 5.0)
		assert.Greater(t, h.ReviewScore, 5.0) // raw score kept alongside
	}
	assert.InDelta(t, 4.25, cat.Hotels[0].Rating, 0.001)
	assert.InDelta(t, 3.9, cat.Hotels[1].Rating, 0.001)
}

func TestLoadCatalogOverridesOnlyListedKinds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	csv := "kind,name,price,rating,extra\n" +
		"flight,Test Air,380,4.1,1\n" +
		"flight,Other Air,410,8.8,0\n" +
		"hotel,Test Lodge,840,9.0,120\n" +
		"bogus,Ignored,1,1,1\n" +
		"activity,Broken Row,notanumber,4,culture\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	cat, err := LoadCatalog(path)
	require.NoError(t, err)

	require.Len(t, cat.Flights, 2)
	assert.Equal(t, "Test Air", cat.Flights[0].Airline)
	assert.Equal(t, 1, cat.Flights[0].Stops)
	assert.InDelta(t, 4.4, cat.Flights[1].Rating, 0.001) // 8.8 normalized

	require.Len(t, cat.Hotels, 1)
	assert.Equal(t, "Test Lodge", cat.Hotels[0].Name)
	assert.Equal(t, 120.0, cat.Hotels[0].PricePerNight)
	assert.Equal(t, "mid-range", cat.Hotels[0].Category)

	// the only activity row was malformed, so the built-ins survive
	require.Len(t, cat.Activities, 3)
	assert.Equal(t, "Local Food & Wine Tasting Tour", cat.Activities[0].Name)
}

func TestLoadCatalogMissingFileKeepsDefaults(t *testing.T) {
	cat, err := LoadCatalog("/does/not/exist.csv")
	assert.Error(t, err)
	assert.Len(t, cat.Flights, 2)
}

func TestAirportCode(t *testing.T) {
	assert.Equal(t, "PAR", airportCode("Paris", "XXX"))
	assert.Equal(t, "NYC", airportCode("new york", "XXX"))
	assert.Equal(t, "XXX", airportCode("Atlantis", "XXX"))
}
