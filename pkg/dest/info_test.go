package dest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownDestination(t *testing.T) {
	info := Lookup("Paris")
	assert.Equal(t, "France", info.Country)
	assert.Equal(t, "EUR", info.Currency)
	assert.Contains(t, info.Transportation, "Metro")
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Lookup("tokyo"), Lookup("  TOKYO "))
	assert.Equal(t, "Japan", Lookup("ToKyO").Country)
}

func TestLookupUnknownGetsGenericRecord(t *testing.T) {
	info := Lookup("Atlantis")
	assert.Equal(t, "Unknown", info.Country)
	assert.Equal(t, "USD", info.Currency)
	assert.Equal(t, "Year-round", info.BestTimeToVisit)
	assert.Equal(t, []string{"City Center"}, info.Districts)
}
