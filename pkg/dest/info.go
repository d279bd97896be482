// pkg/dest/info.go

package dest

import (
	"strings"

	"tripbuddy/pkg/plan/types"
)

// builtinInfo covers the destinations the engine knows without any upstream
// call. Everything else gets the generic record.
var builtinInfo = map[string]types.DestinationInfo{
	"paris": {
		Country:         "France",
		Currency:        "EUR",
		Language:        "French",
		Timezone:        "CET",
		BestTimeToVisit: "April-June, September-October",
		AvgTemperature:  "15°C (59°F)",
		Districts:       []string{"Marais", "Saint-Germain", "Montmartre", "Champs-Élysées"},
		Transportation:  []string{"Metro", "Bus", "Taxi", "Walking"},
		EmergencyNumber: "112",
	},
	"london": {
		Country:         "United Kingdom",
		Currency:        "GBP",
		Language:        "English",
		Timezone:        "GMT",
		BestTimeToVisit: "May-September",
		AvgTemperature:  "12°C (54°F)",
		Districts:       []string{"Westminster", "Camden", "Shoreditch", "Covent Garden"},
		Transportation:  []string{"Underground", "Bus", "Taxi", "Walking"},
		EmergencyNumber: "999",
	},
	"tokyo": {
		Country:         "Japan",
		Currency:        "JPY",
		Language:        "Japanese",
		Timezone:        "JST",
		BestTimeToVisit: "March-May, September-November",
		AvgTemperature:  "16°C (61°F)",
		Districts:       []string{"Shinjuku", "Shibuya", "Asakusa", "Ginza"},
		Transportation:  []string{"Metro", "JR Rail", "Taxi", "Walking"},
		EmergencyNumber: "110",
	},
	"rome": {
		Country:         "Italy",
		Currency:        "EUR",
		Language:        "Italian",
		Timezone:        "CET",
		BestTimeToVisit: "April-June, September-October",
		AvgTemperature:  "17°C (63°F)",
		Districts:       []string{"Trastevere", "Monti", "Prati", "Centro Storico"},
		Transportation:  []string{"Metro", "Bus", "Tram", "Walking"},
		EmergencyNumber: "112",
	},
}

// Lookup returns destination metadata, falling back to a generic record for
// unrecognized names. It never fails.
func Lookup(destination string) types.DestinationInfo {
	if info, ok := builtinInfo[strings.ToLower(strings.TrimSpace(destination))]; ok {
		return info
	}
	return types.DestinationInfo{
		Country:         "Unknown",
		Currency:        "USD",
		Language:        "Local Language",
		Timezone:        "Local Time",
		BestTimeToVisit: "Year-round",
		AvgTemperature:  "Variable",
		Districts:       []string{"City Center"},
		Transportation:  []string{"Public Transport", "Taxi"},
		EmergencyNumber: "Emergency Services",
	}
}
