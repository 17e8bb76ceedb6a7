package signals

import "time"

// Baseline congestion per zone, before time-of-day modifiers.
var baseCongestion = map[string]int{
	"Satellite":   6, // higher traffic area
	"Navrangpura": 7, // central business district
	"Bopal":       5, // residential with moderate traffic
	"Vastrapur":   6, // commercial and residential mix
	"Paldi":       5,
	"Thaltej":     7, // heavy traffic near highways
	"Bodakdev":    6, // commercial area
	"Gota":        4, // less congested
	"Maninagar":   6, // market area
	"Chandkheda":  5,
}

var (
	morningRushModifiers = map[string]float64{
		"Satellite":   2,
		"Navrangpura": 2,
		"Thaltej":     2,
		"Bodakdev":    2,
		"Vastrapur":   1.5,
		"Paldi":       1.5,
		"Chandkheda":  1.5,
		"Maninagar":   1.5,
		"Bopal":       1.5,
		"Gota":        1,
	}
	eveningRushModifiers = map[string]float64{
		"Satellite":   2,
		"Navrangpura": 2,
		"Thaltej":     2,
		"Bodakdev":    2,
		"Vastrapur":   2,
		"Paldi":       1.5,
		"Maninagar":   2,
		"Bopal":       1.5,
		"Gota":        1.5,
		"Chandkheda":  1.5,
	}
	daytimeModifiers = map[string]float64{
		"Satellite":   1,
		"Navrangpura": 1.2,
		"Thaltej":     1,
		"Bodakdev":    1,
		"Vastrapur":   1,
		"Paldi":       0.8,
		"Maninagar":   1,
		"Bopal":       0.7,
		"Gota":        0.7,
		"Chandkheda":  0.8,
	}
	// Weekends shift traffic toward malls and the lake areas.
	weekendModifiers = map[string]float64{
		"Satellite":   1,
		"Navrangpura": 0.7,
		"Thaltej":     0.8,
		"Bodakdev":    0.7,
		"Vastrapur":   1,
		"Paldi":       0.6,
		"Maninagar":   0.8,
		"Bopal":       0.6,
		"Gota":        0.5,
		"Chandkheda":  0.5,
	}
)

var zonePeakAreas = map[string][]string{
	"Satellite":   {"Shrivranjani Junction", "Iscon Cross Roads", "Jodhpur Crossroad"},
	"Navrangpura": {"Law Garden", "Gujarat College", "Navrangpura Bus Station"},
	"Bopal":       {"Bopal Circle", "South Bopal"},
	"Vastrapur":   {"Vastrapur Lake", "Alpha Mall", "Mansi Circle"},
	"Paldi":       {"Paldi Cross Roads", "Ellis Bridge"},
	"Thaltej":     {"Thaltej Junction", "Drive-In Road", "SG Highway"},
	"Bodakdev":    {"Rajpath Club Road", "Science City Road", "Judges Bungalow Road"},
	"Gota":        {"Gota Flyover", "Gota Chokdi"},
	"Maninagar":   {"Maninagar Railway Station", "Bhulabhai Cross Road"},
	"Chandkheda":  {"Chandkheda Bus Stand", "Sabarmati Railway Station"},
}

// seasonProfile drives weather synthesis for a calendar month bucket.
type seasonProfile struct {
	HumidityMin   int
	HumidityMax   int
	PrecipMin     int
	PrecipMax     int
	Conditions    []string
	RainThreshold int // precip chance above which the type is Rain; <0 means never
}

var seasonProfiles = map[string]seasonProfile{
	"summer": {
		HumidityMin: 10, HumidityMax: 25,
		PrecipMin: 0, PrecipMax: 10,
		Conditions:    []string{"Clear", "Sunny", "Hot", "Very Hot"},
		RainThreshold: -1,
	},
	"monsoon": {
		HumidityMin: 60, HumidityMax: 85,
		PrecipMin: 30, PrecipMax: 90,
		Conditions:    []string{"Rainy", "Thunderstorms", "Overcast", "Partly Cloudy"},
		RainThreshold: 40,
	},
	"winter": {
		HumidityMin: 30, HumidityMax: 50,
		PrecipMin: 0, PrecipMax: 15,
		Conditions:    []string{"Clear", "Sunny", "Mild", "Pleasant"},
		RainThreshold: -1,
	},
	"transitional": {
		HumidityMin: 40, HumidityMax: 60,
		PrecipMin: 10, PrecipMax: 30,
		Conditions:    []string{"Partly Cloudy", "Mostly Sunny", "Pleasant"},
		RainThreshold: 70,
	},
}

func seasonFor(month time.Month) string {
	switch {
	case month >= time.March && month <= time.June:
		return "summer"
	case month >= time.July && month <= time.September:
		return "monsoon"
	case month >= time.November || month <= time.February:
		return "winter"
	default:
		return "transitional"
	}
}

var (
	todayFestivalNames = []string{
		"Navratri Celebrations",
		"Uttarayan Kite Festival",
		"Rath Yatra",
		"Diwali Street Fair",
		"Janmashtami Procession",
		"Local Food Festival",
		"Ahmedabad Heritage Week",
	}
	todayFestivalLocations = []string{
		"Riverfront",
		"Old City",
		"Kankaria Lake",
		"GMDC Ground",
		"Sabarmati Riverfront",
		"Law Garden",
	}
	todayFestivalZonePool = []string{"Satellite", "Navrangpura", "Paldi", "Maninagar", "Old City"}

	futureFestivalNames = []string{
		"Weekend Market",
		"Cultural Show",
		"Music Festival",
		"Trade Fair",
		"Religious Procession",
	}
	futureFestivalLocations = []string{
		"Exhibition Center",
		"City Center",
		"University Campus",
		"Stadium",
		"Convention Center",
	}
	futureFestivalZonePool = []string{"Satellite", "Vastrapur", "Bodakdev", "Navrangpura"}

	crowdSizes     = []string{"Small", "Medium", "Large", "Very Large"}
	trafficImpacts = []string{"Low", "Moderate", "High", "Severe"}
	windDirections = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
)
