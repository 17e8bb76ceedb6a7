package signals

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/parthdave/couriersim/internal/models"
)

// Synthesizer produces plausible real-time signals when no live source is
// configured. Randomness comes from an injected source so synthesis is
// reproducible under a fixed seed.
type Synthesizer struct {
	rng *rand.Rand
}

func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Traffic synthesizes per-zone congestion from the zone baselines and the
// time-of-day/weekend modifier tables.
func (s *Synthesizer) Traffic(now time.Time) models.TrafficReport {
	hour := now.Hour()
	weekday := now.Weekday()

	isWeekend := weekday == time.Saturday || weekday == time.Sunday
	isMorningRush := hour >= 8 && hour <= 10 && !isWeekend
	isEveningRush := hour >= 17 && hour <= 19 && !isWeekend
	isDaytime := hour >= 9 && hour <= 18

	var modifiers map[string]float64
	switch {
	case isMorningRush:
		modifiers = morningRushModifiers
	case isEveningRush:
		modifiers = eveningRushModifiers
	case isDaytime && !isWeekend:
		modifiers = daytimeModifiers
	case isWeekend:
		modifiers = weekendModifiers
	}

	report := models.TrafficReport{
		Zones:     make(map[string]models.ZoneTraffic, len(baseCongestion)),
		FetchedAt: now,
	}

	total := 0
	for zone, base := range baseCongestion {
		modifier := 1.0
		if m, ok := modifiers[zone]; ok {
			modifier = m
		}

		jitter := s.rng.Float64() - 0.5
		congestion := int(math.Round(float64(base)*modifier + jitter))
		if congestion < 1 {
			congestion = 1
		}
		if congestion > 10 {
			congestion = 10
		}

		// Delay grows exponentially with congestion level.
		delay := int(5 * math.Pow(1.5, float64(congestion)))

		peaks := zonePeakAreas[zone]
		if len(peaks) > 2 {
			peaks = peaks[:2]
		}

		report.Zones[zone] = models.ZoneTraffic{
			CongestionLevel: congestion,
			DelayMinutes:    delay,
			Status:          zoneTrafficStatus(congestion),
			PeakAreas:       peaks,
		}
		total += congestion
	}

	if len(report.Zones) > 0 {
		report.OverallCongestion = int(math.Round(float64(total) / float64(len(report.Zones))))
		report.Status = cityTrafficStatus(report.OverallCongestion)
	}

	return report
}

func zoneTrafficStatus(congestion int) string {
	switch {
	case congestion <= 3:
		return "Smooth traffic flow"
	case congestion <= 5:
		return "Regular traffic flow"
	case congestion <= 7:
		return "Moderate congestion"
	case congestion <= 9:
		return "Heavy traffic"
	default:
		return "Severe congestion, avoid if possible"
	}
}

func cityTrafficStatus(congestion int) string {
	switch {
	case congestion <= 3:
		return "Traffic flowing smoothly across the city"
	case congestion <= 5:
		return "Normal traffic conditions in most areas"
	case congestion <= 7:
		return "Moderate congestion in several areas"
	case congestion <= 9:
		return "Heavy traffic throughout the city"
	default:
		return "Severe congestion across the city"
	}
}

// Typical Ahmedabad afternoon reading; jitter keeps repeated fetches from
// looking frozen.
const baseTemperature = 31

// Weather synthesizes a report from the seasonal profile for the current
// month.
func (s *Synthesizer) Weather(now time.Time) models.WeatherReport {
	profile := seasonProfiles[seasonFor(now.Month())]

	precipChance := s.intBetween(profile.PrecipMin, profile.PrecipMax)
	precipType := "None"
	if profile.RainThreshold >= 0 && precipChance > profile.RainThreshold {
		precipType = "Rain"
	}

	current := baseTemperature + s.rng.Intn(3) - 1
	report := models.WeatherReport{
		Temperature: models.Temperature{
			Current:   current,
			FeelsLike: current + s.rng.Intn(3),
			Units:     "Celsius",
		},
		Conditions: profile.Conditions[s.rng.Intn(len(profile.Conditions))],
		Precipitation: models.Precipitation{
			Chance: precipChance,
			Type:   precipType,
		},
		Humidity: s.intBetween(profile.HumidityMin, profile.HumidityMax),
		Wind: models.Wind{
			Speed:     s.intBetween(5, 15),
			Direction: windDirections[s.rng.Intn(len(windDirections))],
			Units:     "km/h",
		},
		Warnings:  []string{},
		FetchedAt: now,
	}

	if current >= 40 {
		report.Warnings = append(report.Warnings, "Extreme heat warning: Avoid outdoor activities")
	} else if current >= 35 {
		report.Warnings = append(report.Warnings, "Heat advisory: Stay hydrated and avoid prolonged sun exposure")
	}

	return report
}

// Festivals synthesizes the festival calendar: a ~30% chance of an event
// today, plus one future-dated event regardless.
func (s *Synthesizer) Festivals(now time.Time) models.FestivalCalendar {
	calendar := models.FestivalCalendar{
		HasFestivalToday: s.rng.Float64() < 0.3,
		FetchedAt:        now,
	}

	if calendar.HasFestivalToday {
		calendar.Festivals = append(calendar.Festivals, models.Festival{
			Name:          todayFestivalNames[s.rng.Intn(len(todayFestivalNames))],
			Date:          now.Format("2006-01-02"),
			TimeWindow:    fmt.Sprintf("%02d:00 - %02d:00", s.intBetween(9, 18), s.intBetween(19, 23)),
			Location:      todayFestivalLocations[s.rng.Intn(len(todayFestivalLocations))],
			CrowdSize:     crowdSizes[s.rng.Intn(len(crowdSizes))],
			TrafficImpact: trafficImpacts[s.rng.Intn(len(trafficImpacts))],
			AffectedZones: s.sample(todayFestivalZonePool, s.intBetween(1, 3)),
		})
	}

	futureDate := now.AddDate(0, 0, s.intBetween(1, 7))
	calendar.Festivals = append(calendar.Festivals, models.Festival{
		Name:          futureFestivalNames[s.rng.Intn(len(futureFestivalNames))],
		Date:          futureDate.Format("2006-01-02"),
		TimeWindow:    fmt.Sprintf("%02d:00 - %02d:00", s.intBetween(10, 16), s.intBetween(18, 22)),
		Location:      futureFestivalLocations[s.rng.Intn(len(futureFestivalLocations))],
		CrowdSize:     crowdSizes[s.rng.Intn(3)],
		TrafficImpact: trafficImpacts[s.rng.Intn(3)],
		AffectedZones: s.sample(futureFestivalZonePool, s.intBetween(1, 2)),
	})

	return calendar
}

func (s *Synthesizer) intBetween(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

func (s *Synthesizer) sample(pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	picked := s.rng.Perm(len(pool))[:k]
	out := make([]string, 0, k)
	for _, i := range picked {
		out = append(out, pool[i])
	}
	return out
}
