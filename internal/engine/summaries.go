package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/parthdave/couriersim/internal/models"
)

// WeatherSummary renders the one-line weather note attached to route plans.
func WeatherSummary(weather models.WeatherReport) string {
	summary := fmt.Sprintf("%s, %d°C", weather.Conditions, weather.Temperature.Current)
	if weather.Precipitation.Chance >= 50 && weather.Precipitation.Type != "None" {
		summary += fmt.Sprintf(", %d%% chance of %s",
			weather.Precipitation.Chance, strings.ToLower(weather.Precipitation.Type))
	}
	if len(weather.Warnings) > 0 {
		summary += ". " + weather.Warnings[0]
	}
	return summary
}

// TrafficSummary renders the city-wide traffic note, calling out zones at
// congestion 7 or above.
func TrafficSummary(traffic models.TrafficReport) string {
	summary := fmt.Sprintf("%s (avg congestion %d/10)", traffic.Status, traffic.OverallCongestion)

	var congested []string
	for zone, zt := range traffic.Zones {
		if zt.CongestionLevel >= 7 {
			congested = append(congested, fmt.Sprintf("%s (%d/10)", zone, zt.CongestionLevel))
		}
	}
	if len(congested) == 0 {
		return summary
	}
	sort.Strings(congested)

	if len(congested) == 1 {
		return summary + ", particularly in " + congested[0]
	}
	return summary + ", particularly in " +
		strings.Join(congested[:len(congested)-1], ", ") + " and " + congested[len(congested)-1]
}

// FestivalSummary renders today's festival impact, if any. Future-dated
// events are ignored here; they matter for planning, not for today's route.
func FestivalSummary(calendar models.FestivalCalendar, today string) string {
	if !calendar.HasFestivalToday {
		return "No festivals affecting deliveries today"
	}

	var notes []string
	for _, festival := range calendar.Festivals {
		if festival.Date != today {
			continue
		}
		notes = append(notes, fmt.Sprintf("%s at %s (%s, %s impact, affecting %s)",
			festival.Name, festival.Location, festival.TimeWindow,
			festival.TrafficImpact, strings.Join(festival.AffectedZones, ", ")))
	}
	if len(notes) == 0 {
		return "No festivals affecting deliveries today"
	}
	return strings.Join(notes, "; ")
}
