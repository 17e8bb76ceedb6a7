package engine

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/parthdave/couriersim/internal/history"
	"github.com/parthdave/couriersim/internal/models"
	"github.com/parthdave/couriersim/internal/signals"
	"github.com/parthdave/couriersim/internal/zones"
	"github.com/stretchr/testify/require"
)

// Monday morning, before any delivery slot.
var testNow = time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC)

type staticSource struct {
	payloads map[string][]byte
}

func (s staticSource) Fetch(_ context.Context, signalType string) ([]byte, error) {
	return s.payloads[signalType], nil
}

// uniformTraffic gives every default zone the same congestion level.
func uniformTraffic(level int) models.TrafficReport {
	report := models.TrafficReport{
		Zones:             make(map[string]models.ZoneTraffic),
		OverallCongestion: level,
		Status:            "Normal traffic conditions in most areas",
		FetchedAt:         testNow,
	}
	for _, zone := range zones.DefaultRegistry().Zones() {
		report.Zones[zone] = models.ZoneTraffic{
			CongestionLevel: level,
			DelayMinutes:    10,
			Status:          "Regular traffic flow",
		}
	}
	return report
}

func clearWeather() models.WeatherReport {
	return models.WeatherReport{
		Temperature: models.Temperature{Current: 31, FeelsLike: 32, Units: "Celsius"},
		Conditions:  "Clear",
		Humidity:    40,
		FetchedAt:   testNow,
	}
}

func noFestivals() models.FestivalCalendar {
	return models.FestivalCalendar{
		Festivals: []models.Festival{{
			Name:          "Weekend Market",
			Date:          testNow.AddDate(0, 0, 3).Format("2006-01-02"),
			TimeWindow:    "10:00 - 20:00",
			TrafficImpact: models.ImpactLow,
			AffectedZones: []string{"Vastrapur"},
		}},
		HasFestivalToday: false,
		FetchedAt:        testNow,
	}
}

type testSignals struct {
	traffic   models.TrafficReport
	weather   models.WeatherReport
	festivals models.FestivalCalendar
}

func neutralSignals() testSignals {
	return testSignals{
		traffic:   uniformTraffic(5),
		weather:   clearWeather(),
		festivals: noFestivals(),
	}
}

func newTestProvider(t *testing.T, sig testSignals) *signals.Provider {
	t.Helper()

	payloads := make(map[string][]byte, 3)
	for key, v := range map[string]any{
		models.SignalTraffic:  sig.traffic,
		models.SignalWeather:  sig.weather,
		models.SignalFestival: sig.festivals,
	} {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		payloads[key] = raw
	}

	synth := signals.NewSynthesizer(rand.New(rand.NewSource(1)))
	return signals.NewProvider(signals.NewMemoryCache(), staticSource{payloads}, synth, nil, nil)
}

func newTestEngine(t *testing.T, records []models.DeliveryRecord, sig testSignals) *Engine {
	t.Helper()

	cfg := &models.Config{
		StartLocation: "Iscon Center, Satellite",
		StartZone:     "Satellite",
	}
	eng := New(history.BuildRateIndex(records), zones.DefaultRegistry(),
		newTestProvider(t, sig), cfg, nil, rand.New(rand.NewSource(1)))
	eng.now = func() time.Time { return testNow }
	return eng
}

func attempt(name, day, slot, outcome string) models.DeliveryRecord {
	return models.DeliveryRecord{
		CustomerName: name,
		DayOfWeek:    day,
		TimeSlot:     slot,
		PackageSize:  "Medium",
		Outcome:      outcome,
	}
}
