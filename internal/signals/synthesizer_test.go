package signals

import (
	"math/rand"
	"testing"
	"time"

	"github.com/parthdave/couriersim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSynthesizer(seed int64) *Synthesizer {
	return NewSynthesizer(rand.New(rand.NewSource(seed)))
}

// TestTrafficBounds verifies every zone's congestion stays in [1,10] at
// every hour of the week, rush or not.
func TestTrafficBounds(t *testing.T) {
	synth := newTestSynthesizer(1)

	// A Monday and a Saturday cover weekday rush and weekend modifiers.
	for _, day := range []time.Time{
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	} {
		for hour := 0; hour < 24; hour++ {
			report := synth.Traffic(day.Add(time.Duration(hour) * time.Hour))
			require.Len(t, report.Zones, 10)

			for zone, zt := range report.Zones {
				assert.GreaterOrEqual(t, zt.CongestionLevel, 1, "zone %s hour %d", zone, hour)
				assert.LessOrEqual(t, zt.CongestionLevel, 10, "zone %s hour %d", zone, hour)
				assert.Greater(t, zt.DelayMinutes, 0)
				assert.NotEmpty(t, zt.Status)
				assert.LessOrEqual(t, len(zt.PeakAreas), 2)
			}
			assert.GreaterOrEqual(t, report.OverallCongestion, 1)
			assert.LessOrEqual(t, report.OverallCongestion, 10)
			assert.NotEmpty(t, report.Status)
		}
	}
}

// TestTrafficRushHour verifies morning rush pushes the busy zones well
// above their weekend level.
func TestTrafficRushHour(t *testing.T) {
	synth := newTestSynthesizer(7)

	// Monday 9 AM vs Sunday 9 AM.
	rush := synth.Traffic(time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))
	weekend := synth.Traffic(time.Date(2026, 9, 6, 9, 0, 0, 0, time.UTC))

	assert.Greater(t, rush.Zones["Navrangpura"].CongestionLevel,
		weekend.Zones["Navrangpura"].CongestionLevel)
}

// TestWeatherSeasons verifies conditions come from the right seasonal
// bucket per month.
func TestWeatherSeasons(t *testing.T) {
	synth := newTestSynthesizer(3)

	cases := []struct {
		month      time.Month
		conditions []string
	}{
		{time.May, []string{"Clear", "Sunny", "Hot", "Very Hot"}},
		{time.August, []string{"Rainy", "Thunderstorms", "Overcast", "Partly Cloudy"}},
		{time.January, []string{"Clear", "Sunny", "Mild", "Pleasant"}},
		{time.October, []string{"Partly Cloudy", "Mostly Sunny", "Pleasant"}},
	}

	for _, tc := range cases {
		t.Run(tc.month.String(), func(t *testing.T) {
			for i := 0; i < 20; i++ {
				report := synth.Weather(time.Date(2026, tc.month, 10, 12, 0, 0, 0, time.UTC))
				assert.Contains(t, tc.conditions, report.Conditions)
				assert.GreaterOrEqual(t, report.Temperature.FeelsLike, report.Temperature.Current)
				assert.Equal(t, "Celsius", report.Temperature.Units)
			}
		})
	}
}

// TestWeatherSummerNeverRains verifies the summer profile cannot produce a
// Rain precipitation type.
func TestWeatherSummerNeverRains(t *testing.T) {
	synth := newTestSynthesizer(5)
	for i := 0; i < 50; i++ {
		report := synth.Weather(time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC))
		assert.Equal(t, "None", report.Precipitation.Type)
	}
}

// TestFestivalsAlwaysHasFuture verifies every calendar includes exactly one
// future-dated event 1-7 days out, plus optionally one today.
func TestFestivalsAlwaysHasFuture(t *testing.T) {
	synth := newTestSynthesizer(11)
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	today := now.Format("2006-01-02")

	sawToday := false
	for i := 0; i < 50; i++ {
		calendar := synth.Festivals(now)

		var future []models.Festival
		for _, f := range calendar.Festivals {
			if f.Date == today {
				assert.True(t, calendar.HasFestivalToday)
				sawToday = true
				continue
			}
			future = append(future, f)
		}
		require.Len(t, future, 1)

		date, err := time.Parse("2006-01-02", future[0].Date)
		require.NoError(t, err)
		days := int(date.Sub(now.Truncate(24*time.Hour)).Hours() / 24)
		assert.GreaterOrEqual(t, days, 1)
		assert.LessOrEqual(t, days, 7)

		assert.NotEmpty(t, future[0].AffectedZones)
		_, _, ok := future[0].TimeWindowHours()
		assert.True(t, ok)
	}
	assert.True(t, sawToday, "a ~30%% daily chance should fire within 50 draws")
}
