package engine

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/parthdave/couriersim/internal/models"
)

// Weights for blending the time-collapsed ratio with the day-and-slot
// specific ratio when the latter exists.
const (
	timeOnlyWeight    = 0.3
	daySpecificWeight = 0.7
)

// Score clamps applied by every real-time adjustment.
const (
	scoreFloor   = 0.1
	scoreCeiling = 0.95
)

// Slots hit by rush-hour congestion.
var peakSlots = map[string]bool{
	"8 AM": true, "9 AM": true, "10 AM": true,
	"5 PM": true, "6 PM": true, "7 PM": true,
}

// Slots excluded from the low-congestion boost.
var nearPeakSlots = map[string]bool{
	"8 AM": true, "9 AM": true, "5 PM": true, "6 PM": true,
}

var afternoonSlots = []string{"12 PM", "1 PM", "2 PM", "3 PM", "4 PM"}

var festivalImpactFactors = map[string]float64{
	models.ImpactLow:      0.95,
	models.ImpactModerate: 0.8,
	models.ImpactHigh:     0.6,
	models.ImpactSevere:   0.4,
}

// PredictWindows returns the topK recommended delivery windows for a
// customer on a day, best first. A customer with no history at all gets a
// single "no data" sentinel row.
func (e *Engine) PredictWindows(ctx context.Context, name, day string, topK int) []models.SlotPrediction {
	if topK <= 0 {
		topK = 3
	}

	scores := e.rates.SlotRates(name)
	if len(scores) == 0 {
		return []models.SlotPrediction{{Time: models.NoDataSlot, FailureRate: 100}}
	}

	// Blend in day-specific evidence where it exists; slots without it keep
	// the time-only ratio.
	if _, ok := e.rates.DayRate(name, day); ok {
		for slot, rate := range scores {
			if specific, exists := e.rates.DaySlotRate(name, day, slot); exists {
				scores[slot] = timeOnlyWeight*rate + daySpecificWeight*specific
			}
		}
	}

	zone, _ := e.registry.ZoneOf(name)
	e.applyRealTimeAdjustments(ctx, scores, zone)

	sorted := sortedByScore(scores)

	// Only recommend slots still ahead of the clock today; backfill from the
	// full ranking when too few remain.
	currentHour := e.now().Hour()
	picked := make([]slotScore, 0, topK)
	seen := make(map[string]bool)
	for _, ss := range sorted {
		if hour, ok := models.SlotHour(ss.Slot); ok && hour > currentHour {
			picked = append(picked, ss)
			seen[ss.Slot] = true
		}
	}
	if len(picked) < topK {
		for _, ss := range sorted {
			if len(picked) >= topK {
				break
			}
			if !seen[ss.Slot] {
				picked = append(picked, ss)
				seen[ss.Slot] = true
			}
		}
	}
	if len(picked) > topK {
		picked = picked[:topK]
	}

	result := make([]models.SlotPrediction, 0, len(picked))
	for _, ss := range picked {
		result = append(result, models.SlotPrediction{
			Time:        ss.Slot,
			FailureRate: math.Round(e.displayFailureRate(ss.Score)*10) / 10,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].FailureRate < result[j].FailureRate
	})
	return result
}

type slotScore struct {
	Slot  string
	Score float64
}

func sortedByScore(scores map[string]float64) []slotScore {
	sorted := make([]slotScore, 0, len(scores))
	for slot, score := range scores {
		sorted = append(sorted, slotScore{Slot: slot, Score: score})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		// Deterministic order for equal scores: earlier slot first.
		hi, _ := models.SlotHour(sorted[i].Slot)
		hj, _ := models.SlotHour(sorted[j].Slot)
		return hi < hj
	})
	return sorted
}

// applyRealTimeAdjustments scales the score map in place: traffic first,
// then weather, then festivals.
func (e *Engine) applyRealTimeAdjustments(ctx context.Context, scores map[string]float64, zone string) {
	traffic, haveZone := e.signals.ZoneTraffic(ctx, zone)
	if haveZone {
		if traffic.CongestionLevel >= 7 {
			reduction := float64(traffic.CongestionLevel-6) * 0.05
			for slot := range scores {
				if peakSlots[slot] {
					scores[slot] = math.Max(scoreFloor, scores[slot]*(1-reduction))
				}
			}
		}
		if traffic.CongestionLevel <= 3 {
			for slot := range scores {
				if !nearPeakSlots[slot] {
					scores[slot] = math.Min(scoreCeiling, scores[slot]*1.1)
				}
			}
		}
	}

	weather := e.signals.Weather(ctx)
	if isRainy(weather.Conditions) || weather.Precipitation.Chance >= 70 {
		for slot := range scores {
			scores[slot] = math.Max(scoreFloor, scores[slot]*0.8)
		}
	}
	if weather.Temperature.Current >= 38 {
		for _, slot := range afternoonSlots {
			if _, ok := scores[slot]; ok {
				scores[slot] = math.Max(scoreFloor, scores[slot]*0.85)
			}
		}
	}

	calendar := e.signals.Festivals(ctx)
	if !calendar.HasFestivalToday {
		return
	}
	today := e.now().Format("2006-01-02")
	for _, festival := range calendar.Festivals {
		if festival.Date != today {
			continue
		}
		if !festivalAffectsZone(festival, zone) {
			continue
		}

		start, end, ok := festival.TimeWindowHours()
		if !ok {
			// Unparseable window: apply a flat reduction instead.
			for slot := range scores {
				scores[slot] = math.Max(scoreFloor, scores[slot]*0.9)
			}
			continue
		}

		factor, known := festivalImpactFactors[festival.TrafficImpact]
		if !known {
			factor = festivalImpactFactors[models.ImpactModerate]
		}
		for slot := range scores {
			hour, parsed := models.SlotHour(slot)
			if parsed && hour >= start && hour <= end {
				scores[slot] = math.Max(scoreFloor, scores[slot]*factor)
			}
		}
	}
}

// displayFailureRate remaps a success score into the displayed 2-10%
// failure band. This is a deliberate display transform for plausibility,
// not a probability computation: near-perfect histories would otherwise
// render as 0% failure.
func (e *Engine) displayFailureRate(score float64) float64 {
	base := 100 - score*100
	if base < 1 {
		return 2.0 + e.rng.Float64()*4.0
	}

	adjusted := base * 1.5
	if adjusted < 2.0 {
		return 2.0 + e.rng.Float64()*2.0
	}
	if adjusted > 10.0 {
		return 10.0
	}
	return adjusted
}

func isRainy(conditions string) bool {
	switch strings.ToLower(conditions) {
	case "rain", "rainy", "thunderstorm", "stormy":
		return true
	}
	return false
}

func festivalAffectsZone(festival models.Festival, zone string) bool {
	if len(festival.AffectedZones) == 0 {
		return true
	}
	for _, z := range festival.AffectedZones {
		if z == zone {
			return true
		}
	}
	return false
}
