package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucsky/cuid"
	"github.com/parthdave/couriersim/internal/models"
)

// ErrNoValidStops is returned when none of the requested stop names
// resolve to a registered customer.
var ErrNoValidStops = errors.New("no valid customers found in the selected orders")

// Start-location index in the duration matrix.
const startIdx = -1

type matrixKey struct {
	From int
	To   int
}

// edge is one directed hop after real-time duration adjustment. Base
// distance stays symmetric; duration may differ per direction because the
// adjustment keys off the destination zone.
type edge struct {
	DistanceKm  float64
	DurationMin int
	Conditions  string
}

// OptimizeRoute finds the minimum-total-duration visiting order over all
// permutations of the consolidated stops. Brute force: fine for the small
// stop counts a single courier carries, factorial beyond that.
func (e *Engine) OptimizeRoute(ctx context.Context, stopNames []string) (*models.RoutePlan, error) {
	stops := e.consolidateStops(stopNames)
	if len(stops) == 0 {
		return nil, ErrNoValidStops
	}

	traffic := e.signals.Traffic(ctx)
	weather := e.signals.Weather(ctx)
	festivals := e.signals.Festivals(ctx)

	plan := &models.RoutePlan{
		PlanID:            cuid.New(),
		WeatherConditions: WeatherSummary(weather),
		TrafficSummary:    TrafficSummary(traffic),
		FestivalImpact:    FestivalSummary(festivals, e.now().Format("2006-01-02")),
	}

	if len(stops) == 1 {
		plan.Route = []string{stopLabel(stops[0])}
		plan.TotalDistance = "0.0 km"
		plan.TotalDuration = "0 mins"
		plan.Details = []models.RouteLeg{}
		return plan, nil
	}

	today := e.now().Format("2006-01-02")
	matrix := make(map[matrixKey]edge)
	for i, stop := range stops {
		base := e.registry.Lookup(e.startZone, stop.Zone)
		matrix[matrixKey{startIdx, i}] = adjustEdge(base, stop.Zone, traffic, weather, festivals, today)
	}
	for i, from := range stops {
		for j, to := range stops {
			if i == j {
				continue
			}
			base := e.registry.Lookup(from.Zone, to.Zone)
			matrix[matrixKey{i, j}] = adjustEdge(base, to.Zone, traffic, weather, festivals, today)
		}
	}

	best := e.searchPermutations(len(stops), matrix)

	var totalDistance float64
	totalDuration := 0
	route := make([]string, 0, len(best))
	details := make([]models.RouteLeg, 0, len(best))

	prev := startIdx
	prevLabel := "Start Location (Courier)"
	prevAddress := e.startLocation
	for _, idx := range best {
		stop := stops[idx]
		hop := matrix[matrixKey{prev, idx}]
		details = append(details, models.RouteLeg{
			From:              prevLabel,
			FromAddress:       prevAddress,
			To:                stopLabel(stop),
			ToAddress:         stop.Address,
			Distance:          distanceText(hop.DistanceKm),
			Duration:          durationText(hop.DurationMin),
			TrafficConditions: hop.Conditions,
		})
		totalDistance += hop.DistanceKm
		totalDuration += hop.DurationMin
		route = append(route, stopLabel(stop))

		prev = idx
		prevLabel = stopLabel(stop)
		prevAddress = stop.Address
	}

	plan.Route = route
	plan.Details = details
	plan.TotalDistance = fmt.Sprintf("%.1f km", totalDistance)
	plan.TotalDuration = durationText(totalDuration)
	return plan, nil
}

// consolidateStops collapses repeated customer names into a single stop
// with an incremented parcel count, preserving first-seen order. Unknown
// names are dropped.
func (e *Engine) consolidateStops(names []string) []models.Stop {
	var stops []models.Stop
	index := make(map[string]int)

	for _, name := range names {
		customer, ok := e.registry.Customer(name)
		if !ok {
			e.logger.Debug("skipping unknown stop name")
			continue
		}
		if i, exists := index[name]; exists {
			stops[i].ParcelCount++
			continue
		}
		index[name] = len(stops)
		stops = append(stops, models.Stop{
			Name:        customer.Name,
			Zone:        customer.Zone,
			Address:     customer.Address,
			ParcelCount: 1,
		})
	}
	return stops
}

// searchPermutations enumerates every visiting order and keeps the first
// one achieving the minimum total duration. The tour starts at the courier
// location; no return leg is counted.
func (e *Engine) searchPermutations(n int, matrix map[matrixKey]edge) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	best := make([]int, n)
	minTotal := math.MaxInt

	var permute func(k int)
	permute = func(k int) {
		if k == n {
			total := matrix[matrixKey{startIdx, indices[0]}].DurationMin
			for i := 0; i < n-1; i++ {
				total += matrix[matrixKey{indices[i], indices[i+1]}].DurationMin
			}
			if total < minTotal {
				minTotal = total
				copy(best, indices)
			}
			return
		}
		for i := k; i < n; i++ {
			indices[k], indices[i] = indices[i], indices[k]
			permute(k + 1)
			indices[k], indices[i] = indices[i], indices[k]
		}
	}
	permute(0)

	return best
}

// adjustEdge applies the compounding real-time multipliers for one
// directed hop, keyed by the destination zone.
func adjustEdge(base models.DistanceEntry, destZone string, traffic models.TrafficReport, weather models.WeatherReport, festivals models.FestivalCalendar, today string) edge {
	multiplier := 1.0
	conditions := "Normal"

	if zt, ok := traffic.Zones[destZone]; ok {
		switch {
		case zt.CongestionLevel <= 3:
			multiplier *= 0.9
			conditions = "Light"
		case zt.CongestionLevel <= 6:
			conditions = "Normal"
		case zt.CongestionLevel <= 8:
			multiplier *= 1.3
			conditions = "Heavy"
		default:
			multiplier *= 1.6
			conditions = "Severe"
		}
	}

	lower := strings.ToLower(weather.Conditions)
	if strings.Contains(lower, "rain") || strings.Contains(lower, "snow") || strings.Contains(lower, "storm") {
		multiplier *= 1.2
		conditions += ", Wet Roads"
	}
	if strings.Contains(lower, "fog") || strings.Contains(lower, "mist") {
		multiplier *= 1.15
		conditions += ", Poor Visibility"
	}

	if festivals.HasFestivalToday {
		for _, festival := range festivals.Festivals {
			if festival.Date != today || !zoneListed(festival.AffectedZones, destZone) {
				continue
			}
			switch festival.TrafficImpact {
			case models.ImpactSevere:
				multiplier *= 1.5
				conditions += ", Festival: " + festival.Name
			case models.ImpactHigh:
				multiplier *= 1.3
				conditions += ", Festival: " + festival.Name
			case models.ImpactModerate:
				multiplier *= 1.2
			}
		}
	}

	return edge{
		DistanceKm:  base.DistanceKm,
		DurationMin: int(float64(base.DurationMin) * multiplier),
		Conditions:  conditions,
	}
}

func zoneListed(zones []string, zone string) bool {
	for _, z := range zones {
		if z == zone {
			return true
		}
	}
	return false
}

func stopLabel(stop models.Stop) string {
	if stop.ParcelCount > 1 {
		return fmt.Sprintf("%s (%d parcels)", stop.Name, stop.ParcelCount)
	}
	return stop.Name
}

func distanceText(km float64) string {
	return fmt.Sprintf("%g km", km)
}

func durationText(mins int) string {
	return fmt.Sprintf("%d mins", mins)
}
