package models

// Stop is one consolidated visit on a courier's route. Repeated orders for
// the same customer collapse into one stop with a higher parcel count.
type Stop struct {
	Name        string `json:"name"`
	Zone        string `json:"zone"`
	Address     string `json:"address"`
	ParcelCount int    `json:"parcel_count"`
}

// RouteLeg is one directed hop between two consecutive stops.
type RouteLeg struct {
	From              string `json:"from"`
	FromAddress       string `json:"from_address"`
	To                string `json:"to"`
	ToAddress         string `json:"to_address"`
	Distance          string `json:"distance"`
	Duration          string `json:"duration"`
	TrafficConditions string `json:"traffic_conditions"`
}

// RoutePlan is the optimized visiting order with leg-by-leg detail and
// one-line environment summaries for display.
type RoutePlan struct {
	PlanID            string     `json:"plan_id"`
	Route             []string   `json:"route"`
	TotalDistance     string     `json:"total_distance"`
	TotalDuration     string     `json:"total_duration"`
	Details           []RouteLeg `json:"details"`
	WeatherConditions string     `json:"weather_conditions"`
	TrafficSummary    string     `json:"traffic_summary"`
	FestivalImpact    string     `json:"festival_impact"`
}

// DistanceEntry is a base distance/duration between two zones before any
// real-time adjustment.
type DistanceEntry struct {
	DistanceKm  float64 `json:"distance"`
	DurationMin int     `json:"duration"`
}
