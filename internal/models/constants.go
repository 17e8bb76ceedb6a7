package models

const (
	OrderStatusPending   = "Pending"
	OrderStatusDelivered = "Delivered"
	OrderStatusFailed    = "Failed"

	OutcomeSuccess = "Success"
	OutcomeFailed  = "Failed"

	SignalTraffic  = "traffic"
	SignalWeather  = "weather"
	SignalFestival = "festivals"

	ImpactLow      = "Low"
	ImpactModerate = "Moderate"
	ImpactHigh     = "High"
	ImpactSevere   = "Severe"
)
