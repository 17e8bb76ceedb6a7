package models

// NoDataSlot is the sentinel returned when a customer has no history at all.
const NoDataSlot = "No data available for this person"

// SlotPrediction is one recommended delivery window. FailureRate is a
// display percentage, not a calibrated probability (see the scorer remap).
type SlotPrediction struct {
	Time        string  `json:"time"`
	FailureRate float64 `json:"failure_rate"`
}
