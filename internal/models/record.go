package models

import (
	"strconv"
	"strings"
)

// DeliveryRecord is one labeled attempt from the historical delivery log.
type DeliveryRecord struct {
	CustomerName string `json:"customer_name"`
	DayOfWeek    string `json:"day_of_week"`
	TimeSlot     string `json:"time_slot"`
	PackageSize  string `json:"package_size"`
	Outcome      string `json:"outcome"`
}

func (r DeliveryRecord) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// SlotHour converts a display slot label like "2 PM" or "11 AM" to a
// 24-hour clock hour. Returns false for labels it cannot parse.
func SlotHour(slot string) (int, bool) {
	fields := strings.Fields(slot)
	if len(fields) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(fields[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, false
	}

	return hour, true
}
