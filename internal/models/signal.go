package models

import (
	"strconv"
	"strings"
	"time"
)

// ZoneTraffic is the traffic picture for a single zone at a point in time.
type ZoneTraffic struct {
	CongestionLevel int      `json:"congestion_level"` // 1-10
	DelayMinutes    int      `json:"delay_minutes"`
	Status          string   `json:"status"`
	PeakAreas       []string `json:"peak_areas,omitempty"`
}

// TrafficReport covers every zone plus a city-wide aggregate.
type TrafficReport struct {
	Zones             map[string]ZoneTraffic `json:"zones"`
	OverallCongestion int                    `json:"overall_city_congestion"`
	Status            string                 `json:"status"`
	FetchedAt         time.Time              `json:"timestamp"`
}

type Temperature struct {
	Current   int    `json:"current"`
	FeelsLike int    `json:"feels_like"`
	Units     string `json:"units"`
}

type Precipitation struct {
	Chance int    `json:"chance"`
	Type   string `json:"type"`
}

type Wind struct {
	Speed     int    `json:"speed"`
	Direction string `json:"direction"`
	Units     string `json:"units"`
}

type WeatherReport struct {
	Temperature   Temperature   `json:"temperature"`
	Conditions    string        `json:"conditions"`
	Precipitation Precipitation `json:"precipitation"`
	Humidity      int           `json:"humidity"`
	Wind          Wind          `json:"wind"`
	Warnings      []string      `json:"warnings"`
	FetchedAt     time.Time     `json:"timestamp"`
}

// Festival is a single event that may slow deliveries in its affected zones.
type Festival struct {
	Name          string   `json:"name"`
	Date          string   `json:"date"` // YYYY-MM-DD
	TimeWindow    string   `json:"time"` // "HH:00 - HH:00"
	Location      string   `json:"location"`
	CrowdSize     string   `json:"crowd_size"`
	TrafficImpact string   `json:"traffic_impact"` // Low, Moderate, High, Severe
	AffectedZones []string `json:"affected_zones"`
}

type FestivalCalendar struct {
	Festivals        []Festival `json:"festivals"`
	HasFestivalToday bool       `json:"has_festival_today"`
	FetchedAt        time.Time  `json:"timestamp"`
}

// TimeWindowHours parses the festival time window ("09:00 - 21:00") into
// start and end hours. Returns false when the window is malformed.
func (f Festival) TimeWindowHours() (start, end int, ok bool) {
	parts := strings.Split(f.TimeWindow, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}

	start, ok = windowHour(parts[0])
	if !ok {
		return 0, 0, false
	}
	end, ok = windowHour(parts[1])
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

func windowHour(s string) (int, bool) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) == 0 {
		return 0, false
	}
	hour, err := strconv.Atoi(fields[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
