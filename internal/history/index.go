package history

import (
	"github.com/parthdave/couriersim/internal/models"
)

type nameDaySlot struct {
	Name string
	Day  string
	Slot string
}

type nameDay struct {
	Name string
	Day  string
}

type nameSlot struct {
	Name string
	Slot string
}

// RateIndex holds success-rate lookup tables built from the historical
// delivery log. Keys with zero underlying records are simply absent; a
// missing entry means "no data", never a zero rate.
type RateIndex struct {
	byNameDaySlot map[nameDaySlot]float64
	byNameDay     map[nameDay]float64
	byNameSlot    map[nameSlot]float64
	slotsByName   map[string][]string
}

type tally struct {
	successes int
	attempts  int
}

func (t tally) rate() float64 {
	return float64(t.successes) / float64(t.attempts)
}

// BuildRateIndex computes success ratios for every observed grouping of
// customer name, weekday, and time slot. Pure function of the input log.
func BuildRateIndex(records []models.DeliveryRecord) *RateIndex {
	fullTally := make(map[nameDaySlot]*tally)
	dayTally := make(map[nameDay]*tally)
	slotTally := make(map[nameSlot]*tally)

	for _, rec := range records {
		full := nameDaySlot{rec.CustomerName, rec.DayOfWeek, rec.TimeSlot}
		day := nameDay{rec.CustomerName, rec.DayOfWeek}
		slot := nameSlot{rec.CustomerName, rec.TimeSlot}

		if fullTally[full] == nil {
			fullTally[full] = &tally{}
		}
		if dayTally[day] == nil {
			dayTally[day] = &tally{}
		}
		if slotTally[slot] == nil {
			slotTally[slot] = &tally{}
		}

		fullTally[full].attempts++
		dayTally[day].attempts++
		slotTally[slot].attempts++
		if rec.Succeeded() {
			fullTally[full].successes++
			dayTally[day].successes++
			slotTally[slot].successes++
		}
	}

	idx := &RateIndex{
		byNameDaySlot: make(map[nameDaySlot]float64, len(fullTally)),
		byNameDay:     make(map[nameDay]float64, len(dayTally)),
		byNameSlot:    make(map[nameSlot]float64, len(slotTally)),
		slotsByName:   make(map[string][]string),
	}
	for key, t := range fullTally {
		idx.byNameDaySlot[key] = t.rate()
	}
	for key, t := range dayTally {
		idx.byNameDay[key] = t.rate()
	}
	for key, t := range slotTally {
		idx.byNameSlot[key] = t.rate()
		idx.slotsByName[key.Name] = append(idx.slotsByName[key.Name], key.Slot)
	}

	return idx
}

// HasCustomer reports whether any record for the customer exists.
func (idx *RateIndex) HasCustomer(name string) bool {
	return len(idx.slotsByName[name]) > 0
}

// SlotRates returns the time-collapsed success ratio per slot for a
// customer. The returned map is a copy and safe to mutate.
func (idx *RateIndex) SlotRates(name string) map[string]float64 {
	slots := idx.slotsByName[name]
	if len(slots) == 0 {
		return nil
	}
	rates := make(map[string]float64, len(slots))
	for _, slot := range slots {
		rates[slot] = idx.byNameSlot[nameSlot{name, slot}]
	}
	return rates
}

// DayRate returns the time-collapsed success ratio for a customer on a day.
func (idx *RateIndex) DayRate(name, day string) (float64, bool) {
	rate, ok := idx.byNameDay[nameDay{name, day}]
	return rate, ok
}

// DaySlotRate returns the day-and-slot specific success ratio.
func (idx *RateIndex) DaySlotRate(name, day, slot string) (float64, bool) {
	rate, ok := idx.byNameDaySlot[nameDaySlot{name, day, slot}]
	return rate, ok
}
