package orders

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/jaswdr/faker"
	"github.com/parthdave/couriersim/internal/models"
	"github.com/parthdave/couriersim/internal/zones"
)

var packageSizes = []string{"Small", "Medium", "Large"}

var timeSlots = []string{
	"8 AM", "9 AM", "10 AM", "11 AM", "12 PM",
	"1 PM", "2 PM", "3 PM", "4 PM", "5 PM", "6 PM", "7 PM",
}

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Generator fabricates pending orders and historical delivery records for
// seeding. Everything random flows through the injected rng so seeded runs
// are reproducible.
type Generator struct {
	fake     faker.Faker
	rng      *rand.Rand
	registry *zones.Registry
	now      func() time.Time
}

func NewGenerator(registry *zones.Registry, rng *rand.Rand) *Generator {
	return &Generator{
		fake:     faker.NewWithSeed(rand.NewSource(rng.Int63())),
		rng:      rng,
		registry: registry,
		now:      time.Now,
	}
}

// RandomPackageSize picks a size for orders created without one.
func (g *Generator) RandomPackageSize() string {
	return packageSizes[g.rng.Intn(len(packageSizes))]
}

// PendingOrders builds count fake pending orders spread across today,
// tomorrow and the day after, numbered from the store's first ID.
func (g *Generator) PendingOrders(count int) []models.Order {
	names := g.registry.CustomerNames()
	now := g.now()

	orders := make([]models.Order, 0, count)
	for i := 0; i < count; i++ {
		name := names[g.rng.Intn(len(names))]
		customer, _ := g.registry.Customer(name)
		deliveryDate := now.AddDate(0, 0, g.rng.Intn(3))
		createdAt := now.Add(-time.Duration(g.fake.IntBetween(1, 48)) * time.Hour)

		orders = append(orders, models.Order{
			OrderID:      strconv.Itoa(firstOrderID + i),
			CustomerName: customer.Name,
			DeliveryDay:  deliveryDate.Format(dayFormat),
			Zone:         customer.Zone,
			Address:      customer.Address,
			PackageSize:  g.RandomPackageSize(),
			Status:       models.OrderStatusPending,
			CreatedAt:    createdAt.Format(timestampFmt),
		})
	}
	return orders
}

// HistoryRecords builds a mock delivery log with per-customer slot
// preferences baked in, so the rate index has real signal to rank on:
// attempts inside a customer's favored slots succeed far more often.
func (g *Generator) HistoryRecords(perCustomer int) []models.DeliveryRecord {
	var records []models.DeliveryRecord
	for _, name := range g.registry.CustomerNames() {
		records = append(records, g.HistoryRecordsFor(name, perCustomer)...)
	}
	return records
}

// HistoryRecordsFor generates the mock log rows for a single customer.
func (g *Generator) HistoryRecordsFor(name string, count int) []models.DeliveryRecord {
	favored := g.favoredSlots()
	records := make([]models.DeliveryRecord, 0, count)
	for i := 0; i < count; i++ {
		slot := timeSlots[g.rng.Intn(len(timeSlots))]
		successChance := 0.45
		if favored[slot] {
			successChance = 0.9
		}

		outcome := models.OutcomeFailed
		if g.rng.Float64() < successChance {
			outcome = models.OutcomeSuccess
		}

		records = append(records, models.DeliveryRecord{
			CustomerName: name,
			DayOfWeek:    weekdayNames[g.rng.Intn(len(weekdayNames))],
			TimeSlot:     slot,
			PackageSize:  packageSizes[g.rng.Intn(len(packageSizes))],
			Outcome:      outcome,
		})
	}
	return records
}

func (g *Generator) favoredSlots() map[string]bool {
	favored := make(map[string]bool, 2)
	for len(favored) < 2 {
		favored[timeSlots[g.rng.Intn(len(timeSlots))]] = true
	}
	return favored
}
