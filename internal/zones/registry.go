package zones

import (
	"sort"

	"github.com/parthdave/couriersim/internal/models"
)

// Intra-zone hops cost a fixed short distance rather than zero, and unknown
// zone pairs fall back to a default so route search never fails on missing
// distance data.
var (
	shortHop = models.DistanceEntry{DistanceKm: 1.5, DurationMin: 5}
	fallback = models.DistanceEntry{DistanceKm: 10, DurationMin: 20}
)

type zonePair struct {
	From string
	To   string
}

// DistanceRow is one zone-pair entry used to build a Registry.
type DistanceRow struct {
	From     string
	To       string
	Distance models.DistanceEntry
}

// Registry resolves customers to their fixed zones and looks up base
// travel distance between zones.
type Registry struct {
	customers map[string]models.Customer
	distances map[zonePair]models.DistanceEntry
}

func NewRegistry(customers []models.Customer, rows []DistanceRow) *Registry {
	byName := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		byName[c.Name] = c
	}
	distances := make(map[zonePair]models.DistanceEntry, len(rows))
	for _, row := range rows {
		distances[zonePair{row.From, row.To}] = row.Distance
	}
	return &Registry{customers: byName, distances: distances}
}

// DefaultRegistry returns the static Ahmedabad zone registry.
func DefaultRegistry() *Registry {
	r := NewRegistry(defaultCustomers, nil)
	r.distances = defaultDistances
	return r
}

// Customer returns the registered customer for a name.
func (r *Registry) Customer(name string) (models.Customer, bool) {
	c, ok := r.customers[name]
	return c, ok
}

// ZoneOf returns the fixed zone a customer belongs to.
func (r *Registry) ZoneOf(name string) (string, bool) {
	c, ok := r.customers[name]
	return c.Zone, ok
}

// CustomerNames returns all registered customer names, sorted.
func (r *Registry) CustomerNames() []string {
	names := make([]string, 0, len(r.customers))
	for name := range r.customers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Zones returns the distinct zone names, sorted.
func (r *Registry) Zones() []string {
	seen := make(map[string]bool)
	for _, c := range r.customers {
		seen[c.Zone] = true
	}
	zones := make([]string, 0, len(seen))
	for z := range seen {
		zones = append(zones, z)
	}
	sort.Strings(zones)
	return zones
}

// Lookup returns the base distance between two zones. The static table is
// symmetric, so both orderings are tried before falling back.
func (r *Registry) Lookup(zoneA, zoneB string) models.DistanceEntry {
	if zoneA == zoneB {
		return shortHop
	}
	if entry, ok := r.distances[zonePair{zoneA, zoneB}]; ok {
		return entry
	}
	if entry, ok := r.distances[zonePair{zoneB, zoneA}]; ok {
		return entry
	}
	return fallback
}
