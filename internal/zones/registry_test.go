package zones

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultRegistryLookup verifies the static distance table behaves as
// the route matrix expects: symmetric, short intra-zone hops, and a
// fallback for unknown pairs.
func TestDefaultRegistryLookup(t *testing.T) {
	r := DefaultRegistry()

	t.Run("Symmetry", func(t *testing.T) {
		for _, a := range r.Zones() {
			for _, b := range r.Zones() {
				assert.Equal(t, r.Lookup(a, b), r.Lookup(b, a),
					"distance %s<->%s should be symmetric", a, b)
			}
		}
	})

	t.Run("IntraZoneShortHop", func(t *testing.T) {
		entry := r.Lookup("Satellite", "Satellite")
		assert.Equal(t, 1.5, entry.DistanceKm)
		assert.Equal(t, 5, entry.DurationMin)
	})

	t.Run("UnknownPairFallback", func(t *testing.T) {
		entry := r.Lookup("Satellite", "Atlantis")
		assert.Equal(t, 10.0, entry.DistanceKm)
		assert.Equal(t, 20, entry.DurationMin)
	})

	t.Run("KnownPair", func(t *testing.T) {
		entry := r.Lookup("Satellite", "Bopal")
		assert.Greater(t, entry.DistanceKm, 0.0)
		assert.Greater(t, entry.DurationMin, 0)
	})
}

func TestDefaultRegistryCustomers(t *testing.T) {
	r := DefaultRegistry()

	names := r.CustomerNames()
	require.Len(t, names, 10)

	for _, name := range names {
		customer, ok := r.Customer(name)
		require.True(t, ok)
		assert.NotEmpty(t, customer.Zone)
		assert.NotEmpty(t, customer.Address)

		zone, ok := r.ZoneOf(name)
		assert.True(t, ok)
		assert.Equal(t, customer.Zone, zone)
	}

	_, ok := r.Customer("Nobody")
	assert.False(t, ok)
}
