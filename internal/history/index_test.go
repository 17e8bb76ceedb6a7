package history

import (
	"strings"
	"testing"

	"github.com/parthdave/couriersim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(name, day, slot, outcome string) models.DeliveryRecord {
	return models.DeliveryRecord{
		CustomerName: name,
		DayOfWeek:    day,
		TimeSlot:     slot,
		PackageSize:  "Small",
		Outcome:      outcome,
	}
}

// TestBuildRateIndex verifies success ratios per grouping, including the
// all-success and all-failure extremes.
func TestBuildRateIndex(t *testing.T) {
	idx := BuildRateIndex([]models.DeliveryRecord{
		record("Aditya", "Monday", "11 AM", models.OutcomeSuccess),
		record("Aditya", "Monday", "11 AM", models.OutcomeSuccess),
		record("Aditya", "Monday", "2 PM", models.OutcomeFailed),
		record("Aditya", "Monday", "2 PM", models.OutcomeFailed),
		record("Aditya", "Tuesday", "11 AM", models.OutcomeFailed),
	})

	t.Run("DaySlotRate", func(t *testing.T) {
		rate, ok := idx.DaySlotRate("Aditya", "Monday", "11 AM")
		require.True(t, ok)
		assert.Equal(t, 1.0, rate)

		rate, ok = idx.DaySlotRate("Aditya", "Monday", "2 PM")
		require.True(t, ok)
		assert.Equal(t, 0.0, rate)
	})

	t.Run("SlotRates", func(t *testing.T) {
		rates := idx.SlotRates("Aditya")
		require.Len(t, rates, 2)
		// 2 of 3 attempts at 11 AM succeeded across all days.
		assert.InDelta(t, 2.0/3.0, rates["11 AM"], 1e-9)
		assert.Equal(t, 0.0, rates["2 PM"])
	})

	t.Run("DayRate", func(t *testing.T) {
		rate, ok := idx.DayRate("Aditya", "Monday")
		require.True(t, ok)
		assert.Equal(t, 0.5, rate)
	})

	t.Run("AbsentKeys", func(t *testing.T) {
		_, ok := idx.DaySlotRate("Aditya", "Sunday", "11 AM")
		assert.False(t, ok)

		_, ok = idx.DayRate("Aditya", "Friday")
		assert.False(t, ok)

		assert.Nil(t, idx.SlotRates("Meera"))
		assert.False(t, idx.HasCustomer("Meera"))
		assert.True(t, idx.HasCustomer("Aditya"))
	})
}

// TestSlotRatesCopy verifies the returned map can be mutated without
// corrupting the index.
func TestSlotRatesCopy(t *testing.T) {
	idx := BuildRateIndex([]models.DeliveryRecord{
		record("Riya", "Friday", "3 PM", models.OutcomeSuccess),
	})

	rates := idx.SlotRates("Riya")
	rates["3 PM"] = 0.0

	again := idx.SlotRates("Riya")
	assert.Equal(t, 1.0, again["3 PM"])
}

// TestReadRecords verifies header-driven CSV parsing, including extra
// columns and a missing required column.
func TestReadRecords(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		csv := strings.Join([]string{
			"Name,Day of Delivery Attempt,Time,Package Size,Delivery Status",
			"Aditya,Monday,11 AM,Small,Success",
			"Meera,Friday,2 PM,Large,Failed",
		}, "\n")

		records, err := ReadRecords(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Aditya", records[0].CustomerName)
		assert.Equal(t, "11 AM", records[0].TimeSlot)
		assert.True(t, records[0].Succeeded())
		assert.False(t, records[1].Succeeded())
	})

	t.Run("ReorderedColumns", func(t *testing.T) {
		csv := strings.Join([]string{
			"Delivery Status,Name,Time,Day of Delivery Attempt",
			"Success,Kabir,9 AM,Tuesday",
		}, "\n")

		records, err := ReadRecords(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Kabir", records[0].CustomerName)
		assert.Equal(t, "Tuesday", records[0].DayOfWeek)
		assert.Empty(t, records[0].PackageSize)
	})

	t.Run("MissingColumn", func(t *testing.T) {
		_, err := ReadRecords(strings.NewReader("Name,Time\nAditya,11 AM"))
		assert.Error(t, err)
	})
}
