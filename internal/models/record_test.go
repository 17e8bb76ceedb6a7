package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSlotHour verifies 12-hour slot labels convert to 24-hour clock hours.
func TestSlotHour(t *testing.T) {
	cases := []struct {
		slot string
		hour int
		ok   bool
	}{
		{"8 AM", 8, true},
		{"11 AM", 11, true},
		{"12 PM", 12, true},
		{"12 AM", 0, true},
		{"2 PM", 14, true},
		{"7 pm", 19, true},
		{"13 PM", 0, false},
		{"noonish", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.slot, func(t *testing.T) {
			hour, ok := SlotHour(tc.slot)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.hour, hour)
			}
		})
	}
}

func TestDeliveryRecordSucceeded(t *testing.T) {
	assert.True(t, DeliveryRecord{Outcome: OutcomeSuccess}.Succeeded())
	assert.False(t, DeliveryRecord{Outcome: OutcomeFailed}.Succeeded())
	assert.False(t, DeliveryRecord{Outcome: "something else"}.Succeeded())
}
