package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotEnd(t *testing.T) {
	t.Run("Valid Slot", func(t *testing.T) {
		end, err := SlotEnd("2026-03-10", "14:30")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local), end)
	})

	t.Run("Invalid Time", func(t *testing.T) {
		_, err := SlotEnd("2026-03-10", "25:00")
		assert.Error(t, err)
	})

	t.Run("Invalid Date", func(t *testing.T) {
		_, err := SlotEnd("10-03-2026", "14:30")
		assert.Error(t, err)
	})
}

func TestIsSlotInFuture(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	t.Run("Future Slot", func(t *testing.T) {
		assert.True(t, IsSlotInFuture("2026-03-10", "12:01", now))
		assert.True(t, IsSlotInFuture("2026-03-11", "08:00", now))
	})

	t.Run("Past Slot", func(t *testing.T) {
		assert.False(t, IsSlotInFuture("2026-03-10", "11:59", now))
		assert.False(t, IsSlotInFuture("2026-03-09", "18:00", now))
	})

	t.Run("Exactly Now", func(t *testing.T) {
		assert.False(t, IsSlotInFuture("2026-03-10", "12:00", now))
	})

	t.Run("Unparseable Slot", func(t *testing.T) {
		assert.False(t, IsSlotInFuture("bad-date", "12:00", now))
	})
}
