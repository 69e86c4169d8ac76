package bookings

import (
	"medxbay-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTransition(t *testing.T) {
	t.Run("Waiting Transitions", func(t *testing.T) {
		assert.True(t, IsValidTransition(constvars.BookingStatusWaiting, constvars.BookingStatusAccepted))
		assert.True(t, IsValidTransition(constvars.BookingStatusWaiting, constvars.BookingStatusRejected))
		assert.False(t, IsValidTransition(constvars.BookingStatusWaiting, constvars.BookingStatusCompleted))
	})

	t.Run("Accepted Transitions", func(t *testing.T) {
		assert.True(t, IsValidTransition(constvars.BookingStatusAccepted, constvars.BookingStatusCompleted))
		assert.False(t, IsValidTransition(constvars.BookingStatusAccepted, constvars.BookingStatusRejected))
		assert.False(t, IsValidTransition(constvars.BookingStatusAccepted, constvars.BookingStatusWaiting))
	})

	t.Run("Terminal States", func(t *testing.T) {
		assert.False(t, IsValidTransition(constvars.BookingStatusRejected, constvars.BookingStatusAccepted))
		assert.False(t, IsValidTransition(constvars.BookingStatusCompleted, constvars.BookingStatusWaiting))
	})

	t.Run("Unknown Status", func(t *testing.T) {
		assert.False(t, IsValidTransition("cancelled", constvars.BookingStatusAccepted))
		assert.False(t, IsValidTransition("", constvars.BookingStatusAccepted))
	})

	t.Run("Same Status", func(t *testing.T) {
		assert.False(t, IsValidTransition(constvars.BookingStatusWaiting, constvars.BookingStatusWaiting))
		assert.False(t, IsValidTransition(constvars.BookingStatusAccepted, constvars.BookingStatusAccepted))
	})
}
