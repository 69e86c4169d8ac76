package bookings

import "medxbay-service/internal/pkg/constvars"

// allowedTransitions is the whole booking lifecycle: a request waits for the
// doctor, who accepts or rejects it; an accepted booking can only be closed
// out as completed. Rejected and completed are terminal.
var allowedTransitions = map[string][]string{
	constvars.BookingStatusWaiting:  {constvars.BookingStatusAccepted, constvars.BookingStatusRejected},
	constvars.BookingStatusAccepted: {constvars.BookingStatusCompleted},
}

func IsValidTransition(current, next string) bool {
	for _, allowed := range allowedTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}
