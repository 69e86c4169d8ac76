package contracts

import (
	"context"
	"time"
)

type CalendarEvent struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Attendees   []string
}

type CalendarService interface {
	// CreateEvent returns the meeting link of the created event.
	CreateEvent(ctx context.Context, event *CalendarEvent) (string, error)
}
