package utils

import (
	"medxbay-service/internal/pkg/exceptions"
	"time"
)

const (
	SlotDateLayout = "2006-01-02"
	SlotTimeLayout = "15:04"
)

// SlotEnd combines a slot date and end time into a single time.Time in the
// server location. Used for the "appointment has finished" guard.
func SlotEnd(date, endTime string) (time.Time, error) {
	t, err := time.ParseInLocation(SlotDateLayout+" "+SlotTimeLayout, date+" "+endTime, time.Local)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	return t, nil
}

func SlotStart(date, startTime string) (time.Time, error) {
	t, err := time.ParseInLocation(SlotDateLayout+" "+SlotTimeLayout, date+" "+startTime, time.Local)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	return t, nil
}

// IsSlotInFuture reports whether the slot start is after now.
func IsSlotInFuture(date, startTime string, now time.Time) bool {
	start, err := SlotStart(date, startTime)
	if err != nil {
		return false
	}
	return start.After(now)
}
