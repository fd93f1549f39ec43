package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// AvailabilityWindow represents a barber-declared working-hours record for a
// given day. It is a separate entity from bookings: StartTime/EndTime are
// free-form HH:MM values and are not constrained to the slot enumeration.
type AvailabilityWindow struct {
	ID        string
	BarberID  string
	DayAt     time.Time // calendar date, day granularity
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers returns true if the hour falls inside the window.
// The start bound is inclusive, the end bound exclusive: a window
// 09:00-12:00 covers 09:00..11:59 but not 12:00.
func (w *AvailabilityWindow) Covers(hour types.TimeString) bool {
	return !hour.IsBefore(w.StartTime) && hour.IsBefore(w.EndTime)
}

// AnyWindowCovers returns true if at least one window covers the hour
func AnyWindowCovers(windows []*AvailabilityWindow, hour types.TimeString) bool {
	for _, w := range windows {
		if w.Covers(hour) {
			return true
		}
	}
	return false
}

// WindowsForDay filters windows down to the given calendar day
func WindowsForDay(windows []*AvailabilityWindow, day time.Time) []*AvailabilityWindow {
	result := make([]*AvailabilityWindow, 0)
	for _, w := range windows {
		if IsSameDay(w.DayAt, day) {
			result = append(result, w)
		}
	}
	return result
}
