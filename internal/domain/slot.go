package domain

import "github.com/m04kA/SMC-BarberService/pkg/types"

// SlotBand named group of bookable hours, used purely for presentation.
// Conflict checks never special-case band membership.
type SlotBand string

const (
	BandMorning   SlotBand = "manha"
	BandAfternoon SlotBand = "tarde"
	BandEvening   SlotBand = "noite"
)

// Fixed bookable hours per band. The list is not configurable: the booking
// form offers exactly these values and HourAt must be one of them.
var (
	MorningHours   = []types.TimeString{"09:00", "10:00", "11:00", "12:00"}
	AfternoonHours = []types.TimeString{"13:00", "14:00", "15:00", "16:00", "17:00"}
	EveningHours   = []types.TimeString{"18:00", "19:00", "20:00"}
)

// BookableHours returns all bookable hours in chronological order
func BookableHours() []types.TimeString {
	hours := make([]types.TimeString, 0, len(MorningHours)+len(AfternoonHours)+len(EveningHours))
	hours = append(hours, MorningHours...)
	hours = append(hours, AfternoonHours...)
	hours = append(hours, EveningHours...)
	return hours
}

// IsBookableHour reports whether the hour belongs to the fixed enumeration
func IsBookableHour(hour types.TimeString) bool {
	for _, h := range BookableHours() {
		if h == hour {
			return true
		}
	}
	return false
}

// BandOf returns the band the hour belongs to.
// The second result is false for hours outside the enumeration.
func BandOf(hour types.TimeString) (SlotBand, bool) {
	for _, h := range MorningHours {
		if h == hour {
			return BandMorning, true
		}
	}
	for _, h := range AfternoonHours {
		if h == hour {
			return BandAfternoon, true
		}
	}
	for _, h := range EveningHours {
		if h == hour {
			return BandEvening, true
		}
	}
	return "", false
}
