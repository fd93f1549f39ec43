package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// BookingStatus represents the status of a booking.
// The literal values are the wire strings the mobile clients already speak.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pendente"
	StatusConfirmed BookingStatus = "confirmado"
	StatusCancelled BookingStatus = "cancelado"
	StatusFinished  BookingStatus = "finalizado"
)

// Booking represents a client's appointment with a barber
type Booking struct {
	ID          string
	UserID      string
	BarberID    string
	DayAt       time.Time // calendar date, day granularity
	HourAt      types.TimeString
	ServiceType string
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot.
// Cancelled and finished bookings are inert and never block a slot.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// OccupiesSlot returns true if the booking holds the given slot
func (b *Booking) OccupiesSlot(day time.Time, hour types.TimeString) bool {
	return b.IsActive() && IsSameDay(b.DayAt, day) && b.HourAt == hour
}

// CanTransitionTo reports whether the status change is allowed by the
// booking lifecycle:
//
//	pendente   -> confirmado | cancelado
//	confirmado -> finalizado
//
// Terminal states (cancelado, finalizado) never transition.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusFinished
	default:
		return false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	BarberID   *string        // Фильтр по барберу (опционально)
	UserID     *string        // Фильтр по клиенту (опционально)
	Status     *BookingStatus // Фильтр по статусу (опционально)
	Day        *time.Time     // Фильтр по календарному дню (опционально)
	OnlyActive bool           // Только pendente/confirmado
}

// NormalizeDay strips the time-of-day component, keeping year/month/day.
// All day-level comparisons go through this to avoid timezone-offset
// false positives from instant equality.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay returns true if both timestamps fall on the same calendar day
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDayInPast returns true if the date's calendar day is strictly before
// now's calendar day. Same-day is not in the past. The comparison is over
// (year, month, day) tuples, never instants: the two values may carry
// different locations (a parsed UTC date vs. server-local now), and
// normalized midnights of the same calendar day are different instants then.
func IsDayInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
