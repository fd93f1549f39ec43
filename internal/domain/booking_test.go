package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_IsActive(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCancelled, false},
		{StatusFinished, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.IsActive())
		})
	}
}

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to finished", StatusPending, StatusFinished, false},
		{"pending to pending", StatusPending, StatusPending, false},
		{"confirmed to finished", StatusConfirmed, StatusFinished, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, false},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"finished is terminal", StatusFinished, StatusPending, false},
		{"finished to confirmed", StatusFinished, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_OccupiesSlot(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	b := &Booking{
		DayAt:  time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC), // время внутри дня игнорируется
		HourAt: "10:00",
		Status: StatusPending,
	}

	assert.True(t, b.OccupiesSlot(day, "10:00"))
	assert.False(t, b.OccupiesSlot(day, "11:00"))
	assert.False(t, b.OccupiesSlot(day.AddDate(0, 0, 1), "10:00"))

	b.Status = StatusCancelled
	assert.False(t, b.OccupiesSlot(day, "10:00"))
}

func TestIsSameDay_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 6, 10, 0, 1, 0, 0, time.UTC)

	assert.True(t, IsSameDay(a, b))
	assert.False(t, IsSameDay(a, b.AddDate(0, 0, 1)))
}

func TestIsDayInPast(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)

	// Сегодня (даже раннее утро) - не в прошлом
	assert.False(t, IsDayInPast(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDayInPast(time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC), now))

	// Вчера - в прошлом, даже поздним вечером
	assert.True(t, IsDayInPast(time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC), now))
}

func TestIsDayInPast_DifferentLocations(t *testing.T) {
	// Дата из запроса парсится в UTC, а now может быть в локальной зоне
	// сервера. Сравниваем календарные дни, а не моменты времени.
	western := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, western)

	assert.False(t, IsDayInPast(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, IsDayInPast(time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), now))

	eastern := time.FixedZone("UTC+9", 9*60*60)
	assert.False(t, IsDayInPast(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 10, 2, 0, 0, 0, eastern)))
}

func TestNormalizeDay(t *testing.T) {
	got := NormalizeDay(time.Date(2024, 6, 10, 18, 45, 12, 999, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)
}
