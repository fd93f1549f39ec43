package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

func TestBookableHours(t *testing.T) {
	hours := BookableHours()

	assert.Len(t, hours, 12)
	assert.Equal(t, types.TimeString("09:00"), hours[0])
	assert.Equal(t, types.TimeString("20:00"), hours[len(hours)-1])

	// Хронологический порядок
	for i := 1; i < len(hours); i++ {
		assert.True(t, hours[i-1].IsBefore(hours[i]))
	}
}

func TestIsBookableHour(t *testing.T) {
	assert.True(t, IsBookableHour("09:00"))
	assert.True(t, IsBookableHour("17:00"))
	assert.True(t, IsBookableHour("20:00"))

	assert.False(t, IsBookableHour("08:00"))
	assert.False(t, IsBookableHour("12:30"))
	assert.False(t, IsBookableHour("21:00"))
}

func TestBandOf(t *testing.T) {
	tests := []struct {
		hour types.TimeString
		band SlotBand
		ok   bool
	}{
		{"09:00", BandMorning, true},
		{"12:00", BandMorning, true},
		{"13:00", BandAfternoon, true},
		{"17:00", BandAfternoon, true},
		{"18:00", BandEvening, true},
		{"20:00", BandEvening, true},
		{"08:00", "", false},
		{"12:30", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.hour), func(t *testing.T) {
			band, ok := BandOf(tt.hour)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.band, band)
		})
	}
}

func TestAvailabilityWindow_Covers(t *testing.T) {
	w := &AvailabilityWindow{StartTime: "09:00", EndTime: "12:00"}

	assert.True(t, w.Covers("09:00")) // начало включительно
	assert.True(t, w.Covers("11:00"))
	assert.False(t, w.Covers("12:00")) // конец исключительно
	assert.False(t, w.Covers("08:00"))
}

func TestWindowsForDay(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	windows := []*AvailabilityWindow{
		{ID: "a", DayAt: time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)},
		{ID: "b", DayAt: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)},
		{ID: "c", DayAt: day},
	}

	got := WindowsForDay(windows, day)
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestAnyWindowCovers(t *testing.T) {
	windows := []*AvailabilityWindow{
		{StartTime: "09:00", EndTime: "12:00"},
		{StartTime: "14:00", EndTime: "18:00"},
	}

	assert.True(t, AnyWindowCovers(windows, "10:00"))
	assert.True(t, AnyWindowCovers(windows, "14:00"))
	assert.False(t, AnyWindowCovers(windows, "13:00"))
	assert.False(t, AnyWindowCovers(nil, "10:00"))
}
