package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// buildOccupiedSet строит множество занятых часов барбера на указанный день.
// Неактивные бронирования (cancelado, finalizado) слот не занимают
func buildOccupiedSet(bookings []*domain.Booking, day time.Time) map[types.TimeString]struct{} {
	occupied := make(map[types.TimeString]struct{}, len(bookings))

	for _, booking := range bookings {
		if booking.IsActive() && domain.IsSameDay(booking.DayAt, day) {
			occupied[booking.HourAt] = struct{}{}
		}
	}

	return occupied
}

// availableHours вычитает занятые часы из фиксированного списка слотов.
// Если у барбера объявлены рабочие окна на этот день, слоты дополнительно
// пересекаются с окнами; без окон действует весь список
func availableHours(occupied map[types.TimeString]struct{}, windows []*domain.AvailabilityWindow, day time.Time) []types.TimeString {
	dayWindows := domain.WindowsForDay(windows, day)

	result := make([]types.TimeString, 0, len(domain.BookableHours()))
	for _, hour := range domain.BookableHours() {
		if _, taken := occupied[hour]; taken {
			continue
		}
		if len(dayWindows) > 0 && !domain.AnyWindowCovers(dayWindows, hour) {
			continue
		}
		result = append(result, hour)
	}

	return result
}

// groupByBand группирует свободные часы по периодам дня.
// Периоды всегда присутствуют в ответе в фиксированном порядке,
// даже если свободных часов в периоде нет
func groupByBand(hours []types.TimeString) []BandSlots {
	bands := []BandSlots{
		{Band: domain.BandMorning, Hours: []types.TimeString{}},
		{Band: domain.BandAfternoon, Hours: []types.TimeString{}},
		{Band: domain.BandEvening, Hours: []types.TimeString{}},
	}

	for _, hour := range hours {
		band, ok := domain.BandOf(hour)
		if !ok {
			continue
		}
		for i := range bands {
			if bands[i].Band == band {
				bands[i].Hours = append(bands[i].Hours, hour)
				break
			}
		}
	}

	return bands
}
