package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.BarberID == "" {
		return fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.DayAt.IsZero() {
		return fmt.Errorf("%w: dayAt is required", ErrInvalidInput)
	}

	// Проверяем, что время слота указано и корректно по формату
	if req.HourAt.IsZero() {
		return fmt.Errorf("%w: hourAt is required", ErrInvalidInput)
	}
	if err := req.HourAt.Validate(); err != nil {
		return fmt.Errorf("%w: invalid hourAt format: %v", ErrInvalidInput, err)
	}

	if len(req.ServiceType) < domain.MinServiceTypeLength {
		return fmt.Errorf("%w: serviceType must be at least %d characters", ErrInvalidInput, domain.MinServiceTypeLength)
	}

	return nil
}

// validateDay проверяет, что день бронирования не в прошлом
// Сегодняшний день - допустимая нижняя граница
func validateDay(dayAt time.Time, now time.Time) error {
	if domain.IsDayInPast(dayAt, now) {
		return ErrPastDate
	}
	return nil
}

// validateBookableHour проверяет, что час входит в фиксированный список слотов
func validateBookableHour(hour types.TimeString) error {
	if !domain.IsBookableHour(hour) {
		return fmt.Errorf("%w: %s", ErrHourNotBookable, hour)
	}
	return nil
}

// validateWorkingHours проверяет слот против объявленных барбером рабочих окон.
// Если окон на этот день нет, проверка пропускается: барберы без расписания
// бронируются по общему списку слотов
func validateWorkingHours(windows []*domain.AvailabilityWindow, day time.Time, hour types.TimeString) error {
	dayWindows := domain.WindowsForDay(windows, day)
	if len(dayWindows) == 0 {
		return nil
	}

	if !domain.AnyWindowCovers(dayWindows, hour) {
		return fmt.Errorf("%w: %s", ErrOutsideWorkingHours, hour)
	}

	return nil
}

// hasSlotConflict проверяет, занимает ли какое-либо из бронирований слот
// (тот же календарный день, тот же час, активный статус)
func hasSlotConflict(bookings []*domain.Booking, day time.Time, hour types.TimeString) bool {
	for _, b := range bookings {
		if b.OccupiesSlot(day, hour) {
			return true
		}
	}
	return false
}
