package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID == "" {
		return fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что день не в прошлом (сегодняшний день допустим)
func validateDate(day time.Time, now time.Time) error {
	if domain.IsDayInPast(day, now) {
		return ErrPastDate
	}
	return nil
}
