package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBarberSlotTaken возвращается при нарушении уникального индекса
	// по (barber_id, day_at, hour_at) среди активных бронирований
	ErrBarberSlotTaken = errors.New("booking.repository: barber slot already taken")

	// ErrUserSlotTaken возвращается при нарушении уникального индекса
	// по (user_id, day_at, hour_at) среди активных бронирований
	ErrUserSlotTaken = errors.New("booking.repository: user already has a booking at this slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
