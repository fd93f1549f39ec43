package create_booking

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrUserNotFound возвращается, когда клиент не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrPastDate возвращается, когда день бронирования раньше сегодняшнего
	// Бронирование на сегодня допустимо
	ErrPastDate = errors.New("create_booking: booking day is in the past")

	// ErrHourNotBookable возвращается, когда hourAt не входит в фиксированный
	// список доступных слотов
	ErrHourNotBookable = errors.New("create_booking: hour is not a bookable slot")

	// ErrOutsideWorkingHours возвращается, когда слот вне объявленных
	// барбером рабочих окон на этот день
	ErrOutsideWorkingHours = errors.New("create_booking: hour is outside barber working hours")

	// ErrSlotUnavailable возвращается, когда слот барбера уже занят активным
	// бронированием на тот же день и час
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrClientDoubleBooking возвращается, когда у клиента уже есть активное
	// бронирование на тот же день и час (даже у другого барбера)
	ErrClientDoubleBooking = errors.New("create_booking: client already has a booking at this slot")

	// ErrUpstreamUnavailable возвращается при недоступности сервиса
	// аутентификации; операция может быть повторена
	ErrUpstreamUnavailable = errors.New("create_booking: upstream service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
