package authservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда клиент не найден
	ErrUserNotFound = errors.New("authservice client: user not found")

	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("authservice client: barber not found")

	// ErrUnavailable возвращается при недоступности сервиса (сеть, таймаут, 5xx)
	// Вызывающая сторона должна трактовать её как временную и retryable
	ErrUnavailable = errors.New("authservice client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
