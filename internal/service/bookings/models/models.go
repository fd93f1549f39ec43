package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// TransitionStatusRequest запрос на перевод бронирования в новый статус
type TransitionStatusRequest struct {
	Status string `json:"status"`
}

// GetUserBookingsRequest запрос на получение бронирований клиента
type GetUserBookingsRequest struct {
	UserID string
	Status *string
}

// GetBarberBookingsRequest запрос на получение бронирований барбера
type GetBarberBookingsRequest struct {
	BarberID string
	Status   *string
	Date     *time.Time
}

// Response модели

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	BarberID    string           `json:"barberId"`
	DayAt       string           `json:"dayAt"`
	HourAt      types.TimeString `json:"hourAt"`
	ServiceType string           `json:"serviceType"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// Конвертация

// ToDomainBookingStatus конвертирует строку статуса в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          booking.ID,
		UserID:      booking.UserID,
		BarberID:    booking.BarberID,
		DayAt:       booking.DayAt.Format(domain.DateFormat),
		HourAt:      booking.HourAt,
		ServiceType: booking.ServiceType,
		Status:      string(booking.Status),
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в BookingListResponse
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, *FromDomainBooking(booking))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
