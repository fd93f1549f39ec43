package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	createBooking "github.com/m04kA/SMC-BarberService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserID      string `json:"userId"`
	BarberID    string `json:"barberId"`
	DayAt       string `json:"dayAt"`   // "2025-10-15"
	HourAt      string `json:"hourAt"`  // "10:00"
	ServiceType string `json:"serviceType"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	BarberID    string `json:"barberId"`
	DayAt       string `json:"dayAt"`
	HourAt      string `json:"hourAt"`
	ServiceType string `json:"serviceType"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	dayAt, err := time.Parse(domain.DateFormat, r.DayAt)
	if err != nil {
		return nil, err
	}

	// Парсим время
	hourAt, err := types.NewTimeStringFromString(r.HourAt)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:      r.UserID,
		BarberID:    r.BarberID,
		DayAt:       dayAt,
		HourAt:      hourAt,
		ServiceType: r.ServiceType,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		BarberID:    resp.BarberID,
		DayAt:       resp.DayAt.Format(domain.DateFormat),
		HourAt:      resp.HourAt.String(),
		ServiceType: resp.ServiceType,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
