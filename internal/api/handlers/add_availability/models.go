package add_availability

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/availability/models"
)

// AddAvailabilityRequest HTTP request model
type AddAvailabilityRequest struct {
	BarberID  string `json:"barberId"`
	DayAt     string `json:"dayAt"`     // "2025-10-15"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "12:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddAvailabilityRequest) ToServiceRequest() (*models.CreateWindowRequest, error) {
	dayAt, err := time.Parse(domain.DateFormat, r.DayAt)
	if err != nil {
		return nil, err
	}

	return &models.CreateWindowRequest{
		BarberID:  r.BarberID,
		DayAt:     dayAt,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}, nil
}
