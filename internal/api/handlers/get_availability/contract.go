package get_availability

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetByID(ctx context.Context, id string) (*models.WindowResponse, error)
	ListByBarber(ctx context.Context, req *models.ListWindowsRequest) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
