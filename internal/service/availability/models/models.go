package models

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модели

// CreateWindowRequest запрос на создание окна доступности
type CreateWindowRequest struct {
	BarberID  string    `json:"barberId"`
	DayAt     time.Time `json:"dayAt"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

// ListWindowsRequest запрос на получение окон барбера
type ListWindowsRequest struct {
	BarberID string
	Date     *time.Time
}

// Response модели

// WindowResponse окно доступности в ответе API
type WindowResponse struct {
	ID        string           `json:"id"`
	BarberID  string           `json:"barberId"`
	DayAt     string           `json:"dayAt"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// WindowListResponse список окон доступности
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
	Total   int              `json:"total"`
}

// Конвертация

// FromDomainWindow конвертирует domain.AvailabilityWindow в WindowResponse
func FromDomainWindow(window *domain.AvailabilityWindow) *WindowResponse {
	return &WindowResponse{
		ID:        window.ID,
		BarberID:  window.BarberID,
		DayAt:     window.DayAt.Format(domain.DateFormat),
		StartTime: window.StartTime,
		EndTime:   window.EndTime,
		CreatedAt: window.CreatedAt,
		UpdatedAt: window.UpdatedAt,
	}
}

// FromDomainWindowList конвертирует список domain.AvailabilityWindow в WindowListResponse
func FromDomainWindowList(windows []*domain.AvailabilityWindow) *WindowListResponse {
	result := make([]WindowResponse, 0, len(windows))
	for _, window := range windows {
		result = append(result, *FromDomainWindow(window))
	}
	return &WindowListResponse{
		Windows: result,
		Total:   len(result),
	}
}
