package get_available_slots

import (
	"github.com/m04kA/SMC-BarberService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BarberID string      `json:"barberId"`
	Date     string      `json:"date"`
	Bands    []BandSlots `json:"bands"`
}

// BandSlots свободные часы одного периода дня
type BandSlots struct {
	Band  string   `json:"band"`
	Hours []string `json:"hours"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	bands := make([]BandSlots, 0, len(resp.Bands))
	for _, band := range resp.Bands {
		hours := make([]string, 0, len(band.Hours))
		for _, hour := range band.Hours {
			hours = append(hours, hour.String())
		}
		bands = append(bands, BandSlots{
			Band:  string(band.Band),
			Hours: hours,
		})
	}

	return &AvailableSlotsResponse{
		BarberID: resp.BarberID,
		Date:     resp.Date.Format(domain.DateFormat),
		Bands:    bands,
	}
}
