package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BarberID string    // ID барбера
	Date     time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов, сгруппированных по периодам дня
type Response struct {
	BarberID string      // ID барбера
	Date     time.Time   // Дата, на которую запрашивались слоты
	Bands    []BandSlots // Слоты по периодам: manha, tarde, noite
}

// BandSlots свободные часы одного периода дня
type BandSlots struct {
	Band  domain.SlotBand
	Hours []types.TimeString
}
