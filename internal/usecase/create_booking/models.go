package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      string           // ID клиента
	BarberID    string           // ID барбера
	DayAt       time.Time        // Дата бронирования (время внутри дня игнорируется)
	HourAt      types.TimeString // Час слота (например, "10:00")
	ServiceType string           // Описание услуги
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string           // ID созданного бронирования
	UserID      string           // ID клиента
	BarberID    string           // ID барбера
	DayAt       time.Time        // Дата бронирования
	HourAt      types.TimeString // Час слота
	ServiceType string           // Описание услуги
	Status      string           // Статус (всегда pendente при создании)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
