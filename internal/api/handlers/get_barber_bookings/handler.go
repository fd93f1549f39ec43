package get_barber_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/bookings"
	"github.com/m04kA/SMC-BarberService/internal/service/bookings/models"
)

const (
	msgMissingBarberID = "не указан ID барбера"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/bookings?status=&date=
// Фильтр status=pendente дает барберу входящую очередь заявок
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barberID := vars["barberId"]
	if barberID == "" {
		h.logger.Warn("GET /barbers/{id}/bookings - Missing barber ID")
		handlers.RespondBadRequest(w, msgMissingBarberID)
		return
	}

	req := &models.GetBarberBookingsRequest{BarberID: barberID}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /barbers/{id}/bookings - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.GetBarberBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /barbers/{id}/bookings - Invalid status filter: barber_id=%s", barberID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingBarberID)

		default:
			h.logger.Error("GET /barbers/{id}/bookings - Failed: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/bookings - Retrieved %d bookings: barber_id=%s", result.Total, barberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
