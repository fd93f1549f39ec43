package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/availability"
	"github.com/m04kA/SMC-BarberService/internal/service/availability/models"
)

const (
	msgMissingBarberID = "не указан ID барбера"
	msgMissingWindowID = "не указан ID окна доступности"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound        = "окно доступности не найдено"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/barber-availability?barberId=&date=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	barberID := r.URL.Query().Get("barberId")
	if barberID == "" {
		h.logger.Warn("GET /barber-availability - Missing barber ID")
		handlers.RespondBadRequest(w, msgMissingBarberID)
		return
	}

	req := &models.ListWindowsRequest{BarberID: barberID}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /barber-availability - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.ListByBarber(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /barber-availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingBarberID)

		default:
			h.logger.Error("GET /barber-availability - Failed: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barber-availability - Retrieved %d windows: barber_id=%s", result.Total, barberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDetails GET /api/v1/barber-availability/{availabilityId}
func (h *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	windowID := vars["availabilityId"]
	if windowID == "" {
		h.logger.Warn("GET /barber-availability/{id} - Missing window ID")
		handlers.RespondBadRequest(w, msgMissingWindowID)
		return
	}

	result, err := h.service.GetByID(r.Context(), windowID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrWindowNotFound):
			h.logger.Warn("GET /barber-availability/{id} - Window not found: window_id=%s", windowID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /barber-availability/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingWindowID)

		default:
			h.logger.Error("GET /barber-availability/{id} - Failed: window_id=%s, error=%v", windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barber-availability/{id} - Window retrieved: window_id=%s", windowID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
