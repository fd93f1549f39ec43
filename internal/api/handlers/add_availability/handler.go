package add_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/availability"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPastDate            = "дата окна в прошлом"
	msgInvalidTimeRange    = "время начала должно быть раньше времени окончания"
	msgInvalidInput        = "некорректные данные окна доступности"
	msgBarberNotFound      = "барбер не найден"
	msgUpstreamUnavailable = "сервис временно недоступен, повторите запрос"
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

// Handle POST /api/v1/barber-availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barber-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /barber-availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrPastDate):
			h.logger.Warn("POST /barber-availability - Past date: barber_id=%s, day=%s", req.BarberID, req.DayAt)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, availability.ErrInvalidTimeRange):
			h.logger.Warn("POST /barber-availability - Invalid time range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /barber-availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, availability.ErrBarberNotFound):
			h.logger.Warn("POST /barber-availability - Barber not found: barber_id=%s", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, availability.ErrUpstreamUnavailable):
			h.logger.Error("POST /barber-availability - Upstream unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUpstreamUnavailable)

		default:
			h.logger.Error("POST /barber-availability - Failed: barber_id=%s, error=%v", req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barber-availability - Window created: window_id=%s, barber_id=%s", result.ID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
