package delete_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/availability"
)

const (
	msgMissingWindowID = "не указан ID окна доступности"
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

// Handle DELETE /api/v1/barber-availability/{availabilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	windowID := vars["availabilityId"]
	if windowID == "" {
		h.logger.Warn("DELETE /barber-availability/{id} - Missing window ID")
		handlers.RespondBadRequest(w, msgMissingWindowID)
		return
	}

	if err := h.service.Delete(r.Context(), windowID); err != nil {
		switch {
		case errors.Is(err, availability.ErrWindowNotFound):
			h.logger.Warn("DELETE /barber-availability/{id} - Window not found: window_id=%s", windowID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("DELETE /barber-availability/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingWindowID)

		default:
			h.logger.Error("DELETE /barber-availability/{id} - Failed: window_id=%s, error=%v", windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /barber-availability/{id} - Window removed: window_id=%s", windowID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
