package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-BarberService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные данные бронирования"
	msgPastDate            = "дата бронирования в прошлом"
	msgHourNotBookable     = "время вне сетки доступных слотов"
	msgOutsideWorkingHours = "время вне рабочих часов барбера"
	msgSlotUnavailable     = "выбранный временной слот уже занят"
	msgClientDoubleBooking = "у клиента уже есть бронирование на это время"
	msgBarberNotFound      = "барбер не найден"
	msgUserNotFound        = "пользователь не найден"
	msgUpstreamUnavailable = "сервис временно недоступен, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// userId из заголовка шлюза имеет приоритет над телом запроса
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		req.UserID = userID
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: barber_id=%s, day=%s, hour=%s",
				req.BarberID, req.DayAt, req.HourAt)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrClientDoubleBooking):
			h.logger.Warn("POST /bookings - Client double booking: user_id=%s, day=%s, hour=%s",
				req.UserID, req.DayAt, req.HourAt)
			handlers.RespondConflict(w, msgClientDoubleBooking)

		case errors.Is(err, createBooking.ErrBarberNotFound):
			h.logger.Warn("POST /bookings - Barber not found: barber_id=%s", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%s", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Past date: user_id=%s, day=%s", req.UserID, req.DayAt)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrHourNotBookable):
			h.logger.Warn("POST /bookings - Hour not bookable: hour=%s", req.HourAt)
			handlers.RespondBadRequest(w, msgHourNotBookable)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: barber_id=%s, hour=%s",
				req.BarberID, req.HourAt)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrUpstreamUnavailable):
			h.logger.Error("POST /bookings - Upstream unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUpstreamUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, barber_id=%s, error=%v",
				req.UserID, req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, barber_id=%s",
		result.ID, req.UserID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
