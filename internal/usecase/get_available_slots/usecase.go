package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	authClient "github.com/m04kA/SMC-BarberService/internal/integrations/authservice"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// UseCase use case для получения доступных слотов барбера на день
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	authClient       AuthServiceClient
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	authClient AuthServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		authClient:       authClient,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Путь только на чтение: при сбое получения бронирований или окон
// результат деградирует (занятых часов нет, окна не учитываются)
// вместо отказа - итог здесь ни на какие записи не влияет,
// авторитетная проверка конфликтов выполняется при создании бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%s, date=%s",
		req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время и нормализация дня
	now := uc.timeProvider.Now()
	day := domain.NormalizeDay(req.Date)

	// 3. День не в прошлом
	if err := validateDate(day, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date in the past: barber=%s, date=%s",
			req.BarberID, day.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Проверяем существование барбера
	if _, err := uc.authClient.GetBarber(ctx, req.BarberID); err != nil {
		if errors.Is(err, authClient.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: auth service unavailable: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	// 5. Окна доступности барбера на день (при сбое - без пересечения с окнами)
	windows, err := uc.availabilityRepo.ListByBarber(ctx, req.BarberID, &day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability windows, proceeding without them: barber=%s: %v",
			req.BarberID, err)
		windows = nil
	}

	// 6. Активные бронирования барбера на день (при сбое - пустое множество занятых)
	occupied := make(map[types.TimeString]struct{})

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		BarberID:   ptr.Ptr(req.BarberID),
		Day:        &day,
		OnlyActive: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings, degrading to empty occupied set: barber=%s: %v",
			req.BarberID, err)
	} else {
		occupied = buildOccupiedSet(bookings, day)
	}

	// 7. Свободные часы и группировка по периодам дня
	hours := availableHours(occupied, windows, day)
	bands := groupByBand(hours)

	uc.logger.Info("GetAvailableSlots: barber=%s, date=%s, available=%d",
		req.BarberID, day.Format(domain.DateFormat), len(hours))

	return &Response{
		BarberID: req.BarberID,
		Date:     day,
		Bands:    bands,
	}, nil
}
