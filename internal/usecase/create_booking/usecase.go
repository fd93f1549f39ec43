package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/booking"
	authClient "github.com/m04kA/SMC-BarberService/internal/integrations/authservice"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

// UseCase use case создания бронирования: проверка конфликтов и запись
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	authClient       AuthServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	authClient AuthServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		authClient:       authClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Порядок проверок фиксирован: сначала слот барбера (основной ресурс),
// затем собственные бронирования клиента. Обе проверки выполняются до
// единственной записи; на любом отказе записи не происходит.
//
// Проверки и запись выполняются в сериализуемой транзакции, а уникальность
// активного слота дополнительно закрыта partial unique индексами в БД -
// сами по себе проверки read-then-write гонку не исключают
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, barber=%s, day=%s, hour=%s",
		req.UserID, req.BarberID, req.DayAt.Format(domain.DateFormat), req.HourAt)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время и нормализация дня
	now := uc.timeProvider.Now()
	day := domain.NormalizeDay(req.DayAt)

	// 3. День не в прошлом (сегодня - допустимо)
	if err := validateDay(day, now); err != nil {
		uc.logger.Warn("CreateBooking: day validation failed: user=%s, day=%s", req.UserID, day.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Час входит в фиксированный список слотов
	if err := validateBookableHour(req.HourAt); err != nil {
		uc.logger.Warn("CreateBooking: hour validation failed: %v", err)
		return nil, err
	}

	// 5. Проверяем существование барбера
	if _, err := uc.authClient.GetBarber(ctx, req.BarberID); err != nil {
		if errors.Is(err, authClient.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: auth service unavailable: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	// 6. Проверяем существование клиента
	if _, err := uc.authClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, authClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: auth service unavailable: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	var result *domain.Booking

	// 7. Проверки конфликтов и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Слот внутри рабочих окон барбера (если окна объявлены)
		windows, err := uc.availabilityRepo.ListByBarber(txCtx, req.BarberID, &day)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability windows: %v", err)
			return fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
		}
		if err := validateWorkingHours(windows, day, req.HourAt); err != nil {
			uc.logger.Warn("CreateBooking: working hours validation failed: barber=%s, hour=%s", req.BarberID, req.HourAt)
			return err
		}

		// 7.2. Проверка слота барбера: активные бронирования на этот день
		barberBookings, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			BarberID:   ptr.Ptr(req.BarberID),
			Day:        &day,
			OnlyActive: true,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get barber bookings: %v", err)
			return fmt.Errorf("%w: failed to get barber bookings: %v", ErrInternal, err)
		}

		if hasSlotConflict(barberBookings, day, req.HourAt) {
			uc.logger.Warn("CreateBooking: slot taken: barber=%s, day=%s, hour=%s",
				req.BarberID, day.Format(domain.DateFormat), req.HourAt)
			return ErrSlotUnavailable
		}

		// 7.3. Проверка собственных бронирований клиента на тот же слот
		// (конфликт считается и при другом барбере)
		userBookings, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			UserID:     ptr.Ptr(req.UserID),
			Day:        &day,
			OnlyActive: true,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get user bookings: %v", err)
			return fmt.Errorf("%w: failed to get user bookings: %v", ErrInternal, err)
		}

		if hasSlotConflict(userBookings, day, req.HourAt) {
			uc.logger.Warn("CreateBooking: client double booking: user=%s, day=%s, hour=%s",
				req.UserID, day.Format(domain.DateFormat), req.HourAt)
			return ErrClientDoubleBooking
		}

		// 7.4. Создаем бронирование в статусе pendente
		booking := &domain.Booking{
			UserID:      req.UserID,
			BarberID:    req.BarberID,
			DayAt:       day,
			HourAt:      req.HourAt,
			ServiceType: req.ServiceType,
			Status:      domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс закрыл гонку, которую не поймали проверки выше
			switch {
			case errors.Is(err, bookingRepo.ErrBarberSlotTaken):
				uc.logger.Warn("CreateBooking: slot taken at insert: barber=%s, day=%s, hour=%s",
					req.BarberID, day.Format(domain.DateFormat), req.HourAt)
				return ErrSlotUnavailable
			case errors.Is(err, bookingRepo.ErrUserSlotTaken):
				uc.logger.Warn("CreateBooking: client double booking at insert: user=%s, day=%s, hour=%s",
					req.UserID, day.Format(domain.DateFormat), req.HourAt)
				return ErrClientDoubleBooking
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		BarberID:    result.BarberID,
		DayAt:       result.DayAt,
		HourAt:      result.HourAt,
		ServiceType: result.ServiceType,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
