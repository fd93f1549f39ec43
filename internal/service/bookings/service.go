package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberService/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

// Service сервис для работы с бронированиями: выборки и переходы статусов
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", req.UserID)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	status, err := s.parseStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		UserID: ptr.Ptr(req.UserID),
		Status: status,
	})
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBarberBookings получает бронирования барбера с фильтрацией
// по статусу и дню. Фильтр status=pendente дает входящую очередь
// заявок, ожидающих подтверждения
func (s *Service) GetBarberBookings(ctx context.Context, req *models.GetBarberBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetBarberBookings: fetching bookings for barber=%s", req.BarberID)

	if req.BarberID == "" {
		return nil, fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	status, err := s.parseStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("GetBarberBookings: invalid status=%s for barber=%s", *req.Status, req.BarberID)
		return nil, err
	}

	filter := domain.BookingsFilter{
		BarberID: ptr.Ptr(req.BarberID),
		Status:   status,
	}
	if req.Date != nil {
		day := domain.NormalizeDay(*req.Date)
		filter.Day = &day
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetBarberBookings: repository error for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberBookings: fetched %d bookings for barber=%s", len(bookings), req.BarberID)
	return models.FromDomainBookingList(bookings), nil
}

// TransitionStatus переводит бронирование в новый статус
//
// Допустимые переходы: pendente -> confirmado | cancelado,
// confirmado -> finalizado. Терминальные статусы (cancelado, finalizado)
// переходов не имеют. Проверка и запись выполняются в сериализуемой
// транзакции, чтобы конкурирующие переходы не обошли машину состояний.
// Отмена каскадов не порождает: освобожденный слот просто перестает
// попадать в множество занятых
func (s *Service) TransitionStatus(ctx context.Context, bookingID string, newStatus string) (*models.BookingResponse, error) {
	s.logger.Info("TransitionStatus: booking id=%s to status=%s", bookingID, newStatus)

	if bookingID == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	target, err := models.ToDomainBookingStatus(newStatus)
	if err != nil {
		s.logger.Warn("TransitionStatus: invalid status=%s for booking id=%s", newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}

	// pendente не бывает целевым статусом
	if target == domain.StatusPending {
		s.logger.Warn("TransitionStatus: target status pendente rejected for booking id=%s", bookingID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}

	var result *domain.Booking

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("TransitionStatus: booking id=%s not found", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("TransitionStatus: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: TransitionStatus - repository error: %v", ErrInternal, err)
		}

		if !booking.CanTransitionTo(target) {
			s.logger.Warn("TransitionStatus: transition %s -> %s rejected for booking id=%s",
				booking.Status, target, bookingID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
		}

		updated, err := s.bookingRepo.UpdateStatus(txCtx, bookingID, target)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("TransitionStatus: failed to update booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: TransitionStatus - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("TransitionStatus: booking id=%s moved to status=%s", bookingID, result.Status)
	return models.FromDomainBooking(result), nil
}

// parseStatusFilter конвертирует опциональный строковый фильтр статуса
func (s *Service) parseStatusFilter(status *string) (*domain.BookingStatus, error) {
	if status == nil {
		return nil, nil
	}
	parsed, err := models.ToDomainBookingStatus(*status)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *status)
	}
	return &parsed, nil
}
