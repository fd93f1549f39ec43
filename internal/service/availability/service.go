package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/availability"
	authClient "github.com/m04kA/SMC-BarberService/internal/integrations/authservice"
	"github.com/m04kA/SMC-BarberService/internal/service/availability/models"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Service сервис для управления окнами доступности барберов
type Service struct {
	availabilityRepo AvailabilityRepository
	authClient       AuthServiceClient
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса окон доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	authClient AuthServiceClient,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		authClient:       authClient,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Create создает окно доступности барбера
// Окно валидируется только по формату и порядку времени,
// а не по фиксированному списку слотов
func (s *Service) Create(ctx context.Context, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("Create: window for barber=%s, day=%s, %s-%s",
		req.BarberID, req.DayAt.Format(domain.DateFormat), req.StartTime, req.EndTime)

	start, end, err := validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	now := s.timeProvider.Now()
	day := domain.NormalizeDay(req.DayAt)

	if domain.IsDayInPast(day, now) {
		s.logger.Warn("Create: past day rejected: barber=%s, day=%s", req.BarberID, day.Format(domain.DateFormat))
		return nil, ErrPastDate
	}

	if _, err := s.authClient.GetBarber(ctx, req.BarberID); err != nil {
		if errors.Is(err, authClient.ErrBarberNotFound) {
			s.logger.Warn("Create: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("Create: auth service unavailable: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	window := &domain.AvailabilityWindow{
		BarberID:  req.BarberID,
		DayAt:     day,
		StartTime: start,
		EndTime:   end,
	}

	created, err := s.availabilityRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("Create: failed to create window for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created window id=%s", created.ID)
	return models.FromDomainWindow(created), nil
}

// GetByID получает окно доступности по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.WindowResponse, error) {
	s.logger.Info("GetByID: fetching window id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: window id is required", ErrInvalidInput)
	}

	window, err := s.availabilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("GetByID: window id=%s not found", id)
			return nil, ErrWindowNotFound
		}
		s.logger.Error("GetByID: repository error for window id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindow(window), nil
}

// ListByBarber получает окна доступности барбера, опционально на конкретный день
func (s *Service) ListByBarber(ctx context.Context, req *models.ListWindowsRequest) (*models.WindowListResponse, error) {
	s.logger.Info("ListByBarber: fetching windows for barber=%s", req.BarberID)

	if req.BarberID == "" {
		return nil, fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	var day *time.Time
	if req.Date != nil {
		normalized := domain.NormalizeDay(*req.Date)
		day = &normalized
	}

	windows, err := s.availabilityRepo.ListByBarber(ctx, req.BarberID, day)
	if err != nil {
		s.logger.Error("ListByBarber: repository error for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: ListByBarber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByBarber: fetched %d windows for barber=%s", len(windows), req.BarberID)
	return models.FromDomainWindowList(windows), nil
}

// Delete удаляет окно доступности
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: removing window id=%s", id)

	if id == "" {
		return fmt.Errorf("%w: window id is required", ErrInvalidInput)
	}

	if err := s.availabilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("Delete: window id=%s not found", id)
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error for window id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully removed window id=%s", id)
	return nil
}

// validateCreateRequest валидирует запрос на создание окна
func validateCreateRequest(req *models.CreateWindowRequest) (types.TimeString, types.TimeString, error) {
	if req.BarberID == "" {
		return "", "", fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	if req.DayAt.IsZero() {
		return "", "", fmt.Errorf("%w: dayAt is required", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return "", "", fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	return start, end, nil
}
