package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberService/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

// Стабы зависимостей

type stubRepo struct {
	byID       map[string]*domain.Booking
	listResult []*domain.Booking
	lastFilter domain.BookingsFilter

	updates []domain.BookingStatus
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	booking, ok := s.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (s *stubRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.lastFilter = filter
	return s.listResult, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	booking, ok := s.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	s.updates = append(s.updates, status)
	updated := *booking
	updated.Status = status
	updated.UpdatedAt = updated.UpdatedAt.Add(time.Minute)
	return &updated, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *stubRepo) *Service {
	return NewService(repo, stubTxManager{}, nopLogger{})
}

func storedBooking(id string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		UserID:      "user-1",
		BarberID:    "barber-1",
		DayAt:       time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		HourAt:      "10:00",
		ServiceType: "corte de cabelo",
		Status:      status,
	}
}

// Тесты

func TestGetByID(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.Booking{
		"booking-1": storedBooking("booking-1", domain.StatusPending),
	}}
	svc := newService(repo)

	resp, err := svc.GetByID(context.Background(), "booking-1")

	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "2024-06-10", resp.DayAt)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(&stubRepo{byID: map[string]*domain.Booking{}})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	repo := &stubRepo{listResult: []*domain.Booking{
		storedBooking("booking-1", domain.StatusConfirmed),
	}}
	svc := newService(repo)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "user-1",
		Status: ptr.Ptr(string(domain.StatusConfirmed)),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.lastFilter.UserID)
	assert.Equal(t, "user-1", *repo.lastFilter.UserID)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := newService(&stubRepo{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("agendado"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetBarberBookings_PendingInbox(t *testing.T) {
	repo := &stubRepo{listResult: []*domain.Booking{
		storedBooking("booking-1", domain.StatusPending),
		storedBooking("booking-2", domain.StatusPending),
	}}
	svc := newService(repo)

	day := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)
	resp, err := svc.GetBarberBookings(context.Background(), &models.GetBarberBookingsRequest{
		BarberID: "barber-1",
		Status:   ptr.Ptr(string(domain.StatusPending)),
		Date:     &day,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	require.NotNil(t, repo.lastFilter.Day)
	// День нормализован до полуночи
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), *repo.lastFilter.Day)
}

func TestTransitionStatus_AllowedTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current domain.BookingStatus
		target  string
	}{
		{"pending to confirmed", domain.StatusPending, "confirmado"},
		{"pending to cancelled", domain.StatusPending, "cancelado"},
		{"confirmed to finished", domain.StatusConfirmed, "finalizado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{byID: map[string]*domain.Booking{
				"booking-1": storedBooking("booking-1", tt.current),
			}}
			svc := newService(repo)

			resp, err := svc.TransitionStatus(context.Background(), "booking-1", tt.target)

			require.NoError(t, err)
			assert.Equal(t, tt.target, resp.Status)
			assert.Equal(t, []domain.BookingStatus{domain.BookingStatus(tt.target)}, repo.updates)
		})
	}
}

func TestTransitionStatus_RejectedTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current domain.BookingStatus
		target  string
	}{
		{"pending cannot finish", domain.StatusPending, "finalizado"},
		{"confirmed cannot cancel", domain.StatusConfirmed, "cancelado"},
		{"cancelled is terminal", domain.StatusCancelled, "confirmado"},
		{"finished is terminal", domain.StatusFinished, "cancelado"},
		{"finished cannot reconfirm", domain.StatusFinished, "confirmado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{byID: map[string]*domain.Booking{
				"booking-1": storedBooking("booking-1", tt.current),
			}}
			svc := newService(repo)

			_, err := svc.TransitionStatus(context.Background(), "booking-1", tt.target)

			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Empty(t, repo.updates, "no write on rejected transition")
		})
	}
}

func TestTransitionStatus_PendingTargetRejected(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.Booking{
		"booking-1": storedBooking("booking-1", domain.StatusConfirmed),
	}}
	svc := newService(repo)

	_, err := svc.TransitionStatus(context.Background(), "booking-1", "pendente")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransitionStatus_UnknownStatus(t *testing.T) {
	svc := newService(&stubRepo{})

	_, err := svc.TransitionStatus(context.Background(), "booking-1", "agendado")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransitionStatus_NotFound(t *testing.T) {
	svc := newService(&stubRepo{byID: map[string]*domain.Booking{}})

	_, err := svc.TransitionStatus(context.Background(), "missing", "confirmado")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
