package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-BarberService/internal/integrations/authservice"
	"github.com/m04kA/SMC-BarberService/internal/service/availability/models"
)

// Стабы зависимостей

type stubRepo struct {
	byID    map[string]*domain.AvailabilityWindow
	windows []*domain.AvailabilityWindow

	created []*domain.AvailabilityWindow
	deleted []string
}

func (s *stubRepo) Create(_ context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	window.ID = "window-1"
	window.CreatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	window.UpdatedAt = window.CreatedAt
	s.created = append(s.created, window)
	return window, nil
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.AvailabilityWindow, error) {
	window, ok := s.byID[id]
	if !ok {
		return nil, availabilityRepo.ErrWindowNotFound
	}
	return window, nil
}

func (s *stubRepo) ListByBarber(_ context.Context, _ string, _ *time.Time) ([]*domain.AvailabilityWindow, error) {
	return s.windows, nil
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return availabilityRepo.ErrWindowNotFound
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubAuthClient struct {
	err error
}

func (s *stubAuthClient) GetBarber(_ context.Context, barberID string) (*authservice.Barber, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &authservice.Barber{ID: barberID}, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newService(repo *stubRepo, auth *stubAuthClient) *Service {
	svc := NewService(repo, auth, nopLogger{})
	svc.timeProvider = fixedTime{now: testNow}
	return svc
}

func createRequest() *models.CreateWindowRequest {
	return &models.CreateWindowRequest{
		BarberID:  "barber-1",
		DayAt:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "12:00",
	}
}

// Тесты

func TestCreate(t *testing.T) {
	repo := &stubRepo{}
	svc := newService(repo, &stubAuthClient{})

	resp, err := svc.Create(context.Background(), createRequest())

	require.NoError(t, err)
	assert.Equal(t, "window-1", resp.ID)
	assert.Equal(t, "2024-06-10", resp.DayAt)
	require.Len(t, repo.created, 1)
}

func TestCreate_PastDayRejected(t *testing.T) {
	svc := newService(&stubRepo{}, &stubAuthClient{})

	req := createRequest()
	req.DayAt = testNow.AddDate(0, 0, -1)

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestCreate_SameDayAccepted(t *testing.T) {
	svc := newService(&stubRepo{}, &stubAuthClient{})

	req := createRequest()
	req.DayAt = testNow

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestCreate_InvalidTimeRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  error
	}{
		{"start after end", "14:00", "12:00", ErrInvalidTimeRange},
		{"start equals end", "12:00", "12:00", ErrInvalidTimeRange},
		{"malformed start", "9h00", "12:00", ErrInvalidInput},
		{"malformed end", "09:00", "25:00", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&stubRepo{}, &stubAuthClient{})

			req := createRequest()
			req.StartTime = tt.start
			req.EndTime = tt.end

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreate_OffGridTimesAccepted(t *testing.T) {
	// Окна не привязаны к фиксированному списку слотов
	repo := &stubRepo{}
	svc := newService(repo, &stubAuthClient{})

	req := createRequest()
	req.StartTime = "09:30"
	req.EndTime = "11:45"

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestCreate_BarberNotFound(t *testing.T) {
	svc := newService(&stubRepo{}, &stubAuthClient{err: authservice.ErrBarberNotFound})

	_, err := svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestCreate_AuthServiceDown(t *testing.T) {
	svc := newService(&stubRepo{}, &stubAuthClient{err: authservice.ErrUnavailable})

	_, err := svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestGetByID(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.AvailabilityWindow{
		"window-1": {
			ID:        "window-1",
			BarberID:  "barber-1",
			DayAt:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			StartTime: "09:00",
			EndTime:   "12:00",
		},
	}}
	svc := newService(repo, &stubAuthClient{})

	resp, err := svc.GetByID(context.Background(), "window-1")

	require.NoError(t, err)
	assert.Equal(t, "barber-1", resp.BarberID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(&stubRepo{byID: map[string]*domain.AvailabilityWindow{}}, &stubAuthClient{})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrWindowNotFound)
}

func TestListByBarber(t *testing.T) {
	repo := &stubRepo{windows: []*domain.AvailabilityWindow{
		{ID: "window-1", BarberID: "barber-1", StartTime: "09:00", EndTime: "12:00"},
		{ID: "window-2", BarberID: "barber-1", StartTime: "13:00", EndTime: "17:00"},
	}}
	svc := newService(repo, &stubAuthClient{})

	resp, err := svc.ListByBarber(context.Background(), &models.ListWindowsRequest{BarberID: "barber-1"})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestDelete(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.AvailabilityWindow{
		"window-1": {ID: "window-1"},
	}}
	svc := newService(repo, &stubAuthClient{})

	err := svc.Delete(context.Background(), "window-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"window-1"}, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newService(&stubRepo{byID: map[string]*domain.AvailabilityWindow{}}, &stubAuthClient{})

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrWindowNotFound)
}
