package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/integrations/authservice"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Стабы зависимостей

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
	calls    int
}

func (s *stubBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	s.calls++
	return s.bookings, s.err
}

type stubAvailabilityRepo struct {
	windows []*domain.AvailabilityWindow
	err     error
}

func (s *stubAvailabilityRepo) ListByBarber(_ context.Context, _ string, _ *time.Time) ([]*domain.AvailabilityWindow, error) {
	return s.windows, s.err
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

func newUseCase(bookings *stubBookingRepo, availability *stubAvailabilityRepo, auth *stubAuthClient) *UseCase {
	uc := NewUseCase(bookings, availability, auth, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func testRequest() *Request {
	return &Request{
		BarberID: "barber-1",
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	}
}

func allHoursOf(resp *Response) []types.TimeString {
	var hours []types.TimeString
	for _, band := range resp.Bands {
		hours = append(hours, band.Hours...)
	}
	return hours
}

// Тесты

func TestExecute_AllSlotsFreeWithoutBookings(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, &stubAvailabilityRepo{}, &stubAuthClient{})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.BookableHours(), allHoursOf(resp))

	require.Len(t, resp.Bands, 3)
	assert.Equal(t, domain.BandMorning, resp.Bands[0].Band)
	assert.Equal(t, domain.BandAfternoon, resp.Bands[1].Band)
	assert.Equal(t, domain.BandEvening, resp.Bands[2].Band)
	assert.Equal(t, domain.MorningHours, resp.Bands[0].Hours)
	assert.Equal(t, domain.AfternoonHours, resp.Bands[1].Hours)
	assert.Equal(t, domain.EveningHours, resp.Bands[2].Hours)
}

func TestExecute_ActiveBookingsOccupySlots(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubBookingRepo{
		bookings: []*domain.Booking{
			{BarberID: "barber-1", DayAt: day, HourAt: "10:00", Status: domain.StatusPending},
			{BarberID: "barber-1", DayAt: day, HourAt: "14:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newUseCase(repo, &stubAvailabilityRepo{}, &stubAuthClient{})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	hours := allHoursOf(resp)
	assert.NotContains(t, hours, types.TimeString("10:00"))
	assert.NotContains(t, hours, types.TimeString("14:00"))
	assert.Contains(t, hours, types.TimeString("11:00"))
	assert.Len(t, hours, len(domain.BookableHours())-2)
}

func TestExecute_InactiveBookingsDoNotOccupy(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubBookingRepo{
		bookings: []*domain.Booking{
			{BarberID: "barber-1", DayAt: day, HourAt: "10:00", Status: domain.StatusCancelled},
			{BarberID: "barber-1", DayAt: day, HourAt: "11:00", Status: domain.StatusFinished},
		},
	}
	uc := newUseCase(repo, &stubAvailabilityRepo{}, &stubAuthClient{})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.BookableHours(), allHoursOf(resp))
}

func TestExecute_WindowsIntersectSlots(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	availability := &stubAvailabilityRepo{
		windows: []*domain.AvailabilityWindow{
			{BarberID: "barber-1", DayAt: day, StartTime: "09:00", EndTime: "12:00"},
		},
	}
	uc := newUseCase(&stubBookingRepo{}, availability, &stubAuthClient{})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	// Окно 09:00-12:00, конец эксклюзивный: остаются 09:00, 10:00, 11:00
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, allHoursOf(resp))
}

func TestExecute_WindowsForOtherDayIgnored(t *testing.T) {
	otherDay := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	availability := &stubAvailabilityRepo{
		windows: []*domain.AvailabilityWindow{
			{BarberID: "barber-1", DayAt: otherDay, StartTime: "09:00", EndTime: "12:00"},
		},
	}
	uc := newUseCase(&stubBookingRepo{}, availability, &stubAuthClient{})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.BookableHours(), allHoursOf(resp))
}

func TestExecute_BookingsFetchFailureDegradesToAllFree(t *testing.T) {
	repo := &stubBookingRepo{err: assert.AnError}
	uc := newUseCase(repo, &stubAvailabilityRepo{}, &stubAuthClient{})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.BookableHours(), allHoursOf(resp))
}

func TestExecute_WindowsFetchFailureDegradesToNoWindows(t *testing.T) {
	availability := &stubAvailabilityRepo{err: assert.AnError}
	uc := newUseCase(&stubBookingRepo{}, availability, &stubAuthClient{})

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.BookableHours(), allHoursOf(resp))
}

func TestExecute_Idempotent(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubBookingRepo{
		bookings: []*domain.Booking{
			{BarberID: "barber-1", DayAt: day, HourAt: "10:00", Status: domain.StatusPending},
		},
	}
	uc := newUseCase(repo, &stubAvailabilityRepo{}, &stubAuthClient{})

	first, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, repo.calls)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, &stubAvailabilityRepo{}, &stubAuthClient{})

	req := testRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_BarberNotFound(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, &stubAvailabilityRepo{}, &stubAuthClient{err: authservice.ErrBarberNotFound})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_AuthServiceDown(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, &stubAvailabilityRepo{}, &stubAuthClient{err: authservice.ErrUnavailable})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestExecute_EmptyBarberID(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, &stubAvailabilityRepo{}, &stubAuthClient{})

	req := testRequest()
	req.BarberID = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
