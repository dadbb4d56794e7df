package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockBookingRepo struct {
	listFn  func(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	countFn func(ctx context.Context, date time.Time) (int, error)
}

func (m *mockBookingRepo) ListByDateOrderedByTurn(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return m.listFn(ctx, date)
}

func (m *mockBookingRepo) CountByDate(ctx context.Context, date time.Time) (int, error) {
	return m.countFn(ctx, date)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func testSchedule(t *testing.T) domain.Schedule {
	t.Helper()
	schedule, err := domain.NewSchedule([]domain.SessionRange{
		{Name: "morning", Start: "09:00", End: "12:00"},
		{Name: "evening", Start: "12:00", End: "17:00"},
		{Name: "night", Start: "17:00", End: "23:59"},
	})
	require.NoError(t, err)
	return schedule
}

func TestGetDashboardData(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{ID: 1, Timeslot: "09:30", Session: "morning", TurnNumber: 1},
		{ID: 2, Timeslot: "10:00", Session: "morning", TurnNumber: 2},
		{ID: 3, Timeslot: "13:00", Session: "evening", TurnNumber: 1},
	}

	counts := map[string]int{
		"2026-08-26": 0,
		"2026-08-27": 1,
		"2026-08-28": 2,
		"2026-08-29": 3,
		"2026-08-30": 4,
		"2026-08-31": 5,
		"2026-09-01": 3,
	}

	repo := &mockBookingRepo{
		listFn: func(ctx context.Context, d time.Time) ([]*domain.Booking, error) {
			return bookings, nil
		},
		countFn: func(ctx context.Context, d time.Time) (int, error) {
			return counts[d.Format(domain.DateFormat)], nil
		},
	}

	svc := NewService(repo, testSchedule(t), nopLogger{})
	svc.timeProvider = fixedClock{now: now}

	data, err := svc.GetDashboardData(context.Background(), date)
	require.NoError(t, err)

	require.Equal(t, 3, data.Stats.TotalBookings)
	require.Equal(t, 2, data.Stats.PerSession["morning"])
	require.Equal(t, 1, data.Stats.PerSession["evening"])
	require.Equal(t, 0, data.Stats.PerSession["night"])

	require.Len(t, data.Bookings, 3)

	// Тренд за 7 дней от старых к новым, включая сегодня
	require.Len(t, data.WeeklyTrend, domain.TrendDays)
	require.Equal(t, "2026-08-26", data.WeeklyTrend[0].Date)
	require.Equal(t, "2026-09-01", data.WeeklyTrend[len(data.WeeklyTrend)-1].Date)
	require.Equal(t, 5, data.WeeklyTrend[5].Bookings)
	require.Equal(t, 3, data.WeeklyTrend[6].Bookings)
}

func TestGetDashboardData_EmptyDay(t *testing.T) {
	repo := &mockBookingRepo{
		listFn: func(ctx context.Context, d time.Time) ([]*domain.Booking, error) {
			return []*domain.Booking{}, nil
		},
		countFn: func(ctx context.Context, d time.Time) (int, error) {
			return 0, nil
		},
	}

	svc := NewService(repo, testSchedule(t), nopLogger{})
	svc.timeProvider = fixedClock{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}

	data, err := svc.GetDashboardData(context.Background(), time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Equal(t, 0, data.Stats.TotalBookings)
	// Счетчики всех сессий присутствуют даже при нуле броней
	require.Len(t, data.Stats.PerSession, 3)
	require.Empty(t, data.Bookings)
}
