package scheduling

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/MMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeBookingRepo хранит брони в памяти и повторяет контракт репозитория
type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64

	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{nextID: 1}
}

func (f *fakeBookingRepo) GetBySlot(_ context.Context, date time.Time, timeslot types.TimeString) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.Date.Equal(date) && b.Timeslot == timeslot {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) MaxOrderNumber(_ context.Context, date time.Time, session string) (int, error) {
	max := 0
	for _, b := range f.bookings {
		if b.Date.Equal(date) && b.Session == session && b.OrderNumber > max {
			max = b.OrderNumber
		}
	}
	return max, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *b
	stored.ID = f.nextID
	f.nextID++
	f.bookings = append(f.bookings, &stored)
	return &stored, nil
}

func (f *fakeBookingRepo) ListBySession(_ context.Context, date time.Time, session string) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.Date.Equal(date) && b.Session == session {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timeslot != out[j].Timeslot {
			return out[i].Timeslot.IsBefore(out[j].Timeslot)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeBookingRepo) UpdateTurnNumbers(_ context.Context, bookings []*domain.Booking) error {
	for _, updated := range bookings {
		for _, b := range f.bookings {
			if b.ID == updated.ID {
				b.TurnNumber = updated.TurnNumber
			}
		}
	}
	return nil
}

func (f *fakeBookingRepo) byID(id int64) *domain.Booking {
	for _, b := range f.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

var testDate = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

func TestAllocate_FirstBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Allocate(context.Background(), 1, testDate, "10:05", "morning")
	require.NoError(t, err)

	require.Equal(t, 1, created.OrderNumber)
	require.Equal(t, 1, created.TurnNumber)
}

func TestAllocate_EarlierSlotShiftsTurnNumbers(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	// Первая заявка на 10:05: порядковый номер 1, очередь 1
	first, err := svc.Allocate(ctx, 1, testDate, "10:05", "morning")
	require.NoError(t, err)
	require.Equal(t, 1, first.OrderNumber)
	require.Equal(t, 1, first.TurnNumber)

	// Вторая заявка на более раннее время 10:00: порядковый номер 2,
	// но в очереди она первая, а первая бронь сдвигается на 2
	second, err := svc.Allocate(ctx, 2, testDate, "10:00", "morning")
	require.NoError(t, err)
	require.Equal(t, 2, second.OrderNumber)
	require.Equal(t, 1, second.TurnNumber)

	require.Equal(t, 1, repo.byID(first.ID).OrderNumber)
	require.Equal(t, 2, repo.byID(first.ID).TurnNumber)
}

func TestAllocate_TurnNumbersStayDense(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	slots := []types.TimeString{"10:30", "09:15", "11:45", "09:00", "10:00"}
	for i, slot := range slots {
		_, err := svc.Allocate(ctx, int64(i+1), testDate, slot, "morning")
		require.NoError(t, err)
	}

	listed, err := repo.ListBySession(ctx, testDate, "morning")
	require.NoError(t, err)
	require.Len(t, listed, len(slots))

	// Очередь плотная 1..K в хронологии слотов
	for i, b := range listed {
		require.Equal(t, i+1, b.TurnNumber)
	}

	// Порядковые номера отражают порядок прихода заявок
	orders := make(map[types.TimeString]int)
	for _, b := range listed {
		orders[b.Timeslot] = b.OrderNumber
	}
	for i, slot := range slots {
		require.Equal(t, i+1, orders[slot])
	}
}

func TestAllocate_SessionsAreIndependent(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	morning, err := svc.Allocate(ctx, 1, testDate, "10:00", "morning")
	require.NoError(t, err)
	evening, err := svc.Allocate(ctx, 2, testDate, "13:00", "evening")
	require.NoError(t, err)

	// Нумерация в каждой сессии своя
	require.Equal(t, 1, morning.OrderNumber)
	require.Equal(t, 1, evening.OrderNumber)
	require.Equal(t, 1, morning.TurnNumber)
	require.Equal(t, 1, evening.TurnNumber)
}

func TestAllocate_SlotTaken(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, err := svc.Allocate(ctx, 1, testDate, "10:05", "morning")
	require.NoError(t, err)

	_, err = svc.Allocate(ctx, 2, testDate, "10:05", "morning")
	require.ErrorIs(t, err, ErrSlotTaken)

	// Неуспешная аллокация не оставляет следов
	listed, err := repo.ListBySession(ctx, testDate, "morning")
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestAllocate_SlotConflictOnInsert(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.createErr = bookingRepo.ErrSlotConflict
	svc := NewService(repo, nopLogger{})

	_, err := svc.Allocate(context.Background(), 1, testDate, "10:05", "morning")
	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestAllocate_EmptySession(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Allocate(context.Background(), 1, testDate, "10:05", "")
	require.ErrorIs(t, err, ErrNoSession)
}
