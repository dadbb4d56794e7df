package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/MMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/MMC-AppointmentService/internal/service/scheduling"
	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockUserRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

type mockValidator struct {
	validateFn func(date time.Time, timeslot types.TimeString, now time.Time) (string, error)
}

func (m *mockValidator) ValidateSlot(date time.Time, timeslot types.TimeString, now time.Time) (string, error) {
	return m.validateFn(date, timeslot, now)
}

type mockAllocator struct {
	allocateFn func(ctx context.Context, userID int64, date time.Time, timeslot types.TimeString, session string) (*domain.Booking, error)
}

func (m *mockAllocator) Allocate(ctx context.Context, userID int64, date time.Time, timeslot types.TimeString, session string) (*domain.Booking, error) {
	return m.allocateFn(ctx, userID, date, timeslot, session)
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var (
	testDate = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
)

func okValidator() *mockValidator {
	return &mockValidator{
		validateFn: func(date time.Time, timeslot types.TimeString, now time.Time) (string, error) {
			return "morning", nil
		},
	}
}

func okUserRepo() *mockUserRepo {
	return &mockUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Alice", PhoneNumber: "0771234567"}, nil
		},
	}
}

func newTestUseCase(users *mockUserRepo, validator *mockValidator, allocator *mockAllocator) *UseCase {
	uc := NewUseCase(users, validator, allocator, passthroughTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	allocator := &mockAllocator{
		allocateFn: func(ctx context.Context, userID int64, date time.Time, timeslot types.TimeString, session string) (*domain.Booking, error) {
			require.Equal(t, int64(1), userID)
			require.Equal(t, "morning", session)
			return &domain.Booking{
				ID:          10,
				UserID:      userID,
				Date:        date,
				Timeslot:    timeslot,
				Session:     session,
				OrderNumber: 1,
				TurnNumber:  1,
			}, nil
		},
	}

	uc := newTestUseCase(okUserRepo(), okValidator(), allocator)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:   1,
		Date:     testDate,
		Timeslot: "10:05",
	})
	require.NoError(t, err)

	require.Equal(t, int64(10), resp.ID)
	require.Equal(t, 1, resp.OrderNumber)
	require.Equal(t, 1, resp.TurnNumber)
	require.Equal(t, "morning", resp.Session)
	require.NotNil(t, resp.User)
	require.Equal(t, "Alice", resp.User.Name)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := newTestUseCase(okUserRepo(), okValidator(), &mockAllocator{})

	cases := []*Request{
		{UserID: 0, Date: testDate, Timeslot: "10:05"},
		{UserID: 1, Timeslot: "10:05"},
		{UserID: 1, Date: testDate},
		{UserID: 1, Date: testDate, Timeslot: "25:99"},
	}

	for i, req := range cases {
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput, "case %d", i)
	}
}

func TestExecute_ValidationErrorsMapped(t *testing.T) {
	cases := []struct {
		schedulingErr error
		useCaseErr    error
	}{
		{scheduling.ErrBookingNotOpen, ErrBookingNotOpen},
		{scheduling.ErrPastDate, ErrPastDate},
		{scheduling.ErrPastTime, ErrPastTime},
		{scheduling.ErrInvalidInterval, ErrInvalidInterval},
		{scheduling.ErrOutsideSessions, ErrOutsideHours},
	}

	for _, tc := range cases {
		validator := &mockValidator{
			validateFn: func(date time.Time, timeslot types.TimeString, now time.Time) (string, error) {
				return "", tc.schedulingErr
			},
		}
		uc := newTestUseCase(okUserRepo(), validator, &mockAllocator{})

		_, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate, Timeslot: "10:05"})
		require.ErrorIs(t, err, tc.useCaseErr)
	}
}

func TestExecute_UserNotFound(t *testing.T) {
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, userRepo.ErrUserNotFound
		},
	}
	uc := newTestUseCase(users, okValidator(), &mockAllocator{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: testDate, Timeslot: "10:05"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_SlotTaken(t *testing.T) {
	allocator := &mockAllocator{
		allocateFn: func(ctx context.Context, userID int64, date time.Time, timeslot types.TimeString, session string) (*domain.Booking, error) {
			return nil, scheduling.ErrSlotTaken
		},
	}
	uc := newTestUseCase(okUserRepo(), okValidator(), allocator)

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate, Timeslot: "10:05"})
	require.ErrorIs(t, err, ErrSlotTaken)
}
