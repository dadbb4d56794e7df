package create_booking_with_user

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
	getByPhoneFn func(ctx context.Context, phoneNumber string) (*domain.User, error)
	createFn     func(ctx context.Context, user *domain.User) (*domain.User, error)
}

func (m *mockUserRepo) GetByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	return m.getByPhoneFn(ctx, phoneNumber)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.createFn(ctx, user)
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

func okAllocator() *mockAllocator {
	return &mockAllocator{
		allocateFn: func(ctx context.Context, userID int64, date time.Time, timeslot types.TimeString, session string) (*domain.Booking, error) {
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
}

func newTestUseCase(users *mockUserRepo, validator *mockValidator, allocator *mockAllocator) *UseCase {
	uc := NewUseCase(users, validator, allocator, passthroughTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		Name:        "Alice",
		PhoneNumber: "0771234567",
		Date:        testDate,
		Timeslot:    "10:05",
	}
}

func TestExecute_ExistingUser(t *testing.T) {
	users := &mockUserRepo{
		getByPhoneFn: func(ctx context.Context, phoneNumber string) (*domain.User, error) {
			return &domain.User{ID: 7, Name: "Alice", PhoneNumber: phoneNumber}, nil
		},
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			t.Fatal("Create must not be called for an existing user")
			return nil, nil
		},
	}

	uc := newTestUseCase(users, okValidator(), okAllocator())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, int64(7), resp.UserID)
	require.NotNil(t, resp.User)
	require.Equal(t, int64(7), resp.User.ID)
}

func TestExecute_RegistersNewUser(t *testing.T) {
	users := &mockUserRepo{
		getByPhoneFn: func(ctx context.Context, phoneNumber string) (*domain.User, error) {
			return nil, userRepo.ErrUserNotFound
		},
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			created := *user
			created.ID = 8
			return &created, nil
		},
	}

	uc := newTestUseCase(users, okValidator(), okAllocator())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, int64(8), resp.UserID)
	require.Equal(t, "Alice", resp.User.Name)
}

func TestExecute_PhoneTakenRace(t *testing.T) {
	calls := 0
	users := &mockUserRepo{
		getByPhoneFn: func(ctx context.Context, phoneNumber string) (*domain.User, error) {
			calls++
			if calls == 1 {
				return nil, userRepo.ErrUserNotFound
			}
			// Параллельная регистрация успела раньше
			return &domain.User{ID: 9, Name: "Alice", PhoneNumber: phoneNumber}, nil
		},
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			return nil, userRepo.ErrPhoneTaken
		},
	}

	uc := newTestUseCase(users, okValidator(), okAllocator())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, int64(9), resp.UserID)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockUserRepo{}, okValidator(), &mockAllocator{})

	cases := []*Request{
		{Name: "", PhoneNumber: "0771234567", Date: testDate, Timeslot: "10:05"},
		{Name: "Alice", PhoneNumber: "abc", Date: testDate, Timeslot: "10:05"},
		{Name: "Alice", PhoneNumber: "0771234567", Timeslot: "10:05"},
		{Name: "Alice", PhoneNumber: "0771234567", Date: testDate},
	}

	for i, req := range cases {
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput, "case %d", i)
	}
}

func TestExecute_SlotTaken(t *testing.T) {
	users := &mockUserRepo{
		getByPhoneFn: func(ctx context.Context, phoneNumber string) (*domain.User, error) {
			return &domain.User{ID: 7, Name: "Alice", PhoneNumber: phoneNumber}, nil
		},
	}
	allocator := &mockAllocator{
		allocateFn: func(ctx context.Context, userID int64, date time.Time, timeslot types.TimeString, session string) (*domain.Booking, error) {
			return nil, scheduling.ErrSlotTaken
		},
	}

	uc := newTestUseCase(users, okValidator(), allocator)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ValidationFailureSkipsTransaction(t *testing.T) {
	validator := &mockValidator{
		validateFn: func(date time.Time, timeslot types.TimeString, now time.Time) (string, error) {
			return "", scheduling.ErrOutsideSessions
		},
	}
	users := &mockUserRepo{
		getByPhoneFn: func(ctx context.Context, phoneNumber string) (*domain.User, error) {
			t.Fatal("GetByPhone must not be called when validation fails")
			return nil, nil
		},
	}

	uc := newTestUseCase(users, validator, &mockAllocator{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrOutsideHours)
}
