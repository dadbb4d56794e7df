package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

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

func testValidator(t *testing.T) *Validator {
	t.Helper()
	return NewValidator(Rules{
		OpenTime:            "08:00",
		SlotDurationMinutes: 5,
		Schedule:            testSchedule(t),
	})
}

func TestValidateSlot_BookingNotOpen(t *testing.T) {
	v := testValidator(t)
	now := time.Date(2026, 9, 1, 7, 59, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	_, err := v.ValidateSlot(tomorrow, "10:05", now)
	require.ErrorIs(t, err, ErrBookingNotOpen)
}

func TestValidateSlot_OpenGateBeatsOtherChecks(t *testing.T) {
	v := testValidator(t)
	now := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	// До открытия записи даже прошедшая дата дает ошибку гейта
	_, err := v.ValidateSlot(yesterday, "10:03", now)
	require.ErrorIs(t, err, ErrBookingNotOpen)
}

func TestValidateSlot_PastDate(t *testing.T) {
	v := testValidator(t)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := v.ValidateSlot(yesterday, "10:05", now)
	require.ErrorIs(t, err, ErrPastDate)
}

func TestValidateSlot_PastTimeToday(t *testing.T) {
	v := testValidator(t)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := v.ValidateSlot(today, "09:55", now)
	require.ErrorIs(t, err, ErrPastTime)
}

func TestValidateSlot_PastTimeIgnoredForFutureDate(t *testing.T) {
	v := testValidator(t)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	session, err := v.ValidateSlot(tomorrow, "09:55", now)
	require.NoError(t, err)
	require.Equal(t, "morning", session)
}

func TestValidateSlot_InvalidInterval(t *testing.T) {
	v := testValidator(t)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	_, err := v.ValidateSlot(tomorrow, "10:03", now)
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestValidateSlot_OutsideSessions(t *testing.T) {
	v := testValidator(t)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	for _, slot := range []types.TimeString{"08:30", "08:55"} {
		_, err := v.ValidateSlot(tomorrow, slot, now)
		require.ErrorIs(t, err, ErrOutsideSessions, "slot %s", slot)
	}
}

func TestValidateSlot_SessionBoundaries(t *testing.T) {
	v := testValidator(t)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		slot    types.TimeString
		session string
	}{
		{"09:00", "morning"},
		{"11:55", "morning"},
		{"12:00", "evening"},
		{"16:55", "evening"},
		{"17:00", "night"},
		{"23:55", "night"},
	}

	for _, tc := range cases {
		session, err := v.ValidateSlot(tomorrow, tc.slot, now)
		require.NoError(t, err, "slot %s", tc.slot)
		require.Equal(t, tc.session, session, "slot %s", tc.slot)
	}
}

func TestValidateSlot_TodayAtOpenTime(t *testing.T) {
	v := testValidator(t)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	session, err := v.ValidateSlot(today, "09:00", now)
	require.NoError(t, err)
	require.Equal(t, "morning", session)
}
