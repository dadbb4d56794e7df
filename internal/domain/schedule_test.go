package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

func defaultSessions() []SessionRange {
	return []SessionRange{
		{Name: "morning", Start: "09:00", End: "12:00"},
		{Name: "evening", Start: "12:00", End: "17:00"},
		{Name: "night", Start: "17:00", End: "23:59"},
	}
}

func TestNewSchedule_Valid(t *testing.T) {
	_, err := NewSchedule(defaultSessions())
	require.NoError(t, err)
}

func TestNewSchedule_Empty(t *testing.T) {
	_, err := NewSchedule(nil)
	require.Error(t, err)
}

func TestNewSchedule_EmptyName(t *testing.T) {
	_, err := NewSchedule([]SessionRange{{Name: "", Start: "09:00", End: "12:00"}})
	require.Error(t, err)
}

func TestNewSchedule_StartNotBeforeEnd(t *testing.T) {
	_, err := NewSchedule([]SessionRange{{Name: "morning", Start: "12:00", End: "12:00"}})
	require.Error(t, err)
}

func TestNewSchedule_Overlap(t *testing.T) {
	_, err := NewSchedule([]SessionRange{
		{Name: "morning", Start: "09:00", End: "12:30"},
		{Name: "evening", Start: "12:00", End: "17:00"},
	})
	require.Error(t, err)
}

func TestClassify_Boundaries(t *testing.T) {
	schedule, err := NewSchedule(defaultSessions())
	require.NoError(t, err)

	cases := []struct {
		slot    types.TimeString
		session string
		found   bool
	}{
		{"08:59", "", false},
		{"09:00", "morning", true},
		{"11:59", "morning", true},
		{"12:00", "evening", true},
		{"16:59", "evening", true},
		{"17:00", "night", true},
		{"23:58", "night", true},
		{"23:59", "", false}, // конец интервала не включается
	}

	for _, tc := range cases {
		session, ok := schedule.Classify(tc.slot)
		require.Equal(t, tc.found, ok, "slot %s", tc.slot)
		require.Equal(t, tc.session, session, "slot %s", tc.slot)
	}
}

func TestSessions_ReturnsCopy(t *testing.T) {
	schedule, err := NewSchedule(defaultSessions())
	require.NoError(t, err)

	sessions := schedule.Sessions()
	sessions[0].Name = "mutated"

	fresh := schedule.Sessions()
	require.Equal(t, "morning", fresh[0].Name)
}

func TestValidPhoneNumber(t *testing.T) {
	valid := []string{"0771234567", "+94771234567", "94771234567"}
	for _, phone := range valid {
		require.True(t, ValidPhoneNumber(phone), "phone %s", phone)
	}

	invalid := []string{"", "abc", "12345", "+94 77 123", "077-123-4567"}
	for _, phone := range invalid {
		require.False(t, ValidPhoneNumber(phone), "phone %s", phone)
	}
}
