package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:05")
	require.NoError(t, err)
	require.Equal(t, "10:05", ts.String())

	for _, bad := range []string{"", "25:00", "10:60", "10-05", "1005"} {
		_, err := NewTimeStringFromString(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 1, 7, 3, 45, 0, time.UTC))
	require.Equal(t, TimeString("07:03"), ts)
}

func TestHourMinute(t *testing.T) {
	ts := TimeString("17:45")
	require.Equal(t, 17, ts.Hour())
	require.Equal(t, 45, ts.Minute())
}

func TestComparisons(t *testing.T) {
	require.True(t, TimeString("09:00").IsBefore("10:00"))
	require.False(t, TimeString("10:00").IsBefore("10:00"))
	require.True(t, TimeString("10:05").IsAfter("10:00"))
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("10:55").AddMinutes(10)
	require.NoError(t, err)
	require.Equal(t, TimeString("11:05"), ts)

	_, err = TimeString("23:55").AddMinutes(10)
	require.Error(t, err)
}

func TestFormat12Hour(t *testing.T) {
	require.Equal(t, "10:05 AM", TimeString("10:05").Format12Hour())
	require.Equal(t, "01:30 PM", TimeString("13:30").Format12Hour())
	require.Equal(t, "12:00 PM", TimeString("12:00").Format12Hour())
}

func TestIsZero(t *testing.T) {
	require.True(t, TimeString("").IsZero())
	require.False(t, TimeString("10:00").IsZero())
}
