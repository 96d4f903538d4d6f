package rebal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWindowWeekdayHours(t *testing.T) {
	w := DefaultWindow()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Monday 2024-03-04.
	require.False(t, w.Open(time.Date(2024, 3, 4, 9, 59, 0, 0, ny)))
	require.True(t, w.Open(time.Date(2024, 3, 4, 10, 0, 0, 0, ny)))
	require.True(t, w.Open(time.Date(2024, 3, 4, 12, 59, 59, 0, ny)))
	require.False(t, w.Open(time.Date(2024, 3, 4, 13, 0, 0, 0, ny)))
}

func TestWindowClosedOnWeekends(t *testing.T) {
	w := DefaultWindow()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Saturday 2024-03-09, inside the hour band.
	require.False(t, w.Open(time.Date(2024, 3, 9, 11, 0, 0, 0, ny)))
}

func TestWindowConvertsForeignClock(t *testing.T) {
	w := DefaultWindow()

	// 16:30 UTC in March is 11:30 in New York.
	require.True(t, w.Open(time.Date(2024, 3, 4, 16, 30, 0, 0, time.UTC)))
}

func TestWindowPastEndHour(t *testing.T) {
	w := DefaultWindow()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	require.False(t, w.Past(time.Date(2024, 3, 4, 12, 59, 0, 0, ny)))
	require.True(t, w.Past(time.Date(2024, 3, 4, 13, 0, 0, 0, ny)))
}

func TestWindowRejectsBadHours(t *testing.T) {
	_, err := NewWindow("America/New_York", 13, 10)
	require.Error(t, err)

	_, err = NewWindow("Not/AZone", 10, 13)
	require.Error(t, err)
}
