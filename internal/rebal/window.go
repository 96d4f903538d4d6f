package rebal

import (
	"time"

	"github.com/yanun0323/errors"
)

const (
	defaultWindowTimezone  = "America/New_York"
	defaultWindowStartHour = 10
	defaultWindowEndHour   = 13
)

// Window bounds order placement to exchange hours. Hours are half-open:
// a window of 10 to 13 admits 10:00:00 through 12:59:59 local time.
type Window struct {
	location  *time.Location
	startHour int
	endHour   int
}

// NewWindow loads the timezone and validates the hour range.
func NewWindow(timezone string, startHour, endHour int) (Window, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return Window{}, errors.Wrap(err, "load window timezone")
	}

	if startHour < 0 || startHour > 23 || endHour < 0 || endHour > 24 || startHour >= endHour {
		return Window{}, errors.Errorf("bad window hours: %d to %d", startHour, endHour)
	}

	return Window{
		location:  location,
		startHour: startHour,
		endHour:   endHour,
	}, nil
}

// DefaultWindow covers the mid-session hours of the US equity market,
// skipping the volatile open and the close.
func DefaultWindow() Window {
	w, err := NewWindow(defaultWindowTimezone, defaultWindowStartHour, defaultWindowEndHour)
	if err != nil {
		panic(err)
	}
	return w
}

// Past reports whether t is beyond the window's end hour, meaning the
// trading day is over.
func (w Window) Past(t time.Time) bool {
	return t.In(w.location).Hour() >= w.endHour
}

// Open reports whether t falls inside the window on a weekday.
func (w Window) Open(t time.Time) bool {
	local := t.In(w.location)

	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	hour := local.Hour()
	return hour >= w.startHour && hour < w.endHour
}
