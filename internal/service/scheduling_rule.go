package service

import (
	"errors"
	"time"
)

// ErrOutsideClinicHours is returned when a window does not fit inside a single opening window.
var ErrOutsideClinicHours = errors.New("appointments can only be scheduled between 08:00-12:30 and 14:00-18:00")

// openingWindow is a daily [start, end) range expressed as wall-clock time.
type openingWindow struct {
	startHour, startMinute int
	endHour, endMinute     int
}

// The clinic closes for lunch between the morning and afternoon windows.
var openingWindows = []openingWindow{
	{startHour: 8, startMinute: 0, endHour: 12, endMinute: 30},
	{startHour: 14, startMinute: 0, endHour: 18, endMinute: 0},
}

// SchedulingRule holds the clinic-wide rules every appointment must satisfy.
// It is pure: no persistence, no clock.
type SchedulingRule struct {
	loc             *time.Location
	allowBackToBack bool
}

func NewSchedulingRule(loc *time.Location, allowBackToBack bool) *SchedulingRule {
	if loc == nil {
		loc = time.Local
	}
	return &SchedulingRule{
		loc:             loc,
		allowBackToBack: allowBackToBack,
	}
}

// ValidateHours checks that [start, end] lies entirely inside one opening window.
// Both windows are built on the calendar day of start in the clinic's zone, so a
// range ending on another day never fits.
func (r *SchedulingRule) ValidateHours(start, end time.Time) error {
	day := start.In(r.loc)

	for _, w := range openingWindows {
		windowStart := time.Date(day.Year(), day.Month(), day.Day(), w.startHour, w.startMinute, 0, 0, r.loc)
		windowEnd := time.Date(day.Year(), day.Month(), day.Day(), w.endHour, w.endMinute, 0, 0, r.loc)

		if !start.Before(windowStart) && !end.After(windowEnd) {
			return nil
		}
	}

	return ErrOutsideClinicHours
}

// Location is the clinic's local time zone.
func (r *SchedulingRule) Location() *time.Location {
	return r.loc
}

// InclusiveOverlap reports whether touching endpoints count as a collision.
func (r *SchedulingRule) InclusiveOverlap() bool {
	return !r.allowBackToBack
}
