package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/tritoncc/booking-service/pkg/types"
)

var (
	// ErrInvalidDayHours is returned when a weekday configuration is inconsistent
	ErrInvalidDayHours = errors.New("domain: invalid day hours")

	// ErrInvalidCalendar is returned when calendar-wide settings are inconsistent
	ErrInvalidCalendar = errors.New("domain: invalid business calendar")
)

// DayHours is the opening schedule for a single weekday.
// A day with a zero Open time is closed and yields no slots.
type DayHours struct {
	Open       types.TimeString
	Close      types.TimeString
	LunchStart types.TimeString
	LunchEnd   types.TimeString
}

// IsClosed returns true if the business does not open on this day
func (d DayHours) IsClosed() bool {
	return d.Open.IsZero()
}

// HasLunch returns true if a lunch break is configured
func (d DayHours) HasLunch() bool {
	return !d.LunchStart.IsZero() && !d.LunchEnd.IsZero()
}

// Validate checks the internal consistency of the day configuration
func (d DayHours) Validate() error {
	if d.IsClosed() {
		return nil
	}
	if err := d.Open.Validate(); err != nil {
		return fmt.Errorf("%w: open: %v", ErrInvalidDayHours, err)
	}
	if err := d.Close.Validate(); err != nil {
		return fmt.Errorf("%w: close: %v", ErrInvalidDayHours, err)
	}
	if !d.Open.IsBefore(d.Close) {
		return fmt.Errorf("%w: open %s must be before close %s", ErrInvalidDayHours, d.Open, d.Close)
	}
	if d.LunchStart.IsZero() != d.LunchEnd.IsZero() {
		return fmt.Errorf("%w: lunch start and end must be set together", ErrInvalidDayHours)
	}
	if d.HasLunch() {
		if err := d.LunchStart.Validate(); err != nil {
			return fmt.Errorf("%w: lunch start: %v", ErrInvalidDayHours, err)
		}
		if err := d.LunchEnd.Validate(); err != nil {
			return fmt.Errorf("%w: lunch end: %v", ErrInvalidDayHours, err)
		}
		if !d.LunchStart.IsBefore(d.LunchEnd) {
			return fmt.Errorf("%w: lunch start %s must be before lunch end %s", ErrInvalidDayHours, d.LunchStart, d.LunchEnd)
		}
		if d.LunchStart.IsBefore(d.Open) || d.LunchEnd.IsAfter(d.Close) {
			return fmt.Errorf("%w: lunch %s-%s must lie within %s-%s",
				ErrInvalidDayHours, d.LunchStart, d.LunchEnd, d.Open, d.Close)
		}
	}
	return nil
}

// BusinessCalendar is the static scheduling configuration of the business.
// It is loaded once at startup and never mutated.
type BusinessCalendar struct {
	Location *time.Location

	Monday    DayHours
	Tuesday   DayHours
	Wednesday DayHours
	Thursday  DayHours
	Friday    DayHours
	Saturday  DayHours
	Sunday    DayHours

	SlotDurationMinutes int
	BufferMinutes       int
	MinNoticeMinutes    int
	LookAheadDays       int
}

// HoursFor returns the configured hours for the weekday of the given date
func (c *BusinessCalendar) HoursFor(date time.Time) DayHours {
	switch date.Weekday() {
	case time.Monday:
		return c.Monday
	case time.Tuesday:
		return c.Tuesday
	case time.Wednesday:
		return c.Wednesday
	case time.Thursday:
		return c.Thursday
	case time.Friday:
		return c.Friday
	case time.Saturday:
		return c.Saturday
	default:
		return c.Sunday
	}
}

// ConflictWindowMinutes is the symmetric distance between two slot starts below
// which they are considered conflicting. Slot distance is measured start to
// start, so the window combines the appointment itself and the travel buffer.
func (c *BusinessCalendar) ConflictWindowMinutes() int {
	return c.SlotDurationMinutes + c.BufferMinutes
}

// Validate checks calendar-wide settings and every weekday configuration
func (c *BusinessCalendar) Validate() error {
	if c.Location == nil {
		return fmt.Errorf("%w: location is required", ErrInvalidCalendar)
	}
	if c.SlotDurationMinutes < MinSlotDurationMinutes || c.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration %d out of range", ErrInvalidCalendar, c.SlotDurationMinutes)
	}
	if c.BufferMinutes < 0 {
		return fmt.Errorf("%w: buffer must not be negative", ErrInvalidCalendar)
	}
	if c.MinNoticeMinutes < 0 {
		return fmt.Errorf("%w: minimum notice must not be negative", ErrInvalidCalendar)
	}
	if c.LookAheadDays < 1 || c.LookAheadDays > MaxLookAheadDays {
		return fmt.Errorf("%w: look-ahead days %d out of range", ErrInvalidCalendar, c.LookAheadDays)
	}

	days := map[string]DayHours{
		"monday":    c.Monday,
		"tuesday":   c.Tuesday,
		"wednesday": c.Wednesday,
		"thursday":  c.Thursday,
		"friday":    c.Friday,
		"saturday":  c.Saturday,
		"sunday":    c.Sunday,
	}
	for name, day := range days {
		if err := day.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
