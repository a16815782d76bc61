package domain

import "github.com/tritoncc/booking-service/pkg/types"

// AvailableSlot represents a bookable start time on a given date.
// Slots are derived on every query and never cached: availability depends on
// the live booking set and the current clock reading.
type AvailableSlot struct {
	StartTime   types.TimeString
	DisplayTime string // 12-hour form shown to customers, e.g. "1:00 PM"
}

// NewAvailableSlot builds a slot with its display representation
func NewAvailableSlot(start types.TimeString) AvailableSlot {
	return AvailableSlot{
		StartTime:   start,
		DisplayTime: start.Display(),
	}
}
