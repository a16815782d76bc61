package get_available_slots

import (
	"time"

	"github.com/tritoncc/booking-service/internal/domain"
	"github.com/tritoncc/booking-service/pkg/types"
)

// generateDaySlots produces every candidate slot start for one day's hours,
// ascending, stepping by slotDuration from open while the slot still ends by
// close. Starts that fall inside the lunch break are skipped. The result is a
// pure function of the day configuration; nothing is cached between calls.
func generateDaySlots(hours domain.DayHours, slotDuration int) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	if hours.IsClosed() {
		return slots, nil
	}

	current := hours.Open
	for current.IsBefore(hours.Close) {
		slotEnd, err := current.AddMinutes(slotDuration)
		if err != nil {
			// slot would cross midnight, nothing further fits
			break
		}
		if slotEnd.IsAfter(hours.Close) {
			break
		}

		if !isDuringLunch(current, hours) {
			slots = append(slots, current)
		}

		current, err = current.AddMinutes(slotDuration)
		if err != nil {
			break
		}
	}

	return slots, nil
}

// isDuringLunch reports whether a start time falls within [lunchStart, lunchEnd)
func isDuringLunch(start types.TimeString, hours domain.DayHours) bool {
	if !hours.HasLunch() {
		return false
	}
	return !start.IsBefore(hours.LunchStart) && start.IsBefore(hours.LunchEnd)
}

// conflictsWithBookings reports whether a candidate start lies within the
// conflict window of any active booking on the same date.
//
// The test is a symmetric start-to-start distance threshold, not an interval
// overlap: a candidate exactly windowMinutes away from a booking in either
// direction is allowed, anything closer is blocked.
func conflictsWithBookings(candidate types.TimeString, bookings []*domain.Booking, windowMinutes int) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if candidate.MinutesApart(booking.StartTime) < windowMinutes {
			return true
		}
	}
	return false
}

// isWithinNotice reports whether a slot starts too soon to be bookable.
// The comparison happens on full localized date-times, so a notice window
// crossing midnight blocks the early slots of the next day as well.
// A slot starting exactly at now+notice is still blocked.
func isWithinNotice(date time.Time, start types.TimeString, now time.Time, noticeMinutes int, loc *time.Location) bool {
	minutes := start.MinutesOfDay()
	slotTime := time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc)
	cutoff := now.Add(time.Duration(noticeMinutes) * time.Minute)
	return !slotTime.After(cutoff)
}
