package get_available_slots

import (
	"time"

	"github.com/tritoncc/booking-service/internal/domain"
)

// Request asks for the bookable slots on one calendar date
type Request struct {
	Date time.Time // date only, business-local
}

// Response carries the surviving candidate slots, ascending by start time
type Response struct {
	Date  time.Time
	Slots []domain.AvailableSlot
}
