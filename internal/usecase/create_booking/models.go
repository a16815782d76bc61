package create_booking

import (
	"time"

	"github.com/tritoncc/booking-service/pkg/types"
)

// Request is the booking the customer asks to confirm
type Request struct {
	Date      time.Time        // booking date, business-local
	StartTime types.TimeString // slot start, e.g. "10:00"

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	ServiceType      string
	ConsultationType string
	ProjectDetails   *string
}

// Response is the confirmation of a committed booking
type Response struct {
	Reference   string
	Date        time.Time
	StartTime   types.TimeString
	DisplayTime string
	Status      string

	CustomerName string
	ServiceType  string

	CreatedAt time.Time
}
