package notifier

// BookingEvent is the payload posted to the notification gateway.
// The gateway owns message templates and delivery channels (email/SMS);
// this service only reports what happened.
type BookingEvent struct {
	Event            string `json:"event"` // "booking_confirmed" | "booking_cancelled"
	Reference        string `json:"reference"`
	Date             string `json:"date"`        // YYYY-MM-DD
	StartTime        string `json:"startTime"`   // HH:MM
	DisplayTime      string `json:"displayTime"` // 12-hour form
	CustomerName     string `json:"customerName"`
	CustomerPhone    string `json:"customerPhone,omitempty"`
	CustomerEmail    string `json:"customerEmail,omitempty"`
	ServiceType      string `json:"serviceType,omitempty"`
	ConsultationType string `json:"consultationType,omitempty"`
}

const (
	EventBookingConfirmed = "booking_confirmed"
	EventBookingCancelled = "booking_cancelled"
)
