package get_business_hours

import (
	"net/http"

	"github.com/tritoncc/booking-service/internal/api/handlers"
	"github.com/tritoncc/booking-service/internal/domain"
)

// DayHoursResponse is one weekday's published schedule
type DayHoursResponse struct {
	Open       string `json:"open,omitempty"`
	Close      string `json:"close,omitempty"`
	LunchStart string `json:"lunchStart,omitempty"`
	LunchEnd   string `json:"lunchEnd,omitempty"`
	Closed     bool   `json:"closed"`
}

// BusinessHoursResponse publishes the calendar so booking UIs can render it
type BusinessHoursResponse struct {
	Timezone            string           `json:"timezone"`
	SlotDurationMinutes int              `json:"slotDurationMinutes"`
	BufferMinutes       int              `json:"bufferMinutes"`
	MinNoticeMinutes    int              `json:"minNoticeMinutes"`
	LookAheadDays       int              `json:"lookAheadDays"`
	Monday              DayHoursResponse `json:"monday"`
	Tuesday             DayHoursResponse `json:"tuesday"`
	Wednesday           DayHoursResponse `json:"wednesday"`
	Thursday            DayHoursResponse `json:"thursday"`
	Friday              DayHoursResponse `json:"friday"`
	Saturday            DayHoursResponse `json:"saturday"`
	Sunday              DayHoursResponse `json:"sunday"`
}

type Handler struct {
	calendar *domain.BusinessCalendar
}

func NewHandler(calendar *domain.BusinessCalendar) *Handler {
	return &Handler{calendar: calendar}
}

// Handle GET /api/v1/schedule/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, &BusinessHoursResponse{
		Timezone:            h.calendar.Location.String(),
		SlotDurationMinutes: h.calendar.SlotDurationMinutes,
		BufferMinutes:       h.calendar.BufferMinutes,
		MinNoticeMinutes:    h.calendar.MinNoticeMinutes,
		LookAheadDays:       h.calendar.LookAheadDays,
		Monday:              toDayResponse(h.calendar.Monday),
		Tuesday:             toDayResponse(h.calendar.Tuesday),
		Wednesday:           toDayResponse(h.calendar.Wednesday),
		Thursday:            toDayResponse(h.calendar.Thursday),
		Friday:              toDayResponse(h.calendar.Friday),
		Saturday:            toDayResponse(h.calendar.Saturday),
		Sunday:              toDayResponse(h.calendar.Sunday),
	})
}

func toDayResponse(day domain.DayHours) DayHoursResponse {
	if day.IsClosed() {
		return DayHoursResponse{Closed: true}
	}
	return DayHoursResponse{
		Open:       day.Open.String(),
		Close:      day.Close.String(),
		LunchStart: day.LunchStart.String(),
		LunchEnd:   day.LunchEnd.String(),
	}
}
