package get_daily_schedule

import (
	"net/http"
	"time"

	"github.com/tritoncc/booking-service/internal/api/handlers"
	"github.com/tritoncc/booking-service/internal/domain"
)

const (
	msgMissingDate = "date is required"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/daily
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/daily - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/daily - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetDailySchedule(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /schedule/daily - Failed: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/daily - date=%s, booked=%d, available=%d",
		dateStr, result.BookedCount, result.AvailableCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
