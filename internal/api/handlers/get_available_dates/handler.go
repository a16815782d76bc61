package get_available_dates

import (
	"net/http"
	"strconv"

	"github.com/tritoncc/booking-service/internal/api/handlers"
	getAvailableDates "github.com/tritoncc/booking-service/internal/usecase/get_available_dates"
)

const (
	msgInvalidDaysAhead = "invalid daysAhead parameter, expected an integer"
)

type Handler struct {
	useCase          GetAvailableDatesUseCase
	defaultDaysAhead int
	logger           Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, defaultDaysAhead int, logger Logger) *Handler {
	return &Handler{
		useCase:          useCase,
		defaultDaysAhead: defaultDaysAhead,
		logger:           logger,
	}
}

// Handle GET /api/v1/availability/dates
// Query params: daysAhead (optional, defaults to the configured horizon)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	daysAhead := h.defaultDaysAhead

	if raw := r.URL.Query().Get("daysAhead"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability/dates - Invalid daysAhead: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDaysAhead)
			return
		}
		daysAhead = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{DaysAhead: daysAhead})
	if err != nil {
		h.logger.Error("GET /availability/dates - Failed to get dates: days_ahead=%d, error=%v", daysAhead, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/dates - %d dates available within %d days", len(result.Dates), daysAhead)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
