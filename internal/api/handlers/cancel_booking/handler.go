package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tritoncc/booking-service/internal/api/handlers"
	"github.com/tritoncc/booking-service/internal/service/bookings"
)

const (
	msgMissingReference = "booking reference is required"
	msgBookingNotFound  = "booking not found"
	msgAlreadyCancelled = "booking is already cancelled"
)

// CancelResponse HTTP response model
type CancelResponse struct {
	Reference string `json:"reference"`
	Cancelled bool   `json:"cancelled"`
}

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

// Handle PATCH /api/v1/bookings/{reference}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	if reference == "" {
		handlers.RespondBadRequest(w, msgMissingReference)
		return
	}

	if err := h.service.Cancel(r.Context(), reference); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Already cancelled: reference=%s", reference)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingReference)

		default:
			h.logger.Error("PATCH /bookings/{reference}/cancel - Failed: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{reference}/cancel - Cancelled: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, CancelResponse{Reference: reference, Cancelled: true})
}
