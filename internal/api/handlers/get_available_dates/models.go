package get_available_dates

import (
	"github.com/tritoncc/booking-service/internal/domain"
	getAvailableDates "github.com/tritoncc/booking-service/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Dates []string `json:"dates"` // "2025-10-15", ascending
}

// FromUseCaseResponse converts the usecase response into the HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, len(resp.Dates))
	for i, date := range resp.Dates {
		dates[i] = date.Format(domain.DateFormat)
	}
	return &AvailableDatesResponse{Dates: dates}
}
