package get_available_slots

import (
	"time"

	"github.com/tritoncc/booking-service/internal/domain"
	getAvailableSlots "github.com/tritoncc/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot is one bookable start time
type AvailableSlot struct {
	Time        string `json:"time"`        // "13:00"
	DisplayTime string `json:"displayTime"` // "1:00 PM"
}

// ToUseCaseRequest parses query parameters into the usecase request
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:        slot.StartTime.String(),
			DisplayTime: slot.DisplayTime,
		}
	}
	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
