package create_booking

import (
	"time"

	"github.com/tritoncc/booking-service/internal/domain"
	createBooking "github.com/tritoncc/booking-service/internal/usecase/create_booking"
	"github.com/tritoncc/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date             string  `json:"date"`      // "2025-10-15"
	StartTime        string  `json:"startTime"` // "10:00"
	CustomerName     string  `json:"customerName"`
	CustomerPhone    string  `json:"customerPhone,omitempty"`
	CustomerEmail    string  `json:"customerEmail,omitempty"`
	ServiceType      string  `json:"serviceType,omitempty"`
	ConsultationType string  `json:"consultationType,omitempty"`
	ProjectDetails   *string `json:"projectDetails,omitempty"`
}

// BookingConfirmationResponse HTTP response model
type BookingConfirmationResponse struct {
	Reference    string `json:"reference"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	DisplayTime  string `json:"displayTime"`
	Status       string `json:"status"`
	CustomerName string `json:"customerName"`
	ServiceType  string `json:"serviceType,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ConflictResponse is the 409 body: the slot was taken, here is what is left
type ConflictResponse struct {
	Error          string          `json:"error"`
	AvailableSlots []AvailableSlot `json:"availableSlots"`
}

// AvailableSlot is one alternative bookable start time
type AvailableSlot struct {
	Time        string `json:"time"`
	DisplayTime string `json:"displayTime"`
}

// ToUseCaseRequest converts the HTTP request into the usecase request,
// parsing date and time
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:             date,
		StartTime:        startTime,
		CustomerName:     r.CustomerName,
		CustomerPhone:    r.CustomerPhone,
		CustomerEmail:    r.CustomerEmail,
		ServiceType:      r.ServiceType,
		ConsultationType: r.ConsultationType,
		ProjectDetails:   r.ProjectDetails,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingConfirmationResponse {
	return &BookingConfirmationResponse{
		Reference:    resp.Reference,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		DisplayTime:  resp.DisplayTime,
		Status:       resp.Status,
		CustomerName: resp.CustomerName,
		ServiceType:  resp.ServiceType,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}

// FromConflict converts a slot conflict into the 409 response body
func FromConflict(message string, conflict *createBooking.SlotConflictError) *ConflictResponse {
	slots := make([]AvailableSlot, len(conflict.AvailableSlots))
	for i, slot := range conflict.AvailableSlots {
		slots[i] = AvailableSlot{
			Time:        slot.StartTime.String(),
			DisplayTime: slot.DisplayTime,
		}
	}
	return &ConflictResponse{
		Error:          message,
		AvailableSlots: slots,
	}
}
