package models

import (
	"time"

	"github.com/tritoncc/booking-service/internal/domain"
)

// BookingResponse is the DTO form of a booking
type BookingResponse struct {
	Reference   string `json:"reference"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "10:00"
	DisplayTime string `json:"displayTime"` // "10:00 AM"
	Status      string `json:"status"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`

	ServiceType      string  `json:"serviceType,omitempty"`
	ConsultationType string  `json:"consultationType,omitempty"`
	ProjectDetails   *string `json:"projectDetails,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AvailableSlotResponse is the DTO form of a bookable slot
type AvailableSlotResponse struct {
	Time        string `json:"time"`        // "13:00"
	DisplayTime string `json:"displayTime"` // "1:00 PM"
}

// DailyScheduleResponse is the operator dashboard composite for one date
type DailyScheduleResponse struct {
	Date           string                  `json:"date"`
	AvailableCount int                     `json:"availableCount"`
	BookedCount    int                     `json:"bookedCount"`
	Bookings       []BookingResponse       `json:"bookings"`
	AvailableSlots []AvailableSlotResponse `json:"availableSlots"`
}

// FromDomainBooking converts a domain booking into its DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		Reference:        b.Reference,
		BookingDate:      b.BookingDate.Format(domain.DateFormat),
		StartTime:        b.StartTime.String(),
		DisplayTime:      b.StartTime.Display(),
		Status:           string(b.Status),
		CustomerName:     b.CustomerName,
		CustomerPhone:    b.CustomerPhone,
		CustomerEmail:    b.CustomerEmail,
		ServiceType:      b.ServiceType,
		ConsultationType: b.ConsultationType,
		ProjectDetails:   b.ProjectDetails,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainSlots converts available slots into their DTO list
func FromDomainSlots(slots []domain.AvailableSlot) []AvailableSlotResponse {
	out := make([]AvailableSlotResponse, len(slots))
	for i, slot := range slots {
		out[i] = AvailableSlotResponse{
			Time:        slot.StartTime.String(),
			DisplayTime: slot.DisplayTime,
		}
	}
	return out
}
