package create_booking

import (
	"fmt"

	"github.com/tritoncc/booking-service/internal/domain"
)

// validateRequest checks the request for missing or malformed fields
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerFieldLen ||
		len(req.CustomerPhone) > domain.MaxCustomerFieldLen ||
		len(req.CustomerEmail) > domain.MaxCustomerFieldLen ||
		len(req.ServiceType) > domain.MaxCustomerFieldLen ||
		len(req.ConsultationType) > domain.MaxCustomerFieldLen {
		return fmt.Errorf("%w: field exceeds %d characters", ErrInvalidInput, domain.MaxCustomerFieldLen)
	}

	if req.ProjectDetails != nil && len(*req.ProjectDetails) > domain.MaxProjectDetailsLen {
		return fmt.Errorf("%w: projectDetails exceeds %d characters", ErrInvalidInput, domain.MaxProjectDetailsLen)
	}

	return nil
}
