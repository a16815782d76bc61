package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
