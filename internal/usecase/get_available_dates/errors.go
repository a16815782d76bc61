package get_available_dates

import "errors"

var (
	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("get_available_dates: internal error")
)
