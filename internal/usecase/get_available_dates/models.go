package get_available_dates

import "time"

// Request asks for the dates with at least one bookable slot
type Request struct {
	DaysAhead int // how many days past today to scan; non-positive yields nothing
}

// Response carries the available dates in ascending order
type Response struct {
	Dates []time.Time
}
