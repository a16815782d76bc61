package domain

// Default scheduling configuration values
const (
	DefaultSlotDurationMinutes = 60
	DefaultBufferMinutes       = 30
	DefaultMinNoticeMinutes    = 120 // 2 hours
	DefaultLookAheadDays       = 14
	DefaultTimezone            = "Pacific/Honolulu"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxLookAheadDays       = 365 // 1 year
	MaxProjectDetailsLen   = 2000
	MaxCustomerFieldLen    = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses lists statuses that occupy a slot.
// Used when counting conflicts for availability.
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusTentative,
}

// InactiveStatuses lists statuses that free up a slot
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
