package clock

import "time"

// Clock supplies the current instant. Usecases sample it exactly once per
// logical operation so the minimum-notice check and persisted timestamps
// cannot drift apart.
type Clock interface {
	Now() time.Time
}

// BusinessClock reports time in the business's fixed local time zone.
// All civil-time comparisons in the service happen in this zone.
type BusinessClock struct {
	loc *time.Location
}

// NewBusinessClock creates a clock pinned to the given location
func NewBusinessClock(loc *time.Location) *BusinessClock {
	return &BusinessClock{loc: loc}
}

// Now returns the current time localized to the business time zone
func (c *BusinessClock) Now() time.Time {
	return time.Now().In(c.loc)
}
