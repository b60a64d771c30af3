package domain

import (
	"time"
)

// TripDetails carries the trip metadata shown in the document front matter.
// Immutable once constructed; dates are calendar dates (midnight local).
type TripDetails struct {
	StartLocation string
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
}

// DurationDays is the inclusive day count of the trip: a same-day trip is
// 1 day. EndDate before StartDate is not validated; the result is rendered
// as-is (zero or negative).
func (t TripDetails) DurationDays() int {
	start := midnight(t.StartDate)
	end := midnight(t.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
