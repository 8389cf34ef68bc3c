package schedule

import (
	"time"

	"hora-argentina/internal/policy"
	"hora-argentina/internal/solar"
	"hora-argentina/internal/types"
)

// DaySchedule is one day of an annual schedule: the UTC solar events of
// the day rendered as local clock times under the owning policy's
// resolved offset. Status is copied from the UTC result unchanged.
type DaySchedule struct {
	Date      time.Time // midnight UTC of the civil date
	Offset    float64   // resolved UTC offset in hours for this date
	Sunrise   *time.Time
	Sunset    *time.Time
	SolarNoon time.Time
	DayLength time.Duration
	Status    solar.EventStatus
}

// AnnualSchedule holds every day of a year for one location under one
// policy. Schedules produced by the same projection share identical date
// ordering, so days can be compared index-by-index across policies.
type AnnualSchedule struct {
	Location types.Coords
	Year     int
	Policy   policy.Policy
	Days     []DaySchedule
}

// DayDiff is the per-day clock-time difference between two schedules
type DayDiff struct {
	Date time.Time

	// Positive minutes mean the first schedule's clock reads later.
	// Comparable is false when either day lacks the event.
	SunriseMinutes float64
	SunsetMinutes  float64
	Comparable     bool
}
