// Package schedule projects a year of solar events for a location onto
// a set of civil time-offset policies, producing aligned annual tables
// that a chart can diff side by side.
package schedule

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hora-argentina/internal/policy"
	"hora-argentina/internal/solar"
	"hora-argentina/internal/types"
)

var (
	ErrInvalidLocation = errors.New("invalid location")
	ErrInvalidYear     = errors.New("year must be between 1 and 9999")
)

// Calculator computes the UTC solar events for one location and date
type Calculator interface {
	ComputeAtHorizon(coords types.Coords, date time.Time, horizon solar.Horizon) solar.DayResult
}

type Service interface {
	// ComputeDay returns the UTC solar events for a single date
	ComputeDay(coords types.Coords, date time.Time, horizon solar.Horizon) (*solar.DayResult, error)

	// ProjectYear computes every day of the year once in UTC and renders
	// the result under each policy, keyed by policy name
	ProjectYear(coords types.Coords, year int, policies []policy.Policy) (map[string]*AnnualSchedule, error)
}

type scheduleService struct {
	calculator Calculator
	logger     *slog.Logger
}

func NewService(logger *slog.Logger) Service {
	return NewServiceWithCalculator(solar.NewCalculator(), logger)
}

// NewServiceWithCalculator creates a schedule service with a custom
// calculator. This is useful for testing with a stub calculator.
func NewServiceWithCalculator(calculator Calculator, logger *slog.Logger) Service {
	return &scheduleService{
		calculator: calculator,
		logger:     logger.With("component", "schedule-service"),
	}
}

func (s *scheduleService) ComputeDay(coords types.Coords, date time.Time, horizon solar.Horizon) (*solar.DayResult, error) {
	if err := coords.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLocation, err)
	}
	result := s.calculator.ComputeAtHorizon(coords, date, horizon)
	return &result, nil
}

func (s *scheduleService) ProjectYear(coords types.Coords, year int, policies []policy.Policy) (map[string]*AnnualSchedule, error) {
	// Validate everything up front; no partial results on bad input
	if err := coords.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLocation, err)
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}
	if len(policies) == 0 {
		return nil, fmt.Errorf("%w: no policies given", policy.ErrInvalidPolicy)
	}
	seen := make(map[string]bool, len(policies))
	for _, p := range policies {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", policy.ErrInvalidPolicy, p.Name)
		}
		seen[p.Name] = true
	}

	days := daysInYear(year)
	schedules := make(map[string]*AnnualSchedule, len(policies))
	for _, p := range policies {
		schedules[p.Name] = &AnnualSchedule{
			Location: coords,
			Year:     year,
			Policy:   p,
			Days:     make([]DaySchedule, 0, days),
		}
	}

	// One calculator call per date; only the local rendering varies by policy
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for date := start; date.Year() == year; date = date.AddDate(0, 0, 1) {
		result := s.calculator.ComputeAtHorizon(coords, date, solar.HorizonOfficial)
		for _, p := range policies {
			sched := schedules[p.Name]
			sched.Days = append(sched.Days, renderDay(result, p))
		}
	}

	s.logger.Debug("projected year",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"year", year,
		"days", days,
		"policies", len(policies),
	)

	return schedules, nil
}

// renderDay maps one UTC day result into the local clock of the offset
// the policy resolves for that date
func renderDay(result solar.DayResult, p policy.Policy) DaySchedule {
	month, day := result.Date.Month(), result.Date.Day()
	loc := p.Location(month, day)

	sched := DaySchedule{
		Date:      result.Date,
		Offset:    p.OffsetFor(month, day),
		SolarNoon: result.SolarNoon.In(loc),
		DayLength: result.DayLength,
		Status:    result.Status,
	}
	if result.Sunrise != nil {
		local := result.Sunrise.In(loc)
		sched.Sunrise = &local
	}
	if result.Sunset != nil {
		local := result.Sunset.In(loc)
		sched.Sunset = &local
	}
	return sched
}

func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DiffSchedules returns the per-day clock-time differences between two
// schedules from the same projection. It fails if the schedules do not
// cover the same dates in the same order.
func DiffSchedules(a, b *AnnualSchedule) ([]DayDiff, error) {
	if len(a.Days) != len(b.Days) {
		return nil, fmt.Errorf("schedules are not aligned: %d vs %d days", len(a.Days), len(b.Days))
	}
	diffs := make([]DayDiff, 0, len(a.Days))
	for i := range a.Days {
		dayA, dayB := a.Days[i], b.Days[i]
		if !dayA.Date.Equal(dayB.Date) {
			return nil, fmt.Errorf("schedules are not aligned at index %d: %s vs %s",
				i, dayA.Date.Format("2006-01-02"), dayB.Date.Format("2006-01-02"))
		}
		diff := DayDiff{Date: dayA.Date}
		if dayA.Sunrise != nil && dayB.Sunrise != nil && dayA.Sunset != nil && dayB.Sunset != nil {
			diff.Comparable = true
			diff.SunriseMinutes = clockDiffMinutes(*dayA.Sunrise, *dayB.Sunrise)
			diff.SunsetMinutes = clockDiffMinutes(*dayA.Sunset, *dayB.Sunset)
		}
		diffs = append(diffs, diff)
	}
	return diffs, nil
}

// clockDiffMinutes compares wall-clock readings, normalized to
// (-720, 720] so a difference never spans more than half a day
func clockDiffMinutes(a, b time.Time) float64 {
	minutes := float64(minuteOfDay(a) - minuteOfDay(b))
	if minutes > 720 {
		minutes -= 1440
	} else if minutes <= -720 {
		minutes += 1440
	}
	return minutes
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
