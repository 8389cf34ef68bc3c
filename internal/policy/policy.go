// Package policy models civil time-offset policies: rules that map a
// calendar date to a signed UTC offset. Argentina's time-zone debate is
// the motivating case (fixed UTC-3 today, fixed UTC-4 proposed, UTC-4
// with a UTC-3 summer window as a variant).
package policy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidPolicy = errors.New("invalid policy")

// Kind discriminates the closed set of policy variants
type Kind string

const (
	KindFixed    Kind = "fixed"
	KindSeasonal Kind = "seasonal"
)

// MonthDay is a recurring calendar day, independent of year
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay parses a "MM-DD" string, e.g. "12-21"
func ParseMonthDay(s string) (MonthDay, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: want MM-DD", s)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid day in %q: %w", s, err)
	}
	md := MonthDay{Month: time.Month(month), Day: day}
	if !md.Valid() {
		return MonthDay{}, fmt.Errorf("invalid month-day %q", s)
	}
	return md, nil
}

// Valid reports whether the month/day pair names a real calendar day.
// Feb 29 is accepted since the window recurs in leap years too.
func (md MonthDay) Valid() bool {
	if md.Month < time.January || md.Month > time.December {
		return false
	}
	daysInMonth := [...]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	return md.Day >= 1 && md.Day <= daysInMonth[md.Month-1]
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// compare orders two month-day pairs within a calendar year
func compare(a, b MonthDay) int {
	if a.Month != b.Month {
		if a.Month < b.Month {
			return -1
		}
		return 1
	}
	if a.Day != b.Day {
		if a.Day < b.Day {
			return -1
		}
		return 1
	}
	return 0
}

// Policy is a closed tagged variant: either a fixed year-round offset or
// a seasonal one with a summer window. Offsets are hours east of UTC.
type Policy struct {
	Name string
	Kind Kind

	// Offset applies year-round for KindFixed and outside the summer
	// window for KindSeasonal
	Offset float64

	// Seasonal fields; the window is inclusive on both ends and may wrap
	// the December/January boundary (southern-hemisphere summer)
	SummerOffset float64
	SummerStart  MonthDay
	SummerEnd    MonthDay
}

// Fixed returns a policy with a constant offset
func Fixed(name string, offset float64) Policy {
	return Policy{Name: name, Kind: KindFixed, Offset: offset}
}

// Seasonal returns a policy whose offset switches to summerOffset within
// the [start, end] window
func Seasonal(name string, base, summerOffset float64, start, end MonthDay) Policy {
	return Policy{
		Name:         name,
		Kind:         KindSeasonal,
		Offset:       base,
		SummerOffset: summerOffset,
		SummerStart:  start,
		SummerEnd:    end,
	}
}

// OffsetFor resolves the effective UTC offset in hours for a calendar day
func (p Policy) OffsetFor(month time.Month, day int) float64 {
	if p.Kind == KindSeasonal && p.inSummerWindow(MonthDay{Month: month, Day: day}) {
		return p.SummerOffset
	}
	return p.Offset
}

// inSummerWindow tests window membership by comparing month/day tuples.
// A window whose start sorts after its end wraps the year boundary.
func (p Policy) inSummerWindow(md MonthDay) bool {
	start, end := p.SummerStart, p.SummerEnd
	if compare(start, end) > 0 {
		return compare(md, start) >= 0 || compare(md, end) <= 0
	}
	return compare(md, start) >= 0 && compare(md, end) <= 0
}

// Validate checks the policy invariants: a usable name, offsets within
// [-12, +14] in half-hour steps, and for seasonal policies a
// non-degenerate window on real calendar days.
func (p Policy) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPolicy)
	}
	if p.Kind != KindFixed && p.Kind != KindSeasonal {
		return fmt.Errorf("%w %q: unknown kind %q", ErrInvalidPolicy, p.Name, p.Kind)
	}
	if err := validOffset(p.Offset); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidPolicy, p.Name, err)
	}
	if p.Kind == KindFixed {
		return nil
	}
	if err := validOffset(p.SummerOffset); err != nil {
		return fmt.Errorf("%w %q: summer %v", ErrInvalidPolicy, p.Name, err)
	}
	if !p.SummerStart.Valid() {
		return fmt.Errorf("%w %q: summer start %s is not a calendar day", ErrInvalidPolicy, p.Name, p.SummerStart)
	}
	if !p.SummerEnd.Valid() {
		return fmt.Errorf("%w %q: summer end %s is not a calendar day", ErrInvalidPolicy, p.Name, p.SummerEnd)
	}
	if compare(p.SummerStart, p.SummerEnd) == 0 {
		return fmt.Errorf("%w %q: summer window is a single day", ErrInvalidPolicy, p.Name)
	}
	return nil
}

func validOffset(hours float64) error {
	if hours < -12 || hours > 14 {
		return fmt.Errorf("offset %v h outside [-12, +14]", hours)
	}
	if hours*2 != float64(int(hours*2)) {
		return fmt.Errorf("offset %v h is not a whole or half hour", hours)
	}
	return nil
}

// Location returns a fixed-offset time.Location rendering local clock
// times under the offset this policy resolves for the given day
func (p Policy) Location(month time.Month, day int) *time.Location {
	offset := p.OffsetFor(month, day)
	return time.FixedZone(zoneName(offset), int(offset*3600))
}

func zoneName(offset float64) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := int(offset)
	minutes := int((offset - float64(hours)) * 60)
	return fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes)
}
