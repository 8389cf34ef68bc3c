package solar

import (
	"time"

	"hora-argentina/internal/types"
)

// EventStatus classifies the outcome of a single-day sunrise/sunset computation
type EventStatus string

const (
	StatusNormal     EventStatus = "NORMAL"
	StatusNoSunrise  EventStatus = "NO_SUNRISE"
	StatusNoSunset   EventStatus = "NO_SUNSET"
	StatusPolarDay   EventStatus = "POLAR_DAY"
	StatusPolarNight EventStatus = "POLAR_NIGHT"
)

// Horizon is the solar elevation angle, in degrees, at which a rise or set
// event is considered to occur
type Horizon float64

const (
	// HorizonOfficial places the sun's upper limb at the visible horizon,
	// accounting for atmospheric refraction and the solar disk radius
	HorizonOfficial     Horizon = -0.833
	HorizonCivil        Horizon = -6.0
	HorizonNautical     Horizon = -12.0
	HorizonAstronomical Horizon = -18.0
)

// HorizonByName maps a twilight definition name to its horizon angle
func HorizonByName(name string) (Horizon, bool) {
	switch name {
	case "", "official":
		return HorizonOfficial, true
	case "civil":
		return HorizonCivil, true
	case "nautical":
		return HorizonNautical, true
	case "astronomical":
		return HorizonAstronomical, true
	}
	return 0, false
}

// DayResult holds the UTC solar events for one location and calendar date.
// Sunrise and Sunset are nil when Status is not NORMAL. Instants are
// truncated to the minute; that precision is part of the contract.
type DayResult struct {
	Location  types.Coords
	Date      time.Time // midnight UTC of the civil date
	Sunrise   *time.Time
	Sunset    *time.Time
	SolarNoon time.Time
	DayLength time.Duration
	Status    EventStatus
}
