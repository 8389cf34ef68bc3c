// Package solar computes sunrise, sunset and solar noon instants from
// first principles using the NOAA solar position equations (Meeus),
// so the edge-case behavior is fully owned rather than hidden behind
// an astronomical library.
package solar

import (
	"math"
	"time"

	"hora-argentina/internal/types"
)

// Calculator derives the UTC instants of solar events for a single
// location and date. It is stateless and safe for concurrent use.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Compute returns the solar events for the given civil date at the official
// horizon. The date's year, month and day are taken as a proleptic Gregorian
// calendar date; any time-of-day or zone on the value is ignored.
func (c *Calculator) Compute(coords types.Coords, date time.Time) DayResult {
	return c.ComputeAtHorizon(coords, date, HorizonOfficial)
}

// ComputeAtHorizon is Compute with an explicit twilight horizon.
func (c *Calculator) ComputeAtHorizon(coords types.Coords, date time.Time, horizon Horizon) DayResult {
	year, month, day := date.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	// Julian day at 12:00 UTC of the civil date
	jd := float64(julianDayNumber(year, int(month), day))
	jc := julianCentury(jd)

	noonHours := solarNoonUTC(coords.Longitude, jc)
	result := DayResult{
		Location:  coords,
		Date:      midnight,
		SolarNoon: instantAt(midnight, noonHours),
	}

	cosH := hourAngleCos(coords.Latitude, jc, float64(horizon))
	switch {
	case cosH < -1:
		// Sun stays above the horizon all day
		result.Status = StatusPolarDay
		result.DayLength = 24 * time.Hour
		return result
	case cosH > 1:
		result.Status = StatusPolarNight
		return result
	}

	haHours := degrees(math.Acos(cosH)) / 15.0
	sunrise := instantAt(midnight, noonHours-haHours)
	sunset := instantAt(midnight, noonHours+haHours)

	result.Sunrise = &sunrise
	result.Sunset = &sunset
	result.DayLength = sunset.Sub(sunrise)
	result.Status = StatusNormal
	return result
}

// instantAt converts decimal hours after midnight UTC into an absolute
// instant, truncated to the minute.
func instantAt(midnight time.Time, hours float64) time.Time {
	minutes := math.Floor(hours * 60.0)
	return midnight.Add(time.Duration(minutes) * time.Minute)
}

// julianDayNumber converts a Gregorian date to the Julian Day Number of
// its noon (Fliegel-Van Flandern).
func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

func julianCentury(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }
func degrees(rad float64) float64 { return rad * 180.0 / math.Pi }

// geomMeanLongSun returns the geometric mean longitude of the sun in degrees
func geomMeanLongSun(jc float64) float64 {
	l0 := 280.46646 + jc*(36000.76983+jc*0.0003032)
	return math.Mod(l0, 360)
}

// geomMeanAnomSun returns the geometric mean anomaly of the sun in degrees
func geomMeanAnomSun(jc float64) float64 {
	return 357.52911 + jc*(35999.05029-0.0001537*jc)
}

func eccentEarthOrbit(jc float64) float64 {
	return 0.016708634 - jc*(0.000042037+0.0000001267*jc)
}

// sunEqOfCenter returns the sun's equation of center in degrees
func sunEqOfCenter(jc float64) float64 {
	m := radians(geomMeanAnomSun(jc))
	return math.Sin(m)*(1.914602-jc*(0.004817+0.000014*jc)) +
		math.Sin(2*m)*(0.019993-0.000101*jc) +
		math.Sin(3*m)*0.000289
}

// sunApparentLong returns the sun's apparent longitude in degrees,
// corrected for nutation and aberration
func sunApparentLong(jc float64) float64 {
	trueLong := geomMeanLongSun(jc) + sunEqOfCenter(jc)
	omega := 125.04 - 1934.136*jc
	return trueLong - 0.00569 - 0.00478*math.Sin(radians(omega))
}

// obliqCorr returns the corrected obliquity of the ecliptic in degrees
func obliqCorr(jc float64) float64 {
	seconds := 21.448 - jc*(46.8150+jc*(0.00059-jc*0.001813))
	e0 := 23.0 + (26.0+seconds/60.0)/60.0
	omega := 125.04 - 1934.136*jc
	return e0 + 0.00256*math.Cos(radians(omega))
}

// sunDeclination returns the sun's declination in degrees
func sunDeclination(jc float64) float64 {
	sint := math.Sin(radians(obliqCorr(jc))) * math.Sin(radians(sunApparentLong(jc)))
	return degrees(math.Asin(sint))
}

// equationOfTime returns the difference between apparent and mean solar
// time, in minutes
func equationOfTime(jc float64) float64 {
	e := obliqCorr(jc)
	y := math.Tan(radians(e)/2.0) * math.Tan(radians(e)/2.0)
	l0 := radians(geomMeanLongSun(jc))
	ecc := eccentEarthOrbit(jc)
	m := radians(geomMeanAnomSun(jc))

	etime := y*math.Sin(2*l0) -
		2.0*ecc*math.Sin(m) +
		4.0*ecc*y*math.Sin(m)*math.Cos(2*l0) -
		0.5*y*y*math.Sin(4*l0) -
		1.25*ecc*ecc*math.Sin(2*m)
	return degrees(etime) * 4.0
}

// solarNoonUTC returns the UTC time of local solar noon in decimal hours
func solarNoonUTC(longitude, jc float64) float64 {
	return (720.0 - 4.0*longitude - equationOfTime(jc)) / 60.0
}

// hourAngleCos returns the cosine of the hour angle at which the sun
// reaches the given elevation. Values outside [-1, 1] mean the sun never
// crosses that elevation on the given day: below -1 it stays above
// (polar day), above 1 it stays below (polar night).
func hourAngleCos(latitude, jc, elevation float64) float64 {
	lat := radians(latitude)
	decl := radians(sunDeclination(jc))
	return math.Cos(radians(90.0-elevation))/(math.Cos(lat)*math.Cos(decl)) -
		math.Tan(lat)*math.Tan(decl)
}
