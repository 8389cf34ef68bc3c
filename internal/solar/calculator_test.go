package solar

import (
	"testing"
	"time"

	"hora-argentina/internal/types"
)

var (
	buenosAires = types.NewCoords(-34.6037, -58.3816)
	ushuaia     = types.NewCoords(-54.8, -68.3)
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// utcWindow asserts that got falls within [min, max] on the expected day
func utcWindow(t *testing.T, label string, got *time.Time, min, max time.Time) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s is nil", label)
	}
	if got.Before(min) || got.After(max) {
		t.Errorf("%s = %v, want between %v and %v", label, got, min, max)
	}
}

func TestCompute_BuenosAires(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name            string
		date            time.Time
		sunriseEarliest string // UTC, HH:MM
		sunriseLatest   string
		sunsetEarliest  string
		sunsetLatest    string
	}{
		{
			// Local summer: sunrise ~05:44, sunset ~20:09 at UTC-3
			name:            "new year",
			date:            date(2025, time.January, 1),
			sunriseEarliest: "08:30", sunriseLatest: "09:00",
			sunsetEarliest: "22:50", sunsetLatest: "23:25",
		},
		{
			// Local winter solstice: sunrise ~08:00, sunset ~17:50 at UTC-3
			name:            "winter solstice",
			date:            date(2025, time.June, 21),
			sunriseEarliest: "10:45", sunriseLatest: "11:15",
			sunsetEarliest: "20:35", sunsetLatest: "21:05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.Compute(buenosAires, tt.date)

			if result.Status != StatusNormal {
				t.Fatalf("Status = %v, want %v", result.Status, StatusNormal)
			}

			parse := func(hhmm string) time.Time {
				parsed, err := time.Parse("15:04", hhmm)
				if err != nil {
					t.Fatalf("bad test window %q: %v", hhmm, err)
				}
				return time.Date(tt.date.Year(), tt.date.Month(), tt.date.Day(),
					parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
			}

			utcWindow(t, "Sunrise", result.Sunrise, parse(tt.sunriseEarliest), parse(tt.sunriseLatest))
			utcWindow(t, "Sunset", result.Sunset, parse(tt.sunsetEarliest), parse(tt.sunsetLatest))

			if !result.Sunrise.Before(*result.Sunset) {
				t.Errorf("Sunrise %v not before Sunset %v", result.Sunrise, result.Sunset)
			}
			if got := result.Sunset.Sub(*result.Sunrise); got != result.DayLength {
				t.Errorf("DayLength = %v, want %v", result.DayLength, got)
			}
		})
	}
}

func TestCompute_MinutePrecision(t *testing.T) {
	calc := NewCalculator()
	result := calc.Compute(buenosAires, date(2025, time.March, 10))

	for label, instant := range map[string]time.Time{
		"Sunrise":   *result.Sunrise,
		"Sunset":    *result.Sunset,
		"SolarNoon": result.SolarNoon,
	} {
		if instant.Second() != 0 || instant.Nanosecond() != 0 {
			t.Errorf("%s = %v, want truncated to the minute", label, instant)
		}
	}
}

func TestCompute_TimeOfDayIgnored(t *testing.T) {
	calc := NewCalculator()

	midnight := calc.Compute(buenosAires, date(2025, time.May, 5))
	evening := calc.Compute(buenosAires, time.Date(2025, time.May, 5, 23, 45, 12, 0, time.UTC))

	if !midnight.Sunrise.Equal(*evening.Sunrise) || !midnight.Sunset.Equal(*evening.Sunset) {
		t.Errorf("results differ by time of day: %v/%v vs %v/%v",
			midnight.Sunrise, midnight.Sunset, evening.Sunrise, evening.Sunset)
	}
}

func TestCompute_PolarConditions(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name   string
		coords types.Coords
		date   time.Time
		want   EventStatus
	}{
		{
			name:   "arctic midwinter",
			coords: types.NewCoords(85, 0),
			date:   date(2025, time.December, 21),
			want:   StatusPolarNight,
		},
		{
			name:   "arctic midsummer",
			coords: types.NewCoords(85, 0),
			date:   date(2025, time.June, 21),
			want:   StatusPolarDay,
		},
		{
			name:   "antarctic midsummer",
			coords: types.NewCoords(-85, 0),
			date:   date(2025, time.December, 21),
			want:   StatusPolarDay,
		},
		{
			name:   "antarctic midwinter",
			coords: types.NewCoords(-85, 0),
			date:   date(2025, time.June, 21),
			want:   StatusPolarNight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.Compute(tt.coords, tt.date)

			if result.Status != tt.want {
				t.Errorf("Status = %v, want %v", result.Status, tt.want)
			}
			if result.Sunrise != nil || result.Sunset != nil {
				t.Errorf("Sunrise/Sunset = %v/%v, want both nil", result.Sunrise, result.Sunset)
			}
		})
	}
}

func TestCompute_UshuaiaMidsummerIsNotPolar(t *testing.T) {
	// Argentina's southern extent gets very long December days but never
	// a true midnight sun; this exercises the threshold, not the branch
	calc := NewCalculator()
	result := calc.Compute(ushuaia, date(2025, time.December, 21))

	if result.Status != StatusNormal {
		t.Fatalf("Status = %v, want %v", result.Status, StatusNormal)
	}
	if result.DayLength < 17*time.Hour {
		t.Errorf("DayLength = %v, want at least 17h", result.DayLength)
	}
	if result.DayLength > 18*time.Hour {
		t.Errorf("DayLength = %v, want at most 18h", result.DayLength)
	}
}

func TestCompute_EquinoxDayLength(t *testing.T) {
	calc := NewCalculator()
	result := calc.Compute(buenosAires, date(2025, time.March, 20))

	if result.Status != StatusNormal {
		t.Fatalf("Status = %v, want %v", result.Status, StatusNormal)
	}

	// Near the equinox daylight runs slightly over 12h because the
	// official horizon sits below the geometric one
	if result.DayLength < 11*time.Hour+50*time.Minute || result.DayLength > 12*time.Hour+25*time.Minute {
		t.Errorf("DayLength = %v, want about 12h", result.DayLength)
	}
}

func TestComputeAtHorizon_TwilightOrdering(t *testing.T) {
	calc := NewCalculator()
	day := date(2025, time.April, 10)

	official := calc.ComputeAtHorizon(buenosAires, day, HorizonOfficial)
	civil := calc.ComputeAtHorizon(buenosAires, day, HorizonCivil)
	nautical := calc.ComputeAtHorizon(buenosAires, day, HorizonNautical)
	astronomical := calc.ComputeAtHorizon(buenosAires, day, HorizonAstronomical)

	results := []DayResult{official, civil, nautical, astronomical}
	for i := 1; i < len(results); i++ {
		if results[i].Status != StatusNormal {
			t.Fatalf("result %d status = %v, want %v", i, results[i].Status, StatusNormal)
		}
		if !results[i].Sunrise.Before(*results[i-1].Sunrise) {
			t.Errorf("deeper horizon sunrise %v not before %v", results[i].Sunrise, results[i-1].Sunrise)
		}
		if !results[i].Sunset.After(*results[i-1].Sunset) {
			t.Errorf("deeper horizon sunset %v not after %v", results[i].Sunset, results[i-1].Sunset)
		}
	}
}

func TestCompute_LeapDay(t *testing.T) {
	calc := NewCalculator()
	result := calc.Compute(buenosAires, date(2024, time.February, 29))

	if result.Status != StatusNormal {
		t.Fatalf("Status = %v, want %v", result.Status, StatusNormal)
	}
	if !result.Date.Equal(date(2024, time.February, 29)) {
		t.Errorf("Date = %v, want 2024-02-29", result.Date)
	}
	if result.Sunrise.Day() != 29 {
		t.Errorf("Sunrise day = %d, want 29", result.Sunrise.Day())
	}
}

func TestHorizonByName(t *testing.T) {
	tests := []struct {
		input  string
		want   Horizon
		wantOk bool
	}{
		{"", HorizonOfficial, true},
		{"official", HorizonOfficial, true},
		{"civil", HorizonCivil, true},
		{"nautical", HorizonNautical, true},
		{"astronomical", HorizonAstronomical, true},
		{"golden", 0, false},
	}

	for _, tt := range tests {
		got, ok := HorizonByName(tt.input)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("HorizonByName(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOk)
		}
	}
}
