package policy

import (
	"errors"
	"testing"
	"time"
)

func TestFixedOffsetFor(t *testing.T) {
	p := Fixed("utc-3", -3)

	dates := []struct {
		month time.Month
		day   int
	}{
		{time.January, 1},
		{time.June, 21},
		{time.December, 31},
	}

	for _, d := range dates {
		if got := p.OffsetFor(d.month, d.day); got != -3 {
			t.Errorf("OffsetFor(%v, %d) = %v, want -3", d.month, d.day, got)
		}
	}
}

func TestSeasonalOffsetFor_WrappingWindow(t *testing.T) {
	// Southern-hemisphere summer window crossing the year boundary
	p := Seasonal("summer-time", -4, -3,
		MonthDay{Month: time.December, Day: 21},
		MonthDay{Month: time.March, Day: 1},
	)

	tests := []struct {
		name  string
		month time.Month
		day   int
		want  float64
	}{
		{
			name:  "mid-January inside the wrapped window",
			month: time.January,
			day:   15,
			want:  -3,
		},
		{
			name:  "mid-June outside",
			month: time.June,
			day:   15,
			want:  -4,
		},
		{
			name:  "window start inclusive",
			month: time.December,
			day:   21,
			want:  -3,
		},
		{
			name:  "window end inclusive",
			month: time.March,
			day:   1,
			want:  -3,
		},
		{
			name:  "day before window start",
			month: time.December,
			day:   20,
			want:  -4,
		},
		{
			name:  "day after window end",
			month: time.March,
			day:   2,
			want:  -4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.OffsetFor(tt.month, tt.day); got != tt.want {
				t.Errorf("OffsetFor(%v, %d) = %v, want %v", tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestSeasonalOffsetFor_NonWrappingWindow(t *testing.T) {
	// Northern-hemisphere style window within one calendar year
	p := Seasonal("dst", 1, 2,
		MonthDay{Month: time.March, Day: 31},
		MonthDay{Month: time.October, Day: 27},
	)

	if got := p.OffsetFor(time.July, 15); got != 2 {
		t.Errorf("OffsetFor(July 15) = %v, want 2", got)
	}
	if got := p.OffsetFor(time.January, 15); got != 1 {
		t.Errorf("OffsetFor(January 15) = %v, want 1", got)
	}
	if got := p.OffsetFor(time.December, 25); got != 1 {
		t.Errorf("OffsetFor(December 25) = %v, want 1", got)
	}
}

func TestPolicyValidate(t *testing.T) {
	validWindow := func(p Policy) Policy {
		p.SummerStart = MonthDay{Month: time.October, Day: 1}
		p.SummerEnd = MonthDay{Month: time.March, Day: 31}
		return p
	}

	tests := []struct {
		name    string
		policy  Policy
		wantErr bool
	}{
		{
			name:    "valid fixed policy",
			policy:  Fixed("utc-3", -3),
			wantErr: false,
		},
		{
			name:    "valid half-hour offset",
			policy:  Fixed("newfoundland", -3.5),
			wantErr: false,
		},
		{
			name: "valid seasonal policy",
			policy: Seasonal("verano", -4, -3,
				MonthDay{Month: time.October, Day: 1},
				MonthDay{Month: time.March, Day: 31}),
			wantErr: false,
		},
		{
			name:    "empty name",
			policy:  Fixed("", -3),
			wantErr: true,
		},
		{
			name:    "offset below -12",
			policy:  Fixed("too-west", -12.5),
			wantErr: true,
		},
		{
			name:    "offset above +14",
			policy:  Fixed("too-east", 14.5),
			wantErr: true,
		},
		{
			name:    "offset not a half hour",
			policy:  Fixed("odd", -3.25),
			wantErr: true,
		},
		{
			name:    "unknown kind",
			policy:  Policy{Name: "mystery", Kind: Kind("lunar"), Offset: -3},
			wantErr: true,
		},
		{
			name:    "summer offset out of range",
			policy:  validWindow(Seasonal("verano", -4, 15, MonthDay{}, MonthDay{})),
			wantErr: true,
		},
		{
			name: "summer start not a calendar day",
			policy: Seasonal("verano", -4, -3,
				MonthDay{Month: time.February, Day: 30},
				MonthDay{Month: time.March, Day: 31}),
			wantErr: true,
		},
		{
			name: "summer end month out of range",
			policy: Seasonal("verano", -4, -3,
				MonthDay{Month: time.October, Day: 1},
				MonthDay{Month: 13, Day: 1}),
			wantErr: true,
		},
		{
			name: "degenerate single-day window",
			policy: Seasonal("verano", -4, -3,
				MonthDay{Month: time.October, Day: 1},
				MonthDay{Month: time.October, Day: 1}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidPolicy) {
					t.Errorf("Validate() error = %v, want ErrInvalidPolicy", err)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestParseMonthDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    MonthDay
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "12-21",
			want:  MonthDay{Month: time.December, Day: 21},
		},
		{
			name:  "leap day",
			input: "02-29",
			want:  MonthDay{Month: time.February, Day: 29},
		},
		{
			name:    "missing separator",
			input:   "1221",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "13-01",
			wantErr: true,
		},
		{
			name:    "day out of range",
			input:   "04-31",
			wantErr: true,
		},
		{
			name:    "not numeric",
			input:   "oct-01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonthDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMonthDay(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMonthDay(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMonthDay(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPolicyLocation(t *testing.T) {
	p := Seasonal("verano", -4, -3,
		MonthDay{Month: time.October, Day: 1},
		MonthDay{Month: time.March, Day: 31},
	)

	utcInstant := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

	summer := utcInstant.In(p.Location(time.January, 15))
	if summer.Hour() != 9 {
		t.Errorf("summer local hour = %d, want 9", summer.Hour())
	}

	winter := utcInstant.In(p.Location(time.June, 15))
	if winter.Hour() != 8 {
		t.Errorf("winter local hour = %d, want 8", winter.Hour())
	}

	if name := winter.Format("MST"); name != "UTC-04:00" {
		t.Errorf("zone name = %q, want UTC-04:00", name)
	}
}
