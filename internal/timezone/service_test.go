package timezone

import (
	"testing"
	"time"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Buenos Aires",
			latitude:  -34.6037,
			longitude: -58.3816,
			want:      "America/Argentina/Buenos_Aires",
		},
		{
			name:      "Mendoza",
			latitude:  -32.8895,
			longitude: -68.8458,
			want:      "America/Argentina/Mendoza",
		},
		{
			name:      "Ushuaia",
			latitude:  -54.8019,
			longitude: -68.3030,
			want:      "America/Argentina/Ushuaia",
		},
		{
			name:      "Santiago de Chile",
			latitude:  -33.4489,
			longitude: -70.6693,
			want:      "America/Santiago",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_GetZoneOffset(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	// Argentina has observed UTC-3 year-round since 2009
	at := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	name, offset, err := svc.GetZoneOffset(-34.6037, -58.3816, at)
	if err != nil {
		t.Fatalf("GetZoneOffset() error = %v", err)
	}
	if name != "America/Argentina/Buenos_Aires" {
		t.Errorf("zone name = %q, want America/Argentina/Buenos_Aires", name)
	}
	if offset != -3 {
		t.Errorf("offset = %v, want -3", offset)
	}
}
