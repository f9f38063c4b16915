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
		{"London", 51.5074, -0.1278, "Europe/London"},
		{"Sydney", -33.8688, 151.2093, "Australia/Sydney"},
		{"Reykjavik", 64.1466, -21.9426, "Atlantic/Reykjavik"},
		{"Honolulu", 21.3069, -157.8583, "Pacific/Honolulu"},
		{"Buenos Aires", -34.6037, -58.3816, "America/Argentina/Buenos_Aires"},
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

func TestService_Location(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	loc, err := svc.Location(51.5074, -0.1278)
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	if loc.String() != "Europe/London" {
		t.Errorf("Location() = %v, want Europe/London", loc)
	}
}

func TestFixed(t *testing.T) {
	var svc Service = Fixed{Loc: time.UTC}

	loc, err := svc.Location(0, 0)
	if err != nil || loc != time.UTC {
		t.Errorf("Fixed.Location() = %v, %v", loc, err)
	}
	name, _ := svc.GetTimezone(0, 0)
	if name != "UTC" {
		t.Errorf("Fixed.GetTimezone() = %q, want UTC", name)
	}
}
