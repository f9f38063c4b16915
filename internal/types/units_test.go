package types

import "testing"

func TestParseUnitSystem(t *testing.T) {
	tests := []struct {
		input    string
		expected UnitSystem
	}{
		{"metric", Metric},
		{"imperial", Imperial},
		{"Imperial", Imperial},
		{" imperial ", Imperial},
		{"", Metric},
		{"kelvin", Metric},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseUnitSystem(tt.input); got != tt.expected {
				t.Errorf("ParseUnitSystem(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUnitSystem_Symbols(t *testing.T) {
	if Metric.TemperatureSymbol() != "°C" || Metric.WindSymbol() != "km/h" {
		t.Errorf("metric symbols = %q %q", Metric.TemperatureSymbol(), Metric.WindSymbol())
	}
	if Imperial.TemperatureSymbol() != "°F" || Imperial.WindSymbol() != "mph" {
		t.Errorf("imperial symbols = %q %q", Imperial.TemperatureSymbol(), Imperial.WindSymbol())
	}
	if Metric.Toggle() != Imperial || Imperial.Toggle() != Metric {
		t.Error("Toggle() should flip between metric and imperial")
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input    string
		expected Theme
	}{
		{"dark", Dark},
		{"light", Light},
		{"", Light},
		{"DARK", Light},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseTheme(tt.input); got != tt.expected {
				t.Errorf("ParseTheme(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewPlaceLabel(t *testing.T) {
	if got := NewPlaceLabel("London", "GB"); got != "London, GB" {
		t.Errorf("NewPlaceLabel() = %q, want %q", got, "London, GB")
	}
	if got := NewPlaceLabel("Atlantis", ""); got != "Atlantis" {
		t.Errorf("NewPlaceLabel() without country = %q, want %q", got, "Atlantis")
	}
}

func TestCoords_Validate(t *testing.T) {
	tests := []struct {
		name    string
		coords  Coords
		wantErr bool
	}{
		{"london", NewCoords(51.5074, -0.1278), false},
		{"north pole", NewCoords(90, 0), false},
		{"latitude too high", NewCoords(91, 0), true},
		{"longitude too low", NewCoords(0, -181), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coords.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
