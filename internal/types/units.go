package types

import "strings"

// UnitSystem selects the measurement convention requested from the upstream API
// and used for display
type UnitSystem int

const (
	Metric UnitSystem = iota
	Imperial
)

// ParseUnitSystem maps a stored or requested value to a UnitSystem.
// Anything other than "imperial" is treated as metric.
func ParseUnitSystem(s string) UnitSystem {
	if strings.EqualFold(strings.TrimSpace(s), "imperial") {
		return Imperial
	}
	return Metric
}

// String returns the value sent as the OpenWeatherMap "units" parameter
func (u UnitSystem) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

func (u UnitSystem) Toggle() UnitSystem {
	if u == Imperial {
		return Metric
	}
	return Imperial
}

func (u UnitSystem) TemperatureSymbol() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

func (u UnitSystem) WindSymbol() string {
	if u == Imperial {
		return "mph"
	}
	return "km/h"
}

// MarshalText lets the unit system appear as "metric"/"imperial" in JSON
func (u UnitSystem) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *UnitSystem) UnmarshalText(text []byte) error {
	*u = ParseUnitSystem(string(text))
	return nil
}
