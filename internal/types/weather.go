package types

import "time"

// CurrentConditions is a snapshot of the weather at a location.
// It is replaced wholesale on every fetch.
type CurrentConditions struct {
	Temperature      float64
	FeelsLike        float64
	ConditionCode    string // icon code, e.g. "10d"
	ConditionMain    string // coarse category, e.g. "Rain"
	Description      string
	WindSpeedRaw     float64 // m/s under metric, mph under imperial
	HumidityPercent  int
	PressureHPa      int
	VisibilityMeters float64
	Sunrise          time.Time
	Sunset           time.Time
	PlaceName        string
	CountryCode      string
}

// ForecastSample is one sub-daily forecast step
type ForecastSample struct {
	Timestamp     time.Time
	Temperature   float64
	ConditionCode string
	ConditionMain string
	Description   string
}
