package weather

import (
	"time"

	"skycast/internal/providers/openweathermap"
	"skycast/internal/types"
)

// Report pairs current conditions with the raw forecast samples for one fetch
type Report struct {
	Coords    types.Coords
	Units     types.UnitSystem
	FetchedAt time.Time
	Current   types.CurrentConditions
	Forecast  []types.ForecastSample
}

func mapCurrent(resp *openweathermap.CurrentAPIResponse) types.CurrentConditions {
	condition := openweathermap.PrimaryCondition(resp.Weather)
	return types.CurrentConditions{
		Temperature:      resp.Main.Temp,
		FeelsLike:        resp.Main.FeelsLike,
		ConditionCode:    condition.Icon,
		ConditionMain:    condition.Main,
		Description:      condition.Description,
		WindSpeedRaw:     resp.Wind.Speed,
		HumidityPercent:  resp.Main.Humidity,
		PressureHPa:      resp.Main.Pressure,
		VisibilityMeters: resp.Visibility,
		Sunrise:          time.Unix(resp.Sys.Sunrise, 0).UTC(),
		Sunset:           time.Unix(resp.Sys.Sunset, 0).UTC(),
		PlaceName:        resp.Name,
		CountryCode:      resp.Sys.Country,
	}
}

func mapForecast(resp *openweathermap.ForecastAPIResponse) []types.ForecastSample {
	samples := make([]types.ForecastSample, 0, len(resp.List))
	for _, item := range resp.List {
		condition := openweathermap.PrimaryCondition(item.Weather)
		samples = append(samples, types.ForecastSample{
			Timestamp:     time.Unix(item.Dt, 0).UTC(),
			Temperature:   item.Main.Temp,
			ConditionCode: condition.Icon,
			ConditionMain: condition.Main,
			Description:   condition.Description,
		})
	}
	return samples
}
