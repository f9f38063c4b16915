package session

import (
	"time"

	"skycast/internal/forecast"
	"skycast/internal/format"
	"skycast/internal/theme"
	"skycast/internal/types"
	"skycast/internal/weather"
)

// View is the display-ready model of one weather report
type View struct {
	Place      string           `json:"place" example:"London, GB"`
	Date       string           `json:"date" example:"Sunday, March 10, 2024"`
	Unit       types.UnitSystem `json:"unit" example:"metric"`
	UnitSymbol string           `json:"unitSymbol" example:"°C"`
	Theme      types.Theme      `json:"theme" example:"light"`
	Background theme.Gradient   `json:"background"`
	Current    CurrentView      `json:"current"`
	Forecast   []ForecastDay    `json:"forecast"`
}

type CurrentView struct {
	Temperature string     `json:"temperature" example:"12"`
	FeelsLike   string     `json:"feelsLike" example:"11°C"`
	Description string     `json:"description" example:"broken clouds"`
	Icon        theme.Icon `json:"icon"`
	Wind        string     `json:"wind" example:"17 km/h"`
	Humidity    string     `json:"humidity" example:"78%"`
	Pressure    string     `json:"pressure" example:"1012 hPa"`
	Visibility  string     `json:"visibility" example:"10.0 km"`
	Sunrise     string     `json:"sunrise" example:"06:32 AM"`
	Sunset      string     `json:"sunset" example:"06:01 PM"`
}

// ForecastDay is one card of the multi-day forecast
type ForecastDay struct {
	Day         string     `json:"day" example:"Mon"`
	Date        string     `json:"date" example:"Mar 11"`
	Icon        theme.Icon `json:"icon"`
	Temperature string     `json:"temperature" example:"10°C"`
	Description string     `json:"description" example:"light rain"`
}

// Render builds the view for report. Dates and clock times are shown in loc,
// which also decides the local day boundaries of the forecast.
func Render(report *weather.Report, label types.PlaceLabel, th types.Theme, loc *time.Location, now time.Time) View {
	if loc == nil {
		loc = time.Local
	}

	symbol := report.Units.TemperatureSymbol()
	current := report.Current

	view := View{
		Place:      label.String(),
		Date:       format.LongDate(now.In(loc)),
		Unit:       report.Units,
		UnitSymbol: symbol,
		Theme:      th,
		Background: theme.GradientFor(current.ConditionMain, th.IsDark()),
		Current: CurrentView{
			Temperature: format.Temperature(current.Temperature),
			FeelsLike:   format.Temperature(current.FeelsLike) + symbol,
			Description: current.Description,
			Icon:        theme.IconFor(current.ConditionCode),
			Wind:        format.WindSpeed(current.WindSpeedRaw, report.Units) + " " + report.Units.WindSymbol(),
			Humidity:    format.Percent(current.HumidityPercent),
			Pressure:    format.Pressure(current.PressureHPa),
			Visibility:  format.Visibility(current.VisibilityMeters) + " km",
			Sunrise:     format.Clock(current.Sunrise, loc),
			Sunset:      format.Clock(current.Sunset, loc),
		},
	}

	days := forecast.Daily(report.Forecast, loc)
	view.Forecast = make([]ForecastDay, 0, len(days))
	for _, day := range days {
		local := day.Timestamp.In(loc)
		view.Forecast = append(view.Forecast, ForecastDay{
			Day:         format.Weekday(local),
			Date:        format.MonthDay(local),
			Icon:        theme.IconFor(day.ConditionCode),
			Temperature: format.Temperature(day.Temperature) + symbol,
			Description: day.Description,
		})
	}

	return view
}

// withTheme returns a copy of v using th for its background
func (v View) withTheme(th types.Theme, conditionMain string) View {
	v.Theme = th
	v.Background = theme.GradientFor(conditionMain, th.IsDark())
	return v
}
