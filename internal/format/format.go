// Package format converts raw weather values into display strings.
// Output follows en-US conventions.
package format

import (
	"math"
	"strconv"
	"time"

	"skycast/internal/types"
)

// MetersPerSecondToKph converts m/s, the metric wind unit returned upstream, to km/h
const MetersPerSecondToKph = 3.6

// LongDate returns e.g. "Monday, January 1, 2024"
func LongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// Weekday returns the short weekday, e.g. "Mon"
func Weekday(t time.Time) string {
	return t.Format("Mon")
}

// MonthDay returns e.g. "Jan 1"
func MonthDay(t time.Time) string {
	return t.Format("Jan 2")
}

// Clock returns a 12-hour clock time such as "07:05 AM" for t in loc.
// A nil loc means time.Local.
func Clock(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("03:04 PM")
}

// Round rounds half toward positive infinity, so -2.5 becomes -2
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Temperature returns v rounded to the nearest integer
func Temperature(v float64) string {
	return strconv.Itoa(Round(v))
}

// WindSpeed converts raw upstream wind speed to the display unit.
// Metric responses are assumed to be in m/s and are converted to km/h;
// imperial responses are assumed to already be in mph.
func WindSpeed(raw float64, units types.UnitSystem) string {
	if units == types.Metric {
		return strconv.Itoa(Round(raw * MetersPerSecondToKph))
	}
	return strconv.Itoa(Round(raw))
}

// Visibility converts meters to kilometers with one decimal place
func Visibility(meters float64) string {
	return strconv.FormatFloat(meters/1000, 'f', 1, 64)
}

func Percent(v int) string {
	return strconv.Itoa(v) + "%"
}

func Pressure(hPa int) string {
	return strconv.Itoa(hPa) + " hPa"
}
