package forecast

import (
	"time"

	"skycast/internal/types"
)

// MaxDays is the number of daily entries shown after the current day
const MaxDays = 5

const noonHour = 12

type dateKey struct {
	year  int
	month time.Month
	day   int
}

// Daily reduces chronologically ordered sub-daily samples to one sample per
// calendar day in loc, choosing the sample whose hour is closest to noon.
// The first calendar day present is dropped and at most MaxDays days follow.
// A nil loc means time.Local.
func Daily(samples []types.ForecastSample, loc *time.Location) []types.ForecastSample {
	if loc == nil {
		loc = time.Local
	}

	var (
		order  []dateKey
		chosen = make(map[dateKey]types.ForecastSample)
	)

	for _, sample := range samples {
		local := sample.Timestamp.In(loc)
		year, month, day := local.Date()
		key := dateKey{year, month, day}

		existing, ok := chosen[key]
		if !ok {
			order = append(order, key)
			chosen[key] = sample
			continue
		}

		// Equal distance keeps the earlier sample
		if distanceFromNoon(local) < distanceFromNoon(existing.Timestamp.In(loc)) {
			chosen[key] = sample
		}
	}

	if len(order) <= 1 {
		return []types.ForecastSample{}
	}

	order = order[1:]
	if len(order) > MaxDays {
		order = order[:MaxDays]
	}

	daily := make([]types.ForecastSample, 0, len(order))
	for _, key := range order {
		daily = append(daily, chosen[key])
	}
	return daily
}

func distanceFromNoon(t time.Time) int {
	d := t.Hour() - noonHour
	if d < 0 {
		return -d
	}
	return d
}
