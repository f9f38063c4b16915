package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"skycast/internal/providers/openweathermap"
	"skycast/internal/types"

	"github.com/sourcegraph/conc/pool"
)

// GeocodeProvider resolves place names to coordinates
type GeocodeProvider interface {
	Geocode(ctx context.Context, query string, limit int) ([]openweathermap.GeocodeResult, error)
}

// ConditionsProvider fetches current conditions and forecast samples
type ConditionsProvider interface {
	GetCurrent(ctx context.Context, latitude, longitude float64, units string) (*openweathermap.CurrentAPIResponse, error)
	GetForecast(ctx context.Context, latitude, longitude float64, units string) (*openweathermap.ForecastAPIResponse, error)
}

// Service resolves places and fetches weather. It holds no state between calls.
type Service interface {
	ResolvePlace(ctx context.Context, name string) (types.Coords, types.PlaceLabel, error)
	FetchWeather(ctx context.Context, coords types.Coords, units types.UnitSystem) (*Report, error)
}

type weatherService struct {
	geocoder   GeocodeProvider
	conditions ConditionsProvider
	logger     *slog.Logger
}

// NewWeatherService creates a service backed by one OpenWeatherMap client
func NewWeatherService(client *openweathermap.Client, logger *slog.Logger) Service {
	return NewWeatherServiceWithProviders(client, client, logger)
}

// NewWeatherServiceWithProviders creates a service with custom providers.
// This is useful for testing with mock providers.
func NewWeatherServiceWithProviders(
	geocoder GeocodeProvider,
	conditions ConditionsProvider,
	logger *slog.Logger,
) Service {
	return &weatherService{
		geocoder:   geocoder,
		conditions: conditions,
		logger:     logger.With("component", "weather-service"),
	}
}

// ResolvePlace geocodes name to its first match and a "Name, CC" label
func (s *weatherService) ResolvePlace(ctx context.Context, name string) (types.Coords, types.PlaceLabel, error) {
	matches, err := s.geocoder.Geocode(ctx, name, 1)
	if err != nil {
		var statusErr *openweathermap.StatusError
		if errors.As(err, &statusErr) {
			s.logger.Warn("geocoding rejected query",
				"query", name,
				"status_code", statusErr.StatusCode,
			)
			return types.Coords{}, "", &NotFoundError{Query: name, StatusCode: statusErr.StatusCode}
		}
		return types.Coords{}, "", fmt.Errorf("failed to resolve place %q: %w", name, err)
	}

	if len(matches) == 0 {
		s.logger.Info("no geocoding match", "query", name)
		return types.Coords{}, "", &NotFoundError{Query: name}
	}

	match := matches[0]
	label := types.NewPlaceLabel(match.Name, match.Country)

	s.logger.Debug("resolved place",
		"query", name,
		"label", label,
		"latitude", match.Lat,
		"longitude", match.Lon,
	)

	return types.NewCoords(match.Lat, match.Lon), label, nil
}

// FetchWeather requests current conditions and the forecast concurrently and
// returns only when both succeed. The first failure cancels the other request.
func (s *weatherService) FetchWeather(ctx context.Context, coords types.Coords, units types.UnitSystem) (*Report, error) {
	var (
		currentResp  *openweathermap.CurrentAPIResponse
		forecastResp *openweathermap.ForecastAPIResponse
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()

	p.Go(func(ctx context.Context) error {
		resp, err := s.conditions.GetCurrent(ctx, coords.Latitude, coords.Longitude, units.String())
		if err != nil {
			return upstreamError(openweathermap.EndpointCurrent, err)
		}
		currentResp = resp
		return nil
	})

	p.Go(func(ctx context.Context) error {
		resp, err := s.conditions.GetForecast(ctx, coords.Latitude, coords.Longitude, units.String())
		if err != nil {
			return upstreamError(openweathermap.EndpointForecast, err)
		}
		forecastResp = resp
		return nil
	})

	if err := p.Wait(); err != nil {
		s.logger.Error("failed to fetch weather",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"units", units.String(),
			"error", err,
		)
		return nil, err
	}

	report := &Report{
		Coords:    coords,
		Units:     units,
		FetchedAt: time.Now().UTC(),
		Current:   mapCurrent(currentResp),
		Forecast:  mapForecast(forecastResp),
	}

	s.logger.Debug("fetched weather",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"units", units.String(),
		"forecast_samples", len(report.Forecast),
	)

	return report, nil
}

func upstreamError(endpoint string, err error) error {
	var statusErr *openweathermap.StatusError
	if errors.As(err, &statusErr) {
		return &UpstreamError{Endpoint: endpoint, StatusCode: statusErr.StatusCode, Err: err}
	}
	return &UpstreamError{Endpoint: endpoint, Err: err}
}
