package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// API Docs: https://openweathermap.org/current, https://openweathermap.org/forecast5,
// https://openweathermap.org/api/geocoding-api
// Sample requests:
// - https://api.openweathermap.org/geo/1.0/direct?q=London&limit=1&appid=KEY
// - https://api.openweathermap.org/data/2.5/weather?lat=51.5&lon=-0.12&units=metric&appid=KEY
// - https://api.openweathermap.org/data/2.5/forecast?lat=51.5&lon=-0.12&units=metric&appid=KEY
const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultGeoURL  = "https://api.openweathermap.org/geo/1.0"
)

// Endpoint names used in errors and logs
const (
	EndpointGeocode  = "geocode"
	EndpointCurrent  = "current"
	EndpointForecast = "forecast"
)

// StatusError is returned when the API answers with a non-200 status
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s fetch returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

type Options struct {
	APIKey     string
	BaseURL    string
	GeoURL     string
	HTTPClient *http.Client
}

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	geoURL     string
	logger     *slog.Logger
}

func NewClient(opts Options, logger *slog.Logger) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	geoURL := opts.GeoURL
	if geoURL == "" {
		geoURL = DefaultGeoURL
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     opts.APIKey,
		baseURL:    baseURL,
		geoURL:     geoURL,
		logger:     logger.With("component", "openweathermap-client"),
	}
}

// Geocode resolves a free-text place name, returning at most limit matches
func (c *Client) Geocode(ctx context.Context, query string, limit int) ([]GeocodeResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))

	var results []GeocodeResult
	if err := c.get(ctx, EndpointGeocode, c.geoURL, "/direct", q, &results); err != nil {
		return nil, err
	}

	c.logger.Debug("geocoded place", "query", query, "matches", len(results))
	return results, nil
}

// GetCurrent fetches current conditions for the coordinates in the given unit system
func (c *Client) GetCurrent(ctx context.Context, latitude, longitude float64, units string) (*CurrentAPIResponse, error) {
	var apiResp CurrentAPIResponse
	if err := c.get(ctx, EndpointCurrent, c.baseURL, "/weather", coordQuery(latitude, longitude, units), &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetForecast fetches the 5 day / 3 hour forecast for the coordinates
func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64, units string) (*ForecastAPIResponse, error) {
	var apiResp ForecastAPIResponse
	if err := c.get(ctx, EndpointForecast, c.baseURL, "/forecast", coordQuery(latitude, longitude, units), &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("fetched forecast", "samples", len(apiResp.List))
	return &apiResp, nil
}

func coordQuery(latitude, longitude float64, units string) url.Values {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("units", units)
	return q
}

func (c *Client) get(ctx context.Context, endpoint, base, path string, q url.Values, out any) error {
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path += path

	// Logged URLs never carry the key
	c.logger.Debug("fetching OpenWeatherMap data", "endpoint", endpoint, "url", u.String()+"?"+q.Encode())

	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch OpenWeatherMap data", "endpoint", endpoint, "error", err)
		return fmt.Errorf("failed to fetch %s: %w", endpoint, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("OpenWeatherMap API returned error",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode OpenWeatherMap response", "endpoint", endpoint, "error", err)
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	return nil
}
