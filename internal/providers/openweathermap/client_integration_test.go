//go:build integration

package openweathermap

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
)

func TestClient_Integration(t *testing.T) {
	apiKey := os.Getenv("SKYCAST_OPENWEATHERMAP_APIKEY")
	if apiKey == "" {
		t.Skip("SKYCAST_OPENWEATHERMAP_APIKEY not set")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	client := NewClient(Options{APIKey: apiKey}, logger)
	ctx := context.Background()

	matches, err := client.Geocode(ctx, "London", 1)
	if err != nil {
		t.Fatalf("Failed to geocode: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	t.Logf("Resolved %s, %s at lat=%f lon=%f", matches[0].Name, matches[0].Country, matches[0].Lat, matches[0].Lon)

	current, err := client.GetCurrent(ctx, matches[0].Lat, matches[0].Lon, "metric")
	if err != nil {
		t.Fatalf("Failed to get current conditions: %v", err)
	}

	rawJSON, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw current response:\n%s", string(rawJSON))

	forecast, err := client.GetForecast(ctx, matches[0].Lat, matches[0].Lon, "metric")
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}
	if len(forecast.List) == 0 {
		t.Fatal("Forecast list is empty")
	}
	t.Logf("Forecast contains %d samples", len(forecast.List))

	t.Log("✓ API calls successful, response structure valid")
}
