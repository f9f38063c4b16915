package config

import (
	"os"
	"testing"
	"time"
)

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_DefaultsWithEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SKYCAST_OPENWEATHERMAP_APIKEY", "test-key")
	t.Setenv("SKYCAST_SERVER_PORT", "9090")
	t.Setenv("SKYCAST_APP_DEFAULTCITY", "Paris")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OpenWeatherMap.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want %q", cfg.OpenWeatherMap.APIKey, "test-key")
	}
	if cfg.GetServerAddr() != ":9090" {
		t.Errorf("GetServerAddr() = %q, want %q", cfg.GetServerAddr(), ":9090")
	}
	if cfg.App.DefaultCity != "Paris" {
		t.Errorf("DefaultCity = %q, want %q", cfg.App.DefaultCity, "Paris")
	}
	if cfg.Notifications.Duration != 3*time.Second {
		t.Errorf("Notifications.Duration = %v, want 3s", cfg.Notifications.Duration)
	}
	if cfg.Sessions.IdleTTL != 30*time.Minute {
		t.Errorf("Sessions.IdleTTL = %v, want 30m", cfg.Sessions.IdleTTL)
	}
	if cfg.OpenWeatherMap.BaseURL != "https://api.openweathermap.org/data/2.5" {
		t.Errorf("BaseURL = %q", cfg.OpenWeatherMap.BaseURL)
	}
	if cfg.TimezoneOverride() != nil {
		t.Error("TimezoneOverride() should be nil when app.timezone is empty")
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SKYCAST_OPENWEATHERMAP_APIKEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for missing API key")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		App:            AppConfig{DefaultCity: "London"},
		OpenWeatherMap: OpenWeatherMapConfig{APIKey: "k"},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"valid timezone", func(c *Config) { c.App.Timezone = "UTC" }, false},
		{"invalid timezone", func(c *Config) { c.App.Timezone = "Mars/Olympus" }, true},
		{"empty default city", func(c *Config) { c.App.DefaultCity = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "text", ""} {
		cfg := &Config{Log: LogConfig{Level: "debug", Format: format}}
		if cfg.NewLogger() == nil {
			t.Errorf("NewLogger() returned nil for format %q", format)
		}
	}
}
