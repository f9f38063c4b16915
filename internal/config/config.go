package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server         ServerConfig
	Log            LogConfig
	App            AppConfig
	OpenWeatherMap OpenWeatherMapConfig
	Nominatim      NominatimConfig
	Storage        StorageConfig
	Sessions       SessionsConfig
	Notifications  NotificationsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	DefaultCity string // searched when geolocation is unavailable
	Timezone    string // IANA name or "Local"; empty resolves per location
}

// OpenWeatherMapConfig holds upstream weather API settings
type OpenWeatherMapConfig struct {
	APIKey  string
	BaseURL string
	GeoURL  string
	Timeout time.Duration
}

// NominatimConfig holds reverse geocoding settings
type NominatimConfig struct {
	BaseURL   string
	UserAgent string
}

type StorageConfig struct {
	Path string // sqlite file holding preferences
}

type SessionsConfig struct {
	IdleTTL       time.Duration
	SweepSchedule string // cron spec
}

type NotificationsConfig struct {
	Duration time.Duration
}

// Load reads configuration from .env, the config file and environment variables
func Load() (*Config, error) {
	// A missing .env is fine
	_ = godotenv.Load()

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.skycast")

	setDefaults(v)

	// Read from environment variables, e.g. SKYCAST_OPENWEATHERMAP_APIKEY
	v.SetEnvPrefix("SKYCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.defaultCity", "London")
	v.SetDefault("app.timezone", "")
	v.SetDefault("openweathermap.apikey", "")
	v.SetDefault("openweathermap.baseurl", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("openweathermap.geourl", "https://api.openweathermap.org/geo/1.0")
	v.SetDefault("openweathermap.timeout", 10*time.Second)
	v.SetDefault("nominatim.baseurl", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("nominatim.useragent", "skycast/1.0")
	v.SetDefault("storage.path", "skycast.db")
	v.SetDefault("sessions.idleTTL", 30*time.Minute)
	v.SetDefault("sessions.sweepSchedule", "@every 5m")
	v.SetDefault("notifications.duration", 3*time.Second)
}

// Validate checks the settings that have no usable default
func (c *Config) Validate() error {
	if c.OpenWeatherMap.APIKey == "" {
		return errors.New("openweathermap.apikey is required (set SKYCAST_OPENWEATHERMAP_APIKEY)")
	}
	if c.App.DefaultCity == "" {
		return errors.New("app.defaultCity must not be empty")
	}
	if c.App.Timezone != "" {
		if _, err := time.LoadLocation(c.App.Timezone); err != nil {
			return fmt.Errorf("invalid app.timezone %q: %w", c.App.Timezone, err)
		}
	}
	return nil
}

// TimezoneOverride returns the configured display timezone, or nil when the
// timezone should be resolved from each location's coordinates
func (c *Config) TimezoneOverride() *time.Location {
	if c.App.Timezone == "" {
		return nil
	}
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil
	}
	return loc
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
