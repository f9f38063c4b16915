package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"skycast/internal/config"
	"skycast/internal/preferences"
	"skycast/internal/providers/openstreetmap"
	"skycast/internal/providers/openweathermap"
	"skycast/internal/session"
	"skycast/internal/timezone"
	"skycast/internal/weather"

	"github.com/gin-gonic/gin"

	_ "skycast/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router   *gin.Engine
	logger   *slog.Logger
	cfg      *config.Config
	sessions *session.Manager
	store    preferences.Store
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	owm := openweathermap.NewClient(openweathermap.Options{
		APIKey:     cfg.OpenWeatherMap.APIKey,
		BaseURL:    cfg.OpenWeatherMap.BaseURL,
		GeoURL:     cfg.OpenWeatherMap.GeoURL,
		HTTPClient: &http.Client{Timeout: cfg.OpenWeatherMap.Timeout},
	}, logger)

	tz, err := timezone.NewService()
	if err != nil {
		return nil, err
	}

	var store preferences.Store
	if cfg.Storage.Path == "" {
		store = preferences.NewMemoryStore()
	} else {
		store, err = preferences.NewSQLite(cfg.Storage.Path, logger)
		if err != nil {
			return nil, err
		}
	}

	opts := session.Options{
		Weather:        weather.NewWeatherService(owm, logger),
		Places:         openstreetmap.NewClient(cfg.Nominatim.BaseURL, cfg.Nominatim.UserAgent, logger),
		Timezones:      tz,
		Preferences:    store,
		DefaultCity:    cfg.App.DefaultCity,
		Timezone:       cfg.TimezoneOverride(),
		NotifyDuration: cfg.Notifications.Duration,
		Logger:         logger,
	}

	app := newApp(cfg, logger, session.NewManager(opts, cfg.Sessions.IdleTTL), store)

	if err := app.sessions.Start(cfg.Sessions.SweepSchedule); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to start session sweeper: %w", err)
	}

	return app, nil
}

// newApp wires the router around an existing session manager
func newApp(cfg *config.Config, logger *slog.Logger, sessions *session.Manager, store preferences.Store) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:   router,
		logger:   logger,
		cfg:      cfg,
		sessions: sessions,
		store:    store,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// Close stops the session sweeper and releases storage
func (app *App) Close() error {
	app.sessions.Stop()
	return app.store.Close()
}
