package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"skycast/internal/notify"
	"skycast/internal/preferences"
	"skycast/internal/providers/openstreetmap"
	"skycast/internal/timezone"
	"skycast/internal/types"
	"skycast/internal/weather"
)

// User-facing status messages
const (
	msgLocating       = "Getting your location..."
	msgGeoUnsupported = "Geolocation is not supported by your browser"
	msgGeoDenied      = "Unable to get your location. Showing weather for %s."
	msgCityNotFound   = "City \"%s\" not found. Please try another city."
	msgSearchFailed   = "Error searching for city. Please try again."
	msgUpdated        = "Weather updated for %s"
	msgFetchFailed    = "Error fetching weather data. Please try again."
)

// ErrSuperseded is returned when a newer request for the same session
// completed first and this result was discarded
var ErrSuperseded = errors.New("request superseded by a newer one")

// ErrInvalidPosition is returned for geolocation results outside WGS84 bounds
var ErrInvalidPosition = errors.New("invalid position")

// PlaceLookup reverse geocodes coordinates to a place
type PlaceLookup interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// Options carries the collaborators shared by every session
type Options struct {
	Weather     weather.Service
	Places      PlaceLookup      // optional
	Timezones   timezone.Service // optional
	Preferences preferences.Store
	DefaultCity string
	// Timezone overrides per-location timezone lookup when non-nil
	Timezone       *time.Location
	NotifyDuration time.Duration
	Logger         *slog.Logger
	Now            func() time.Time
}

func (o *Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// GeolocationResult is what the browser reported for a position request.
// Err is set when no position could be obtained.
type GeolocationResult struct {
	Coords types.Coords
	Err    *weather.PermissionError
}

// Snapshot is the externally visible state of a session
type Snapshot struct {
	ID            string                  `json:"id" example:"0b8f2f9e-3c1a-4b7e-9a44-5f3f8c1d2e6a"`
	Preferences   preferences.Preferences `json:"preferences"`
	Place         string                  `json:"place,omitempty" example:"London, GB"`
	Loading       bool                    `json:"loading"`
	View          *View                   `json:"view,omitempty"`
	Notifications []notify.Notification   `json:"notifications"`
}

// Session holds the display state of one browser profile
type Session struct {
	ID string

	opts   *Options
	feed   *notify.Feed
	logger *slog.Logger

	mu         sync.Mutex
	viewer     *time.Location
	units      types.UnitSystem
	theme      types.Theme
	coords     *types.Coords
	label      types.PlaceLabel
	report     *weather.Report
	view       *View
	generation uint64
	inFlight   uint64
	lastAccess time.Time
}

// newSession creates a session. viewer is the browser's timezone and may be nil.
func newSession(id string, prefs preferences.Preferences, viewer *time.Location, opts *Options) *Session {
	logger := opts.Logger.With("component", "session", "session_id", id)
	return &Session{
		ID:         id,
		opts:       opts,
		feed:       notify.NewFeed(opts.NotifyDuration, opts.Logger.With("component", "notify", "session_id", id)),
		logger:     logger,
		viewer:     viewer,
		units:      prefs.Unit,
		theme:      prefs.Theme,
		lastAccess: opts.now(),
	}
}

// Search resolves text to a place and shows its weather. Blank text is ignored.
func (s *Session) Search(ctx context.Context, text string) error {
	query := strings.TrimSpace(text)
	if query == "" {
		return nil
	}

	gen := s.begin()

	coords, label, err := s.opts.Weather.ResolvePlace(ctx, query)
	if err != nil {
		if s.stale(gen) {
			return ErrSuperseded
		}
		var notFound *weather.NotFoundError
		if errors.As(err, &notFound) && !notFound.Rejected() {
			s.fail(gen, fmt.Sprintf(msgCityNotFound, query))
		} else {
			s.fail(gen, msgSearchFailed)
		}
		return err
	}

	return s.load(ctx, gen, coords, label)
}

// Geolocate shows the weather at the reported position, or falls back to
// the default city when the browser could not provide one
func (s *Session) Geolocate(ctx context.Context, result GeolocationResult) error {
	if result.Err != nil {
		if result.Err.Unsupported() {
			s.feed.Notify(msgGeoUnsupported, notify.SeverityError)
		} else {
			s.feed.Notify(fmt.Sprintf(msgGeoDenied, s.opts.DefaultCity), notify.SeverityError)
		}
		s.logger.Info("geolocation unavailable, using default city",
			"reason", result.Err.Reason,
			"default_city", s.opts.DefaultCity,
		)
		return s.Search(ctx, s.opts.DefaultCity)
	}

	if err := result.Coords.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, err)
	}

	s.feed.Notify(msgLocating, notify.SeverityInfo)
	gen := s.begin()

	// An empty label is derived from the response
	return s.load(ctx, gen, result.Coords, "")
}

// ToggleUnit flips and persists the unit system, then refetches the current
// place when there is one
func (s *Session) ToggleUnit(ctx context.Context) error {
	s.mu.Lock()
	s.units = s.units.Toggle()
	units := s.units
	coords, label := s.coords, s.label
	s.mu.Unlock()

	if err := s.opts.Preferences.SaveUnit(ctx, s.ID, units); err != nil {
		s.logger.Warn("failed to persist unit preference", "error", err)
	}

	if coords == nil {
		return nil
	}
	return s.load(ctx, s.begin(), *coords, label)
}

// ToggleTheme flips and persists the theme and re-renders the retained report
func (s *Session) ToggleTheme(ctx context.Context) error {
	s.mu.Lock()
	s.theme = s.theme.Toggle()
	th := s.theme
	if s.view != nil && s.report != nil {
		view := s.view.withTheme(th, s.report.Current.ConditionMain)
		s.view = &view
	}
	s.mu.Unlock()

	if err := s.opts.Preferences.SaveTheme(ctx, s.ID, th); err != nil {
		s.logger.Warn("failed to persist theme preference", "error", err)
	}
	return nil
}

// Refresh refetches the current place, or the default city when none is set
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	coords, label := s.coords, s.label
	s.mu.Unlock()

	if coords == nil {
		return s.Search(ctx, s.opts.DefaultCity)
	}
	return s.load(ctx, s.begin(), *coords, label)
}

// Snapshot returns the current state including unexpired notifications
func (s *Session) Snapshot() Snapshot {
	now := s.opts.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:            s.ID,
		Preferences:   preferences.Preferences{Theme: s.theme, Unit: s.units},
		Place:         s.label.String(),
		Loading:       s.inFlight != 0,
		Notifications: s.feed.Active(now),
	}
	if s.view != nil {
		view := *s.view
		snap.View = &view
	}
	return snap
}

// Notifications returns the unexpired notifications, newest first
func (s *Session) Notifications() []notify.Notification {
	return s.feed.Active(s.opts.now())
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastAccess = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

// begin starts a new request generation and marks it in flight
func (s *Session) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.inFlight = s.generation
	return s.generation
}

// fail notifies an error for gen unless a newer request has started
func (s *Session) fail(gen uint64, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.inFlight = 0
	s.feed.Notify(message, notify.SeverityError)
}

// load fetches weather for coords and commits it as the session's place.
// State changes only when the fetch succeeds and gen is still current.
func (s *Session) load(ctx context.Context, gen uint64, coords types.Coords, label types.PlaceLabel) error {
	s.mu.Lock()
	units := s.units
	s.mu.Unlock()

	report, err := s.opts.Weather.FetchWeather(ctx, coords, units)
	if err != nil {
		if s.stale(gen) {
			return ErrSuperseded
		}
		s.fail(gen, msgFetchFailed)
		return err
	}

	if label == "" {
		label = s.labelFor(ctx, coords, report)
	}
	loc := s.location(coords)
	now := s.opts.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("discarding stale weather response", "generation", gen, "current", s.generation)
		return ErrSuperseded
	}

	view := Render(report, label, s.theme, loc, now)
	s.coords = &coords
	s.label = label
	s.report = report
	s.view = &view
	s.inFlight = 0

	s.feed.Notify(fmt.Sprintf(msgUpdated, label), notify.SeveritySuccess)
	return nil
}

func (s *Session) stale(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen != s.generation
}

// labelFor names a geolocated place from the weather response, falling back
// to reverse geocoding and finally to the coordinates themselves
func (s *Session) labelFor(ctx context.Context, coords types.Coords, report *weather.Report) types.PlaceLabel {
	if report.Current.PlaceName != "" {
		return types.NewPlaceLabel(report.Current.PlaceName, report.Current.CountryCode)
	}

	if s.opts.Places != nil {
		place, err := s.opts.Places.Lookup(ctx, coords.Latitude, coords.Longitude)
		if err == nil && place.Locality() != "" {
			return types.NewPlaceLabel(place.Locality(), strings.ToUpper(place.Address.CountryCode))
		}
		if err != nil {
			s.logger.Warn("reverse geocoding failed",
				"latitude", coords.Latitude,
				"longitude", coords.Longitude,
				"error", err,
			)
		}
	}

	return types.PlaceLabel(fmt.Sprintf("%.2f, %.2f", coords.Latitude, coords.Longitude))
}

// SetViewerTimezone records the browser's timezone. A nil loc keeps the current one.
func (s *Session) SetViewerTimezone(loc *time.Location) {
	if loc == nil {
		return
	}
	s.mu.Lock()
	s.viewer = loc
	s.mu.Unlock()
}

// location returns the display timezone: the viewer's when known, then the
// configured override, then the zone at coords, then time.Local
func (s *Session) location(coords types.Coords) *time.Location {
	s.mu.Lock()
	viewer := s.viewer
	s.mu.Unlock()
	if viewer != nil {
		return viewer
	}
	if s.opts.Timezone != nil {
		return s.opts.Timezone
	}
	if s.opts.Timezones == nil {
		return time.Local
	}

	loc, err := s.opts.Timezones.Location(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("timezone lookup failed, using local time",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return time.Local
	}
	return loc
}
