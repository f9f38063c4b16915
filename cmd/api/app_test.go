package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"skycast/internal/config"
	"skycast/internal/preferences"
	"skycast/internal/session"
	"skycast/internal/timezone"
	"skycast/internal/types"
	"skycast/internal/weather"
)

type stubWeather struct {
	fetchErr error
}

func (s *stubWeather) ResolvePlace(ctx context.Context, name string) (types.Coords, types.PlaceLabel, error) {
	if name != "London" {
		return types.Coords{}, "", &weather.NotFoundError{Query: name}
	}
	return types.NewCoords(51.5073, -0.1276), types.NewPlaceLabel("London", "GB"), nil
}

func (s *stubWeather) FetchWeather(ctx context.Context, coords types.Coords, units types.UnitSystem) (*weather.Report, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	var samples []types.ForecastSample
	for i := 0; i < 16; i++ {
		samples = append(samples, types.ForecastSample{
			Timestamp:     start.Add(time.Duration(i) * 3 * time.Hour),
			Temperature:   8,
			ConditionCode: "01d",
			ConditionMain: "Clear",
			Description:   "clear sky",
		})
	}
	return &weather.Report{
		Coords: coords,
		Units:  units,
		Current: types.CurrentConditions{
			Temperature:   9.5,
			ConditionCode: "01d",
			ConditionMain: "Clear",
			Description:   "clear sky",
			PlaceName:     "Westminster",
			CountryCode:   "GB",
		},
		Forecast: samples,
	}, nil
}

func newTestApp(t *testing.T, w weather.Service) *App {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, GinMode: "test"},
		App:    config.AppConfig{DefaultCity: "London"},
	}
	store := preferences.NewMemoryStore()
	manager := session.NewManager(session.Options{
		Weather:     w,
		Timezones:   timezone.Fixed{Loc: time.UTC},
		Preferences: store,
		DefaultCity: cfg.App.DefaultCity,
		Logger:      logger,
	}, time.Minute)
	return newApp(cfg, logger, manager, store)
}

func doRequest(t *testing.T, app *App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func createSession(t *testing.T, app *App) session.Snapshot {
	t.Helper()
	rec := doRequest(t, app, http.MethodPost, "/sessions", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /sessions status = %d, body = %s", rec.Code, rec.Body.String())
	}
	return decode[session.Snapshot](t, rec)
}

func TestHandlePing(t *testing.T) {
	app := newTestApp(t, &stubWeather{})

	rec := doRequest(t, app, http.MethodGet, "/ping", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[PingResponse](t, rec); got.Message != "pong" {
		t.Errorf("message = %q", got.Message)
	}
}

func TestHandleGetWeather(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		fetchErr      error
		wantStatus    int
		wantDays      int
		wantFirstDate string
	}{
		{name: "default city", query: "", wantStatus: http.StatusOK, wantDays: 1, wantFirstDate: "Mar 11"},
		{name: "named city", query: "?q=London&units=imperial&theme=dark", wantStatus: http.StatusOK, wantDays: 1, wantFirstDate: "Mar 11"},
		{
			// Samples start on Mar 9 local time in New York
			name:          "viewer timezone",
			query:         "?q=London&timezone=America/New_York",
			wantStatus:    http.StatusOK,
			wantDays:      2,
			wantFirstDate: "Mar 10",
		},
		{name: "invalid timezone", query: "?q=London&timezone=Mars/Olympus", wantStatus: http.StatusBadRequest},
		{name: "unknown city", query: "?q=Atlantis", wantStatus: http.StatusNotFound},
		{
			name:       "upstream failure",
			query:      "?q=London",
			fetchErr:   &weather.UpstreamError{Endpoint: "current", StatusCode: 500},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &stubWeather{fetchErr: tt.fetchErr})

			rec := doRequest(t, app, http.MethodGet, "/weather"+tt.query, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			view := decode[session.View](t, rec)
			if view.Place != "London, GB" {
				t.Errorf("Place = %q", view.Place)
			}
			if len(view.Forecast) != tt.wantDays {
				t.Fatalf("expected %d forecast days, got %d", tt.wantDays, len(view.Forecast))
			}
			if view.Forecast[0].Date != tt.wantFirstDate {
				t.Errorf("first card date = %q, want %q", view.Forecast[0].Date, tt.wantFirstDate)
			}
		})
	}
}

func TestSessionFlow(t *testing.T) {
	app := newTestApp(t, &stubWeather{})
	snap := createSession(t, app)
	base := "/sessions/" + snap.ID

	rec := doRequest(t, app, http.MethodPost, base+"/search", `{"query":"London"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("search status = %d, body = %s", rec.Code, rec.Body.String())
	}
	snap = decode[session.Snapshot](t, rec)
	if snap.View == nil || snap.View.Place != "London, GB" {
		t.Fatalf("unexpected view after search: %+v", snap.View)
	}
	if len(snap.Notifications) == 0 || snap.Notifications[0].Message != "Weather updated for London, GB" {
		t.Errorf("unexpected notifications: %+v", snap.Notifications)
	}

	rec = doRequest(t, app, http.MethodPost, base+"/theme/toggle", "")
	snap = decode[session.Snapshot](t, rec)
	if snap.Preferences.Theme != types.Dark || snap.View.Theme != types.Dark {
		t.Errorf("theme toggle not applied: %+v", snap.Preferences)
	}

	rec = doRequest(t, app, http.MethodPost, base+"/unit/toggle", "")
	snap = decode[session.Snapshot](t, rec)
	if snap.View.UnitSymbol != "°F" {
		t.Errorf("unit toggle not applied: %q", snap.View.UnitSymbol)
	}

	rec = doRequest(t, app, http.MethodPost, base+"/search", `{"query":"Atlantis"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("search unknown status = %d", rec.Code)
	}
	failure := decode[ErrorResponse](t, rec)
	if failure.Session == nil || failure.Session.View.Place != "London, GB" {
		t.Error("error response should carry the previous view")
	}

	rec = doRequest(t, app, http.MethodGet, base+"/notifications", "")
	notes := decode[NotificationsResponse](t, rec)
	if len(notes.Notifications) == 0 || notes.Notifications[0].Message != `City "Atlantis" not found. Please try another city.` {
		t.Errorf("unexpected notifications: %+v", notes.Notifications)
	}

	// A new session restores the saved preferences
	rec = doRequest(t, app, http.MethodPost, "/sessions", `{"id":"`+snap.ID+`"}`)
	restored := decode[session.Snapshot](t, rec)
	if restored.ID != snap.ID || restored.Preferences.Theme != types.Dark {
		t.Errorf("unexpected restored session: %+v", restored)
	}
}

func TestHandleGeolocation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantPlace  string
	}{
		{
			name:       "position",
			body:       `{"latitude":51.5,"longitude":-0.14}`,
			wantStatus: http.StatusOK,
			wantPlace:  "Westminster, GB",
		},
		{
			name:       "denied falls back to default city",
			body:       `{"error":"denied"}`,
			wantStatus: http.StatusOK,
			wantPlace:  "London, GB",
		},
		{
			name:       "missing coordinates",
			body:       `{"latitude":51.5}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown error reason",
			body:       `{"error":"timeout"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "out of range",
			body:       `{"latitude":95,"longitude":0}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &stubWeather{})
			snap := createSession(t, app)

			rec := doRequest(t, app, http.MethodPost, "/sessions/"+snap.ID+"/geolocation", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantPlace == "" {
				return
			}
			got := decode[session.Snapshot](t, rec)
			if got.View == nil || got.View.Place != tt.wantPlace {
				t.Errorf("place = %+v, want %q", got.View, tt.wantPlace)
			}
		})
	}
}

func TestSessionErrors(t *testing.T) {
	app := newTestApp(t, &stubWeather{fetchErr: &weather.UpstreamError{Endpoint: "forecast", StatusCode: 503}})

	if rec := doRequest(t, app, http.MethodGet, "/sessions/unknown", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d", rec.Code)
	}
	if rec := doRequest(t, app, http.MethodPost, "/sessions", `{"id":"nope"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("invalid id status = %d", rec.Code)
	}

	snap := createSession(t, app)
	if rec := doRequest(t, app, http.MethodPost, "/sessions/"+snap.ID+"/refresh", ""); rec.Code != http.StatusBadGateway {
		t.Errorf("refresh with upstream failure status = %d", rec.Code)
	}
	if rec := doRequest(t, app, http.MethodPost, "/sessions/"+snap.ID+"/search", `not json`); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d", rec.Code)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&weather.NotFoundError{Query: "x"}, http.StatusNotFound},
		{&weather.UpstreamError{Endpoint: "current"}, http.StatusBadGateway},
		{session.ErrSessionNotFound, http.StatusNotFound},
		{session.ErrInvalidID, http.StatusBadRequest},
		{session.ErrInvalidPosition, http.StatusBadRequest},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestCreateSession_Timezone(t *testing.T) {
	app := newTestApp(t, &stubWeather{})

	if rec := doRequest(t, app, http.MethodPost, "/sessions", `{"timezone":"Mars/Olympus"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("invalid timezone status = %d", rec.Code)
	}

	rec := doRequest(t, app, http.MethodPost, "/sessions", `{"timezone":"America/New_York"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /sessions status = %d, body = %s", rec.Code, rec.Body.String())
	}
	snap := decode[session.Snapshot](t, rec)

	rec = doRequest(t, app, http.MethodPost, "/sessions/"+snap.ID+"/search", `{"query":"London"}`)
	snap = decode[session.Snapshot](t, rec)
	if len(snap.View.Forecast) != 2 || snap.View.Forecast[0].Date != "Mar 10" {
		t.Errorf("forecast not grouped in viewer timezone: %+v", snap.View.Forecast)
	}
}
