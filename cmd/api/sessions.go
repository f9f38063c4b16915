package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"skycast/internal/notify"
	"skycast/internal/session"
	"skycast/internal/types"
	"skycast/internal/weather"

	"github.com/gin-gonic/gin"
)

// ErrorResponse carries the failure and, for session requests, the state the
// client should keep showing
type ErrorResponse struct {
	Error   string            `json:"error" example:"place \"Atlantis\" not found"`
	Session *session.Snapshot `json:"session,omitempty"`
}

// CreateSessionInput optionally names a previous session to restore and the
// browser's IANA timezone, which decides local dates and forecast days
type CreateSessionInput struct {
	ID       string `json:"id" example:"0b8f2f9e-3c1a-4b7e-9a44-5f3f8c1d2e6a"`
	Timezone string `json:"timezone" example:"America/New_York"`
}

type SearchInput struct {
	Query string `json:"query" example:"Paris"`
}

// GeolocationInput is the browser's answer to a position request. Error is
// "denied" or "unsupported" when no position is available.
type GeolocationInput struct {
	Latitude  *float64 `json:"latitude" example:"51.5073"`
	Longitude *float64 `json:"longitude" example:"-0.1276"`
	Error     string   `json:"error" enums:"denied,unsupported"`
}

// NotificationsResponse lists unexpired notifications, newest first
type NotificationsResponse struct {
	Notifications []notify.Notification `json:"notifications"`
}

// handleCreateSession godoc
// @Summary Create or restore a session
// @Description Start a session. Passing the id of an earlier session restores its saved theme and unit. The timezone is the browser's IANA zone; dates and forecast days are shown in it.
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body CreateSessionInput false "Session to restore"
// @Success 201 {object} session.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (app *App) handleCreateSession(c *gin.Context) {
	var input CreateSessionInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	viewer, err := parseTimezone(input.Timezone)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	s, err := app.sessions.Create(c.Request.Context(), input.ID, viewer)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			app.logger.Error("failed to create session", "session_id", input.ID, "error", err)
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, s.Snapshot())
}

// handleGetSession godoc
// @Summary Get session state
// @Description Return the current view, preferences and active notifications
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (app *App) handleGetSession(c *gin.Context) {
	s, ok := app.lookupSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// handleSearch godoc
// @Summary Search for a city
// @Description Resolve a city name and show its weather. A blank query leaves the session unchanged.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body SearchInput true "City to search"
// @Success 200 {object} session.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /sessions/{id}/search [post]
func (app *App) handleSearch(c *gin.Context) {
	s, ok := app.lookupSession(c)
	if !ok {
		return
	}

	var input SearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		app.respondBadRequest(c, s, err)
		return
	}

	app.respond(c, s, s.Search(c.Request.Context(), input.Query))
}

// handleGeolocation godoc
// @Summary Report the browser position
// @Description Show the weather at the given position. When the browser reports an error the default city is shown instead.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body GeolocationInput true "Position or geolocation error"
// @Success 200 {object} session.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /sessions/{id}/geolocation [post]
func (app *App) handleGeolocation(c *gin.Context) {
	s, ok := app.lookupSession(c)
	if !ok {
		return
	}

	var input GeolocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		app.respondBadRequest(c, s, err)
		return
	}

	var result session.GeolocationResult
	switch input.Error {
	case weather.ReasonDenied, weather.ReasonUnsupported:
		result.Err = &weather.PermissionError{Reason: input.Error}
	case "":
		if input.Latitude == nil || input.Longitude == nil {
			app.respondBadRequest(c, s, errors.New("latitude and longitude are required"))
			return
		}
		result.Coords = types.NewCoords(*input.Latitude, *input.Longitude)
	default:
		app.respondBadRequest(c, s, errors.New("error must be \"denied\" or \"unsupported\""))
		return
	}

	app.respond(c, s, s.Geolocate(c.Request.Context(), result))
}

// handleToggleUnit godoc
// @Summary Toggle metric and imperial units
// @Description Flip and save the unit system, then refetch the current place
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /sessions/{id}/unit/toggle [post]
func (app *App) handleToggleUnit(c *gin.Context) {
	s, ok := app.lookupSession(c)
	if !ok {
		return
	}
	app.respond(c, s, s.ToggleUnit(c.Request.Context()))
}

// handleToggleTheme godoc
// @Summary Toggle light and dark theme
// @Description Flip and save the theme. The background is recomputed from the last report.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/theme/toggle [post]
func (app *App) handleToggleTheme(c *gin.Context) {
	s, ok := app.lookupSession(c)
	if !ok {
		return
	}
	app.respond(c, s, s.ToggleTheme(c.Request.Context()))
}

// handleRefresh godoc
// @Summary Refresh the weather
// @Description Refetch the current place, or the default city when none is set
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /sessions/{id}/refresh [post]
func (app *App) handleRefresh(c *gin.Context) {
	s, ok := app.lookupSession(c)
	if !ok {
		return
	}
	app.respond(c, s, s.Refresh(c.Request.Context()))
}

// handleGetNotifications godoc
// @Summary List notifications
// @Description Return notifications raised in the last few seconds, newest first
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} NotificationsResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/notifications [get]
func (app *App) handleGetNotifications(c *gin.Context) {
	s, ok := app.lookupSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, NotificationsResponse{Notifications: s.Notifications()})
}

func (app *App) lookupSession(c *gin.Context) (*session.Session, bool) {
	s, err := app.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return nil, false
	}
	return s, true
}

// respond writes the session snapshot, with the error when err is set.
// A superseded request still succeeds since the newer result is in the snapshot.
func (app *App) respond(c *gin.Context, s *session.Session, err error) {
	if err == nil || errors.Is(err, session.ErrSuperseded) {
		c.JSON(http.StatusOK, s.Snapshot())
		return
	}

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		app.logger.Error("session request failed",
			"session_id", s.ID,
			"path", c.FullPath(),
			"status", status,
			"error", err,
		)
	}

	snap := s.Snapshot()
	c.JSON(status, ErrorResponse{Error: err.Error(), Session: &snap})
}

func (app *App) respondBadRequest(c *gin.Context, s *session.Session, err error) {
	snap := s.Snapshot()
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Session: &snap})
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	var (
		notFound *weather.NotFoundError
		upstream *weather.UpstreamError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrInvalidID), errors.Is(err, session.ErrInvalidPosition):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseTimezone loads an IANA timezone name. An empty name yields nil.
func parseTimezone(name string) (*time.Location, error) {
	if name == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q", name)
	}
	return loc, nil
}
