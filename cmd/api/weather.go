package main

import (
	"net/http"

	_ "skycast/internal/session" // imported for swagger type definitions
	"skycast/internal/types"

	"github.com/gin-gonic/gin"
)

// GetWeatherInput defines the query parameters for the weather endpoint
type GetWeatherInput struct {
	Query    string `form:"q"`        // City name; empty uses the default city
	Units    string `form:"units"`    // metric or imperial
	Theme    string `form:"theme"`    // light or dark
	Timezone string `form:"timezone"` // browser IANA timezone
}

// handleGetWeather godoc
// @Summary Get weather for a city
// @Description Resolve a city name and return current conditions plus a five day forecast, formatted for display. No session is kept.
// @Tags weather
// @Produce json
// @Param q query string false "City name" example(London)
// @Param units query string false "Unit system" Enums(metric, imperial)
// @Param theme query string false "Theme used for the background gradient" Enums(light, dark)
// @Param timezone query string false "Browser IANA timezone for dates and forecast days" example(America/New_York)
// @Success 200 {object} session.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input GetWeatherInput

	// Bind query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	viewer, err := parseTimezone(input.Timezone)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := app.sessions.Preview(c.Request.Context(), input.Query,
		types.ParseUnitSystem(input.Units), types.ParseTheme(input.Theme), viewer)
	if err != nil {
		status := statusFor(err)
		app.logger.Error("failed to get weather",
			"query", input.Query,
			"status", status,
			"error", err,
		)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}
