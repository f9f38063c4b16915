package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Stateless lookup
	app.router.GET("/weather", app.handleGetWeather)

	// Session endpoints
	sessions := app.router.Group("/sessions")
	sessions.POST("", app.handleCreateSession)
	sessions.GET("/:id", app.handleGetSession)
	sessions.POST("/:id/search", app.handleSearch)
	sessions.POST("/:id/geolocation", app.handleGeolocation)
	sessions.POST("/:id/unit/toggle", app.handleToggleUnit)
	sessions.POST("/:id/theme/toggle", app.handleToggleTheme)
	sessions.POST("/:id/refresh", app.handleRefresh)
	sessions.GET("/:id/notifications", app.handleGetNotifications)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
