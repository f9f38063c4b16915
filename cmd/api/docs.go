package main

// @title Skycast API
// @version 1.0
// @description Weather sessions for the skycast browser client: place search, geolocation, unit and theme preferences, and status notifications.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
