package main

import (
	"log"

	"pulsefeed/internal/router"
	"pulsefeed/pkg/config"
	"pulsefeed/validators"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()

	// Validator
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
