package main

import (
	"fmt"
	"log/slog"

	"hora-argentina/internal/config"
	"hora-argentina/internal/location"
	"hora-argentina/internal/policy"
	"hora-argentina/internal/schedule"

	"github.com/gin-gonic/gin"

	_ "hora-argentina/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	scheduleService schedule.Service
	locationService location.Service
	policies        []policy.Policy
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Parse and validate the configured policy set once at startup
	policies, err := cfg.Policies()
	if err != nil {
		return nil, fmt.Errorf("invalid policy configuration: %w", err)
	}

	// Initialize location service (loads timezone data)
	locationSvc, err := location.NewLocationService(logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:          router,
		logger:          logger,
		scheduleService: schedule.NewService(logger),
		locationService: locationSvc,
		policies:        policies,
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
