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

	// Solar schedule endpoints
	app.router.GET("/solar/day", app.handleGetSolarDay)
	app.router.GET("/solar/year", app.handleProjectYear)

	// Location endpoints
	app.router.GET("/location/resolve", app.handleResolveLocation)
	app.router.GET("/location/reverse", app.handleReverseLocation)

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
