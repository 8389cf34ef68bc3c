package main

import (
	"errors"
	"net/http"

	"hora-argentina/internal/types"

	"github.com/gin-gonic/gin"
)

// ResolveLocationInput defines the query parameters for the geocoding endpoint
type ResolveLocationInput struct {
	Query string `form:"query" binding:"required"` // Free-form place name, e.g. "Mendoza, Argentina"
}

// handleResolveLocation godoc
// @Summary Resolve a place name to coordinates
// @Description Geocode a free-form place name to candidate locations with coordinates and timezone
// @Tags location
// @Produce json
// @Param query query string true "Place name" example(Plaza de Mayo, Buenos Aires)
// @Success 200 {array} types.Place
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /location/resolve [get]
func (app *App) handleResolveLocation(c *gin.Context) {
	var input ResolveLocationInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	places, err := app.locationService.Resolve(input.Query)
	if err != nil {
		app.logger.Error("failed to resolve location", "query", input.Query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve location"})
		return
	}

	c.JSON(http.StatusOK, places)
}

// ReverseLocationInput defines the query parameters for the reverse geocoding endpoint.
// Coordinates are pointers so a literal 0 still counts as present.
type ReverseLocationInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// handleReverseLocation godoc
// @Summary Describe the place at coordinates
// @Description Reverse geocode coordinates to a place name with timezone metadata
// @Tags location
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(-32.8895)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-68.8458)
// @Success 200 {object} types.Place
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /location/reverse [get]
func (app *App) handleReverseLocation(c *gin.Context) {
	var input ReverseLocationInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	place, err := app.locationService.Reverse(*input.Latitude, *input.Longitude)
	if err != nil {
		// Check if it's a validation error from business layer
		if errors.Is(err, types.ErrInvalidLatitude) || errors.Is(err, types.ErrInvalidLongitude) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to reverse geocode",
			"latitude", *input.Latitude,
			"longitude", *input.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reverse geocode"})
		return
	}

	c.JSON(http.StatusOK, place)
}
