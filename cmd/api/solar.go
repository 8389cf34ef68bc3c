package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"hora-argentina/internal/policy"
	"hora-argentina/internal/schedule"
	"hora-argentina/internal/solar"
	"hora-argentina/internal/types"

	"github.com/gin-gonic/gin"
)

// GetSolarDayInput defines the query parameters for the single-day endpoint.
// Coordinates are pointers so a literal 0 still counts as present.
type GetSolarDayInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
	Date      string   `form:"date" binding:"required"`      // Calendar date, YYYY-MM-DD
	Horizon   string   `form:"horizon"`                      // official, civil, nautical or astronomical
}

// handleGetSolarDay godoc
// @Summary Get solar events for one day
// @Description Compute the UTC sunrise, sunset and solar noon instants for a location and calendar date
// @Tags solar
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(-34.6037)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-58.3816)
// @Param date query string true "Calendar date" example(2025-06-21)
// @Param horizon query string false "Twilight definition" Enums(official, civil, nautical, astronomical)
// @Success 200 {object} solar.DayResult
// @Failure 400 {object} map[string]string
// @Router /solar/day [get]
func (app *App) handleGetSolarDay(c *gin.Context) {
	var input GetSolarDayInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	horizon, ok := solar.HorizonByName(input.Horizon)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown horizon: " + input.Horizon})
		return
	}

	// Delegate to business layer
	result, err := app.scheduleService.ComputeDay(types.NewCoords(*input.Latitude, *input.Longitude), date, horizon)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidLocation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to compute solar day",
			"latitude", *input.Latitude,
			"longitude", *input.Longitude,
			"date", input.Date,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute solar day"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ProjectYearInput defines the query parameters for the annual projection endpoint.
// Coordinates are pointers so a literal 0 still counts as present.
type ProjectYearInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
	Year      int      `form:"year" binding:"required"`      // Gregorian year
	Policies  string   `form:"policies"`                     // Comma-separated policy names; all configured policies when empty
}

// handleProjectYear godoc
// @Summary Project a year under each offset policy
// @Description Compute sunrise/sunset for every day of the year and render the instants as local clock times under each requested offset policy
// @Tags solar
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(-34.6037)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-58.3816)
// @Param year query integer true "Gregorian year" example(2025)
// @Param policies query string false "Comma-separated policy names" example(utc-3,utc-4)
// @Success 200 {object} map[string]schedule.AnnualSchedule
// @Failure 400 {object} map[string]string
// @Router /solar/year [get]
func (app *App) handleProjectYear(c *gin.Context) {
	var input ProjectYearInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	policies, err := app.selectPolicies(input.Policies)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedules, err := app.scheduleService.ProjectYear(
		types.NewCoords(*input.Latitude, *input.Longitude),
		input.Year,
		policies,
	)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidLocation) ||
			errors.Is(err, schedule.ErrInvalidYear) ||
			errors.Is(err, policy.ErrInvalidPolicy) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to project year",
			"latitude", *input.Latitude,
			"longitude", *input.Longitude,
			"year", input.Year,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to project year"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// selectPolicies filters the configured policy set by a comma-separated
// name list; an empty list selects every configured policy
func (app *App) selectPolicies(names string) ([]policy.Policy, error) {
	if names == "" {
		return app.policies, nil
	}

	byName := make(map[string]policy.Policy, len(app.policies))
	for _, p := range app.policies {
		byName[p.Name] = p
	}

	var selected []policy.Policy
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		p, ok := byName[name]
		if !ok {
			return nil, errors.New("unknown policy: " + name)
		}
		selected = append(selected, p)
	}
	return selected, nil
}
