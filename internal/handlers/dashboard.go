package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storedash-be/internal/models"
	"storedash-be/internal/services"

	"github.com/gin-gonic/gin"
)

const defaultSearchLimit = 10

// DashboardReader is the read side the dashboard endpoints need.
type DashboardReader interface {
	GetLeaderboards(ctx context.Context, period string) (*models.Leaderboards, error)
	GetPersonDetails(ctx context.Context, name, period string) (*models.PersonView, error)
	GetCallSheets(ctx context.Context, name, period string) ([]models.CallSheetRow, error)
	SearchPeople(ctx context.Context, query, period string, limit int) ([]models.PersonMatch, error)
}

type DashboardHandler struct {
	dashboard DashboardReader
}

func NewDashboardHandler(dashboard DashboardReader) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetLeaderboards godoc
// @Summary Sales and BDC leaderboards for a period
// @Description Served from the leaderboard snapshot when it is fresh, otherwise from uploaded data
// @Tags dashboard
// @Security ApiKeyAuth
// @Produce json
// @Param period query string false "Period (YYYY-MM), defaults to the current month"
// @Success 200 {object} models.Leaderboards
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /leaderboards [get]
func (h *DashboardHandler) GetLeaderboards(c *gin.Context) {
	period, ok := periodParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	lb, err := h.dashboard.GetLeaderboards(ctx, period)
	if err != nil {
		serverError(c, "Failed to load leaderboards", err)
		return
	}

	c.JSON(http.StatusOK, lb)
}

// SearchPeople godoc
// @Summary Fuzzy search people on the period's leaderboards
// @Tags dashboard
// @Security ApiKeyAuth
// @Produce json
// @Param q query string true "Search text"
// @Param period query string false "Period (YYYY-MM)"
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {array} models.PersonMatch
// @Failure 400 {object} models.ErrorResponse
// @Router /people/search [get]
func (h *DashboardHandler) SearchPeople(c *gin.Context) {
	period, ok := periodParam(c)
	if !ok {
		return
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: "limit must be a positive integer",
			})
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	matches, err := h.dashboard.SearchPeople(ctx, c.Query("q"), period, limit)
	if err != nil {
		serverError(c, "Failed to search people", err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// personParam reads :name and checks the caller may view that person.
func personParam(c *gin.Context) (string, bool) {
	me, ok := currentCaller(c)
	if !ok {
		return "", false
	}

	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "name is required",
		})
		return "", false
	}
	if !models.CanViewName(me.Role, me.LinkedName, name) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "forbidden",
			Message: "You can only view your own details",
		})
		return "", false
	}
	return name, true
}

// GetPersonDetails godoc
// @Summary Month-to-date detail for one person
// @Tags dashboard
// @Security ApiKeyAuth
// @Produce json
// @Param name path string true "Person name"
// @Param period query string false "Period (YYYY-MM)"
// @Success 200 {object} models.PersonView
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /people/{name}/details [get]
func (h *DashboardHandler) GetPersonDetails(c *gin.Context) {
	name, ok := personParam(c)
	if !ok {
		return
	}
	period, ok := periodParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	view, err := h.dashboard.GetPersonDetails(ctx, name, period)
	if err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Person details not found",
			})
			return
		}
		serverError(c, "Failed to load person details", err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetCallSheets godoc
// @Summary Leads assigned to one person
// @Tags dashboard
// @Security ApiKeyAuth
// @Produce json
// @Param name path string true "Person name"
// @Param period query string false "Period (YYYY-MM)"
// @Success 200 {array} models.CallSheetRow
// @Failure 403 {object} models.ErrorResponse
// @Router /people/{name}/call-sheets [get]
func (h *DashboardHandler) GetCallSheets(c *gin.Context) {
	name, ok := personParam(c)
	if !ok {
		return
	}
	period, ok := periodParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	rows, err := h.dashboard.GetCallSheets(ctx, name, period)
	if err != nil {
		serverError(c, "Failed to load call sheets", err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
