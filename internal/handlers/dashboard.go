package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errGetTelemetry = "failed to load telemetry"
	errGetDashboard = "failed to load dashboard"
)

// @Summary      Telemetry series
// @Description  Hourly sensor samples of the current session.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, samples"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/telemetry [get]
// @Security     BearerAuth
func (h *Handler) getTelemetry(c *gin.Context) {
	series, err := h.services.Series(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetTelemetry, "telemetry_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(series),
		"samples": series,
	})
}

// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  service.DashboardSummary
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dashboard [get]
// @Security     BearerAuth
func (h *Handler) getDashboard(c *gin.Context) {
	sum, err := h.services.GetSummary(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetDashboard, "dashboard_failed", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
