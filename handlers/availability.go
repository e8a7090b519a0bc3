package handlers

import (
	"net/http"
	"strconv"
	"time"

	"edspire/services/availability"
	"edspire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// defaultSeedCount and defaultSeedTimezone back the seed endpoint's optional
// query parameters.
const (
	defaultSeedCount    = 3
	defaultSeedTimezone = "Asia/Kuala_Lumpur"
)

// AvailabilityHandler exposes the schedule endpoints.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// SeedHandler destructively reseeds a tutor's schedule.
// POST /api/availability/seed?userId=...&count=3&tz=Asia/Kuala_Lumpur
func (h *AvailabilityHandler) SeedHandler(c *gin.Context) {
	logger := utils.GetLogger()

	tutorID := c.Query("userId")
	if tutorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "userId is required"})
		return
	}

	count := defaultSeedCount
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "count must be a non-negative integer"})
			return
		}
		count = parsed
	}

	tz := c.DefaultQuery("tz", defaultSeedTimezone)
	name := c.Query("name")

	created, err := h.Service.Reseed(c.Request.Context(), tutorID, count, tz, name)
	if err != nil {
		logger.Error("failed to reseed schedule", zap.String("tutorId", tutorID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "failed to generate schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "created": created})
}

// StatusHandler projects a tutor's live availability.
// GET /api/availability/:tutorId/status
func (h *AvailabilityHandler) StatusHandler(c *gin.Context) {
	tutorID := c.Param("tutorId")
	if tutorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing tutor ID in path"})
		return
	}

	status, err := h.Service.Status(c.Request.Context(), tutorID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute status"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// UpcomingHandler returns the raw not-yet-ended slots.
// GET /api/availability/:tutorId
func (h *AvailabilityHandler) UpcomingHandler(c *gin.Context) {
	tutorID := c.Param("tutorId")
	if tutorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing tutor ID in path"})
		return
	}

	slots, err := h.Service.Upcoming(c.Request.Context(), tutorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
