package handlers

import (
	"errors"
	"net/http"

	availabilityRepo "edspire/database/repository/availability"
	sessionRepo "edspire/database/repository/session"
	sessionService "edspire/services/session"
	"edspire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes the booking endpoints.
type SessionHandler struct {
	Service sessionService.SessionService
}

func NewSessionHandler(svc sessionService.SessionService) *SessionHandler {
	return &SessionHandler{Service: svc}
}

type bookRequest struct {
	TutorID string `json:"tutorId" binding:"required"`
	SlotID  string `json:"slotId" binding:"required"`
}

// BookHandler enrolls the authenticated student into a slot.
// POST /api/sessions
func (h *SessionHandler) BookHandler(c *gin.Context) {
	studentID := c.GetString("userID")

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tutorId and slotId are required"})
		return
	}

	session, err := h.Service.Book(c.Request.Context(), studentID, req.TutorID, req.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, availabilityRepo.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
		case errors.Is(err, availabilityRepo.ErrSlotFull):
			c.JSON(http.StatusConflict, gin.H{"error": "Slot is fully booked"})
		case errors.Is(err, sessionService.ErrSlotInPast):
			c.JSON(http.StatusConflict, gin.H{"error": "Slot has already ended"})
		default:
			utils.GetLogger().Error("booking failed",
				zap.String("studentId", studentID),
				zap.String("slotId", req.SlotID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book session"})
		}
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ListHandler returns the caller's upcoming sessions.
// GET /api/sessions
func (h *SessionHandler) ListHandler(c *gin.Context) {
	userID := c.GetString("userID")

	sessions, err := h.Service.ListUpcoming(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// CancelHandler marks a session cancelled.
// DELETE /api/sessions/:sessionId
func (h *SessionHandler) CancelHandler(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("sessionId")

	if err := h.Service.Cancel(c.Request.Context(), userID, sessionID); err != nil {
		switch {
		case errors.Is(err, sessionRepo.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		case errors.Is(err, sessionService.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not a participant of this session"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel session"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session cancelled"})
}
