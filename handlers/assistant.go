package handlers

import (
	"net/http"

	"edspire/models"
	"edspire/services/assistant"
	"edspire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the study assistant chat endpoints.
type AssistantHandler struct {
	Service assistant.AssistantService
}

func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: svc}
}

// ChatHandler relays a student message through the completion backend.
// POST /api/ai/chat
func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req models.AIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message text is required"})
		return
	}

	resp, err := h.Service.Chat(c.Request.Context(), userID, req)
	if err != nil {
		utils.GetLogger().Error("assistant chat failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant is unavailable right now"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ClearContextHandler drops the caller's rolling conversation.
// DELETE /api/ai/chat/context
func (h *AssistantHandler) ClearContextHandler(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.Service.ClearContext(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear context"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Context cleared"})
}
