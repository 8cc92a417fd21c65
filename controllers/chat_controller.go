package controllers

import (
	"net/http"

	"github.com/Lullucoder/DietSphere/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Svc *services.ChatService
}

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{Svc: svc}
}

// POST /api/chat  { "question": "..." }
func (h *ChatController) Ask(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req struct {
		Question string `json:"question" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	answer, err := h.Svc.Ask(c.Request.Context(), userID, req.Question)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// GET /api/chat/history
func (h *ChatController) History(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	msgs, err := h.Svc.History(c.Request.Context(), userID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
