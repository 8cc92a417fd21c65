package controllers

import (
	"net/http"

	"github.com/Lullucoder/DietSphere/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Svc *services.GoalService
	RT  *services.RealtimeHub
}

func NewGoalController(svc *services.GoalService, rt *services.RealtimeHub) *GoalController {
	return &GoalController{Svc: svc, RT: rt}
}

// GET /api/goals
func (h *GoalController) GetGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goal, err := h.Svc.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// PUT /api/goals
func (h *GoalController) UpdateGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req services.UpdateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	goal, err := h.Svc.UpdateGoals(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.RT.Notify(userID, services.EventGoalsUpdated, gin.H{"goalId": goal.ID})
	c.JSON(http.StatusOK, goal)
}

// GET /api/goals/progress
func (h *GoalController) GetProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	progress, err := h.Svc.Progress(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
