package controllers

import (
	"net/http"
	"strconv"

	"github.com/Lullucoder/DietSphere/services"

	"github.com/gin-gonic/gin"
)

type ChartController struct {
	Svc *services.ChartService
}

func NewChartController(svc *services.ChartService) *ChartController {
	return &ChartController{Svc: svc}
}

// GET /api/charts?days=7
func (h *ChartController) GetChartData(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 90 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 90"})
			return
		}
		days = n
	}

	data, err := h.Svc.GetChartData(c.Request.Context(), userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}
