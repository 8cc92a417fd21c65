package controllers

import (
	"errors"
	"net/http"

	"github.com/Lullucoder/DietSphere/services"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	Svc *services.AnalysisService
}

func NewAnalysisController(svc *services.AnalysisService) *AnalysisController {
	return &AnalysisController{Svc: svc}
}

// GET /api/analysis/:period — period is "today" or "week".
func (h *AnalysisController) GetAnalysis(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	period := services.Period(c.Param("period"))
	report, err := h.Svc.GetAnalysis(c.Request.Context(), userID, period)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "period must be 'today' or 'week'"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
