package routes

import (
	"net/http"

	"github.com/Lullucoder/DietSphere/controllers"
	"github.com/Lullucoder/DietSphere/middlewares"
	"github.com/Lullucoder/DietSphere/models"
	"github.com/Lullucoder/DietSphere/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := models.DefaultNutrientConfig()

	entrySvc := services.NewEntryService(db)
	foodSvc := services.NewFoodService(db)
	goalSvc := services.NewGoalService(db, cfg)
	analysisSvc := services.NewAnalysisService(entrySvc, foodSvc, goalSvc, cfg)
	chartSvc := services.NewChartService(db, cfg)
	userSvc := services.NewUserService(db)
	chatSvc := services.NewChatService(db)
	hub := services.NewRealtimeHub()

	authCtl := controllers.NewAuthController(userSvc)
	entryCtl := controllers.NewEntryController(entrySvc, hub)
	foodCtl := controllers.NewFoodController(foodSvc)
	goalCtl := controllers.NewGoalController(goalSvc, hub)
	analysisCtl := controllers.NewAnalysisController(analysisSvc)
	chartCtl := controllers.NewChartController(chartSvc)
	chatCtl := controllers.NewChatController(chatSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/auth/profile", authCtl.GetProfile)
		api.PUT("/auth/profile", authCtl.UpdateProfile)

		api.GET("/foods", foodCtl.ListFoods)
		api.GET("/foods/:id", foodCtl.GetFood)

		api.POST("/entries", entryCtl.LogEntry)
		api.GET("/entries", entryCtl.GetHistory)
		api.GET("/entries/today", entryCtl.GetToday)
		api.DELETE("/entries/:id", entryCtl.DeleteEntry)

		api.GET("/goals", goalCtl.GetGoals)
		api.PUT("/goals", goalCtl.UpdateGoals)
		api.GET("/goals/progress", goalCtl.GetProgress)

		api.GET("/analysis/:period", analysisCtl.GetAnalysis)
		api.GET("/charts", chartCtl.GetChartData)

		api.POST("/chat", chatCtl.Ask)
		api.GET("/chat/history", chatCtl.History)

		api.GET("/ws", rtCtl.EventsWS)
	}

	return r
}
