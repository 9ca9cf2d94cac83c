package routes

import (
	"log"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	db := config.DB
	repo := repository.NewGormRepository(db)

	// engine services read through the repository only
	trends := services.NewTrendService(repo)
	insights := services.NewInsightService(repo)
	macros := services.NewMacroService(repo)
	goals := services.NewGoalService(repo)
	energy := services.NewEnergyService(repo)
	reports := services.NewReportService(repo)

	logs := services.NewLogService(db)
	profiles := services.NewProfileService(db, repo)
	auth := services.NewAuthService(db)

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(db)
	if err != nil {
		log.Printf("push disabled: %v", err)
		push = nil
	}
	services.InitInsightBus(db, hub, push)

	analyticsCtl := controllers.NewAnalyticsController(trends, insights, macros, energy)
	goalCtl := controllers.NewGoalController(goals)
	logCtl := controllers.NewLogController(logs)
	userCtl := controllers.NewUserController(profiles, reports)
	authCtl := controllers.NewAuthController(auth)
	realtimeCtl := controllers.NewRealtimeController(hub)

	r := gin.Default()

	// Public auth routes
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authCtl.Register)
		authGroup.POST("/login", authCtl.Login)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", userCtl.GetProfile)
			user.PUT("/profile", userCtl.UpdateProfile)
			user.PUT("/schedule", userCtl.SetSchedule)
			user.PUT("/override", userCtl.SetWeeklyOverride)
			user.POST("/weekly-report", userCtl.SendWeeklyReport)
		}

		analytics := protected.Group("/analytics")
		{
			analytics.GET("/trends", analyticsCtl.GetTrends)
			analytics.GET("/insights", analyticsCtl.GetInsights)
			analytics.GET("/macros", analyticsCtl.GetMacroPlan)
			analytics.POST("/macros/apply", analyticsCtl.ApplySchedule)
			analytics.GET("/energy", analyticsCtl.GetEnergyBalance)
		}

		goalsGroup := protected.Group("/goals")
		{
			goalsGroup.GET("/daily", goalCtl.GetDailyGoals)
			goalsGroup.GET("/hydration", goalCtl.GetHydrationGoal)
		}

		logsGroup := protected.Group("/logs")
		{
			logsGroup.POST("/hydration", logCtl.LogHydration)
			logsGroup.POST("/workouts", logCtl.LogWorkout)
			logsGroup.POST("/nutrition", logCtl.LogNutrition)
			logsGroup.POST("/body", logCtl.LogBodyMetric)
			logsGroup.GET("/:domain", logCtl.GetHistory)
		}

		if push != nil {
			devCtl := controllers.NewDeviceController(push)
			protected.POST("/devices", devCtl.Register)
		}
		protected.GET("/ws", realtimeCtl.EventsWS)
	}

	return r
}
