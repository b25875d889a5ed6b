package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Catalog is static reference data, no auth needed
	foods := r.Group("/foods")
	{
		foods.GET("", controllers.ListFoods)
		foods.GET("/search", controllers.SearchFood)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
	}

	// Advisor session routes
	advisor := r.Group("/advisor")
	advisor.Use(middlewares.AuthMiddleware())
	{
		advisor.POST("/profile", controllers.SetAdvisorProfile)
		advisor.POST("/steps", controllers.SetAdvisorSteps)
		advisor.POST("/message", controllers.AdvisorMessage)
		advisor.GET("/session", controllers.GetAdvisorSession)
		advisor.GET("/history", controllers.GetMealHistory)
	}

	// Websocket alert stream
	rc := controllers.NewRealtimeController(hub)
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", rc.AlertsWS)
	}

	return r
}
