package routes

import (
	"log"

	"github.com/nabilsaragih/grains/config"
	"github.com/nabilsaragih/grains/controllers"
	"github.com/nabilsaragih/grains/middlewares"
	"github.com/nabilsaragih/grains/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	scanner, err := services.NewLabelScanService()
	if err != nil {
		log.Fatalf("label scan service init failed: %v", err)
	}
	history := services.NewHistoryService(config.DB)
	recommender := services.NewRecommenderService()

	recCtrl := controllers.NewRecommendationController(recommender, scanner, history, hub, push)
	histCtrl := controllers.NewHistoryController(history)
	devCtrl := controllers.NewDeviceController(push)
	rtCtrl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/avatar", controllers.UploadAvatar)
	}

	rec := r.Group("/recommendations")
	rec.Use(middlewares.AuthMiddleware())
	{
		rec.POST("/manual", recCtrl.Manual)
		rec.POST("/label-scan", recCtrl.LabelScan)
	}

	hist := r.Group("/history")
	hist.Use(middlewares.AuthMiddleware())
	{
		hist.GET("/latest", histCtrl.Latest)
		hist.GET("/:id", histCtrl.ByID)
	}

	dev := r.Group("/devices")
	dev.Use(middlewares.AuthMiddleware())
	{
		dev.POST("/register", devCtrl.Register)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("", rtCtrl.EventsWS)
	}

	fb := r.Group("/feedback")
	fb.Use(middlewares.AuthMiddleware())
	{
		fb.POST("", controllers.SubmitFeedback)
	}

	return r
}
