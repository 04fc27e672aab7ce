// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/grove/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	userDataController *controller.UserDataController
	goalController     *controller.GoalController
	checkInController  *controller.CheckInController
	insightsController *controller.InsightsController
	settingsController *controller.SettingsController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userDataController *controller.UserDataController,
	goalController *controller.GoalController,
	checkInController *controller.CheckInController,
	insightsController *controller.InsightsController,
	settingsController *controller.SettingsController,
) *Router {
	return &Router{
		healthController:   healthController,
		userDataController: userDataController,
		goalController:     goalController,
		checkInController:  checkInController,
		insightsController: insightsController,
		settingsController: settingsController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Whole-record routes
		v1.GET("/state", r.userDataController.GetState)
		v1.POST("/state/reset", r.userDataController.Reset)
		v1.GET("/export", r.userDataController.Export)

		// Onboarding routes
		onboarding := v1.Group("/onboarding")
		{
			onboarding.POST("/complete", r.settingsController.CompleteOnboarding)
			onboarding.PUT("/check-in-times", r.settingsController.SetCheckInTimes)
		}

		// Goal routes
		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.GET("/:id", r.goalController.Get)
			goals.DELETE("/:id", r.goalController.Delete)
			goals.POST("/:id/check-in", r.checkInController.CheckInGoal)
			goals.POST("/:id/purchases", r.checkInController.LogPurchaseGoal)
			goals.POST("/:id/savings", r.checkInController.LogSavings)
		}

		// Legacy root-level check-in routes
		v1.POST("/check-in", r.checkInController.CheckInRoot)
		v1.POST("/purchases", r.checkInController.LogPurchaseRoot)

		// Insights routes
		insights := v1.Group("/insights")
		{
			insights.GET("/spending", r.insightsController.Spending)
			insights.GET("/goals", r.insightsController.Goals)
		}

		// Settings routes
		v1.PATCH("/settings/profile", r.settingsController.UpdateProfile)
	}
}
