// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/e-budgetmo/backend/internal/integration/entrypoint/controller"
	"github.com/e-budgetmo/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	entryController       *controller.EntryController
	goalController        *controller.GoalController
	statisticsController  *controller.StatisticsController
	transactionController *controller.TransactionController
	mutationRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	entryController *controller.EntryController,
	goalController *controller.GoalController,
	statisticsController *controller.StatisticsController,
	transactionController *controller.TransactionController,
	mutationRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		entryController:       entryController,
		goalController:        goalController,
		statisticsController:  statisticsController,
		transactionController: transactionController,
		mutationRateLimiter:   mutationRateLimiter,
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
		limited := r.mutationRateLimiter.Middleware()

		v1.POST("/entries", limited, r.entryController.Append)
		v1.GET("/finance", r.entryController.GetFinance)

		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", limited, r.goalController.Create)
			goals.POST("/:id/adjust", limited, r.goalController.Adjust)
			goals.DELETE("/:id", limited, r.goalController.Delete)
		}

		v1.GET("/statistics", r.statisticsController.GetMonthly)
		v1.GET("/transactions", r.transactionController.List)
	}
}
