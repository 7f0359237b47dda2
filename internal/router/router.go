package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/recipenote/recipe-api/internal/api"
	"github.com/recipenote/recipe-api/internal/middleware"
)

// SetupRouter configures the application routes. The rate limiter is
// optional; passing nil leaves limiting off (no Redis configured).
func SetupRouter(recipeHandler *api.RecipeHandler, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(cors.Default())
	if limiter != nil {
		router.Use(limiter.Middleware())
	}

	// The original service answers the base URL with an empty 404.
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	recipeHandler.RegisterRoutes(router)

	return router
}
