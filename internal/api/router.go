package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/posekit/pose-restore-go/internal/config"
	"github.com/posekit/pose-restore-go/internal/database"
	"github.com/posekit/pose-restore-go/internal/handler"
	"github.com/posekit/pose-restore-go/internal/middleware"
	"github.com/posekit/pose-restore-go/internal/repository"
	"github.com/posekit/pose-restore-go/internal/service"
)

// SetupRouter builds the HTTP router and wires handlers to services
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Pose Restore API is running",
		})
	})

	refRepo := repository.NewReferenceRepository(database.GetDB())
	restoreHandler := handler.NewRestoreHandler(service.NewRestoreService(refRepo, cfg.ReductionFactor))
	referenceHandler := handler.NewReferenceHandler(service.NewReferenceService(refRepo))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		poses := api.Group("/poses")
		{
			poses.POST("/restore", restoreHandler.Restore)
		}

		references := api.Group("/references")
		{
			references.GET("", referenceHandler.List)
			references.GET("/:name", referenceHandler.Get)

			authorized := references.Group("")
			authorized.Use(middleware.Auth(cfg.JWTSecret))
			{
				authorized.POST("", referenceHandler.Save)
				authorized.DELETE("/:name", referenceHandler.Delete)
			}
		}
	}

	return r
}
