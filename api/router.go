package api

import (
	"animforge/config"
	"animforge/render"

	"github.com/gin-gonic/gin"
)

func SetupRouter(sess *render.Session, progress *render.Progress, cfg *config.Config) *gin.Engine {
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	h := NewHandler(sess, progress, cfg)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(AuthMiddleware(cfg))
	{
		v1.GET("/progress", h.handleProgress)
		v1.GET("/frames", h.handleListFrames)
		v1.GET("/frames/:index", h.handleGetFrame)
	}
	return r
}
