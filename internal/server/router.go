package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the Gin engine: allow-all CORS, panic recovery to a
// generic 500, the analyze endpoint, and a liveness probe.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(cors.Default())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.L().Error("panic while handling request",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrMsg})
	}))

	router.POST("/investor_analyze", h.HandleAnalyze)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return router
}
