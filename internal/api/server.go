package api

import (
	"github.com/gin-gonic/gin"
	"github.com/mwiater/chatfreq/internal/logging"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return logging.FormatRequest(
				param.Method,
				param.Path,
				param.StatusCode,
				param.Latency,
				param.ClientIP,
				param.ErrorMessage,
			) + "\n"
		},
		Output: logging.Writer(),
	}))

	r.Use(gin.Recovery())

	// CORS so a browser upload page can call the API
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/health", handler.GetHealth)

	api := r.Group("/api")
	{
		api.POST("/analyze", handler.PostAnalyze)
		api.GET("/top", handler.GetTop)
		api.GET("/search", handler.GetSearch)
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "chatfreq",
			"description": "Most frequent words in exported chat archives",
			"endpoints": map[string]string{
				"analyze": "POST /api/analyze (multipart field \"files\")",
				"top":     "GET /api/top",
				"search":  "GET /api/search?word=<word>",
				"health":  "GET /health",
			},
		})
	})

	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
