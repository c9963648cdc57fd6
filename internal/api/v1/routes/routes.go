package routes

import (
	"github.com/gin-gonic/gin"

	"memo2text/internal/api/v1/handlers"
	"memo2text/internal/app/api/provider"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, registry *provider.Registry) {
	conversionHandler := handlers.NewConversionHandler()
	router.POST("/conversions", conversionHandler.Create)

	transcriptionHandler := handlers.NewTranscriptionHandler(registry)
	transcriptions := router.Group("/transcriptions")
	{
		transcriptions.POST("", transcriptionHandler.Create)
	}

	router.GET("/engines", transcriptionHandler.ListEngines)
}
