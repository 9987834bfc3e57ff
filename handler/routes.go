package handler

import (
	"net/http"

	C "mta/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func InitRoutes(r *gin.Engine, h *Handler) {
	// CORS
	if C.IsDevelopment() {
		log.Info("Running in development.")
		config := cors.DefaultConfig()
		config.AllowOrigins = []string{"http://localhost:8080",
			"http://localhost:3000"}
		r.Use(cors.New(config))
	}

	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/attribution/models", h.GetModelsHandler)
	r.POST("/attribution", h.AttributionHandler)
	r.POST("/attribution/compare", h.CompareHandler)
	r.POST("/attribution/chart", h.AttributionChartHandler)

	r.POST("/path_graph", h.PathGraphHandler)
	r.POST("/path_graph/top_paths", h.TopPathsHandler)
	r.POST("/path_graph/chart", h.PathGraphChartHandler)
}
