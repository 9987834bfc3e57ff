package handler

import (
	"net/http"

	M "mta/model"
	"mta/quickchart"

	"github.com/gin-gonic/gin"
)

type AttributionRequestPayload struct {
	Journeys []M.Journey `json:"journeys"`
	Model    string      `json:"model"`
}

type CompareRequestPayload struct {
	Journeys []M.Journey `json:"journeys"`
	Models   []string    `json:"models"`
}

type AttributionChartRequestPayload struct {
	Journeys []M.Journey `json:"journeys"`
	Model    string      `json:"model"`
	// When set, a grouped chart comparing the models is drawn instead.
	Models []string `json:"models"`
}

type ModelInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// AttributionHandler POST /attribution
func (h *Handler) AttributionHandler(c *gin.Context) {
	logCtx := getLogCtx(c)

	var requestPayload AttributionRequestPayload
	if !decodePayload(c, logCtx, &requestPayload) {
		return
	}
	models, ok := parseModels(c, logCtx, []string{requestPayload.Model})
	if !ok {
		return
	}

	result, err := h.service.Attribute(normalize(requestPayload.Journeys), models[0])
	if err != nil {
		logCtx.WithError(err).Error("Query failed. Attribution failed.")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Query failed. Attribution failed."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// CompareHandler POST /attribution/compare
func (h *Handler) CompareHandler(c *gin.Context) {
	logCtx := getLogCtx(c)

	var requestPayload CompareRequestPayload
	if !decodePayload(c, logCtx, &requestPayload) {
		return
	}
	models, ok := parseModels(c, logCtx, requestPayload.Models)
	if !ok {
		return
	}

	comparison, err := h.service.Compare(normalize(requestPayload.Journeys), models...)
	if err != nil {
		logCtx.WithError(err).Error("Query failed. Comparison failed.")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Query failed. Comparison failed."})
		return
	}

	results := make(map[string]interface{}, len(comparison.Models))
	for _, model := range comparison.Models {
		results[model.Key()] = comparison.Results[model]
	}
	c.JSON(http.StatusOK, gin.H{
		"models":   comparison.Models,
		"channels": comparison.Channels,
		"rows":     comparison.Rows(),
		"results":  results,
	})
}

// GetModelsHandler GET /attribution/models
func (h *Handler) GetModelsHandler(c *gin.Context) {
	models := M.AllAttributionModels()
	infos := make([]ModelInfo, 0, len(models))
	for _, model := range models {
		infos = append(infos, ModelInfo{Key: model.Key(), Name: model.String()})
	}
	c.JSON(http.StatusOK, gin.H{"models": infos})
}

// AttributionChartHandler POST /attribution/chart
func (h *Handler) AttributionChartHandler(c *gin.Context) {
	logCtx := getLogCtx(c)

	var requestPayload AttributionChartRequestPayload
	if !decodePayload(c, logCtx, &requestPayload) {
		return
	}
	journeys := normalize(requestPayload.Journeys)

	var chartConfig quickchart.ChartConfig
	if len(requestPayload.Models) > 0 {
		models, ok := parseModels(c, logCtx, requestPayload.Models)
		if !ok {
			return
		}
		comparison, err := h.service.Compare(journeys, models...)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Query failed. Comparison failed."})
			return
		}
		chartConfig = quickchart.GetComparisonChartConfig(comparison)
	} else {
		models, ok := parseModels(c, logCtx, []string{requestPayload.Model})
		if !ok {
			return
		}
		result, err := h.service.Attribute(journeys, models[0])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Query failed. Attribution failed."})
			return
		}
		chartConfig = quickchart.GetAttributionChartConfig(result)
	}

	chartUrl, err := quickchart.GetChartImageUrlForConfig(chartConfig)
	if err != nil {
		logCtx.WithError(err).Error("Failed to get chart url.")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get chart url."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": chartUrl})
}
