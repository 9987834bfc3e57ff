package handler

import (
	"net/http"

	M "mta/model"
	"mta/quickchart"

	"github.com/gin-gonic/gin"
)

type PathGraphRequestPayload struct {
	Journeys   []M.Journey `json:"journeys"`
	DropCycles *bool       `json:"drop_cycles"`
}

type TopPathsRequestPayload struct {
	Journeys []M.Journey `json:"journeys"`
	Limit    *int        `json:"limit"`
}

// PathGraphHandler POST /path_graph
func (h *Handler) PathGraphHandler(c *gin.Context) {
	logCtx := getLogCtx(c)

	var requestPayload PathGraphRequestPayload
	if !decodePayload(c, logCtx, &requestPayload) {
		return
	}
	dropCycles := h.options.DropCycles
	if requestPayload.DropCycles != nil {
		dropCycles = *requestPayload.DropCycles
	}

	graph := h.service.PathGraph(normalize(requestPayload.Journeys), dropCycles)
	c.JSON(http.StatusOK, graph)
}

// TopPathsHandler POST /path_graph/top_paths
func (h *Handler) TopPathsHandler(c *gin.Context) {
	logCtx := getLogCtx(c)

	var requestPayload TopPathsRequestPayload
	if !decodePayload(c, logCtx, &requestPayload) {
		return
	}
	limit := DefaultTopPathsLimit
	if requestPayload.Limit != nil {
		limit = *requestPayload.Limit
	}

	paths := h.service.TopPaths(normalize(requestPayload.Journeys), limit)
	tableUrl, err := quickchart.GetTableURLfromTableConfig(quickchart.GetTopPathsTableConfig(paths))
	if err != nil {
		logCtx.WithError(err).Error("Failed to get table url.")
	}
	c.JSON(http.StatusOK, gin.H{"paths": paths, "table_url": tableUrl})
}

// PathGraphChartHandler POST /path_graph/chart
func (h *Handler) PathGraphChartHandler(c *gin.Context) {
	logCtx := getLogCtx(c)

	var requestPayload PathGraphRequestPayload
	if !decodePayload(c, logCtx, &requestPayload) {
		return
	}

	// Sankey charts need an acyclic graph whatever the request says.
	graph := h.service.PathGraph(normalize(requestPayload.Journeys), true)
	chartUrl, err := quickchart.GetChartImageUrlForConfig(quickchart.GetPathGraphChartConfig(graph))
	if err != nil {
		logCtx.WithError(err).Error("Failed to get chart url.")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get chart url."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": chartUrl})
}
