package handler

import (
	"encoding/json"
	"net/http"

	"mta/dataset"
	mid "mta/middleware"
	M "mta/model"
	"mta/service"
	U "mta/util"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const DefaultTopPathsLimit = 10

type Options struct {
	// Used when a path graph request does not say whether to drop cycles.
	DropCycles bool
}

type Handler struct {
	service *service.Service
	options Options
}

func New(svc *service.Service, options Options) *Handler {
	return &Handler{service: svc, options: options}
}

func getLogCtx(c *gin.Context) *log.Entry {
	return log.WithFields(log.Fields{
		"reqId": U.GetScopeByKeyAsString(c, mid.SCOPE_REQ_ID),
	})
}

// decodePayload decodes the request body strictly and aborts with 400 on failure.
func decodePayload(c *gin.Context, logCtx *log.Entry, payload interface{}) bool {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		logCtx.WithError(err).Error("Query failed. Json decode failed.")
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Query failed. Json decode failed."})
		return false
	}
	return true
}

// parseModels parses model names and aborts with 400 on the first invalid one.
func parseModels(c *gin.Context, logCtx *log.Entry, names []string) ([]M.AttributionModel, bool) {
	models := make([]M.AttributionModel, 0, len(names))
	for _, name := range names {
		model, err := M.ParseAttributionModel(name)
		if err != nil {
			logCtx.WithError(err).Error("Query failed. Invalid attribution model.")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		models = append(models, model)
	}
	return models, true
}

func normalize(journeys []M.Journey) []M.Journey {
	return dataset.NormalizeJourneys(journeys)
}
