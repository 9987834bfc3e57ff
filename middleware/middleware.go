package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	U "mta/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
	log "github.com/sirupsen/logrus"
)

// scope constants.
const SCOPE_REQ_ID = U.SCOPE_REQ_ID

const HEADER_REQ_ID = "X-Request-ID"

// RequestIdGenerator scopes a request id on every request, reusing the caller's
// X-Request-ID when present, and echoes it on the response.
func RequestIdGenerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqId := strings.TrimSpace(c.Request.Header.Get(HEADER_REQ_ID))
		if reqId == "" {
			reqId = xid.New().String()
		}
		U.SetScope(c, SCOPE_REQ_ID, reqId)
		c.Header(HEADER_REQ_ID, reqId)

		c.Next()
	}
}

// Logger logs one line per request once it has been served.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logCtx := log.WithFields(log.Fields{
			"reqId":     U.GetScopeByKeyAsString(c, SCOPE_REQ_ID),
			"method":    c.Request.Method,
			"path":      path,
			"status":    c.Writer.Status(),
			"latencyMs": U.TimeSince(start),
			"clientIP":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			logCtx = logCtx.WithField("errors", c.Errors.String())
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logCtx.Error("Request failed.")
			return
		}
		logCtx.Info("Request served.")
	}
}

// Recovery turns a panic in a handler into a 500 response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.WithFields(log.Fields{
					"reqId": U.GetScopeByKeyAsString(c, SCOPE_REQ_ID),
					"error": err,
					"stack": string(debug.Stack()),
				}).Error("Recovered from panic.")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
			}
		}()
		c.Next()
	}
}
