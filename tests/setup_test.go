package tests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"mta/attribution"
	H "mta/handler"
	mid "mta/middleware"
	"mta/service"
	"mta/services/disk"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	r, _ := setupRouterWithService(t)
	return r
}

func setupRouterWithService(t *testing.T) (*gin.Engine, *service.Service) {
	gin.SetMode(gin.TestMode)
	svc, err := service.New(service.Options{
		Attribution: attribution.DefaultConfig(),
		CacheSize:   100,
		FileManager: disk.New(t.TempDir()),
	})
	require.Nil(t, err)

	r := gin.New()
	r.Use(mid.RequestIdGenerator())
	r.Use(mid.Recovery())
	H.InitRoutes(r, H.New(svc, H.Options{}))
	return r, svc
}

func sendRequest(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	switch p := payload.(type) {
	case nil:
	case string:
		body.WriteString(p)
	default:
		json.NewEncoder(&body).Encode(p)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return response
}

