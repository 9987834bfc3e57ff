package tests

import (
	"net/http"
	"testing"

	"mta/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIPathGraphHandler(t *testing.T) {
	r := setupRouter(t)

	t.Run("RoundTrip", func(t *testing.T) {
		payload := `{"journeys": [{"converted": true, "touchpoints": [{"channel": "A"}, {"channel": "B"}, {"channel": "C"}]}]}`
		w := sendRequest(r, http.MethodPost, "/path_graph", payload)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"nodes": [{"id": "Start", "value": 1}, {"id": "A", "value": 1}, {"id": "B", "value": 1},
				{"id": "C", "value": 1}, {"id": "Conversion", "value": 1}],
			"links": [{"source": "Start", "target": "A", "weight": 1}, {"source": "A", "target": "B", "weight": 1},
				{"source": "B", "target": "C", "weight": 1}, {"source": "C", "target": "Conversion", "weight": 1}],
			"skipped": []}`, w.Body.String())
	})

	t.Run("Empty", func(t *testing.T) {
		w := sendRequest(r, http.MethodPost, "/path_graph", `{"journeys": []}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"nodes": [], "links": [], "skipped": []}`, w.Body.String())
	})

	t.Run("NonConverting", func(t *testing.T) {
		payload := `{"journeys": [{"converted": false, "touchpoints": [{"channel": "Email", "position": 0}]}]}`
		w := sendRequest(r, http.MethodPost, "/path_graph", payload)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `{"source":"Email","target":"Exit","weight":1}`)
	})

	t.Run("DropCycles", func(t *testing.T) {
		payload := `{"drop_cycles": true, "journeys": [{"converted": true, "touchpoints": [{"channel": "A"}, {"channel": "B"}, {"channel": "A"}]}]}`
		w := sendRequest(r, http.MethodPost, "/path_graph", payload)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `"source":"B","target":"A"`)
	})
}

func TestAPITopPathsHandler(t *testing.T) {
	r := setupRouter(t)

	w := sendRequest(r, http.MethodPost, "/path_graph/top_paths", map[string]interface{}{
		"journeys": dataset.SampleJourneys(),
		"limit":    2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	paths := response["paths"].([]interface{})
	require.Len(t, paths, 2)
	assert.Equal(t, []interface{}{"Google", "Facebook", "Email"}, paths[0].(map[string]interface{})["path"])
	assert.Contains(t, response["table_url"], "quickchart.io")

	w = sendRequest(r, http.MethodPost, "/path_graph/top_paths", map[string]interface{}{
		"journeys": dataset.SampleJourneys(),
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["paths"], 10)
}

func TestAPIPathGraphChartHandler(t *testing.T) {
	r := setupRouter(t)
	w := sendRequest(r, http.MethodPost, "/path_graph/chart", map[string]interface{}{
		"journeys": dataset.SampleJourneys(),
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeResponse(t, w)["url"], "quickchart.io")
}
