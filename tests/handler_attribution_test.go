package tests

import (
	"net/http"
	"testing"

	"mta/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeTouchJourney = `{"journeys": [{"id": "j1", "converted": true, "touchpoints": [
	{"channel": "Facebook", "position": 0}, {"channel": "Google", "position": 1}, {"channel": "Direct", "position": 2}]}], `

func TestAPIAttributionHandler(t *testing.T) {
	r := setupRouter(t)

	t.Run("LastClick", func(t *testing.T) {
		w := sendRequest(r, http.MethodPost, "/attribution", threeTouchJourney+`"model": "last_click"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result": {"model": "last_click", "credits": {"Direct": 1}, "converted": 1, "skipped": []}}`,
			w.Body.String())
	})

	t.Run("LinearByDisplayName", func(t *testing.T) {
		w := sendRequest(r, http.MethodPost, "/attribution", threeTouchJourney+`"model": "Linear"}`)
		require.Equal(t, http.StatusOK, w.Code)
		credits := decodeResponse(t, w)["result"].(map[string]interface{})["credits"].(map[string]interface{})
		assert.Len(t, credits, 3)
		assert.InDelta(t, 1.0/3.0, credits["Google"], 1e-9)
	})

	t.Run("PositionsOmitted", func(t *testing.T) {
		payload := `{"model": "first_click", "journeys": [{"converted": true, "touchpoints": [{"channel": "Zalo"}, {"channel": "Email"}]}]}`
		w := sendRequest(r, http.MethodPost, "/attribution", payload)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"credits":{"Zalo":1}`)
	})

	t.Run("EmptyJourneys", func(t *testing.T) {
		w := sendRequest(r, http.MethodPost, "/attribution", `{"journeys": [], "model": "time_decay"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result": {"model": "time_decay", "credits": {}, "converted": 0, "skipped": []}}`, w.Body.String())
	})

	t.Run("InvalidModel", func(t *testing.T) {
		w := sendRequest(r, http.MethodPost, "/attribution", threeTouchJourney+`"model": "markov"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeResponse(t, w)["error"], "markov")
	})

	t.Run("UnknownField", func(t *testing.T) {
		w := sendRequest(r, http.MethodPost, "/attribution", `{"journeys": [], "model": "linear", "window": 7}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MalformedJourneySkipped", func(t *testing.T) {
		payload := `{"model": "linear", "journeys": [
			{"id": "ok", "converted": true, "touchpoints": [{"channel": "A", "position": 0}]},
			{"id": "bad", "converted": true, "touchpoints": [{"channel": "A", "position": 3}]}]}`
		w := sendRequest(r, http.MethodPost, "/attribution", payload)
		require.Equal(t, http.StatusOK, w.Code)
		result := decodeResponse(t, w)["result"].(map[string]interface{})
		skipped := result["skipped"].([]interface{})
		require.Len(t, skipped, 1)
		assert.Equal(t, "bad", skipped[0].(map[string]interface{})["journey_id"])
		assert.Equal(t, float64(1), result["converted"])
	})
}

func TestAPICompareHandler(t *testing.T) {
	r := setupRouter(t)

	w := sendRequest(r, http.MethodPost, "/attribution/compare", map[string]interface{}{
		"journeys": dataset.SampleJourneys(),
	})
	require.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Len(t, response["models"], 5)
	assert.Len(t, response["channels"], 5)
	assert.Len(t, response["results"], 5)

	w = sendRequest(r, http.MethodPost, "/attribution/compare", map[string]interface{}{
		"journeys": dataset.SampleJourneys(),
		"models":   []string{"linear", "w_shaped"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIGetModelsHandler(t *testing.T) {
	r := setupRouter(t)
	w := sendRequest(r, http.MethodGet, "/attribution/models", nil)
	require.Equal(t, http.StatusOK, w.Code)
	models := decodeResponse(t, w)["models"].([]interface{})
	require.Len(t, models, 5)
	assert.Equal(t, map[string]interface{}{"key": "position_based", "name": "Position-based (U-shaped)"}, models[4])
}

func TestAPIAttributionChartHandler(t *testing.T) {
	r := setupRouter(t)

	w := sendRequest(r, http.MethodPost, "/attribution/chart", threeTouchJourney+`"model": "linear"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeResponse(t, w)["url"], "quickchart.io")

	w = sendRequest(r, http.MethodPost, "/attribution/chart", threeTouchJourney+`"models": ["linear", "time_decay"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIAttributionHandlerCachesJourneysWithoutIds(t *testing.T) {
	r, svc := setupRouterWithService(t)
	payload := `{"model": "linear", "journeys": [
		{"converted": true, "touchpoints": [{"channel": "Facebook"}, {"channel": "Email"}]},
		{"converted": true, "touchpoints": [{"channel": ""}]}]}`

	first := sendRequest(r, http.MethodPost, "/attribution", payload)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, svc.CachedEntries())

	second := sendRequest(r, http.MethodPost, "/attribution", payload)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, svc.CachedEntries())
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}
