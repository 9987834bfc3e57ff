package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/stats/view"
)

func TestInitMetricsDevelopment(t *testing.T) {
	assert.Nil(t, InitMetrics("development", "mta", "project", "us-east1"))
	assert.Nil(t, InitMetrics("production", "mta", "", "us-east1"))
	Flush(nil)
}

func TestCountIntRecorded(t *testing.T) {
	require.Nil(t, RegisterViews())
	defer view.Unregister(latencyView, countIntView)

	CountInt(CountSkippedJourneys, 3)
	Increment(CountSkippedJourneys)
	RecordLatency(LatencyAttribution, 12.5)

	rows, err := view.RetrieveData(countIntView.Name)
	require.Nil(t, err)
	var total int64
	for _, row := range rows {
		for _, tag := range row.Tags {
			if tag.Key == MetricNameTag && tag.Value == CountSkippedJourneys {
				total += int64(row.Data.(*view.SumData).Value)
			}
		}
	}
	assert.Equal(t, int64(4), total)

	rows, err = view.RetrieveData(latencyView.Name)
	require.Nil(t, err)
	assert.NotEmpty(t, rows)
}
