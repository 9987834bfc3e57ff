package metrics

import (
	"context"
	"time"

	"contrib.go.opencensus.io/exporter/stackdriver"
	log "github.com/sirupsen/logrus"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

// All tracked metrics are to be added here.
// UnitType of the metric i.e. Incr / Count / Latency must be prefixed with each metric name.
const (
	IncrAttributionRequest = "attribution_request_count"
	IncrCompareRequest     = "attribution_compare_request_count"
	IncrPathGraphRequest   = "path_graph_request_count"
	IncrTopPathsRequest    = "top_paths_request_count"
	IncrInvalidModel       = "attribution_invalid_model_count"

	// Journeys left out of a result because they were malformed.
	CountSkippedJourneys = "skipped_journeys_count"
	CountJourneys        = "journeys_count"

	IncrResultCacheHit  = "result_cache_hit"
	IncrResultCacheMiss = "result_cache_miss"

	LatencyAttribution = "attribution_latency"
	LatencyCompare     = "attribution_compare_latency"
	LatencyPathGraph   = "path_graph_latency"
	LatencyTopPaths    = "top_paths_latency"
	LatencyLoadJourney = "load_journeys_latency"
)

var (
	// The task latency in milliseconds.
	latencyStats  = stats.Float64("task_latency", "The task latency in milliseconds", stats.UnitMilliseconds)
	guageStatsInt = stats.Int64("int_counter", "The number of loop iterations", stats.UnitDimensionless)
)

var (
	// MetricNameTag Label for the metric to be updated. To be used in filter.
	MetricNameTag, _ = tag.NewKey("metric_name")
)

var (
	latencyView = &view.View{
		Name:        "latency_view",
		Measure:     latencyStats,
		Description: "The distribution of the task latencies",

		// Bucketing is not supported in stackdriver.
		// But retain this else it fails to export metrics.
		// [>=0ms, >=10ms, >=50ms, >=100ms, >=500ms, >=1s, >=4s]
		Aggregation: view.Distribution(0, 10, 50, 100, 500, 1000, 4000),
		TagKeys:     []tag.Key{MetricNameTag},
	}

	countIntView = &view.View{
		Measure:     guageStatsInt,
		Name:        "count_int_view",
		Description: "Count int view",
		Aggregation: view.Sum(),
		TagKeys:     []tag.Key{MetricNameTag},
	}
)

// GenericTask Resource type for custom metrics.
// Implements interface for stackdriver's monitoredresource.
// https://cloud.google.com/monitoring/api/resources#tag_generic_task
type GenericTask struct {
	ProjectID string
	Location  string
	Namespace string
	Job       string
	TaskID    string
}

// MonitoredResource returns resource type and resource labels for GenericTask
func (gt *GenericTask) MonitoredResource() (resType string, labels map[string]string) {
	labels = map[string]string{
		"project_id": gt.ProjectID,
		"location":   gt.Location,
		"namespace":  gt.Namespace,
		"job":        gt.Job,
		"task_id":    gt.TaskID,
	}
	return "generic_task", labels
}

// RegisterViews makes recorded values observable locally. InitMetrics registers them too.
func RegisterViews() error {
	return view.Register(latencyView, countIntView)
}

// InitMetrics Initializes metrics exporter to collect metrics. Metrics are not
// exported in development or without a project.
func InitMetrics(env, appName, projectID, projectLocation string) *stackdriver.Exporter {
	if env == "development" || projectID == "" {
		return nil
	}
	logCtx := log.WithField("Tag", "Metrics")
	logCtx.Info("Initializing metrics exporter ...")

	if err := RegisterViews(); err != nil {
		logCtx.WithError(err).Error("Failed to register the view")
		return nil
	}

	monitoredResource := GenericTask{
		ProjectID: projectID,
		Location:  projectLocation,
		Namespace: env,
		Job:       appName,
		TaskID:    "generic_task",
	}

	exporter, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID:         projectID,
		MetricPrefix:      "custom.googleapis.com/" + appName + "/",
		ReportingInterval: time.Minute,
		MonitoredResource: &monitoredResource,
		Context:           context.Background(),
		Timeout:           30 * time.Second,
	})
	if err != nil {
		logCtx.WithError(err).Error("Error creating exporter")
		return nil
	}
	view.SetReportingPeriod(time.Minute)

	if err := exporter.StartMetricsExporter(); err != nil {
		logCtx.WithError(err).Error("Error starting metric exporter")
		return nil
	}
	return exporter
}

// Flush stops the exporter after pushing what was recorded.
func Flush(exporter *stackdriver.Exporter) {
	if exporter == nil {
		return
	}
	exporter.Flush()
	exporter.StopMetricsExporter()
}

// Increment Increment the given metric by 1.
func Increment(metricName string) {
	CountInt(metricName, int64(1))
}

// CountInt Reports the count value for given int Metric.
func CountInt(metricName string, count int64) {
	ctx, err := tag.New(context.Background(), tag.Upsert(MetricNameTag, metricName))
	if err != nil {
		log.WithError(err).Error("Failed to record CountInt")
		return
	}
	stats.Record(ctx, guageStatsInt.M(count))
}

// RecordLatency Records latency as a metric in 'ms'.
func RecordLatency(metricName string, latency float64) {
	ctx, err := tag.New(context.Background(), tag.Upsert(MetricNameTag, metricName))
	if err != nil {
		log.WithError(err).Error("Failed to record Latency")
		return
	}
	stats.Record(ctx, latencyStats.M(latency))
}
