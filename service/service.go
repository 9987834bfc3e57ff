// Package service runs the attribution and path graph calculations for the
// HTTP handlers and the CLI, adding caching, metrics and logging around them.
package service

import (
	"time"

	"mta/attribution"
	"mta/cache"
	"mta/dataset"
	"mta/filestore"
	"mta/metrics"
	M "mta/model"
	"mta/pathgraph"
	U "mta/util"

	log "github.com/sirupsen/logrus"
)

type Options struct {
	Attribution attribution.Config
	// Zero disables result caching.
	CacheSize   int
	FileManager filestore.FileManager
}

type Service struct {
	config      attribution.Config
	cache       *cache.ResultCache
	fileManager filestore.FileManager
}

func New(options Options) (*Service, error) {
	service := &Service{
		config:      options.Attribution,
		fileManager: options.FileManager,
	}
	if options.CacheSize > 0 {
		resultCache, err := cache.New(options.CacheSize)
		if err != nil {
			return nil, err
		}
		service.cache = resultCache
	}
	return service, nil
}

func (s *Service) AttributionConfig() attribution.Config {
	return s.config
}

// CachedEntries is the number of memoized results and graphs.
func (s *Service) CachedEntries() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

func logSkipped(logCtx *log.Entry, skipped []M.MalformedJourneyError) {
	if len(skipped) == 0 {
		return
	}
	metrics.CountInt(metrics.CountSkippedJourneys, int64(len(skipped)))
	logCtx.WithFields(log.Fields{
		"skipped":      len(skipped),
		"first_reason": skipped[0].Error(),
	}).Warn("Skipped malformed journeys.")
}

// Attribute distributes the conversion credit of the journeys over channels.
func (s *Service) Attribute(journeys []M.Journey, model M.AttributionModel) (*attribution.Result, error) {
	logCtx := log.WithFields(log.Fields{"model": model.Key(), "journeys": len(journeys)})
	metrics.Increment(metrics.IncrAttributionRequest)
	metrics.CountInt(metrics.CountJourneys, int64(len(journeys)))
	start := time.Now()

	if !model.IsValid() {
		metrics.Increment(metrics.IncrInvalidModel)
		return nil, &M.InvalidModelError{Model: model}
	}

	var cacheKey string
	if s.cache != nil {
		journeysKey, err := cache.GetJourneysKey(journeys)
		if err != nil {
			logCtx.WithError(err).Error("Failed to build cache key.")
		} else {
			cacheKey = cache.GetResultKey(journeysKey, model, s.config)
			if result, found := s.cache.GetResult(cacheKey); found {
				metrics.Increment(metrics.IncrResultCacheHit)
				logCtx.Debug("Attribution result served from cache.")
				return result, nil
			}
			metrics.Increment(metrics.IncrResultCacheMiss)
		}
	}

	result, err := s.config.Calculate(journeys, model)
	if err != nil {
		logCtx.WithError(err).Error("Failed to calculate attribution.")
		return nil, err
	}
	logSkipped(logCtx, result.Skipped)
	if cacheKey != "" {
		s.cache.PutResult(cacheKey, result)
	}

	metrics.RecordLatency(metrics.LatencyAttribution, U.TimeSince(start))
	logCtx.WithFields(log.Fields{"channels": result.Len(), "converted": result.Converted}).
		Debug("Attribution calculated.")
	return result, nil
}

// Compare runs several models, all of them when none are given.
func (s *Service) Compare(journeys []M.Journey, models ...M.AttributionModel) (*attribution.Comparison, error) {
	logCtx := log.WithFields(log.Fields{"models": len(models), "journeys": len(journeys)})
	metrics.Increment(metrics.IncrCompareRequest)
	start := time.Now()

	comparison, err := s.config.Compare(journeys, models...)
	if err != nil {
		if M.IsInvalidModelError(err) {
			metrics.Increment(metrics.IncrInvalidModel)
		}
		logCtx.WithError(err).Error("Failed to compare attribution models.")
		return nil, err
	}
	if len(comparison.Models) > 0 {
		logSkipped(logCtx, comparison.Results[comparison.Models[0]].Skipped)
	}

	metrics.RecordLatency(metrics.LatencyCompare, U.TimeSince(start))
	return comparison, nil
}

// PathGraph builds the transition graph, without the links closing cycles when
// dropCycles is set.
func (s *Service) PathGraph(journeys []M.Journey, dropCycles bool) *pathgraph.PathGraph {
	logCtx := log.WithFields(log.Fields{"journeys": len(journeys), "drop_cycles": dropCycles})
	metrics.Increment(metrics.IncrPathGraphRequest)
	start := time.Now()

	var cacheKey string
	if s.cache != nil {
		if journeysKey, err := cache.GetJourneysKey(journeys); err == nil {
			cacheKey = cache.GetGraphKey(journeysKey, dropCycles)
			if graph, found := s.cache.GetGraph(cacheKey); found {
				metrics.Increment(metrics.IncrResultCacheHit)
				return graph
			}
			metrics.Increment(metrics.IncrResultCacheMiss)
		}
	}

	graph := pathgraph.Build(journeys)
	logSkipped(logCtx, graph.Skipped)
	if dropCycles {
		graph = graph.Acyclic()
	}
	if cacheKey != "" {
		s.cache.PutGraph(cacheKey, graph)
	}

	metrics.RecordLatency(metrics.LatencyPathGraph, U.TimeSince(start))
	logCtx.WithFields(log.Fields{"nodes": len(graph.Nodes), "links": len(graph.Links)}).
		Debug("Path graph built.")
	return graph
}

func (s *Service) TopPaths(journeys []M.Journey, limit int) []pathgraph.PathSummary {
	metrics.Increment(metrics.IncrTopPathsRequest)
	start := time.Now()
	paths := pathgraph.TopPaths(journeys, limit)
	metrics.RecordLatency(metrics.LatencyTopPaths, U.TimeSince(start))
	return paths
}

// LoadJourneys reads a journeys file from the configured store. An empty dir
// means the store's journeys dir.
func (s *Service) LoadJourneys(dir, fileName string) ([]M.Journey, error) {
	if s.fileManager == nil {
		return nil, ErrNoFileManager
	}
	if dir == "" {
		dir, fileName = s.fileManager.GetJourneysFilePathAndName(fileName)
	}
	start := time.Now()
	journeys, err := dataset.LoadJourneys(s.fileManager, dir, fileName)
	if err != nil {
		return nil, err
	}
	metrics.RecordLatency(metrics.LatencyLoadJourney, U.TimeSince(start))
	return journeys, nil
}

// WriteReport stores v in the configured store under reportName.
func (s *Service) WriteReport(reportName string, v interface{}) (string, string, error) {
	if s.fileManager == nil {
		return "", "", ErrNoFileManager
	}
	return dataset.WriteReport(s.fileManager, reportName, v)
}
