// Package cache memoizes attribution results for callers that recompute over the
// same journeys. The calculation packages stay cache free.
package cache

import (
	"encoding/json"
	"fmt"

	"mta/attribution"
	M "mta/model"
	"mta/pathgraph"
	U "mta/util"

	cache "github.com/hashicorp/golang-lru"
	log "github.com/sirupsen/logrus"
)

const (
	IdSeparator = ":"

	keyPrefixResult = "result"
	keyPrefixGraph  = "path_graph"
)

type ResultCache struct {
	resultCache *cache.Cache
	graphCache  *cache.Cache
}

func New(size int) (*ResultCache, error) {
	resultCache, err := cache.New(size)
	if err != nil {
		return nil, err
	}

	graphCache, err := cache.New(size)
	if err != nil {
		return nil, err
	}

	return &ResultCache{resultCache: resultCache, graphCache: graphCache}, nil
}

// GetJourneysKey identifies a journey set by the checksum of its JSON encoding.
func GetJourneysKey(journeys []M.Journey) (string, error) {
	bytes, err := json.Marshal(journeys)
	if err != nil {
		return "", err
	}
	return U.HashKeyUsingSha256Checksum(string(bytes)), nil
}

func GetResultKey(journeysKey string, model M.AttributionModel, config attribution.Config) string {
	return fmt.Sprintf("%s%s%s%s%s%s%g%s%g", keyPrefixResult, IdSeparator, journeysKey, IdSeparator,
		model.Key(), IdSeparator, config.DecayRatio, IdSeparator, config.HalfLifeDays)
}

func GetGraphKey(journeysKey string, dropCycles bool) string {
	return fmt.Sprintf("%s%s%s%s%t", keyPrefixGraph, IdSeparator, journeysKey, IdSeparator, dropCycles)
}

func (rc *ResultCache) PutResult(key string, result *attribution.Result) {
	log.WithField("key", key).Debugln("[ResultCache] PutResult")
	rc.resultCache.Add(key, result)
}

func (rc *ResultCache) GetResult(key string) (*attribution.Result, bool) {
	resultIface, ok := rc.resultCache.Get(key)
	if !ok {
		return nil, false
	}
	result, ok := resultIface.(*attribution.Result)
	return result, ok
}

func (rc *ResultCache) PutGraph(key string, graph *pathgraph.PathGraph) {
	log.WithField("key", key).Debugln("[ResultCache] PutGraph")
	rc.graphCache.Add(key, graph)
}

func (rc *ResultCache) GetGraph(key string) (*pathgraph.PathGraph, bool) {
	graphIface, ok := rc.graphCache.Get(key)
	if !ok {
		return nil, false
	}
	graph, ok := graphIface.(*pathgraph.PathGraph)
	return graph, ok
}

// Len is the number of cached results and graphs.
func (rc *ResultCache) Len() int {
	return rc.resultCache.Len() + rc.graphCache.Len()
}

func (rc *ResultCache) Purge() {
	rc.resultCache.Purge()
	rc.graphCache.Purge()
}
