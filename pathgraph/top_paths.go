package pathgraph

import (
	"sort"
	"strings"

	M "mta/model"
)

const secsInADay = 86400

// PathSummary aggregates the journeys that followed the same channel sequence.
type PathSummary struct {
	Path           []M.Channel `json:"path"`
	Journeys       int         `json:"journeys"`
	Conversions    int         `json:"conversions"`
	ConversionRate float64     `json:"conversion_rate"`
	// Summed journey weight of the converting journeys.
	Value float64 `json:"value"`
	// Average days from first touch to conversion over timed converting journeys,
	// 0 when none are timed.
	AvgDurationDays float64 `json:"avg_duration_days"`
}

type pathAggregate struct {
	summary       PathSummary
	firstSeen     int
	durationDays  float64
	timedJourneys int
}

// TopPaths groups journeys by channel sequence, consecutive repeats collapsed the
// same way Build does, and returns the most travelled paths first. Ties go to the
// path with more conversions, then to the one seen first. Malformed and
// touchless journeys are ignored. limit <= 0 returns every path.
func TopPaths(journeys []M.Journey, limit int) []PathSummary {
	aggregates := make(map[string]*pathAggregate)
	keys := []string{}

	for _, journey := range journeys {
		if len(journey.Touchpoints) == 0 || !M.IsValidJourney(journey) {
			continue
		}
		path := collapse(journey.Channels())
		key := pathKey(path)

		aggregate, exists := aggregates[key]
		if !exists {
			aggregate = &pathAggregate{summary: PathSummary{Path: path}, firstSeen: len(keys)}
			aggregates[key] = aggregate
			keys = append(keys, key)
		}
		aggregate.summary.Journeys++
		if !journey.Converted {
			continue
		}
		aggregate.summary.Conversions++
		aggregate.summary.Value += journey.Weight()
		if journey.IsTimed() {
			elapsed := journey.ConversionTime() - journey.Touchpoints[0].Timestamp
			if elapsed < 0 {
				elapsed = 0
			}
			aggregate.durationDays += float64(elapsed) / secsInADay
			aggregate.timedJourneys++
		}
	}

	ordered := make([]*pathAggregate, 0, len(keys))
	for _, key := range keys {
		aggregate := aggregates[key]
		aggregate.summary.ConversionRate = float64(aggregate.summary.Conversions) / float64(aggregate.summary.Journeys)
		if aggregate.timedJourneys > 0 {
			aggregate.summary.AvgDurationDays = aggregate.durationDays / float64(aggregate.timedJourneys)
		}
		ordered = append(ordered, aggregate)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i].summary, ordered[j].summary
		if a.Journeys != b.Journeys {
			return a.Journeys > b.Journeys
		}
		if a.Conversions != b.Conversions {
			return a.Conversions > b.Conversions
		}
		return ordered[i].firstSeen < ordered[j].firstSeen
	})

	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}
	summaries := make([]PathSummary, 0, len(ordered))
	for _, aggregate := range ordered {
		summaries = append(summaries, aggregate.summary)
	}
	return summaries
}

// String renders the path the way dashboards label it, "A > B > C".
func (p PathSummary) String() string {
	return joinPath(p.Path, " > ")
}

func collapse(channels []M.Channel) []M.Channel {
	path := make([]M.Channel, 0, len(channels))
	for i, channel := range channels {
		if i > 0 && channel == channels[i-1] {
			continue
		}
		path = append(path, channel)
	}
	return path
}

func pathKey(path []M.Channel) string {
	return joinPath(path, "\x1f")
}

func joinPath(path []M.Channel, separator string) string {
	parts := make([]string, 0, len(path))
	for _, channel := range path {
		parts = append(parts, string(channel))
	}
	return strings.Join(parts, separator)
}
