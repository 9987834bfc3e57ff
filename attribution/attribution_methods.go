package attribution

import (
	"math"

	M "mta/model"
)

const (
	SecsInADay = int64(86400)

	positionBasedEdgeShare   = 0.4
	positionBasedMiddleShare = 0.2
)

// touchWeights returns, for a converting journey with at least two touchpoints,
// the fraction of credit each touchpoint receives. Fractions sum to 1.
func (c Config) touchWeights(journey M.Journey, model M.AttributionModel) []float64 {
	n := len(journey.Touchpoints)
	switch model {
	case M.LastClick:
		return getLastTouchWeights(n)
	case M.FirstClick:
		return getFirstTouchWeights(n)
	case M.Linear:
		return getLinearTouchWeights(n)
	case M.TimeDecay:
		if journey.IsTimed() {
			return c.getTimeDecayWeights(journey)
		}
		return c.getPositionalDecayWeights(n)
	case M.PositionBased:
		return getUShapedWeights(n)
	}
	return nil
}

func getLastTouchWeights(n int) []float64 {
	weights := make([]float64, n)
	weights[n-1] = 1
	return weights
}

func getFirstTouchWeights(n int) []float64 {
	weights := make([]float64, n)
	weights[0] = 1
	return weights
}

func getLinearTouchWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}
	return weights
}

// getUShapedWeights gives 40% each to first and last touch and splits 20% across
// the middle. Two touches split evenly.
func getUShapedWeights(n int) []float64 {
	weights := make([]float64, n)
	if n == 2 {
		weights[0], weights[1] = 0.5, 0.5
		return weights
	}
	middle := positionBasedMiddleShare / float64(n-2)
	for i := range weights {
		weights[i] = middle
	}
	weights[0] = positionBasedEdgeShare
	weights[n-1] = positionBasedEdgeShare
	return weights
}

// getPositionalDecayWeights scores touch i as r^(n-1-i), so every step away from
// the conversion multiplies the credit by the decay ratio.
func (c Config) getPositionalDecayWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = math.Pow(c.DecayRatio, float64(n-1-i))
	}
	return normalize(weights)
}

// getTimeDecayWeights scores each touch as r^(elapsedDays/halfLife), elapsed days
// being measured from the touch to the conversion. With r = 0.5 a touch one
// half-life older than another receives half its credit.
func (c Config) getTimeDecayWeights(journey M.Journey) []float64 {
	conversionTime := journey.ConversionTime()
	weights := make([]float64, len(journey.Touchpoints))
	for i, tp := range journey.Touchpoints {
		weights[i] = c.calculateWeightForTimeDecay(conversionTime, tp.Timestamp)
	}
	return normalize(weights)
}

func (c Config) calculateWeightForTimeDecay(conversionTime, interactionTime int64) float64 {
	elapsed := conversionTime - interactionTime
	if elapsed < 0 {
		elapsed = 0
	}
	days := float64(elapsed) / float64(SecsInADay)
	return math.Pow(c.DecayRatio, days/c.HalfLifeDays)
}

func normalize(weights []float64) []float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return getLinearTouchWeights(len(weights))
	}
	for i := range weights {
		weights[i] = weights[i] / total
	}
	return weights
}
