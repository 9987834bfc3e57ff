// Package attribution splits conversion credit among the channels of customer
// journeys under the supported attribution models. Calculations are pure: the
// same journeys and model always produce the same result.
package attribution

import (
	M "mta/model"
)

const (
	DefaultDecayRatio   = 0.5
	DefaultHalfLifeDays = 7.0
)

// Config tunes the time decay model. The zero value uses the defaults.
type Config struct {
	// Credit multiplier per step (or per half-life) away from the conversion, in (0, 1].
	DecayRatio float64 `json:"decay_ratio"`
	// Days after which a timed touch's credit is multiplied by DecayRatio.
	HalfLifeDays float64 `json:"half_life_days"`
}

func DefaultConfig() Config {
	return Config{DecayRatio: DefaultDecayRatio, HalfLifeDays: DefaultHalfLifeDays}
}

func (c Config) withDefaults() Config {
	if !(c.DecayRatio > 0 && c.DecayRatio <= 1) {
		c.DecayRatio = DefaultDecayRatio
	}
	if !(c.HalfLifeDays > 0) {
		c.HalfLifeDays = DefaultHalfLifeDays
	}
	return c
}

// Calculate runs the model over the journeys with the default config.
func Calculate(journeys []M.Journey, model M.AttributionModel) (*Result, error) {
	return DefaultConfig().Calculate(journeys, model)
}

// Calculate distributes the weight of every converting journey among its
// touchpoints and sums the credit per channel.
//
// An unknown model fails with *M.InvalidModelError. Malformed journeys are skipped
// and listed on Result.Skipped; they never fail the calculation.
func (c Config) Calculate(journeys []M.Journey, model M.AttributionModel) (*Result, error) {
	if !model.IsValid() {
		return nil, &M.InvalidModelError{Model: model}
	}
	c = c.withDefaults()

	result := newResult(model)
	for index, journey := range journeys {
		if malformed := M.ValidateJourneyAt(journey, index); malformed != nil {
			result.Skipped = append(result.Skipped, *malformed)
			continue
		}
		if !journey.Converted || len(journey.Touchpoints) == 0 {
			continue
		}
		weight := journey.Weight()
		if weight == 0 {
			continue
		}

		result.Converted++
		if len(journey.Touchpoints) == 1 {
			result.add(journey.Touchpoints[0].Channel, weight)
			continue
		}

		fractions := c.touchWeights(journey, model)
		for i, tp := range journey.Touchpoints {
			if fractions[i] == 0 {
				continue
			}
			result.add(tp.Channel, weight*fractions[i])
		}
	}
	return result, nil
}
