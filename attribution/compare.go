package attribution

import (
	M "mta/model"
)

// Comparison holds the results of several models over the same journeys, for
// side by side tables.
type Comparison struct {
	Models []M.AttributionModel `json:"models"`
	// Union of credited channels, in first-credit order over Models in order.
	Channels []M.Channel                    `json:"channels"`
	Results  map[M.AttributionModel]*Result `json:"-"`
}

// Compare runs each model over the journeys. All models are compared when none
// are given. Any invalid model fails the whole comparison.
func Compare(journeys []M.Journey, models ...M.AttributionModel) (*Comparison, error) {
	return DefaultConfig().Compare(journeys, models...)
}

func (c Config) Compare(journeys []M.Journey, models ...M.AttributionModel) (*Comparison, error) {
	if len(models) == 0 {
		models = M.AllAttributionModels()
	}
	for _, model := range models {
		if !model.IsValid() {
			return nil, &M.InvalidModelError{Model: model}
		}
	}

	comparison := &Comparison{
		Models:   make([]M.AttributionModel, 0, len(models)),
		Channels: []M.Channel{},
		Results:  make(map[M.AttributionModel]*Result, len(models)),
	}
	seen := make(map[M.Channel]bool)
	for _, model := range models {
		if _, exists := comparison.Results[model]; exists {
			continue
		}
		result, err := c.Calculate(journeys, model)
		if err != nil {
			return nil, err
		}
		comparison.Models = append(comparison.Models, model)
		comparison.Results[model] = result
		for _, channel := range result.channels {
			if !seen[channel] {
				seen[channel] = true
				comparison.Channels = append(comparison.Channels, channel)
			}
		}
	}
	return comparison, nil
}

// Credit returns the credit a model gave a channel, 0 when it gave none.
func (cmp *Comparison) Credit(model M.AttributionModel, channel M.Channel) float64 {
	result, exists := cmp.Results[model]
	if !exists {
		return 0
	}
	return result.Credit(channel)
}

type ComparisonRow struct {
	Channel M.Channel          `json:"channel"`
	Credits map[string]float64 `json:"credits"`
}

// Rows returns one row per channel with the credit of every model keyed by model key.
func (cmp *Comparison) Rows() []ComparisonRow {
	rows := make([]ComparisonRow, 0, len(cmp.Channels))
	for _, channel := range cmp.Channels {
		row := ComparisonRow{Channel: channel, Credits: make(map[string]float64, len(cmp.Models))}
		for _, model := range cmp.Models {
			row.Credits[model.Key()] = cmp.Credit(model, channel)
		}
		rows = append(rows, row)
	}
	return rows
}
