package model

import (
	"strings"
)

// AttributionModel is the closed set of rules for splitting conversion credit
// among the touchpoints of a journey. The zero value is not a valid model.
type AttributionModel int

const (
	LastClick AttributionModel = iota + 1
	FirstClick
	Linear
	TimeDecay
	PositionBased
)

const (
	AttributionModelKeyLastClick     = "last_click"
	AttributionModelKeyFirstClick    = "first_click"
	AttributionModelKeyLinear        = "linear"
	AttributionModelKeyTimeDecay     = "time_decay"
	AttributionModelKeyPositionBased = "position_based"
)

// AllAttributionModels returns every model in declaration order.
func AllAttributionModels() []AttributionModel {
	return []AttributionModel{LastClick, FirstClick, Linear, TimeDecay, PositionBased}
}

func (m AttributionModel) IsValid() bool {
	switch m {
	case LastClick, FirstClick, Linear, TimeDecay, PositionBased:
		return true
	}
	return false
}

// Key is the stable machine name, used on the wire.
func (m AttributionModel) Key() string {
	switch m {
	case LastClick:
		return AttributionModelKeyLastClick
	case FirstClick:
		return AttributionModelKeyFirstClick
	case Linear:
		return AttributionModelKeyLinear
	case TimeDecay:
		return AttributionModelKeyTimeDecay
	case PositionBased:
		return AttributionModelKeyPositionBased
	}
	return ""
}

// String returns the display name shown on dashboards.
func (m AttributionModel) String() string {
	switch m {
	case LastClick:
		return "Last Click"
	case FirstClick:
		return "First Click"
	case Linear:
		return "Linear"
	case TimeDecay:
		return "Time Decay"
	case PositionBased:
		return "Position-based (U-shaped)"
	}
	return "Unknown"
}

var attributionModelAliases = map[string]AttributionModel{
	AttributionModelKeyLastClick:     LastClick,
	AttributionModelKeyFirstClick:    FirstClick,
	AttributionModelKeyLinear:        Linear,
	AttributionModelKeyTimeDecay:     TimeDecay,
	AttributionModelKeyPositionBased: PositionBased,
	"u_shaped":                       PositionBased,
	"last_touch":                     LastClick,
	"first_touch":                    FirstClick,
}

// ParseAttributionModel accepts a key ("time_decay"), a display name ("Time Decay")
// or the U-shaped aliases, case insensitive.
func ParseAttributionModel(name string) (AttributionModel, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	if m, exists := attributionModelAliases[normalized]; exists {
		return m, nil
	}
	for _, m := range AllAttributionModels() {
		if strings.EqualFold(m.String(), strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return 0, &InvalidModelError{Raw: name}
}

func (m AttributionModel) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, &InvalidModelError{Model: m}
	}
	return []byte(m.Key()), nil
}

func (m *AttributionModel) UnmarshalText(text []byte) error {
	parsed, err := ParseAttributionModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
