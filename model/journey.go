package model

// Channel identifies a marketing channel, e.g. "Facebook", "Google", "Email".
// Channels are compared as-is, so "email" and "Email" are different channels.
type Channel string

type Touchpoint struct {
	Channel Channel `json:"channel" yaml:"channel"`
	// Zero-based index of the touchpoint within its journey.
	Position int `json:"position" yaml:"position"`
	// Unix seconds. Zero means the touchpoint has no timestamp.
	Timestamp int64 `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// HasTimestamp reports whether the touchpoint carries an interaction time.
func (tp Touchpoint) HasTimestamp() bool {
	return tp.Timestamp > 0
}

type Journey struct {
	ID          string       `json:"id,omitempty" yaml:"id,omitempty"`
	Touchpoints []Touchpoint `json:"touchpoints" yaml:"touchpoints"`
	Converted   bool         `json:"converted" yaml:"converted"`
	// Conversion value. Nil means unit weight.
	Value *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	// Unix seconds of the conversion, optional. Only used by time based decay.
	ConversionTimestamp int64 `json:"conversion_timestamp,omitempty" yaml:"conversion_timestamp,omitempty"`
}

// Weight returns the conversion weight of the journey: Value when present, else 1.
func (j Journey) Weight() float64 {
	if j.Value != nil {
		return *j.Value
	}
	return 1
}

// Channels returns the channel of every touchpoint in journey order.
func (j Journey) Channels() []Channel {
	channels := make([]Channel, 0, len(j.Touchpoints))
	for _, tp := range j.Touchpoints {
		channels = append(channels, tp.Channel)
	}
	return channels
}

// IsTimed reports whether every touchpoint of a non-empty journey has a timestamp.
func (j Journey) IsTimed() bool {
	if len(j.Touchpoints) == 0 {
		return false
	}
	for _, tp := range j.Touchpoints {
		if !tp.HasTimestamp() {
			return false
		}
	}
	return true
}

// ConversionTime returns the instant the journey converted. Falls back to the
// timestamp of the last touchpoint when ConversionTimestamp is not set.
func (j Journey) ConversionTime() int64 {
	if j.ConversionTimestamp > 0 {
		return j.ConversionTimestamp
	}
	if len(j.Touchpoints) == 0 {
		return 0
	}
	return j.Touchpoints[len(j.Touchpoints)-1].Timestamp
}

// NewJourney builds a journey from an ordered list of channels, assigning positions.
func NewJourney(id string, converted bool, channels ...Channel) Journey {
	touchpoints := make([]Touchpoint, 0, len(channels))
	for i, channel := range channels {
		touchpoints = append(touchpoints, Touchpoint{Channel: channel, Position: i})
	}
	return Journey{ID: id, Touchpoints: touchpoints, Converted: converted}
}

// WithValue returns a copy of the journey carrying the given conversion value.
func (j Journey) WithValue(value float64) Journey {
	j.Value = &value
	return j
}
