package attribution

import (
	"bytes"
	"encoding/json"

	M "mta/model"
)

type ChannelCredit struct {
	Channel M.Channel `json:"channel"`
	Credit  float64   `json:"credit"`
}

// Result maps channels to accumulated credit. Channels iterate in the order they
// first received credit, which keeps tables and charts stable across recomputes.
type Result struct {
	Model M.AttributionModel
	// Number of converting journeys that contributed credit.
	Converted int
	Skipped   []M.MalformedJourneyError

	channels []M.Channel
	credits  map[M.Channel]float64
}

func newResult(model M.AttributionModel) *Result {
	return &Result{
		Model:    model,
		Skipped:  []M.MalformedJourneyError{},
		channels: []M.Channel{},
		credits:  make(map[M.Channel]float64),
	}
}

func (r *Result) add(channel M.Channel, credit float64) {
	if _, exists := r.credits[channel]; !exists {
		r.channels = append(r.channels, channel)
	}
	r.credits[channel] += credit
}

func (r *Result) Len() int {
	return len(r.channels)
}

// Channels returns the credited channels in first-credit order.
func (r *Result) Channels() []M.Channel {
	channels := make([]M.Channel, len(r.channels))
	copy(channels, r.channels)
	return channels
}

// Credit returns the credit of a channel, 0 when the channel received none.
func (r *Result) Credit(channel M.Channel) float64 {
	return r.credits[channel]
}

func (r *Result) Has(channel M.Channel) bool {
	_, exists := r.credits[channel]
	return exists
}

// Total is the sum of credits over all channels.
func (r *Result) Total() float64 {
	total := 0.0
	for _, channel := range r.channels {
		total += r.credits[channel]
	}
	return total
}

func (r *Result) Entries() []ChannelCredit {
	entries := make([]ChannelCredit, 0, len(r.channels))
	for _, channel := range r.channels {
		entries = append(entries, ChannelCredit{Channel: channel, Credit: r.credits[channel]})
	}
	return entries
}

// Map returns an unordered copy of the credits.
func (r *Result) Map() map[M.Channel]float64 {
	credits := make(map[M.Channel]float64, len(r.credits))
	for channel, credit := range r.credits {
		credits[channel] = credit
	}
	return credits
}

type resultJSON struct {
	Model     M.AttributionModel        `json:"model"`
	Credits   orderedCredits            `json:"credits"`
	Converted int                       `json:"converted"`
	Skipped   []M.MalformedJourneyError `json:"skipped"`
}

// orderedCredits encodes as a JSON object whose keys keep result order.
type orderedCredits []ChannelCredit

func (o orderedCredits) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(entry.Channel))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Credit)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Model:     r.Model,
		Credits:   orderedCredits(r.Entries()),
		Converted: r.Converted,
		Skipped:   r.Skipped,
	})
}
