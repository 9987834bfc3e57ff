package model

import (
	"fmt"
	"math"
)

// IsValidJourney - true when the journey can be attributed and graphed as is.
func IsValidJourney(j Journey) bool {
	return ValidateJourney(j) == nil
}

// ValidateJourney returns a *MalformedJourneyError naming the first violation,
// nil for a valid journey. A journey without touchpoints is valid.
//
// Order is proven either by positions (strictly ascending from 0) or, when every
// touchpoint is timed, by strictly ascending timestamps. A journey whose positions
// and timestamps disagree is malformed.
func ValidateJourney(j Journey) error {
	malformed := func(format string, args ...interface{}) error {
		return &MalformedJourneyError{Index: -1, JourneyID: j.ID, Reason: fmt.Sprintf(format, args...)}
	}

	if j.Value != nil {
		v := *j.Value
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return malformed("invalid value %v", v)
		}
	}

	for i, tp := range j.Touchpoints {
		if tp.Channel == "" {
			return malformed("empty channel at touchpoint %d", i)
		}
	}
	if len(j.Touchpoints) == 0 {
		return nil
	}

	positionsOrdered := j.Touchpoints[0].Position == 0
	for i := 1; positionsOrdered && i < len(j.Touchpoints); i++ {
		if j.Touchpoints[i].Position <= j.Touchpoints[i-1].Position {
			positionsOrdered = false
		}
	}

	timed := j.IsTimed()
	if positionsOrdered {
		if !timed {
			return nil
		}
		for i := 1; i < len(j.Touchpoints); i++ {
			if j.Touchpoints[i].Timestamp < j.Touchpoints[i-1].Timestamp {
				return malformed("timestamp at touchpoint %d precedes previous touchpoint", i)
			}
		}
		return nil
	}

	if !timed {
		return malformed("positions not strictly ascending from 0")
	}
	for i := 1; i < len(j.Touchpoints); i++ {
		if j.Touchpoints[i].Timestamp <= j.Touchpoints[i-1].Timestamp {
			return malformed("timestamps not strictly ascending at touchpoint %d", i)
		}
	}
	return nil
}

// ValidateJourneyAt is ValidateJourney with the input index recorded on the error.
func ValidateJourneyAt(j Journey, index int) *MalformedJourneyError {
	err := ValidateJourney(j)
	if err == nil {
		return nil
	}
	malformed := err.(*MalformedJourneyError)
	malformed.Index = index
	return malformed
}
