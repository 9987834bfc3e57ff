package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidModel     = errors.New("invalid attribution model")
	ErrMalformedJourney = errors.New("malformed journey")
)

// InvalidModelError is returned when an attribution model outside the closed
// set of models is requested. It is an integration error and is never absorbed.
type InvalidModelError struct {
	Model AttributionModel
	// Raw holds the unparsed name when the error comes from parsing.
	Raw string
}

func (e *InvalidModelError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("%s: %q", ErrInvalidModel.Error(), e.Raw)
	}
	return fmt.Sprintf("%s: %d", ErrInvalidModel.Error(), int(e.Model))
}

func (e *InvalidModelError) Is(target error) bool {
	return target == ErrInvalidModel
}

// MalformedJourneyError describes a journey skipped for failing validation.
type MalformedJourneyError struct {
	// Index of the journey in the input slice. -1 when unknown.
	Index     int    `json:"index"`
	JourneyID string `json:"journey_id,omitempty"`
	Reason    string `json:"reason"`
}

func (e *MalformedJourneyError) Error() string {
	if e.JourneyID != "" {
		return fmt.Sprintf("%s %q at index %d: %s", ErrMalformedJourney.Error(), e.JourneyID, e.Index, e.Reason)
	}
	return fmt.Sprintf("%s at index %d: %s", ErrMalformedJourney.Error(), e.Index, e.Reason)
}

func (e *MalformedJourneyError) Is(target error) bool {
	return target == ErrMalformedJourney
}

// IsInvalidModelError returns true when err is or wraps an InvalidModelError.
func IsInvalidModelError(err error) bool {
	return errors.Is(err, ErrInvalidModel)
}
