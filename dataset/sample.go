package dataset

import (
	"strconv"

	M "mta/model"
)

// Reference journeys shown on the attribution dashboard. All of them convert on
// their last step.
var sampleSteps = [][]M.Channel{
	{"Google", "Facebook", "Email"},
	{"Facebook", "Google", "Direct", "Email"},
	{"Direct", "Google", "Facebook", "Email"},
	{"Google", "Email"},
	{"Facebook", "Email"},
	{"Google"},
	{"Email"},
	{"Google", "Facebook", "Google", "Email"},
	{"Direct", "Google", "Facebook", "Google", "Email"},
	{"Facebook", "Google", "Direct", "Facebook", "Email"},
	{"Google", "Direct", "Facebook", "Email"},
	{"Direct", "Google", "Direct", "Email"},
	{"Google", "Facebook", "Direct", "Google", "Email"},
	{"Email", "Google", "Facebook", "Direct", "Email"},
	{"Google", "Google", "Facebook", "Email"},
	{"Facebook", "Facebook", "Google", "Email"},
	{"Direct", "Direct", "Email"},
	{"Google", "Facebook", "Direct", "Google", "Facebook", "Email"},
	{"Direct", "Google", "Facebook", "Direct", "Google", "Email"},
	{"Facebook", "Google", "Direct", "Facebook", "Google", "Email"},
	{"Google", "Zalo", "Email"},
	{"Zalo", "Google", "Facebook", "Email"},
	{"Direct", "Zalo", "Google", "Email"},
	{"Zalo", "Direct", "Email"},
	{"Google", "Email"},
	{"Facebook", "Email"},
	{"Zalo", "Email"},
	{"Direct", "Email"},
	{"Google"},
	{"Email"},
}

// SampleJourneys returns a fresh copy of the reference journeys, ids "1" to "30".
func SampleJourneys() []M.Journey {
	journeys := make([]M.Journey, 0, len(sampleSteps))
	for i, steps := range sampleSteps {
		journeys = append(journeys, M.NewJourney(strconv.Itoa(i+1), true, steps...))
	}
	return journeys
}
