package runner

import (
	"time"

	"github.com/praxis-cli/praxis/internal/catalog"
)

// Outcome is the observed result of executing one unit.
type Outcome int

const (
	// OutcomeSucceeded means the unit's action completed normally.
	OutcomeSucceeded Outcome = iota
	// OutcomeFailed means the unit's action returned an error or panicked.
	OutcomeFailed
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result records the outcome of executing one unit: the observed behavior,
// whether it matched the unit's declared expectation, and the output the
// action produced.
type Result struct {
	Lesson   string
	Unit     string
	Expect   catalog.Expectation
	Outcome  Outcome
	Reason   string
	Matched  bool
	Output   string
	Duration time.Duration
}

// Failed reports whether the observed outcome was a failure, regardless of
// expectation.
func (r Result) Failed() bool {
	return r.Outcome == OutcomeFailed
}

// AllMatched reports whether every result matched its declared expectation.
func AllMatched(results []Result) bool {
	for _, r := range results {
		if !r.Matched {
			return false
		}
	}
	return true
}
