// Package rates converts annual interest rates between compounding conventions.
package rates

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownCompounding is returned when a compounding frequency is not one
	// of the supported conventions.
	ErrUnknownCompounding = errors.New("unknown compounding frequency")
)

// Compounding identifies how often an annual rate compounds.
type Compounding string

const (
	// Yearly compounds once per year.
	Yearly Compounding = "Yearly"
	// SemiAnnual compounds twice per year.
	SemiAnnual Compounding = "Semi-annual"
	// Quarterly compounds four times per year.
	Quarterly Compounding = "Quarterly"
	// Monthly compounds twelve times per year.
	Monthly Compounding = "Monthly"
	// Continuous compounds continuously.
	Continuous Compounding = "Continuous"
)

// PeriodsPerYear returns the number of compounding periods per year.
// The second return is false for Continuous and for unknown values.
func (c Compounding) PeriodsPerYear() (int, bool) {
	switch c {
	case Yearly:
		return 1, true
	case SemiAnnual:
		return 2, true
	case Quarterly:
		return 4, true
	case Monthly:
		return 12, true
	default:
		return 0, false
	}
}

func valid(c Compounding) bool {
	if c == Continuous {
		return true
	}
	_, ok := c.PeriodsPerYear()
	return ok
}

// Convert restates an annual rate quoted under one compounding convention in
// another, by round-tripping through the effective annual rate.
//
// The effective rate must stay above -1 for the log/power steps to be
// real-valued; that is a precondition on the inputs, not a checked error.
func Convert(rate float64, from, to Compounding) (float64, error) {
	if !valid(from) {
		return 0, fmt.Errorf("Convert: %w %q", ErrUnknownCompounding, from)
	}
	if !valid(to) {
		return 0, fmt.Errorf("Convert: %w %q", ErrUnknownCompounding, to)
	}

	var effective float64
	if from == Continuous {
		effective = math.Exp(rate) - 1
	} else {
		n, _ := from.PeriodsPerYear()
		effective = math.Pow(1+rate/float64(n), float64(n)) - 1
	}

	if to == Continuous {
		return math.Log(1 + effective), nil
	}
	n, _ := to.PeriodsPerYear()
	return float64(n) * (math.Pow(1+effective, 1/float64(n)) - 1), nil
}
