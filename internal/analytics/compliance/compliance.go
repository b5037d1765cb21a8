// Package compliance evaluates the traffic-light status of an indicator
// against its target and thresholds.
//
// The evaluation runs in a fixed order:
//
//  1. no current value -> Gray
//  2. no target and no achieved level -> magnitude fallback on a 0-100 scale
//  3. decide whether lower values are better (inverted indicator)
//  4. resolve the satisfactory level
//  5. resolve the critical level
//  6. reconcile 0-1 and 0-100 scales
//  7. compare
//
// Later steps read values resolved by earlier ones, so the order is part of
// the contract.
package compliance

import (
	"github.com/slopez1023/ProyectoDiana/internal/analytics"
)

// Status is the compliance semaphore
type Status string

const (
	Green  Status = "Green"  // Satisfactory
	Yellow Status = "Yellow" // Acceptable, needs follow-up
	Red    Status = "Red"    // Critical
	Gray   Status = "Gray"   // No data
)

// All lists every status in report order
var All = []Status{Green, Yellow, Red, Gray}

// Direction declares whether higher or lower values are better. The zero
// value infers it from the thresholds.
type Direction string

const (
	Inferred       Direction = ""
	HigherIsBetter Direction = "higher_is_better"
	LowerIsBetter  Direction = "lower_is_better"
)

// Valid reports whether d is a known direction
func (d Direction) Valid() bool {
	switch d {
	case Inferred, HigherIsBetter, LowerIsBetter:
		return true
	}
	return false
}

// Rule names the branch of the evaluation that produced a status
type Rule string

const (
	RuleNoData     Rule = "no_data"
	RuleMagnitude  Rule = "magnitude"
	RuleThresholds Rule = "thresholds"
)

// Rescale names the scale correction applied before comparing
type Rescale string

const (
	RescaleNone       Rescale = ""
	RescaleCurrent    Rescale = "current"    // current divided by 100
	RescaleThresholds Rescale = "thresholds" // satisfactory and critical divided by 100
)

// Input is everything the evaluation reads. Nil or NaN pointers are missing.
type Input struct {
	Current      *float64
	Target       *float64
	Satisfactory *float64
	Critical     *float64
	Achieved     *float64
	Direction    Direction
}

// Decision is a status together with the values it was decided on
type Decision struct {
	Status       Status  `json:"status" yaml:"status"`
	Rule         Rule    `json:"rule" yaml:"rule"`
	Inverted     bool    `json:"inverted" yaml:"inverted"`
	Current      float64 `json:"current" yaml:"current"`
	Satisfactory float64 `json:"satisfactory" yaml:"satisfactory"`
	Critical     float64 `json:"critical" yaml:"critical"`
	Rescaled     Rescale `json:"rescaled,omitempty" yaml:"rescaled,omitempty"`
}

// Evaluate returns the compliance status for in
func Evaluate(in Input, t analytics.Thresholds) Status {
	return Explain(in, t).Status
}

// Explain evaluates in and returns the status with the resolved thresholds
func Explain(in Input, t analytics.Thresholds) Decision {
	// 1. Nothing to evaluate
	if !analytics.IsPresent(in.Current) {
		return Decision{Status: Gray, Rule: RuleNoData}
	}
	current := *in.Current

	// 2. No reference at all, classify by magnitude
	if !analytics.IsPresent(in.Target) && !analytics.IsPresent(in.Achieved) {
		return magnitude(current, t)
	}

	// 3. Must run before any threshold is defaulted
	inverted := isInverted(in)

	// 4, 5
	satisfactory := resolveSatisfactory(in, t)
	critical := resolveCritical(in, inverted, satisfactory, t)

	// 6
	rescaled := RescaleNone
	if current > 1 && satisfactory <= 1 {
		current /= 100
		rescaled = RescaleCurrent
	} else if current <= 1 && satisfactory > 1 {
		satisfactory /= 100
		critical /= 100
		rescaled = RescaleThresholds
	}

	// 7
	return Decision{
		Status:       compare(current, satisfactory, critical, inverted),
		Rule:         RuleThresholds,
		Inverted:     inverted,
		Current:      current,
		Satisfactory: satisfactory,
		Critical:     critical,
		Rescaled:     rescaled,
	}
}

func magnitude(current float64, t analytics.Thresholds) Decision {
	d := Decision{
		Rule:         RuleMagnitude,
		Current:      current,
		Satisfactory: t.MagnitudeGreen,
		Critical:     t.MagnitudeYellow,
	}
	switch {
	case current >= t.MagnitudeGreen:
		d.Status = Green
	case current >= t.MagnitudeYellow:
		d.Status = Yellow
	default:
		d.Status = Red
	}
	return d
}

// isInverted honours an explicit direction, otherwise an indicator whose
// critical level sits above its target is taken as lower-is-better.
func isInverted(in Input) bool {
	switch in.Direction {
	case LowerIsBetter:
		return true
	case HigherIsBetter:
		return false
	}
	if analytics.IsPresent(in.Target) && analytics.IsPresent(in.Critical) {
		return *in.Critical > *in.Target
	}
	return false
}

// resolveSatisfactory prefers the explicit level, then achieved, then target
func resolveSatisfactory(in Input, t analytics.Thresholds) float64 {
	switch {
	case analytics.IsPresent(in.Satisfactory):
		return *in.Satisfactory
	case analytics.IsPresent(in.Achieved):
		return *in.Achieved
	case analytics.IsPresent(in.Target):
		return *in.Target
	default:
		return t.DefaultSatisfactory
	}
}

// resolveCritical derives a missing critical level from the target, or from
// the satisfactory level when there is no target.
func resolveCritical(in Input, inverted bool, satisfactory float64, t analytics.Thresholds) float64 {
	if analytics.IsPresent(in.Critical) {
		return *in.Critical
	}

	multiplier := t.CriticalMultiplier
	if inverted {
		multiplier = t.InvertedCriticalMultiplier
	}

	if analytics.IsPresent(in.Target) {
		return *in.Target * multiplier
	}
	return satisfactory * multiplier
}

func compare(current, satisfactory, critical float64, inverted bool) Status {
	if inverted {
		switch {
		case current <= satisfactory:
			return Green
		case current <= critical:
			return Yellow
		default:
			return Red
		}
	}

	switch {
	case current >= satisfactory:
		return Green
	case current >= critical:
		return Yellow
	default:
		return Red
	}
}
