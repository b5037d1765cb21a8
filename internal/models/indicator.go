package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/compliance"
)

// ErrInvalidRecord is returned when an indicator record cannot be analyzed
var ErrInvalidRecord = errors.New("invalid indicator record")

var validate = validator.New()

// IndicatorRecord is one normalized row of an indicator board
type IndicatorRecord struct {
	ID     string `json:"id" yaml:"id" validate:"required"`
	Name   string `json:"name" yaml:"name" validate:"required"`
	Sector string `json:"sector,omitempty" yaml:"sector,omitempty"`
	Unit   string `json:"unit,omitempty" yaml:"unit,omitempty"`

	Target            *float64 `json:"target,omitempty" yaml:"target,omitempty"`
	SatisfactoryLevel *float64 `json:"satisfactory_level,omitempty" yaml:"satisfactory_level,omitempty"`
	CriticalLevel     *float64 `json:"critical_level,omitempty" yaml:"critical_level,omitempty"`
	AchievedLevel     *float64 `json:"achieved_level,omitempty" yaml:"achieved_level,omitempty"`

	// Direction overrides the inverted-indicator heuristic when set
	Direction compliance.Direction `json:"direction,omitempty" yaml:"direction,omitempty" validate:"omitempty,oneof=higher_is_better lower_is_better"`

	Values analytics.Series `json:"values" yaml:"values"`
}

// Validate checks required fields and the shape of the series.
// Every error wraps ErrInvalidRecord.
func (r *IndicatorRecord) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRecord, r.label(), err)
	}
	if err := r.Values.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRecord, r.label(), err)
	}
	return nil
}

// ComplianceInput builds the evaluator input for the given current value
func (r *IndicatorRecord) ComplianceInput(current *float64) compliance.Input {
	return compliance.Input{
		Current:      current,
		Target:       r.Target,
		Satisfactory: r.SatisfactoryLevel,
		Critical:     r.CriticalLevel,
		Achieved:     r.AchievedLevel,
		Direction:    r.Direction,
	}
}

func (r *IndicatorRecord) label() string {
	if r.Name != "" {
		return r.Name
	}
	if r.ID != "" {
		return r.ID
	}
	return "<unnamed>"
}
