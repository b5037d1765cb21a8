package analyzer

import (
	"errors"

	"github.com/slopez1023/ProyectoDiana/internal/models"
)

// Failure codes
const (
	CodeInvalidRecord = "INVALID_RECORD"
	CodePanic         = "PANIC"
	CodeFailed        = "ANALYSIS_FAILED"
)

// Failure describes a record dropped from a batch
type Failure struct {
	Index       int    `json:"index" yaml:"index"`
	IndicatorID string `json:"indicator_id,omitempty" yaml:"indicator_id,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Code        string `json:"code" yaml:"code"`
	Message     string `json:"message" yaml:"message"`
	Err         error  `json:"-" yaml:"-"`
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func newFailure(index int, rec *models.IndicatorRecord, err error) *Failure {
	f := &Failure{
		Index:   index,
		Code:    CodeFailed,
		Message: err.Error(),
		Err:     err,
	}
	if rec != nil {
		f.IndicatorID = rec.ID
		f.Name = rec.Name
	}

	var panicErr *PanicError
	switch {
	case errors.As(err, &panicErr):
		f.Code = CodePanic
	case errors.Is(err, models.ErrInvalidRecord):
		f.Code = CodeInvalidRecord
	}
	return f
}
