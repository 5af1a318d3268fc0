// internal/wordfreq/errors.go
package wordfreq

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBatch is returned when an analysis is requested with no inputs.
	ErrEmptyBatch = errors.New("no inputs supplied for analysis")
	// ErrNoAnalysis is returned when a lookup runs before any analysis completed.
	ErrNoAnalysis = errors.New("no completed analysis to search")
	// ErrMalformedInput matches every *MalformedInputError through errors.Is.
	ErrMalformedInput = errors.New("malformed input")
)

// MalformedInputError reports why one input of a batch contributed no records.
type MalformedInputError struct {
	Name   string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("input %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("input %q: %s: %v", e.Name, e.Reason, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrMalformedInput) match any MalformedInputError.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// UserMessage converts err into the sentence shown to an end user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyBatch):
		return "Please upload files before analyzing."
	case errors.Is(err, ErrNoAnalysis):
		return "Please upload and analyze files before searching."
	default:
		return err.Error()
	}
}
