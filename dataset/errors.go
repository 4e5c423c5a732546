package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrEmpty         = errors.New("no records")
	ErrBadValue      = errors.New("invalid value")
)

// LoadError reports a source that could not be turned into a Dataset.
// No partial dataset accompanies it.
type LoadError struct {
	Source string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load %s: %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("load %s: %s: %v", e.Source, e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErr(source, reason string, err error) *LoadError {
	return &LoadError{Source: source, Reason: reason, Err: err}
}

// UnmappedCode is a non-fatal warning: an integer code with no label. The
// affected cell is left missing.
type UnmappedCode struct {
	Row    int
	Column string
	Code   int
}

func (u UnmappedCode) String() string {
	return fmt.Sprintf("row %d: %s code %d has no label", u.Row+1, u.Column, u.Code)
}
