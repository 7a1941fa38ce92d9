package domain

import (
	"errors"
	"fmt"

	m "ztar.dev/pkg/ztar/internal/model"
)

// ErrInconsistency marks defects in the decompiler's own passes. It is never
// caused by malformed input alone.
var ErrInconsistency = errors.New("internal inconsistency")

// ErrMapsFailed is returned when at least one map of a run failed.
var ErrMapsFailed = errors.New("some maps failed to decompile")

// ErrUnknownMap is returned when a requested map is not in the map table.
var ErrUnknownMap = errors.New("unknown map")

// DecodeError reports that the bytecode at Address could not be decoded.
type DecodeError struct {
	Address m.Address
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decompile bytecode at %s: %v", e.Address, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TypeMismatchError reports a variable whose declared type conflicts with the
// type inferred from its uses.
type TypeMismatchError struct {
	Identifier string
	Declared   m.DataType
	Inferred   m.DataType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("variable '%s' declared as %s but is used as %s", e.Identifier, e.Declared, e.Inferred)
}

// InconsistencyError describes an internal inconsistency.
type InconsistencyError struct {
	Reason string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInconsistency, e.Reason)
}

func (e *InconsistencyError) Unwrap() error {
	return ErrInconsistency
}

func inconsistency(format string, args ...any) error {
	return &InconsistencyError{Reason: fmt.Sprintf(format, args...)}
}
