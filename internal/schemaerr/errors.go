// Package schemaerr defines the error values returned while loading,
// comparing and merging schemas.
//
// Callers distinguish categories with errors.Is against the sentinels and
// recover details with errors.As:
//
//	merged, err := merge.Schemas(a, b)
//	var mergeErr *schemaerr.MergeError
//	if errors.As(err, &mergeErr) {
//	    // mergeErr.TypeName has different kinds on each side
//	}
package schemaerr

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates a schema source could not be parsed or validated.
	ErrParse = errors.New("parse error")

	// ErrInvalidComparison indicates a diff or merge target that is not a
	// structurally valid schema or type.
	ErrInvalidComparison = errors.New("invalid comparison target")

	// ErrIncompatibleMerge indicates a merge between two same-named types of
	// different kinds.
	ErrIncompatibleMerge = errors.New("incompatible merge")
)

// ParseError describes a failure to turn a source into a schema.
type ParseError struct {
	// Path is the file path or source name.
	Path string
	// Line and Column locate the failure, 0 when unknown.
	Line   int
	Column int
	// Message describes the failure.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	msg := ErrParse.Error()
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at %d:%d", e.Line, e.Column)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	} else if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ComparisonError reports why a value cannot take part in a diff or merge.
type ComparisonError struct {
	// Subject names the offending value, e.g. "other schema" or "type Query".
	Subject string
	// Reason is a deterministic description of the structural problem.
	Reason string
}

func (e *ComparisonError) Error() string {
	if e == nil {
		return ""
	}
	if e.Subject == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidComparison.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidComparison.Error(), e.Subject, e.Reason)
}

func (e *ComparisonError) Unwrap() error { return ErrInvalidComparison }

// MergeError reports a kind mismatch between two same-named types.
type MergeError struct {
	TypeName  string
	ThisKind  string
	OtherKind string
}

func (e *MergeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: cannot merge with different base type on %s. this: %s, other: %s",
		ErrIncompatibleMerge.Error(), e.TypeName, e.ThisKind, e.OtherKind)
}

func (e *MergeError) Unwrap() error { return ErrIncompatibleMerge }
