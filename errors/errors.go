// Package errors provides error handling for codedom.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints for CLI users
//
// Usage:
//
//	// Argument validation at builder call sites
//	if name == "" {
//	    return nil, errors.NewArgumentNullError("name")
//	}
//
//	// Wrap I/O failures with the path involved
//	if err := os.WriteFile(path, data, 0644); err != nil {
//	    return errors.Wrapf(err, "failed to write %s", path)
//	}
//
//	// Check errors
//	if errors.IsDuplicateNameError(err) {
//	    // name already taken in this scope
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the generation pipeline.
// Use these with errors.Is() for type-safe error checking.
var (
	// ErrArgumentNull indicates a required argument was absent or empty
	ErrArgumentNull = New("argument is null or empty")

	// ErrDuplicateName indicates a declaration name is already taken in its parent scope
	ErrDuplicateName = New("duplicate name")

	// ErrStatementOwned indicates a statement is already attached to another body
	ErrStatementOwned = New("statement already belongs to a body")

	// ErrUnknownProvider indicates no backend provider is registered under a name
	ErrUnknownProvider = New("unknown provider")

	// ErrInvalidDescriptor indicates a type descriptor cannot be turned into declarations
	ErrInvalidDescriptor = New("invalid descriptor")

	// ErrUnsupportedFormat indicates a descriptor document has an unknown extension or version
	ErrUnsupportedFormat = New("unsupported format")
)

// NewArgumentNullError reports that the named parameter was missing.
func NewArgumentNullError(param string) error {
	return Wrapf(ErrArgumentNull, "parameter %q", param)
}

// IsArgumentNullError checks if an error is or wraps ErrArgumentNull
func IsArgumentNullError(err error) bool {
	return err != nil && Is(err, ErrArgumentNull)
}

// NewDuplicateNameError reports that name already exists within scope.
func NewDuplicateNameError(scope, name string) error {
	return Wrapf(ErrDuplicateName, "%q already declared in %s", name, scope)
}

// IsDuplicateNameError checks if an error is or wraps ErrDuplicateName
func IsDuplicateNameError(err error) bool {
	return err != nil && Is(err, ErrDuplicateName)
}

// NewInvalidDescriptorError creates an invalid-descriptor error with a formatted message
func NewInvalidDescriptorError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidDescriptor, Newf(format, args...).Error())
}

// IsInvalidDescriptorError checks if an error is or wraps ErrInvalidDescriptor
func IsInvalidDescriptorError(err error) bool {
	return err != nil && Is(err, ErrInvalidDescriptor)
}
