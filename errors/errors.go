// Package errors provides error handling for the semantic core.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints surfaced to schema authors
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := registry.Register(schema); err != nil {
//	    return errors.Wrap(err, "failed to register schema")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidSchema) {
//	    // handle malformed registration
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
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the semantic core. Use with errors.Is for type-safe
// checking; wrap with errors.Wrap to add context while preserving the type.
//
// Note the narrow scope: the matcher and validator report data-shape
// problems as structured results, never as errors. Sentinels cover
// programmer errors and missing-collaborator conditions only.
var (
	// ErrInvalidSchema indicates a malformed schema registration, such as
	// a duplicate role within one schema. Fails fast at registration time.
	ErrInvalidSchema = New("invalid command schema")

	// ErrUnknownLanguage indicates a language code with no profile and no
	// hand-authored patterns.
	ErrUnknownLanguage = New("unknown language")

	// ErrUnknownAction indicates an action type with no registered schema.
	ErrUnknownAction = New("unknown action")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = New("not found")
)
