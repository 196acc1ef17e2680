// Package errors is the single import for error handling: tree inspection comes
// from the standard library, annotation with stack traces from pkg/errors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Inspection and composition.
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
	Join   = stderrors.Join
)

// Annotation. Each of these records a stack trace unless err already carries one.
var (
	Wrap         = pkgerrors.Wrap
	Wrapf        = pkgerrors.Wrapf
	WithStack    = pkgerrors.WithStack
	WithMessage  = pkgerrors.WithMessage
	WithMessagef = pkgerrors.WithMessagef
	Errorf       = pkgerrors.Errorf
)

// New returns a sentinel error without a stack trace.
func New(text string) error {
	return stderrors.New(text)
}

// IsAny reports whether err matches any of targets.
func IsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}

	return false
}
