// Package errors combines the standard library helpers with pkg/errors wrapping.
//
// Sentinels and tree inspection come from the standard library. Wrapping goes through
// pkg/errors so errors that reach the HTTP error handler carry the stack where they
// left the storage or infrastructure layer.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Sentinels and inspection.
var (
	New    = stderrors.New
	Is     = stderrors.Is
	As     = stderrors.As
	Join   = stderrors.Join
	Unwrap = stderrors.Unwrap
)

// Wrapping with a stack trace.
var (
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
)
