// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kerr defines the error kinds shared across the geometry kernel.
package kerr

import "github.com/cpmech/gosl/io"

// Kind classifies why an operation failed.
type Kind int

const (
	// InvalidGeometry: structural invariants violated at construction
	// (knot/pole/weight count mismatch, degree <= 0, non-rational weight
	// access, ...). Not recoverable.
	InvalidGeometry Kind = iota

	// InvalidParameter: out-of-domain evaluation, negative derivative
	// order, negative box dimension.
	InvalidParameter

	// NotConverged: a Newton/projection iteration exhausted its
	// iteration budget without meeting tolerance.
	NotConverged

	// NotIndexed: an R-tree was queried before Finish was called.
	NotIndexed

	// Capacity: more items were added to an R-tree than declared.
	Capacity

	// OutOfRange: BREP key lookup failed, or a polygon vertex index is
	// invalid.
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case InvalidGeometry:
		return "InvalidGeometry"
	case InvalidParameter:
		return "InvalidParameter"
	case NotConverged:
		return "NotConverged"
	case NotIndexed:
		return "NotIndexed"
	case Capacity:
		return "Capacity"
	case OutOfRange:
		return "OutOfRange"
	}
	return "Unknown"
}

// Error is the concrete error type returned by every package in this
// module. It is never wrapped: callers discriminate with Kind().
type Error struct {
	kind Kind
	msg  string
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: io.Sf(format, args...)}
}

func (e *Error) Error() string { return io.Sf("%s: %s", e.kind, e.msg) }

// Kind returns the error's classification.
func (e *Error) Kind() Kind { return e.kind }

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.kind == kind
}
