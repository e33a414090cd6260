// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/wdamron/unitinfer/styled"
	"github.com/wdamron/unitinfer/units"
)

// ErrInternal marks failures caused by a bug in the checker or its inputs rather than by user input.
var ErrInternal = units.ErrInternal

// Internalf returns an internal error with a stack trace.
func Internalf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInternal, format, args...)
}

// UnresolvedUnitError is an internal error reporting unit-variables which were still
// unbound when a type was made concrete.
type UnresolvedUnitError struct {
	Vars []UnitVarID
	// Origin is the origin recorded for the first variable, when available.
	Origin interface{}
}

func (e *UnresolvedUnitError) Error() string {
	return fmt.Sprintf("unresolved unit-variables %v", e.Vars)
}

func (e *UnresolvedUnitError) Unwrap() error { return ErrInternal }

// IsInternal returns true if err was caused by an internal error.
func IsInternal(err error) bool { return errors.Is(err, ErrInternal) }

// ErrorKind classifies user-facing type errors.
type ErrorKind int

const (
	// Constructors with different names
	Mismatch ErrorKind = iota
	// Number types with different units
	UnitMismatch
	// A unit where a type was expected, or the reverse
	KindMismatch
	// Type does not support a required capability
	MissingClasses
	// A type-variable would contain itself
	Cyclic
	// Constructor applied to the wrong number of operands
	Arity
	// Type constructor which is neither built-in nor declared
	UnknownType
	// Unit name which is not declared
	UnknownUnit
	// Identifier which is not declared in the type-environment
	UnknownIdentifier
	// Unit root which is not a whole unit: the square root of `m`
	NotDivisible
	// Malformed literal
	InvalidLiteral
	// Type or unit which could not be determined
	Unresolved
)

var errorKindNames = [...]string{
	Mismatch:          "type mismatch",
	UnitMismatch:      "unit mismatch",
	KindMismatch:      "kind mismatch",
	MissingClasses:    "missing capability",
	Cyclic:            "cyclic type",
	Arity:             "wrong number of operands",
	UnknownType:       "unknown type",
	UnknownUnit:       "unknown unit",
	UnknownIdentifier: "unknown identifier",
	NotDivisible:      "unit not divisible",
	InvalidLiteral:    "invalid literal",
	Unresolved:        "unresolved type",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return "type error"
	}
	return errorKindNames[k]
}

// Error is a user-facing type error.
type Error struct {
	Kind    ErrorKind
	Message styled.String
	// Subject is the type at which the error was detected, when available.
	Subject Type
	// Origin is the source expression the error should be reported at, when available.
	Origin interface{}
}

func (e *Error) Error() string { return e.Message.String() }

// NewError creates a user-facing error from styled message parts.
func NewError(kind ErrorKind, subject Type, parts ...styled.String) *Error {
	return &Error{Kind: kind, Subject: subject, Message: styled.Concat(parts...)}
}

// WithOrigin sets the origin of e, if e is a user-facing error without an origin.
func WithOrigin(err error, origin interface{}) error {
	var te *Error
	if errors.As(err, &te) && te.Origin == nil {
		te.Origin = origin
	}
	var ce *ConcretisationError
	if errors.As(err, &ce) && ce.Origin == nil {
		ce.Origin = origin
	}
	return err
}

// ConcretisationError reports an inferred type which cannot be converted into a data type.
type ConcretisationError struct {
	Kind    ErrorKind
	Message styled.String
	Subject Type
	Origin  interface{}
}

func (e *ConcretisationError) Error() string { return e.Message.String() }
