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

package units

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInternal marks failures caused by a bug in the caller or in built-in data, rather than by user input.
// Errors wrapping ErrInternal carry a stack trace.
var ErrInternal = errors.New("internal error")

func internalf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInternal, format, args...)
}

// LookupError reports a unit name which is not declared.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string { return "unknown unit: " + e.Name }

// ParseError reports a malformed unit declaration or unit expression.
type ParseError struct {
	// Line is 1-based; zero when the input is not line-oriented.
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// DeclarationError reports an invalid set of unit declarations: duplicate names,
// aliases of undeclared units, or cyclic equivalences.
type DeclarationError struct {
	Name string
	Msg  string
}

func (e *DeclarationError) Error() string { return "unit " + e.Name + ": " + e.Msg }
