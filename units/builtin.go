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
	_ "embed"
	"strings"
	"sync"
)

//go:embed builtin.units
var builtinTable string

var (
	builtinOnce  sync.Once
	builtinStore *Store
)

// Builtin returns the store of built-in units. The table is parsed once, on first use;
// a malformed built-in table is a programming error and panics.
func Builtin() *Store {
	builtinOnce.Do(func() {
		s, err := Parse(strings.NewReader(builtinTable))
		if err != nil {
			panic(internalf("malformed built-in unit table: %v", err))
		}
		builtinStore = s
	})
	return builtinStore
}

// NewBuilderWithBuiltins returns a builder pre-populated with the built-in units, for
// extending the built-in table with user-declared units.
func NewBuilderWithBuiltins() *Builder {
	b := NewBuilder()
	if err := ParseInto(b, strings.NewReader(builtinTable)); err != nil {
		panic(internalf("malformed built-in unit table: %v", err))
	}
	return b
}
