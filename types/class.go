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
	"strings"

	"github.com/hashicorp/go-set/v3"
	"golang.org/x/exp/slices"
)

// Class is a capability which a type may support, such as equality or ordering.
type Class string

const (
	Equatable  Class = "Equatable"
	Comparable Class = "Comparable"
	Numeric    Class = "Numeric"
	Readable   Class = "Readable"
	Showable   Class = "Showable"
)

// Classes is an immutable set of capabilities. The zero value is the empty set.
type Classes struct {
	s *set.Set[Class]
}

// NewClasses creates a set of capabilities.
func NewClasses(cs ...Class) Classes {
	if len(cs) == 0 {
		return Classes{}
	}
	return Classes{set.From(cs)}
}

func fromCollection(c set.Collection[Class]) Classes {
	if c.Size() == 0 {
		return Classes{}
	}
	return Classes{set.From(c.Slice())}
}

// Len returns the number of capabilities in c.
func (c Classes) Len() int {
	if c.s == nil {
		return 0
	}
	return c.s.Size()
}

// IsEmpty returns true if c contains no capabilities.
func (c Classes) IsEmpty() bool { return c.Len() == 0 }

// Contains returns true if c includes k.
func (c Classes) Contains(k Class) bool { return c.s != nil && c.s.Contains(k) }

// Covers returns true if every capability in required is included in c.
func (c Classes) Covers(required Classes) bool { return len(c.Missing(required)) == 0 }

// Missing returns the capabilities in required which are not included in c, sorted by name.
func (c Classes) Missing(required Classes) []Class {
	var missing []Class
	for _, k := range required.Slice() {
		if !c.Contains(k) {
			missing = append(missing, k)
		}
	}
	return missing
}

// Intersect returns the capabilities included in both c and o.
func (c Classes) Intersect(o Classes) Classes {
	if c.s == nil || o.s == nil {
		return Classes{}
	}
	return fromCollection(c.s.Intersect(o.s))
}

// Union returns the capabilities included in either c or o.
func (c Classes) Union(o Classes) Classes {
	switch {
	case c.s == nil:
		return o
	case o.s == nil:
		return c
	}
	return fromCollection(c.s.Union(o.s))
}

// Equal returns true if c and o contain the same capabilities.
func (c Classes) Equal(o Classes) bool {
	return c.Len() == o.Len() && c.Covers(o)
}

// Slice returns the capabilities in c, sorted by name.
func (c Classes) Slice() []Class {
	if c.s == nil {
		return nil
	}
	out := c.s.Slice()
	slices.Sort(out)
	return out
}

func (c Classes) String() string {
	names := make([]string, 0, c.Len())
	for _, k := range c.Slice() {
		names = append(names, string(k))
	}
	return "{" + strings.Join(names, ", ") + "}"
}

var (
	// Capabilities of numbers
	NumberClasses = NewClasses(Equatable, Comparable, Numeric, Readable, Showable)
	// Capabilities of text, booleans and dates
	ValueClasses = NewClasses(Equatable, Comparable, Readable, Showable)
	// Capabilities a list derives when its element type supports them
	ListClasses = ValueClasses
	// Capabilities of user-declared tagged types, unless declared otherwise
	DefaultTaggedClasses = ValueClasses
)
