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
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// TaggedDefinition is a user-declared tagged (variant) type.
type TaggedDefinition interface {
	Name() string
	// Params are the kinds of the type's positional arguments.
	Params() []OperandKind
	// Classes are the capabilities of the type, given arguments which support them.
	Classes() Classes
	Instantiate(args []ConcreteArg) (DataType, error)
}

// TaggedLookup finds tagged types by name.
type TaggedLookup interface {
	LookupTagged(name string) (TaggedDefinition, bool)
}

// TaggedDecl is a simple TaggedDefinition which instantiates to a TaggedType.
type TaggedDecl struct {
	TypeName     string
	ParamKinds   []OperandKind
	Capabilities Classes
}

func (d *TaggedDecl) Name() string          { return d.TypeName }
func (d *TaggedDecl) Params() []OperandKind { return d.ParamKinds }
func (d *TaggedDecl) Classes() Classes      { return d.Capabilities }

func (d *TaggedDecl) Instantiate(args []ConcreteArg) (DataType, error) {
	if len(args) != len(d.ParamKinds) {
		return nil, Internalf("%s instantiated with %d arguments, expected %d", d.TypeName, len(args), len(d.ParamKinds))
	}
	for i, arg := range args {
		if arg.ArgKind() != d.ParamKinds[i] {
			return nil, Internalf("%s argument %d must be a %s", d.TypeName, i, d.ParamKinds[i])
		}
	}
	return &TaggedType{Def: d, Args: args}, nil
}

// TaggedRegistry is a TaggedLookup for declared tagged types.
type TaggedRegistry struct {
	defs map[string]TaggedDefinition
}

func NewTaggedRegistry() *TaggedRegistry {
	return &TaggedRegistry{defs: make(map[string]TaggedDefinition)}
}

// Declare adds a tagged type. Names must not clash with built-in constructors or
// other tagged types.
func (r *TaggedRegistry) Declare(def TaggedDefinition) error {
	name := def.Name()
	if name == "" {
		return errors.New("tagged type must have a name")
	}
	if _, ok := BuiltinByName(name); ok {
		return errors.Errorf("tagged type %s conflicts with a built-in type", name)
	}
	if _, exists := r.defs[name]; exists {
		return errors.Errorf("tagged type %s is already declared", name)
	}
	r.defs[name] = def
	return nil
}

func (r *TaggedRegistry) LookupTagged(name string) (TaggedDefinition, bool) {
	if r == nil {
		return nil, false
	}
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the declared names in sorted order.
func (r *TaggedRegistry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
