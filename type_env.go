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

package unitinfer

import (
	"github.com/wdamron/unitinfer/ast"
	"github.com/wdamron/unitinfer/types"
	"github.com/wdamron/unitinfer/units"
)

// Binding is the declared type of an identifier: either a type-expression, which is
// instantiated with fresh variables at each use, or a concrete data type.
type Binding struct {
	Expr ast.TypeExpr
	Data types.DataType
}

// TypeEnv is a type-environment containing mappings from identifiers to declared types.
//
// A type-environment may be shared by concurrent checks once it is no longer modified;
// to extend a shared environment, create a new environment which inherits from it.
type TypeEnv struct {
	// Predeclared types in the parent of the current type-environment
	Parent *TypeEnv
	// Units resolves unit names. When nil, the parent's units (or the built-in units) are used.
	Units *units.Store
	// Tagged resolves user-declared tagged types. When nil, the parent's lookup is used.
	Tagged types.TaggedLookup

	bindings map[string]Binding
}

// Create a type-environment. The new environment will inherit bindings from the parent, if the parent is not nil.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	return &TypeEnv{Parent: parent, bindings: make(map[string]Binding)}
}

// Declare a type-expression for an identifier. Type-variables and unit-variables within t are
// instantiated afresh at each use of the identifier.
func (e *TypeEnv) Declare(name string, t ast.TypeExpr) { e.bindings[name] = Binding{Expr: t} }

// Declare a concrete type for an identifier, such as a column of a table.
func (e *TypeEnv) DeclareData(name string, t types.DataType) { e.bindings[name] = Binding{Data: t} }

// Remove the declared type of an identifier within the type environment. Parent environment(s) will not be affected,
// and the identifier's type will still be visible if declared in a parent environment.
func (e *TypeEnv) Remove(name string) { delete(e.bindings, name) }

// Lookup the declared type of an identifier in the environment or its parent environment(s).
func (e *TypeEnv) Lookup(name string) (Binding, bool) {
	for env := e; env != nil; env = env.Parent {
		if b, ok := env.bindings[name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// UnitStore returns the unit declarations visible from the environment.
func (e *TypeEnv) UnitStore() *units.Store {
	for env := e; env != nil; env = env.Parent {
		if env.Units != nil {
			return env.Units
		}
	}
	return units.Builtin()
}

// TaggedTypes returns the tagged type lookup visible from the environment, or nil.
func (e *TypeEnv) TaggedTypes() types.TaggedLookup {
	for env := e; env != nil; env = env.Parent {
		if env.Tagged != nil {
			return env.Tagged
		}
	}
	return nil
}
