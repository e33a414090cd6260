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
	"github.com/wdamron/unitinfer/units"
)

// Type is the base interface for inferred types: constructor applications, type-variables
// and the invalid marker.
type Type interface {
	TypeName() string
}

var (
	_ Type = (*Cons)(nil)
	_ Type = (*Var)(nil)
	_ Type = (*Invalid)(nil)
)

func (t *Cons) TypeName() string    { return "Cons" }
func (t *Var) TypeName() string     { return "Var" }
func (t *Invalid) TypeName() string { return "Invalid" }

// Type constructor application: `Number{m}`, `List(Text)`, `Function(Number{})(Boolean)`.
//
// Constructor applications are immutable once built; unification builds new applications.
type Cons struct {
	Ctor     Constructor
	Operands []Operand
	// Classes are the capabilities of the type. For constructors with type operands,
	// these are the capabilities the type has when its operands also support them.
	Classes Classes
}

// Type-variable. The binding of a type-variable is stored in the Arena which allocated it.
type Var struct {
	ID VarID
}

// Invalid marks a type which could not be inferred.
type Invalid struct {
	Reason string
}

// Operand is an operand of a type constructor: either a UnitOperand or a TypeOperand.
type Operand interface {
	OperandKind() OperandKind
}

// Unit operand: the `{m}` in `Number{m}`
type UnitOperand struct {
	Unit UnitExp
}

// Type operand: the `(Text)` in `List(Text)`
type TypeOperand struct {
	Type Type
}

func (UnitOperand) OperandKind() OperandKind { return UnitKind }
func (TypeOperand) OperandKind() OperandKind { return TypeKind }

// NewCons applies a constructor to operands. The operands of built-in constructors must
// match the constructor's signature; a mismatch is a programming error and panics.
func NewCons(ctor Constructor, operands ...Operand) *Cons {
	if sig, ok := ctor.Signature(); ok {
		if err := checkSignature(ctor, sig, operands); err != nil {
			panic(err)
		}
	}
	return &Cons{Ctor: ctor, Operands: operands, Classes: ctor.Classes()}
}

func checkSignature(ctor Constructor, sig []OperandKind, operands []Operand) error {
	if len(sig) != len(operands) {
		return Internalf("%s expects %d operands, given %d", ctor.Name(), len(sig), len(operands))
	}
	for i, op := range operands {
		if op == nil {
			return Internalf("%s operand %d is nil", ctor.Name(), i)
		}
		if op.OperandKind() != sig[i] {
			return Internalf("%s operand %d must be a %s", ctor.Name(), i, sig[i])
		}
	}
	return nil
}

// Number type with a unit: `Number{m}`
func Number(u UnitExp) *Cons { return NewCons(NumberCons, UnitOperand{u}) }

// Number type with a concrete unit.
func NumberOf(u units.Unit) *Cons { return Number(ConstUnit(u)) }

// Dimensionless number type: `Number{}`
func Scalar() *Cons { return NumberOf(units.Scalar) }

// Text type
func Text() *Cons { return NewCons(TextCons) }

// Boolean type
func Boolean() *Cons { return NewCons(BooleanCons) }

// Date or time type
func Date(k DateTimeKind) *Cons { return NewCons(DateCons(k)) }

// List type: `List(Text)`
func List(elem Type) *Cons { return NewCons(ListCons, TypeOperand{elem}) }

// Function type: `Function(Number{})(Boolean)`
func Function(arg, result Type) *Cons {
	return NewCons(FunctionCons, TypeOperand{arg}, TypeOperand{result})
}

// Application of a user-declared tagged type.
func Tagged(name string, classes Classes, operands ...Operand) *Cons {
	return &Cons{Ctor: TaggedCons(name), Operands: operands, Classes: classes}
}

// Replace substitutes replacement for every occurrence of target (by identity) within t.
// Subtrees which do not contain target are shared with t; only their ancestors are rebuilt.
// Variables are not followed.
func Replace(t, target, replacement Type) Type {
	if t == target {
		return replacement
	}
	c, ok := t.(*Cons)
	if !ok {
		return t
	}
	var operands []Operand
	for i, op := range c.Operands {
		top, ok := op.(TypeOperand)
		if !ok {
			continue
		}
		r := Replace(top.Type, target, replacement)
		if r == top.Type {
			continue
		}
		if operands == nil {
			operands = make([]Operand, len(c.Operands))
			copy(operands, c.Operands)
		}
		operands[i] = TypeOperand{r}
	}
	if operands == nil {
		return t
	}
	return &Cons{Ctor: c.Ctor, Operands: operands, Classes: c.Classes}
}
