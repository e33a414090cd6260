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

// DataType is a fully concrete type, produced by concretization.
type DataType interface {
	DataTypeName() string
}

var (
	_ DataType = (*NumberType)(nil)
	_ DataType = (*TextType)(nil)
	_ DataType = (*BooleanType)(nil)
	_ DataType = (*DateType)(nil)
	_ DataType = (*ListType)(nil)
	_ DataType = (*FunctionType)(nil)
	_ DataType = (*TaggedType)(nil)
)

func (t *NumberType) DataTypeName() string   { return "Number" }
func (t *TextType) DataTypeName() string     { return "Text" }
func (t *BooleanType) DataTypeName() string  { return "Boolean" }
func (t *DateType) DataTypeName() string     { return t.Kind.String() }
func (t *ListType) DataTypeName() string     { return "List" }
func (t *FunctionType) DataTypeName() string { return "Function" }
func (t *TaggedType) DataTypeName() string   { return t.Def.Name() }

type NumberType struct {
	Unit units.Unit
}

type TextType struct{}

type BooleanType struct{}

type DateType struct {
	Kind DateTimeKind
}

type ListType struct {
	Elem DataType
}

type FunctionType struct {
	Arg, Result DataType
}

// Application of a tagged type to concrete arguments
type TaggedType struct {
	Def  TaggedDefinition
	Args []ConcreteArg
}

// ConcreteArg is an argument of a tagged type: either a UnitArg or a TypeArg.
type ConcreteArg interface {
	ArgKind() OperandKind
}

type UnitArg struct {
	Unit units.Unit
}

type TypeArg struct {
	Type DataType
}

func (UnitArg) ArgKind() OperandKind { return UnitKind }
func (TypeArg) ArgKind() OperandKind { return TypeKind }

// FromDataType derives the inferred type of a concrete type.
func FromDataType(dt DataType) Type {
	switch dt := dt.(type) {
	case *NumberType:
		return NumberOf(dt.Unit)
	case *TextType:
		return Text()
	case *BooleanType:
		return Boolean()
	case *DateType:
		return Date(dt.Kind)
	case *ListType:
		return List(FromDataType(dt.Elem))
	case *FunctionType:
		return Function(FromDataType(dt.Arg), FromDataType(dt.Result))
	case *TaggedType:
		ops := make([]Operand, len(dt.Args))
		for i, arg := range dt.Args {
			switch arg := arg.(type) {
			case UnitArg:
				ops[i] = UnitOperand{ConstUnit(arg.Unit)}
			case TypeArg:
				ops[i] = TypeOperand{FromDataType(arg.Type)}
			}
		}
		return Tagged(dt.Def.Name(), dt.Def.Classes(), ops...)
	}
	return &Invalid{Reason: "unknown data type"}
}
