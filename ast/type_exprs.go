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

package ast

// TypeExpr is a parsed type-expression, e.g. `Number{m/s}`, `List(Text)` or `@typevar t`.
type TypeExpr interface {
	TypeExprName() string
}

// UnitExpr is a parsed unit-expression, e.g. `kg*m/s^2` or `@unitvar u`.
type UnitExpr interface {
	UnitExprName() string
}

var (
	_ TypeExpr = (*TypeApp)(nil)
	_ TypeExpr = (*TypeVar)(nil)

	_ UnitExpr = (*UnitName)(nil)
	_ UnitExpr = (*UnitVar)(nil)
	_ UnitExpr = (*UnitScalar)(nil)
	_ UnitExpr = (*UnitTimes)(nil)
	_ UnitExpr = (*UnitDivide)(nil)
	_ UnitExpr = (*UnitPower)(nil)
)

// Application of a named type constructor to positional arguments: `Number{m}`, `Pair(Text)(Number{})`.
// Constructors without arguments have an empty argument list.
type TypeApp struct {
	Name string
	Args []TypeArg
}

// "TypeApp"
func (t *TypeApp) TypeExprName() string { return "TypeApp" }

// Named type-variable. Variables with the same name within one declaration refer to the same type.
type TypeVar struct {
	Name string
}

// "TypeVar"
func (t *TypeVar) TypeExprName() string { return "TypeVar" }

// TypeArg is a positional argument of a type application: either a unit or a type.
type TypeArg interface {
	isTypeArg()
}

// Unit argument: `{m}`
type UnitArg struct {
	Unit UnitExpr
}

// Type argument: `(Text)`
type TypeArgOf struct {
	Type TypeExpr
}

func (UnitArg) isTypeArg()   {}
func (TypeArgOf) isTypeArg() {}

// Named unit: `m`
type UnitName struct {
	Name string
}

// "UnitName"
func (u *UnitName) UnitExprName() string { return "UnitName" }

// Named unit-variable: `@unitvar u`
type UnitVar struct {
	Name string
}

// "UnitVar"
func (u *UnitVar) UnitExprName() string { return "UnitVar" }

// Dimensionless unit: `1` or an empty unit `{}`
type UnitScalar struct{}

// "UnitScalar"
func (u *UnitScalar) UnitExprName() string { return "UnitScalar" }

// Product of units: `a*b`
type UnitTimes struct {
	Left, Right UnitExpr
}

// "UnitTimes"
func (u *UnitTimes) UnitExprName() string { return "UnitTimes" }

// Quotient of units: `a/b`
type UnitDivide struct {
	Left, Right UnitExpr
}

// "UnitDivide"
func (u *UnitDivide) UnitExprName() string { return "UnitDivide" }

// Integer power of a unit: `a^2`
type UnitPower struct {
	Base  UnitExpr
	Power int
}

// "UnitPower"
func (u *UnitPower) UnitExprName() string { return "UnitPower" }
