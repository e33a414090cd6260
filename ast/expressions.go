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

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Number)(nil)
	_ Expr = (*Text)(nil)
	_ Expr = (*Bool)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Power)(nil)
	_ Expr = (*List)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Ascribe)(nil)
)

// Numeric literal with an optional unit: `1.5{m/s}`
type Number struct {
	// Syntax is the literal as written. It must be a decimal or a fraction.
	Syntax string
	// Unit is nil for scalar literals.
	Unit UnitExpr
}

// "Number"
func (e *Number) ExprName() string { return "Number" }

// Text literal: `"abc"`
type Text struct {
	Value string
}

// "Text"
func (e *Text) ExprName() string { return "Text" }

// Boolean literal: `true`
type Bool struct {
	Value bool
}

// "Bool"
func (e *Bool) ExprName() string { return "Bool" }

// Identifier: a column, constant or function declared in the type-environment.
type Ident struct {
	Name string
}

// "Ident"
func (e *Ident) ExprName() string { return "Ident" }

// Application: `f(x, y)`. Functions take a single argument; calls with several
// arguments are applied one argument at a time.
type Call struct {
	Func Expr
	Args []Expr
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Operator for binary expressions.
type Op int

const (
	Add Op = iota
	Subtract
	Multiply
	Divide
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	And
	Or
)

var opSymbols = [...]string{
	Add:          "+",
	Subtract:     "-",
	Multiply:     "*",
	Divide:       "/",
	Equal:        "=",
	NotEqual:     "<>",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	And:          "&",
	Or:           "|",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opSymbols) {
		return "?"
	}
	return opSymbols[op]
}

// Binary operator expression: `a + b`
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

// "Binary"
func (e *Binary) ExprName() string { return "Binary" }

// Integer power: `x ^ 2`
type Power struct {
	Base     Expr
	Exponent int
}

// "Power"
func (e *Power) ExprName() string { return "Power" }

// List literal: `[a, b, c]`
type List struct {
	Elems []Expr
}

// "List"
func (e *List) ExprName() string { return "List" }

// Conditional: `@if c @then a @else b @endif`
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// "If"
func (e *If) ExprName() string { return "If" }

// Type ascription: `asType(type{Number{m}}, x)`
type Ascribe struct {
	Expr Expr
	Type TypeExpr
}

// "Ascribe"
func (e *Ascribe) ExprName() string { return "Ascribe" }
