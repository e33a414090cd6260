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

package construct

import (
	"github.com/wdamron/unitinfer/ast"
)

// Units

// Named unit: `m`
func U(name string) *ast.UnitName { return &ast.UnitName{Name: name} }

// Unit-variable: `@unitvar u`
func UVar(name string) *ast.UnitVar { return &ast.UnitVar{Name: name} }

// Dimensionless unit: `{}`
func UScalar() *ast.UnitScalar { return &ast.UnitScalar{} }

// Product of units: `kg*m`
func UMul(l, r ast.UnitExpr) *ast.UnitTimes { return &ast.UnitTimes{Left: l, Right: r} }

// Quotient of units: `m/s`
func UDiv(l, r ast.UnitExpr) *ast.UnitDivide { return &ast.UnitDivide{Left: l, Right: r} }

// Unit raised to a power: `m^2`
func UPow(base ast.UnitExpr, n int) *ast.UnitPower { return &ast.UnitPower{Base: base, Power: n} }

// Type-expressions

// Type application: `Pair(Text){m}`
func TApp(name string, args ...ast.TypeArg) *ast.TypeApp { return &ast.TypeApp{Name: name, Args: args} }

// Type-variable: `@typevar t`
func TVar(name string) *ast.TypeVar { return &ast.TypeVar{Name: name} }

// Unit argument of a type application
func UArg(u ast.UnitExpr) ast.UnitArg { return ast.UnitArg{Unit: u} }

// Type argument of a type application
func TArg(t ast.TypeExpr) ast.TypeArgOf { return ast.TypeArgOf{Type: t} }

// Number type: `Number{m}`
func TNumber(u ast.UnitExpr) *ast.TypeApp { return TApp("Number", UArg(u)) }

// Dimensionless number type: `Number{}`
func TScalar() *ast.TypeApp { return TNumber(UScalar()) }

func TText() *ast.TypeApp    { return TApp("Text") }
func TBoolean() *ast.TypeApp { return TApp("Boolean") }

// List type: `List(Text)`
func TList(elem ast.TypeExpr) *ast.TypeApp { return TApp("List", TArg(elem)) }

// Function type: `Function(Number{})(Boolean)`
func TFunc(arg, result ast.TypeExpr) *ast.TypeApp {
	return TApp("Function", TArg(arg), TArg(result))
}

// Function type of several arguments, curried: `Function(A)(Function(B)(R))`
func TFuncN(result ast.TypeExpr, args ...ast.TypeExpr) ast.TypeExpr {
	t := result
	for i := len(args) - 1; i >= 0; i-- {
		t = TFunc(args[i], t)
	}
	return t
}

// Expressions

// Number literal: `1.5`
func Num(syntax string) *ast.Number { return &ast.Number{Syntax: syntax} }

// Number literal with a unit: `1.5{m}`
func NumU(syntax string, u ast.UnitExpr) *ast.Number { return &ast.Number{Syntax: syntax, Unit: u} }

// Text literal
func Str(s string) *ast.Text { return &ast.Text{Value: s} }

// Boolean literal
func Bool(b bool) *ast.Bool { return &ast.Bool{Value: b} }

// Identifier
func Ident(name string) *ast.Ident { return &ast.Ident{Name: name} }

// Application: `f(x, y)`
func Call(f ast.Expr, args ...ast.Expr) *ast.Call { return &ast.Call{Func: f, Args: args} }

// Binary operator: `x + y`
func Bin(op ast.Op, l, r ast.Expr) *ast.Binary { return &ast.Binary{Op: op, Left: l, Right: r} }

func Add(l, r ast.Expr) *ast.Binary { return Bin(ast.Add, l, r) }
func Sub(l, r ast.Expr) *ast.Binary { return Bin(ast.Subtract, l, r) }
func Mul(l, r ast.Expr) *ast.Binary { return Bin(ast.Multiply, l, r) }
func Div(l, r ast.Expr) *ast.Binary { return Bin(ast.Divide, l, r) }
func Eq(l, r ast.Expr) *ast.Binary  { return Bin(ast.Equal, l, r) }
func Lt(l, r ast.Expr) *ast.Binary  { return Bin(ast.Less, l, r) }
func And(l, r ast.Expr) *ast.Binary { return Bin(ast.And, l, r) }

// Power: `x ^ 2`
func Pow(base ast.Expr, n int) *ast.Power { return &ast.Power{Base: base, Exponent: n} }

// List literal: `[a, b]`
func List(elems ...ast.Expr) *ast.List { return &ast.List{Elems: elems} }

// Conditional: `@if c @then a @else b @endif`
func If(cond, then, els ast.Expr) *ast.If { return &ast.If{Cond: cond, Then: then, Else: els} }

// Type ascription: `asType(type{Number{m}}, x)`
func As(e ast.Expr, t ast.TypeExpr) *ast.Ascribe { return &ast.Ascribe{Expr: e, Type: t} }
