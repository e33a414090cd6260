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

import (
	"strconv"
	"strings"
)

// ExprString returns a string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// TypeExprString returns a string representation of a type-expression.
func TypeExprString(t TypeExpr) string {
	var sb strings.Builder
	typeExprString(&sb, t)
	return sb.String()
}

// UnitExprString returns a string representation of a unit-expression.
func UnitExprString(u UnitExpr) string {
	var sb strings.Builder
	unitExprString(&sb, false, u)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *Number:
		sb.WriteString(et.Syntax)
		if et.Unit != nil {
			writeBracedUnit(sb, et.Unit)
		}

	case *Text:
		sb.WriteString(strconv.Quote(et.Value))

	case *Bool:
		sb.WriteString(strconv.FormatBool(et.Value))

	case *Ident:
		sb.WriteString(et.Name)

	case *Call:
		exprString(sb, true, et.Func)
		sb.WriteByte('(')
		for i, arg := range et.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, arg)
		}
		sb.WriteByte(')')

	case *Binary:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Left)
		sb.WriteByte(' ')
		sb.WriteString(et.Op.String())
		sb.WriteByte(' ')
		exprString(sb, true, et.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *Power:
		exprString(sb, true, et.Base)
		sb.WriteString(" ^ ")
		sb.WriteString(strconv.Itoa(et.Exponent))

	case *List:
		sb.WriteByte('[')
		for i, el := range et.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, el)
		}
		sb.WriteByte(']')

	case *If:
		sb.WriteString("@if ")
		exprString(sb, false, et.Cond)
		sb.WriteString(" @then ")
		exprString(sb, false, et.Then)
		sb.WriteString(" @else ")
		exprString(sb, false, et.Else)
		sb.WriteString(" @endif")

	case *Ascribe:
		sb.WriteString("asType(type{")
		typeExprString(sb, et.Type)
		sb.WriteString("}, ")
		exprString(sb, false, et.Expr)
		sb.WriteByte(')')

	case nil:
		sb.WriteString("<nil>")
	}
}

func typeExprString(sb *strings.Builder, t TypeExpr) {
	switch tt := t.(type) {
	case *TypeApp:
		sb.WriteString(tt.Name)
		for _, arg := range tt.Args {
			switch arg := arg.(type) {
			case UnitArg:
				writeBracedUnit(sb, arg.Unit)
			case TypeArgOf:
				sb.WriteByte('(')
				typeExprString(sb, arg.Type)
				sb.WriteByte(')')
			}
		}

	case *TypeVar:
		sb.WriteString("@typevar ")
		sb.WriteString(tt.Name)

	case nil:
		sb.WriteString("<nil>")
	}
}

func writeBracedUnit(sb *strings.Builder, u UnitExpr) {
	sb.WriteByte('{')
	if _, ok := u.(*UnitScalar); !ok {
		unitExprString(sb, false, u)
	}
	sb.WriteByte('}')
}

func unitExprString(sb *strings.Builder, simple bool, u UnitExpr) {
	switch ut := u.(type) {
	case *UnitName:
		sb.WriteString(ut.Name)

	case *UnitVar:
		sb.WriteString("@unitvar ")
		sb.WriteString(ut.Name)

	case *UnitScalar:
		sb.WriteByte('1')

	case *UnitTimes:
		if simple {
			sb.WriteByte('(')
		}
		unitExprString(sb, false, ut.Left)
		sb.WriteByte('*')
		unitExprString(sb, true, ut.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *UnitDivide:
		if simple {
			sb.WriteByte('(')
		}
		unitExprString(sb, false, ut.Left)
		sb.WriteByte('/')
		unitExprString(sb, true, ut.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *UnitPower:
		unitExprString(sb, true, ut.Base)
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(ut.Power))

	case nil:
		sb.WriteString("<nil>")
	}
}
