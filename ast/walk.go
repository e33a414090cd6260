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

// WalkExpr calls f for e and each of its sub-expressions, parents before children.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Number, *Text, *Bool, *Ident:
		f(e)

	case *Call:
		f(e)
		WalkExpr(e.Func, f)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case *Binary:
		f(e)
		WalkExpr(e.Left, f)
		WalkExpr(e.Right, f)

	case *Power:
		f(e)
		WalkExpr(e.Base, f)

	case *List:
		f(e)
		for _, el := range e.Elems {
			WalkExpr(el, f)
		}

	case *If:
		f(e)
		WalkExpr(e.Cond, f)
		WalkExpr(e.Then, f)
		WalkExpr(e.Else, f)

	case *Ascribe:
		f(e)
		WalkExpr(e.Expr, f)

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

// FreeIdents returns the distinct identifiers referenced within e, in order of first occurrence.
func FreeIdents(e Expr) []string {
	var (
		names []string
		seen  = make(map[string]bool)
	)
	WalkExpr(e, func(e Expr) {
		if id, ok := e.(*Ident); ok && !seen[id.Name] {
			seen[id.Name] = true
			names = append(names, id.Name)
		}
	})
	return names
}
