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
	"math/big"

	"github.com/wdamron/unitinfer/ast"
	"github.com/wdamron/unitinfer/styled"
	"github.com/wdamron/unitinfer/types"
)

var (
	numericClasses    = types.NewClasses(types.Numeric)
	comparableClasses = types.NewClasses(types.Comparable)
	equatableClasses  = types.NewClasses(types.Equatable)
)

func (ti *InferenceContext) infer(env *TypeEnv, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Number:
		if _, ok := new(big.Rat).SetString(e.Syntax); !ok {
			return nil, ti.fail(e, types.NewError(types.InvalidLiteral, nil,
				styled.Text("invalid number: "), styled.Styled(e.Syntax, styled.Emphasis)))
		}
		u, err := ti.instantiateUnit(env, e.Unit, e)
		if err != nil {
			return nil, ti.fail(e, err)
		}
		return types.Number(u), nil

	case *ast.Text:
		return types.Text(), nil

	case *ast.Bool:
		return types.Boolean(), nil

	case *ast.Ident:
		b, ok := env.Lookup(e.Name)
		if !ok {
			return nil, ti.fail(e, types.NewError(types.UnknownIdentifier, nil,
				styled.Text("unknown identifier: "), styled.Styled(e.Name, styled.Emphasis)))
		}
		if b.Data != nil {
			return types.FromDataType(b.Data), nil
		}
		t, err := ti.instantiate(env, b.Expr, e)
		if err != nil {
			return nil, ti.fail(e, err)
		}
		return t, nil

	case *ast.Call:
		ft, err := ti.infer(env, e.Func)
		if err != nil {
			return nil, err
		}
		for _, arg := range e.Args {
			at, err := ti.infer(env, arg)
			if err != nil {
				return nil, err
			}
			ret := ti.arena.NewVar(e)
			if _, err := ti.unify.Unify(ft, types.Function(at, ret)); err != nil {
				return nil, ti.fail(arg, err)
			}
			ft = ret
		}
		return ft, nil

	case *ast.Binary:
		return ti.inferBinary(env, e)

	case *ast.Power:
		bt, err := ti.infer(env, e.Base)
		if err != nil {
			return nil, err
		}
		u := ti.arena.NewUnitVar(e)
		if _, err := ti.unify.Unify(bt, types.Number(u)); err != nil {
			return nil, ti.fail(e.Base, err)
		}
		return types.Number(types.RaiseUnit(u, e.Exponent)), nil

	case *ast.List:
		var elem types.Type = ti.arena.NewVar(e)
		for _, el := range e.Elems {
			et, err := ti.infer(env, el)
			if err != nil {
				return nil, err
			}
			if elem, err = ti.unify.Unify(elem, et); err != nil {
				return nil, ti.fail(el, err)
			}
		}
		return types.List(elem), nil

	case *ast.If:
		ct, err := ti.infer(env, e.Cond)
		if err != nil {
			return nil, err
		}
		if _, err := ti.unify.Unify(types.Boolean(), ct); err != nil {
			return nil, ti.fail(e.Cond, err)
		}
		tt, err := ti.infer(env, e.Then)
		if err != nil {
			return nil, err
		}
		et, err := ti.infer(env, e.Else)
		if err != nil {
			return nil, err
		}
		t, err := ti.unify.Unify(tt, et)
		if err != nil {
			return nil, ti.fail(e.Else, err)
		}
		return t, nil

	case *ast.Ascribe:
		declared, err := ti.instantiate(env, e.Type, e)
		if err != nil {
			return nil, ti.fail(e, err)
		}
		t, err := ti.infer(env, e.Expr)
		if err != nil {
			return nil, err
		}
		if t, err = ti.unify.Unify(declared, t); err != nil {
			return nil, ti.fail(e, err)
		}
		return t, nil

	case nil:
		return nil, ti.fail(e, types.Internalf("empty expression"))
	}
	return nil, ti.fail(e, types.Internalf("unexpected expression %s", e.ExprName()))
}

func (ti *InferenceContext) inferBinary(env *TypeEnv, e *ast.Binary) (types.Type, error) {
	lt, err := ti.infer(env, e.Left)
	if err != nil {
		return nil, err
	}
	rt, err := ti.infer(env, e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.Add, ast.Subtract:
		t, err := ti.unify.Unify(lt, rt)
		if err != nil {
			return nil, ti.fail(e, err)
		}
		if err := ti.unify.RequireClasses(t, numericClasses); err != nil {
			return nil, ti.fail(e, err)
		}
		return t, nil

	case ast.Multiply, ast.Divide:
		lu, ru := ti.arena.NewUnitVar(e.Left), ti.arena.NewUnitVar(e.Right)
		if _, err := ti.unify.Unify(types.Number(lu), lt); err != nil {
			return nil, ti.fail(e.Left, err)
		}
		if _, err := ti.unify.Unify(types.Number(ru), rt); err != nil {
			return nil, ti.fail(e.Right, err)
		}
		if e.Op == ast.Multiply {
			return types.Number(types.TimesUnit(lu, ru)), nil
		}
		return types.Number(types.DivideUnit(lu, ru)), nil

	case ast.Less, ast.LessEqual, ast.Greater, ast.GreaterEqual, ast.Equal, ast.NotEqual:
		t, err := ti.unify.Unify(lt, rt)
		if err != nil {
			return nil, ti.fail(e, err)
		}
		required := comparableClasses
		if e.Op == ast.Equal || e.Op == ast.NotEqual {
			required = equatableClasses
		}
		if err := ti.unify.RequireClasses(t, required); err != nil {
			return nil, ti.fail(e, err)
		}
		return types.Boolean(), nil

	case ast.And, ast.Or:
		if _, err := ti.unify.Unify(types.Boolean(), lt); err != nil {
			return nil, ti.fail(e.Left, err)
		}
		if _, err := ti.unify.Unify(types.Boolean(), rt); err != nil {
			return nil, ti.fail(e.Right, err)
		}
		return types.Boolean(), nil
	}
	return nil, ti.fail(e, types.Internalf("unexpected operator %s", e.Op))
}
