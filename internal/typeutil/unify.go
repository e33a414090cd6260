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

package typeutil

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/wdamron/unitinfer/styled"
	"github.com/wdamron/unitinfer/types"
)

// Unify unifies a and b and returns the unified type. Unbound variables are bound to the
// other side; constructor applications must have the same constructor and unifiable
// operands. The first failure is returned as a *types.Error; bindings made before the
// failure are not undone (see TryUnify).
//
// Each pair of constructor applications is unified once per call, so types which share
// subtrees are unified in time proportional to their distinct nodes.
func (ctx *Context) Unify(a, b types.Type) (types.Type, error) {
	u := unifier{Context: ctx}
	return u.unify(a, b)
}

type consPair struct{ a, b *types.Cons }

type unifier struct {
	*Context
	seen map[consPair]types.Type
}

func (ctx *unifier) unify(a, b types.Type) (types.Type, error) {
	a, b = ctx.Arena.Resolve(a), ctx.Arena.Resolve(b)
	if a == b {
		return a, nil
	}

	switch a.(type) {
	case *types.Invalid:
		return a, nil
	case *types.Cons:
		switch b.(type) {
		case *types.Invalid:
			return b, nil
		case *types.Var:
			return ctx.unify(b, a)
		}
	}

	if avar, ok := a.(*types.Var); ok {
		if bvar, ok := b.(*types.Var); ok {
			root, err := ctx.Arena.Union(avar, bvar)
			if err != nil {
				return nil, err
			}
			return &types.Var{ID: root}, nil
		}
		if _, ok := b.(*types.Invalid); ok {
			return b, nil
		}
		return b, ctx.bind(avar, b)
	}

	acons, aok := a.(*types.Cons)
	bcons, bok := b.(*types.Cons)
	if !aok || !bok {
		return nil, types.Internalf("cannot unify %T with %T", a, b)
	}
	if acons.Ctor != bcons.Ctor {
		return nil, types.NewError(types.Mismatch, b,
			styled.Text("type mismatch: expected "), ctx.Arena.Styled(a),
			styled.Text(" found "), ctx.Arena.Styled(b))
	}
	if len(acons.Operands) != len(bcons.Operands) {
		return nil, types.NewError(types.Arity, b,
			styled.Styled(acons.Ctor.Name(), styled.TypeName),
			styled.Text(" has "+strconv.Itoa(len(acons.Operands))+" operands, found "+strconv.Itoa(len(bcons.Operands))))
	}

	key := consPair{acons, bcons}
	if t, ok := ctx.seen[key]; ok {
		return t, nil
	}
	operands := make([]types.Operand, len(acons.Operands))
	for i, aop := range acons.Operands {
		op, err := ctx.unifyOperand(a, b, aop, bcons.Operands[i])
		if err != nil {
			return nil, err
		}
		operands[i] = op
	}
	t := &types.Cons{Ctor: acons.Ctor, Operands: operands, Classes: acons.Classes.Intersect(bcons.Classes)}
	if ctx.seen == nil {
		ctx.seen = make(map[consPair]types.Type)
	}
	ctx.seen[key] = t
	return t, nil
}

func (ctx *unifier) unifyOperand(a, b types.Type, aop, bop types.Operand) (types.Operand, error) {
	switch aop := aop.(type) {
	case types.UnitOperand:
		bop, ok := bop.(types.UnitOperand)
		if !ok {
			break
		}
		u, err := ctx.UnifyUnits(aop.Unit, bop.Unit)
		if err != nil {
			var ue *UnitError
			if errors.As(err, &ue) {
				return nil, types.NewError(ue.Kind, b, ue.Message())
			}
			return nil, err
		}
		return types.UnitOperand{Unit: u}, nil

	case types.TypeOperand:
		bop, ok := bop.(types.TypeOperand)
		if !ok {
			break
		}
		t, err := ctx.unify(aop.Type, bop.Type)
		if err != nil {
			return nil, err
		}
		return types.TypeOperand{Type: t}, nil
	}
	return nil, types.NewError(types.KindMismatch, b,
		styled.Text("kind mismatch: cannot unify a "+aop.OperandKind().String()+" with a "+bop.OperandKind().String()+" in "),
		ctx.Arena.Styled(a))
}

// bind binds an unbound variable to a constructor application, after the occurs check
// and re-checking the capabilities required of the variable.
func (ctx *Context) bind(v *types.Var, t types.Type) error {
	if ctx.occurs(v.ID, t) {
		return types.NewError(types.Cyclic, t,
			styled.Text("cyclic type: "), ctx.Arena.Styled(v),
			styled.Text(" occurs in "), ctx.Arena.Styled(t))
	}
	if req := ctx.Arena.Required(v); !req.IsEmpty() {
		if err := ctx.RequireClasses(t, req); err != nil {
			return err
		}
	}
	ctx.Logger.Debug("bound type-variable", "var", v.ID, "type", ctx.Arena.TypeLogValue(t))
	return ctx.Arena.Bind(v, t)
}

// occurs returns true if the class of id occurs within t. Shared subtrees are visited once.
func (ctx *Context) occurs(id types.VarID, t types.Type) bool {
	root := ctx.Arena.Find(id)
	seen := make(map[*types.Cons]struct{})
	var walk func(types.Type) bool
	walk = func(t types.Type) bool {
		switch t := ctx.Arena.Resolve(t).(type) {
		case *types.Var:
			return ctx.Arena.Find(t.ID) == root
		case *types.Cons:
			if _, ok := seen[t]; ok {
				return false
			}
			seen[t] = struct{}{}
			for _, op := range t.Operands {
				if op, ok := op.(types.TypeOperand); ok && walk(op.Type) {
					return true
				}
			}
		}
		return false
	}
	return walk(t)
}
