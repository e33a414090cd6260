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
	"strconv"

	"github.com/pkg/errors"

	"github.com/wdamron/unitinfer/ast"
	"github.com/wdamron/unitinfer/styled"
	"github.com/wdamron/unitinfer/types"
	"github.com/wdamron/unitinfer/units"
)

// instantiation converts a type-expression into a type, with fresh variables for each
// named type-variable and unit-variable. Repeated names share a variable.
type instantiation struct {
	arena    *types.Arena
	env      *TypeEnv
	origin   ast.Expr
	typeVars map[string]*types.Var
	unitVars map[string]*types.UnitVar
}

func (ti *InferenceContext) instantiate(env *TypeEnv, t ast.TypeExpr, origin ast.Expr) (types.Type, error) {
	inst := instantiation{arena: ti.arena, env: env, origin: origin}
	return inst.typ(t)
}

func (ti *InferenceContext) instantiateUnit(env *TypeEnv, u ast.UnitExpr, origin ast.Expr) (types.UnitExp, error) {
	inst := instantiation{arena: ti.arena, env: env, origin: origin}
	return inst.unit(u)
}

func (inst *instantiation) typ(t ast.TypeExpr) (types.Type, error) {
	switch t := t.(type) {
	case *ast.TypeVar:
		if v, ok := inst.typeVars[t.Name]; ok {
			return v, nil
		}
		if inst.typeVars == nil {
			inst.typeVars = make(map[string]*types.Var)
		}
		v := inst.arena.NewVar(inst.origin)
		inst.typeVars[t.Name] = v
		return v, nil

	case *ast.TypeApp:
		return inst.app(t)
	}
	return nil, types.Internalf("unexpected type-expression %T", t)
}

func (inst *instantiation) app(t *ast.TypeApp) (types.Type, error) {
	var (
		params  []types.OperandKind
		ctor    types.Constructor
		classes types.Classes
	)
	if builtin, ok := types.BuiltinByName(t.Name); ok {
		ctor, classes = builtin, builtin.Classes()
		params, _ = builtin.Signature()
	} else if def, ok := lookupTagged(inst.env, t.Name); ok {
		ctor, classes, params = types.TaggedCons(t.Name), def.Classes(), def.Params()
	} else {
		return nil, types.NewError(types.UnknownType, nil, styled.Text("unknown type: "), styled.Styled(t.Name, styled.TypeName))
	}

	if len(params) != len(t.Args) {
		return nil, types.NewError(types.Arity, nil,
			styled.Styled(t.Name, styled.TypeName),
			styled.Text(" expects "+strconv.Itoa(len(params))+" arguments, given "+strconv.Itoa(len(t.Args))))
	}
	operands := make([]types.Operand, len(t.Args))
	for i, arg := range t.Args {
		switch arg := arg.(type) {
		case ast.UnitArg:
			if params[i] != types.UnitKind {
				return nil, kindMismatch(t.Name, params[i])
			}
			u, err := inst.unit(arg.Unit)
			if err != nil {
				return nil, err
			}
			operands[i] = types.UnitOperand{Unit: u}
		case ast.TypeArgOf:
			if params[i] != types.TypeKind {
				return nil, kindMismatch(t.Name, params[i])
			}
			op, err := inst.typ(arg.Type)
			if err != nil {
				return nil, err
			}
			operands[i] = types.TypeOperand{Type: op}
		default:
			return nil, types.Internalf("unexpected type argument %T", arg)
		}
	}
	return &types.Cons{Ctor: ctor, Operands: operands, Classes: classes}, nil
}

func kindMismatch(name string, expected types.OperandKind) error {
	return types.NewError(types.KindMismatch, nil,
		styled.Styled(name, styled.TypeName), styled.Text(" must be of a "+expected.String()+", not a "+flip(expected).String()))
}

func flip(k types.OperandKind) types.OperandKind {
	if k == types.UnitKind {
		return types.TypeKind
	}
	return types.UnitKind
}

func lookupTagged(env *TypeEnv, name string) (types.TaggedDefinition, bool) {
	tagged := env.TaggedTypes()
	if tagged == nil {
		return nil, false
	}
	return tagged.LookupTagged(name)
}

func (inst *instantiation) unit(u ast.UnitExpr) (types.UnitExp, error) {
	switch u := u.(type) {
	case nil, *ast.UnitScalar:
		return types.ScalarUnit, nil

	case *ast.UnitName:
		c, err := inst.env.UnitStore().Unit(u.Name)
		if err != nil {
			var lookupErr *units.LookupError
			if errors.As(err, &lookupErr) {
				return nil, types.NewError(types.UnknownUnit, nil, styled.Text("unknown unit: "), styled.Styled(u.Name, styled.UnitName))
			}
			return nil, err
		}
		return types.ConstUnit(c), nil

	case *ast.UnitVar:
		if v, ok := inst.unitVars[u.Name]; ok {
			return v, nil
		}
		if inst.unitVars == nil {
			inst.unitVars = make(map[string]*types.UnitVar)
		}
		v := inst.arena.NewUnitVar(inst.origin)
		inst.unitVars[u.Name] = v
		return v, nil

	case *ast.UnitTimes:
		l, r, err := inst.units(u.Left, u.Right)
		if err != nil {
			return nil, err
		}
		return types.TimesUnit(l, r), nil

	case *ast.UnitDivide:
		l, r, err := inst.units(u.Left, u.Right)
		if err != nil {
			return nil, err
		}
		return types.DivideUnit(l, r), nil

	case *ast.UnitPower:
		b, err := inst.unit(u.Base)
		if err != nil {
			return nil, err
		}
		return types.RaiseUnit(b, u.Power), nil
	}
	return nil, types.Internalf("unexpected unit-expression %T", u)
}

func (inst *instantiation) units(l, r ast.UnitExpr) (types.UnitExp, types.UnitExp, error) {
	lu, err := inst.unit(l)
	if err != nil {
		return nil, nil, err
	}
	ru, err := inst.unit(r)
	if err != nil {
		return nil, nil, err
	}
	return lu, ru, nil
}
