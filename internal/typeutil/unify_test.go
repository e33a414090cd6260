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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/unitinfer/types"
	"github.com/wdamron/unitinfer/units"
)

func unit(t *testing.T, expr string) types.UnitExp {
	t.Helper()
	e, err := units.ParseUnitExpr(expr)
	require.NoError(t, err)
	u, err := units.Builtin().Resolve(e)
	require.NoError(t, err)
	return types.ConstUnit(u)
}

func concrete(t *testing.T, ctx *Context, u types.UnitExp) string {
	t.Helper()
	c, err := ctx.Arena.ConcreteUnit(u)
	require.NoError(t, err)
	return c.String()
}

func requireUnitError(t *testing.T, err error) *UnitError {
	t.Helper()
	var ue *UnitError
	require.ErrorAs(t, err, &ue)
	return ue
}

func unitErrorKind(t *testing.T, err error) types.ErrorKind {
	t.Helper()
	return requireUnitError(t, err).Kind
}

func TestUnifyConcreteUnits(t *testing.T) {
	ctx := NewContext(nil, nil)
	_, err := ctx.UnifyUnits(unit(t, "m/s"), types.DivideUnit(unit(t, "m"), unit(t, "s")))
	assert.NoError(t, err)
	_, err = ctx.UnifyUnits(unit(t, "m"), unit(t, "s"))
	assert.Equal(t, types.UnitMismatch, unitErrorKind(t, err))
	_, err = ctx.UnifyUnits(types.ScalarUnit, unit(t, "m/m"))
	assert.NoError(t, err)
}

func TestUnifyUnitVariable(t *testing.T) {
	ctx := NewContext(nil, nil)
	u := ctx.Arena.NewUnitVar(nil)
	_, err := ctx.UnifyUnits(u, unit(t, "m^3/s"))
	require.NoError(t, err)
	assert.Equal(t, "m^3/s", concrete(t, ctx, u))
}

func TestUnifyUnitSystem(t *testing.T) {
	ctx := NewContext(nil, nil)
	u, u3 := ctx.Arena.NewUnitVar(nil), ctx.Arena.NewUnitVar(nil)

	lhs := types.TimesUnit(u, types.RaiseUnit(u3, 3))
	rhs := types.TimesUnit(unit(t, "m^3/s"), unit(t, "m/s^3"))
	_, err := ctx.UnifyUnits(lhs, rhs)
	require.NoError(t, err)

	_, err = ctx.UnifyUnits(u, unit(t, "m/s"))
	require.NoError(t, err)
	assert.Equal(t, "m/s", concrete(t, ctx, u))
	assert.Equal(t, "m/s", concrete(t, ctx, u3))
	assert.Equal(t, 0, ctx.Pending())
}

func TestUnifyUnitsDeferred(t *testing.T) {
	ctx := NewContext(nil, nil)
	u, w := ctx.Arena.NewUnitVar(nil), ctx.Arena.NewUnitVar(nil)

	_, err := ctx.UnifyUnits(types.TimesUnit(types.RaiseUnit(u, 2), types.RaiseUnit(w, 2)), unit(t, "m^2"))
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.Pending())
	assert.False(t, ctx.Arena.IsUnitBound(u))

	_, err = ctx.UnifyUnits(w, unit(t, "m/s"))
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.Pending())
	assert.Equal(t, "s", concrete(t, ctx, u))
}

func TestUnifyUnitsDeferredInconsistent(t *testing.T) {
	ctx := NewContext(nil, nil)
	u, w := ctx.Arena.NewUnitVar(nil), ctx.Arena.NewUnitVar(nil)

	_, err := ctx.UnifyUnits(types.TimesUnit(types.RaiseUnit(u, 2), types.RaiseUnit(w, 2)), unit(t, "m^3"))
	require.NoError(t, err)

	// u^2 = m has no solution
	_, err = ctx.UnifyUnits(w, unit(t, "m"))
	assert.Equal(t, types.NotDivisible, unitErrorKind(t, err))
}

func TestUnifyUnitRoot(t *testing.T) {
	ctx := NewContext(nil, nil)
	u := ctx.Arena.NewUnitVar(nil)
	_, err := ctx.UnifyUnits(types.RaiseUnit(u, 4), unit(t, "m^2/s"))
	ue := requireUnitError(t, err)
	assert.Equal(t, types.NotDivisible, ue.Kind)
	assert.Equal(t, 4, ue.Power)
	assert.Equal(t, "unit not divisible: {m^2/s} has no whole root of degree 4", ue.Error())
	assert.False(t, ctx.Arena.IsUnitBound(u))

	_, err = ctx.UnifyUnits(types.RaiseUnit(u, 4), unit(t, "m^4/s^8"))
	require.NoError(t, err)
	assert.Equal(t, "m/s^2", concrete(t, ctx, u))

	v := ctx.Arena.NewUnitVar(nil)
	_, err = ctx.UnifyUnits(unit(t, "m^2"), types.DivideUnit(types.ScalarUnit, types.RaiseUnit(v, 2)))
	require.NoError(t, err)
	assert.Equal(t, "1/m", concrete(t, ctx, v))
}

func TestUnifyUnitVariables(t *testing.T) {
	ctx := NewContext(nil, nil)
	u, w := ctx.Arena.NewUnitVar(nil), ctx.Arena.NewUnitVar(nil)
	_, err := ctx.UnifyUnits(u, w)
	require.NoError(t, err)
	assert.Equal(t, ctx.Arena.FindUnit(u.ID), ctx.Arena.FindUnit(w.ID))

	_, err = ctx.UnifyUnits(w, unit(t, "kg"))
	require.NoError(t, err)
	assert.Equal(t, "kg", concrete(t, ctx, u))

	x, y := ctx.Arena.NewUnitVar(nil), ctx.Arena.NewUnitVar(nil)
	_, err = ctx.UnifyUnits(types.TimesUnit(x, unit(t, "s")), types.TimesUnit(y, unit(t, "m")))
	require.NoError(t, err)
	_, err = ctx.UnifyUnits(y, unit(t, "s"))
	require.NoError(t, err)
	assert.Equal(t, "m", concrete(t, ctx, x))
}

func TestUnifyTypes(t *testing.T) {
	ctx := NewContext(nil, nil)
	m := unit(t, "m")

	res, err := ctx.Unify(types.Number(m), types.Number(m))
	require.NoError(t, err)
	assert.Equal(t, "Number{m}", ctx.Arena.TypeString(res))

	_, err = ctx.Unify(types.Number(m), types.Text())
	var te *types.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, types.Mismatch, te.Kind)
	assert.Equal(t, "type mismatch: expected Number{m} found Text", te.Error())

	_, err = ctx.Unify(types.List(types.Number(m)), types.List(types.Number(unit(t, "s"))))
	require.ErrorAs(t, err, &te)
	assert.Equal(t, types.UnitMismatch, te.Kind)
	assert.Equal(t, "unit mismatch: expected {m} found {s}", te.Error())

	_, err = ctx.Unify(types.Function(types.Scalar(), types.Text()), types.Function(types.Scalar(), types.Boolean()))
	require.ErrorAs(t, err, &te)
	assert.Equal(t, types.Mismatch, te.Kind)
}

func TestUnifySharedTypes(t *testing.T) {
	ctx := NewContext(nil, nil)
	v := ctx.Arena.NewVar(nil)
	// structurally equal, separately allocated, 2^64 nodes when unshared
	var a, b types.Type = types.Scalar(), v
	for i := 0; i < 64; i++ {
		a, b = types.Function(a, a), types.Function(b, b)
	}
	_, err := ctx.Unify(a, b)
	require.NoError(t, err)
	assert.Equal(t, "Number{}", ctx.Arena.TypeString(v))

	w := ctx.Arena.NewVar(nil)
	_, err = ctx.Unify(w, b)
	require.NoError(t, err)

	y := ctx.Arena.NewVar(nil)
	var pair types.Type = y
	for i := 0; i < 64; i++ {
		pair = types.Tagged("Pair", types.ValueClasses, types.TypeOperand{Type: pair}, types.TypeOperand{Type: pair})
	}
	require.NoError(t, ctx.RequireClasses(pair, types.ValueClasses))
	assert.False(t, ctx.Arena.Required(y).IsEmpty())

	x := ctx.Arena.NewVar(nil)
	var cyclic types.Type = x
	for i := 0; i < 64; i++ {
		cyclic = types.Function(cyclic, cyclic)
	}
	_, err = ctx.Unify(x, cyclic)
	var te *types.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, types.Cyclic, te.Kind)
	assert.Contains(t, te.Error(), "…")
}

func TestUnifyVariables(t *testing.T) {
	ctx := NewContext(nil, nil)
	v, w := ctx.Arena.NewVar(nil), ctx.Arena.NewVar(nil)
	u := ctx.Arena.NewUnitVar(nil)

	_, err := ctx.Unify(v, w)
	require.NoError(t, err)
	res, err := ctx.Unify(types.List(w), types.List(types.Number(u)))
	require.NoError(t, err)
	_, err = ctx.Unify(v, types.Number(unit(t, "kg")))
	require.NoError(t, err)

	assert.Equal(t, "List(Number{kg})", ctx.Arena.TypeString(res))
	assert.Equal(t, "Number{kg}", ctx.Arena.TypeString(v))

	x := ctx.Arena.NewVar(nil)
	_, err = ctx.Unify(x, types.List(types.Function(x, types.Text())))
	var te *types.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, types.Cyclic, te.Kind)
	assert.False(t, ctx.Arena.IsBound(x))
}

func TestUnifyOperandKinds(t *testing.T) {
	ctx := NewContext(nil, nil)
	classes := types.DefaultTaggedClasses
	pairUnit := types.Tagged("Pair", classes, types.UnitOperand{Unit: unit(t, "m")})
	pairType := types.Tagged("Pair", classes, types.TypeOperand{Type: types.Text()})

	_, err := ctx.Unify(pairUnit, pairType)
	var te *types.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, types.KindMismatch, te.Kind)

	_, err = ctx.Unify(pairType, types.Tagged("Pair", classes))
	require.ErrorAs(t, err, &te)
	assert.Equal(t, types.Arity, te.Kind)

	res, err := ctx.Unify(types.Tagged("Opt", types.ValueClasses), types.Tagged("Opt", types.NewClasses(types.Equatable)))
	require.NoError(t, err)
	assert.True(t, res.(*types.Cons).Classes.Equal(types.NewClasses(types.Equatable)))
}

func TestRequireClasses(t *testing.T) {
	ctx := NewContext(nil, nil)
	comparable := types.NewClasses(types.Comparable)

	require.NoError(t, ctx.RequireClasses(types.List(types.Scalar()), comparable))

	fn := types.Function(types.Scalar(), types.Scalar())
	err := ctx.RequireClasses(types.List(fn), comparable)
	var te *types.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, types.MissingClasses, te.Kind)
	assert.Same(t, fn, te.Subject)
	assert.Equal(t, "Function(Number{})(Number{}) does not support Comparable", te.Error())

	err = ctx.RequireClasses(types.List(types.Text()), types.NewClasses(types.Numeric))
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "List(Text) does not support Numeric", te.Error())
}

func TestRequireClassesOnVariables(t *testing.T) {
	ctx := NewContext(nil, nil)
	v, w := ctx.Arena.NewVar(nil), ctx.Arena.NewVar(nil)
	require.NoError(t, ctx.RequireClasses(v, types.NewClasses(types.Numeric)))
	_, err := ctx.Unify(v, w)
	require.NoError(t, err)

	assert.False(t, ctx.CanUnify(w, types.Text()))
	assert.True(t, ctx.CanUnify(w, types.Scalar()))
	assert.False(t, ctx.Arena.IsBound(w))

	_, err = ctx.TryUnify(w, types.Boolean())
	var te *types.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, types.MissingClasses, te.Kind)
	assert.False(t, ctx.Arena.IsBound(v))

	_, err = ctx.TryUnify(v, types.Scalar())
	require.NoError(t, err)
	require.NoError(t, ctx.CheckRecorded())
}

func TestCheckRecorded(t *testing.T) {
	ctx := NewContext(nil, nil)
	v := ctx.Arena.NewVar("expr")
	ctx.Arena.Require(v, types.NewClasses(types.Comparable))
	// bind without the capability check
	require.NoError(t, ctx.Arena.Bind(v, types.Function(types.Text(), types.Text())))

	err := ctx.CheckRecorded()
	var te *types.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, types.MissingClasses, te.Kind)
	assert.Equal(t, "expr", te.Origin)
}
