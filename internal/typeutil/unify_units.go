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

	"github.com/wdamron/unitinfer/styled"
	"github.com/wdamron/unitinfer/types"
	"github.com/wdamron/unitinfer/units"
)

// UnitError reports two units which cannot be unified.
type UnitError struct {
	// Kind is types.UnitMismatch, or types.NotDivisible when a unit-variable would have to
	// be bound to a root which is not a whole unit.
	Kind types.ErrorKind
	// Expected and Found are both sides as normalized before unification.
	Expected, Found types.LinearUnit
	// Unit has no whole root of degree Power; set for NotDivisible.
	Unit  units.Unit
	Power int
}

func (e *UnitError) Error() string { return e.Message().String() }

// Message describes the failure. Variables are rendered as they were before unification.
func (e *UnitError) Message() styled.String {
	var none *types.Arena
	if e.Kind == types.NotDivisible {
		return styled.Concat(styled.Text("unit not divisible: {"), none.UnitStyled(types.ConstUnit(e.Unit)),
			styled.Text("} has no whole root of degree "+strconv.Itoa(e.Power)))
	}
	return styled.Concat(styled.Text("unit mismatch: expected {"), none.UnitStyled(e.Expected.Exp()),
		styled.Text("} found {"), none.UnitStyled(e.Found.Exp()), styled.Text("}"))
}

// UnifyUnits unifies two unit expressions, binding unit-variables so both sides become
// equal. The result is a. Units which cannot be unified are reported as a *UnitError.
//
// Both sides are normalized into the single equation `a/b = 1`. An equation with one
// variable raised to the power k binds the variable to the k-th root of the remaining
// unit, and fails when the root is not a whole unit. An equation in which some variable
// has exponent ±1 binds that variable to the rest of the equation. Other equations are
// deferred until enough of their variables are bound.
func (ctx *Context) UnifyUnits(a, b types.UnitExp) (types.UnitExp, error) {
	na, nb := ctx.Arena.NormalizeUnit(a), ctx.Arena.NormalizeUnit(b)
	bound, err := ctx.solve(na.DivideBy(nb))
	if err == nil && bound {
		err = ctx.solvePending()
	}
	if err != nil {
		if ue, ok := err.(*UnitError); ok {
			ue.Expected, ue.Found = na, nb
		}
		return nil, err
	}
	return a, nil
}

// solve attempts one equation. It returns true if a variable was bound. Equations which
// cannot be solved yet are deferred.
func (ctx *Context) solve(eq types.LinearUnit) (bound bool, err error) {
	eq = ctx.Arena.Renormalize(eq)
	ids := eq.VarIDs()
	switch len(ids) {
	case 0:
		if !eq.Const.IsScalar() {
			return false, &UnitError{Kind: types.UnitMismatch}
		}
		return false, nil
	case 1:
		// v^k * c = 1, so v^n = base
		v, k := &types.UnitVar{ID: ids[0]}, eq.Vars[ids[0]]
		base, n := eq.Const.Reciprocal(), k
		if k < 0 {
			base, n = eq.Const, -k
		}
		if !base.DivisibleBy(n) {
			ctx.Logger.Debug("unit is not divisible", "unit", base, "power", n)
			return false, &UnitError{Kind: types.NotDivisible, Unit: base, Power: n}
		}
		root, err := base.RootedBy(n)
		if err != nil {
			return false, err
		}
		return true, ctx.bindUnit(v, types.ConstUnit(root))
	}

	for _, id := range ids {
		k := eq.Vars[id]
		if k != 1 && k != -1 {
			continue
		}
		v := &types.UnitVar{ID: id}
		rest := eq.DivideBy(types.LinearVar(id).RaisedTo(k))
		if k == 1 {
			// v * rest = 1
			rest = rest.RaisedTo(-1)
		}
		if w, ok := singleVar(rest); ok {
			if _, err := ctx.Arena.UnionUnit(v, w); err != nil {
				return false, err
			}
			ctx.Logger.Debug("unified unit-variables", "var", v.ID, "with", w.ID)
			return true, nil
		}
		return true, ctx.bindUnit(v, rest.Exp())
	}

	ctx.Logger.Debug("deferred unit equation", "equation", ctx.Arena.UnitLogValue(eq.Exp()))
	ctx.pending = append(ctx.pending, eq)
	return false, nil
}

// solvePending re-attempts deferred equations until no further variables are bound.
func (ctx *Context) solvePending() error {
	for progress := true; progress && len(ctx.pending) > 0; {
		progress = false
		pending := ctx.pending
		ctx.pending = nil
		for i, eq := range pending {
			bound, err := ctx.solve(eq)
			if err != nil {
				ctx.pending = append(ctx.pending, pending[i+1:]...)
				return err
			}
			progress = progress || bound
		}
	}
	return nil
}

func (ctx *Context) bindUnit(v *types.UnitVar, u types.UnitExp) error {
	if err := ctx.Arena.BindUnit(v, u); err != nil {
		return err
	}
	ctx.Logger.Debug("bound unit-variable", "var", v.ID, "unit", ctx.Arena.UnitLogValue(u))
	return nil
}

func singleVar(u types.LinearUnit) (*types.UnitVar, bool) {
	if !u.Const.IsScalar() || len(u.Vars) != 1 {
		return nil, false
	}
	for id, k := range u.Vars {
		if k == 1 {
			return &types.UnitVar{ID: id}, true
		}
	}
	return nil, false
}
