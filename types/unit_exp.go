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

package types

import (
	"golang.org/x/exp/slices"

	"github.com/wdamron/unitinfer/units"
)

// UnitExp is a symbolic unit, possibly containing unit-variables.
type UnitExp interface {
	UnitExpName() string
}

var (
	_ UnitExp = (*UnitConst)(nil)
	_ UnitExp = (*UnitVar)(nil)
	_ UnitExp = (*UnitTimes)(nil)
	_ UnitExp = (*UnitDivide)(nil)
	_ UnitExp = (*UnitRaise)(nil)
)

func (u *UnitConst) UnitExpName() string  { return "UnitConst" }
func (u *UnitVar) UnitExpName() string    { return "UnitVar" }
func (u *UnitTimes) UnitExpName() string  { return "UnitTimes" }
func (u *UnitDivide) UnitExpName() string { return "UnitDivide" }
func (u *UnitRaise) UnitExpName() string  { return "UnitRaise" }

// Concrete unit
type UnitConst struct {
	Unit units.Unit
}

// Unit-variable. The binding of a unit-variable is stored in the Arena which allocated it.
type UnitVar struct {
	ID UnitVarID
}

// Product of units
type UnitTimes struct {
	L, R UnitExp
}

// Quotient of units
type UnitDivide struct {
	L, R UnitExp
}

// Unit raised to an integer power
type UnitRaise struct {
	Base  UnitExp
	Power int
}

// ScalarUnit is the unit of dimensionless numbers.
var ScalarUnit UnitExp = &UnitConst{Unit: units.Scalar}

func ConstUnit(u units.Unit) UnitExp {
	if u.IsScalar() {
		return ScalarUnit
	}
	return &UnitConst{Unit: u}
}

func TimesUnit(l, r UnitExp) UnitExp     { return &UnitTimes{L: l, R: r} }
func DivideUnit(l, r UnitExp) UnitExp    { return &UnitDivide{L: l, R: r} }
func RaiseUnit(b UnitExp, n int) UnitExp { return &UnitRaise{Base: b, Power: n} }

// LinearUnit is a normalized unit: a concrete unit times a product of powers of unbound
// unit-variables. Variables with a zero exponent are never present.
type LinearUnit struct {
	Const units.Unit
	Vars  map[UnitVarID]int
}

// LinearConst returns a linear unit without variables.
func LinearConst(u units.Unit) LinearUnit { return LinearUnit{Const: u} }

// LinearVar returns the linear unit for a single unit-variable.
func LinearVar(id UnitVarID) LinearUnit {
	return LinearUnit{Const: units.Scalar, Vars: map[UnitVarID]int{id: 1}}
}

// IsConcrete returns true if u does not contain unit-variables.
func (u LinearUnit) IsConcrete() bool { return len(u.Vars) == 0 }

// IsScalar returns true if u is the dimensionless unit.
func (u LinearUnit) IsScalar() bool { return u.IsConcrete() && u.Const.IsScalar() }

// Times returns the product of u and v.
func (u LinearUnit) Times(v LinearUnit) LinearUnit {
	out := LinearUnit{Const: u.Const.Times(v.Const)}
	out.Vars = addExponents(u.Vars, v.Vars, 1)
	return out
}

// DivideBy returns the quotient of u and v.
func (u LinearUnit) DivideBy(v LinearUnit) LinearUnit {
	out := LinearUnit{Const: u.Const.DivideBy(v.Const)}
	out.Vars = addExponents(u.Vars, v.Vars, -1)
	return out
}

// RaisedTo returns u raised to the power n.
func (u LinearUnit) RaisedTo(n int) LinearUnit {
	out := LinearUnit{Const: u.Const.RaisedTo(n)}
	if n != 0 && len(u.Vars) != 0 {
		out.Vars = make(map[UnitVarID]int, len(u.Vars))
		for id, k := range u.Vars {
			out.Vars[id] = k * n
		}
	}
	return out
}

// VarIDs returns the unit-variables of u in allocation order.
func (u LinearUnit) VarIDs() []UnitVarID {
	ids := make([]UnitVarID, 0, len(u.Vars))
	for id := range u.Vars {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Exp converts u back into a symbolic unit.
func (u LinearUnit) Exp() UnitExp {
	var e UnitExp
	if !u.Const.IsScalar() || len(u.Vars) == 0 {
		e = ConstUnit(u.Const)
	}
	for _, id := range u.VarIDs() {
		var f UnitExp = &UnitVar{ID: id}
		if k := u.Vars[id]; k != 1 {
			f = RaiseUnit(f, k)
		}
		if e == nil {
			e = f
		} else {
			e = TimesUnit(e, f)
		}
	}
	return e
}

func addExponents(a, b map[UnitVarID]int, sign int) map[UnitVarID]int {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[UnitVarID]int, len(a)+len(b))
	for id, k := range a {
		out[id] = k
	}
	for id, k := range b {
		if n := out[id] + sign*k; n != 0 {
			out[id] = n
		} else {
			delete(out, id)
		}
	}
	return out
}
