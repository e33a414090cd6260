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
	"github.com/pkg/errors"

	"github.com/wdamron/unitinfer/units"
)

// VarID identifies a type-variable within an Arena.
type VarID uint

// UnitVarID identifies a unit-variable within an Arena.
type UnitVarID uint

type varSlot struct {
	parent VarID
	rank   uint8
	// link is set on the representative of a bound class.
	link Type
	// required capabilities, accumulated on the representative.
	required Classes
	origin   interface{}
}

type unitSlot struct {
	parent UnitVarID
	rank   uint8
	link   UnitExp
	origin interface{}
}

// Arena allocates type-variables and unit-variables and stores their bindings. Equivalence
// classes of variables are kept in a union-find forest with path compression.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	// MaxRenderDepth caps the nesting depth of rendered types. Zero selects
	// DefaultMaxRenderDepth.
	MaxRenderDepth int
	// MaxRenderNodes caps the number of nodes in a rendered type. Zero selects
	// DefaultMaxRenderNodes.
	MaxRenderNodes int

	vars  []varSlot
	units []unitSlot
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

// VarCount returns the number of type-variables allocated by the arena.
func (a *Arena) VarCount() int { return len(a.vars) }

// UnitVarCount returns the number of unit-variables allocated by the arena.
func (a *Arena) UnitVarCount() int { return len(a.units) }

// NewVar allocates an unbound type-variable. The origin is reported when the variable
// remains unresolved.
func (a *Arena) NewVar(origin interface{}) *Var {
	id := VarID(len(a.vars))
	a.vars = append(a.vars, varSlot{parent: id, origin: origin})
	return &Var{ID: id}
}

// NewUnitVar allocates an unbound unit-variable.
func (a *Arena) NewUnitVar(origin interface{}) *UnitVar {
	id := UnitVarID(len(a.units))
	a.units = append(a.units, unitSlot{parent: id, origin: origin})
	return &UnitVar{ID: id}
}

// Find returns the representative of the class containing id.
func (a *Arena) Find(id VarID) VarID {
	p := a.vars[id].parent
	if p == id {
		return id
	}
	root := a.Find(p)
	a.vars[id].parent = root
	return root
}

// FindUnit returns the representative of the class containing id.
func (a *Arena) FindUnit(id UnitVarID) UnitVarID {
	p := a.units[id].parent
	if p == id {
		return id
	}
	root := a.FindUnit(p)
	a.units[id].parent = root
	return root
}

// Resolve follows variable bindings at the top of t. Unbound variables are returned as
// their representative. A nil arena returns t.
func (a *Arena) Resolve(t Type) Type {
	for a != nil {
		v, ok := t.(*Var)
		if !ok || int(v.ID) >= len(a.vars) {
			return t
		}
		root := a.Find(v.ID)
		link := a.vars[root].link
		if link == nil {
			if root == v.ID {
				return v
			}
			return &Var{ID: root}
		}
		t = link
	}
	return t
}

// IsBound returns true if the class of v is bound to a type.
func (a *Arena) IsBound(v *Var) bool { return a.vars[a.Find(v.ID)].link != nil }

// Bind binds the class of the unbound variable v to t.
func (a *Arena) Bind(v *Var, t Type) error {
	root := a.Find(v.ID)
	if a.vars[root].link != nil {
		return Internalf("type-variable %d is already bound", v.ID)
	}
	a.vars[root].link = t
	return nil
}

// Union merges the classes of two unbound variables. Required capabilities are merged
// onto the new representative, which is returned.
func (a *Arena) Union(x, y *Var) (VarID, error) {
	rx, ry := a.Find(x.ID), a.Find(y.ID)
	if rx == ry {
		return rx, nil
	}
	if a.vars[rx].link != nil || a.vars[ry].link != nil {
		return 0, Internalf("union of bound type-variables %d and %d", x.ID, y.ID)
	}
	if a.vars[rx].rank < a.vars[ry].rank {
		rx, ry = ry, rx
	}
	if a.vars[rx].rank == a.vars[ry].rank {
		a.vars[rx].rank++
	}
	a.vars[ry].parent = rx
	a.vars[rx].required = a.vars[rx].required.Union(a.vars[ry].required)
	if a.vars[rx].origin == nil {
		a.vars[rx].origin = a.vars[ry].origin
	}
	return rx, nil
}

// Require adds capabilities which the class of v must support once bound.
func (a *Arena) Require(v *Var, classes Classes) {
	root := a.Find(v.ID)
	a.vars[root].required = a.vars[root].required.Union(classes)
}

// Required returns the capabilities required of the class of v.
func (a *Arena) Required(v *Var) Classes { return a.vars[a.Find(v.ID)].required }

// Origin returns the origin recorded for the class of v.
func (a *Arena) Origin(v *Var) interface{} {
	if o := a.vars[v.ID].origin; o != nil {
		return o
	}
	return a.vars[a.Find(v.ID)].origin
}

// RangeRequirements calls f for the representative of each class with required
// capabilities, in allocation order, until f returns false.
func (a *Arena) RangeRequirements(f func(v *Var, required Classes) bool) {
	for i := range a.vars {
		s := &a.vars[i]
		if s.parent != VarID(i) || s.required.IsEmpty() {
			continue
		}
		if !f(&Var{ID: VarID(i)}, s.required) {
			return
		}
	}
}

// UnitOrigin returns the origin recorded for the class of v.
func (a *Arena) UnitOrigin(v *UnitVar) interface{} { return a.units[a.FindUnit(v.ID)].origin }

// IsUnitBound returns true if the class of v is bound to a unit.
func (a *Arena) IsUnitBound(v *UnitVar) bool { return a.units[a.FindUnit(v.ID)].link != nil }

// BindUnit binds the class of the unbound unit-variable v to u. The caller must ensure u
// does not refer to v after normalization.
func (a *Arena) BindUnit(v *UnitVar, u UnitExp) error {
	root := a.FindUnit(v.ID)
	if a.units[root].link != nil {
		return Internalf("unit-variable %d is already bound", v.ID)
	}
	a.units[root].link = u
	return nil
}

// UnionUnit merges the classes of two unbound unit-variables.
func (a *Arena) UnionUnit(x, y *UnitVar) (UnitVarID, error) {
	rx, ry := a.FindUnit(x.ID), a.FindUnit(y.ID)
	if rx == ry {
		return rx, nil
	}
	if a.units[rx].link != nil || a.units[ry].link != nil {
		return 0, Internalf("union of bound unit-variables %d and %d", x.ID, y.ID)
	}
	if a.units[rx].rank < a.units[ry].rank {
		rx, ry = ry, rx
	}
	if a.units[rx].rank == a.units[ry].rank {
		a.units[rx].rank++
	}
	a.units[ry].parent = rx
	if a.units[rx].origin == nil {
		a.units[rx].origin = a.units[ry].origin
	}
	return rx, nil
}

// NormalizeUnit substitutes bound unit-variables within u and returns the result in
// linear form. Unbound variables are keyed by their representative. The bindings of
// variables met along the way are replaced by their normal forms.
func (a *Arena) NormalizeUnit(u UnitExp) LinearUnit {
	switch u := u.(type) {
	case *UnitConst:
		return LinearConst(u.Unit)
	case *UnitVar:
		if a == nil || int(u.ID) >= len(a.units) {
			return LinearVar(u.ID)
		}
		root := a.FindUnit(u.ID)
		if link := a.units[root].link; link != nil {
			n := a.NormalizeUnit(link)
			if _, ok := link.(*UnitConst); !ok {
				// compress chains of bound variables
				a.units[root].link = n.Exp()
			}
			return n
		}
		return LinearVar(root)
	case *UnitTimes:
		return a.NormalizeUnit(u.L).Times(a.NormalizeUnit(u.R))
	case *UnitDivide:
		return a.NormalizeUnit(u.L).DivideBy(a.NormalizeUnit(u.R))
	case *UnitRaise:
		return a.NormalizeUnit(u.Base).RaisedTo(u.Power)
	}
	return LinearConst(units.Scalar)
}

// Renormalize substitutes variables which were bound after u was normalized.
func (a *Arena) Renormalize(u LinearUnit) LinearUnit {
	out := LinearConst(u.Const)
	for _, id := range u.VarIDs() {
		out = out.Times(a.NormalizeUnit(&UnitVar{ID: id}).RaisedTo(u.Vars[id]))
	}
	return out
}

// ConcreteUnit returns the concrete unit of u. Unresolved unit-variables are an internal
// error, reported as an *UnresolvedUnitError naming the origin of the first variable.
func (a *Arena) ConcreteUnit(u UnitExp) (units.Unit, error) {
	n := a.NormalizeUnit(u)
	if !n.IsConcrete() {
		ids := n.VarIDs()
		return units.Scalar, errors.WithStack(&UnresolvedUnitError{Vars: ids, Origin: a.UnitOrigin(&UnitVar{ID: ids[0]})})
	}
	return n.Const, nil
}

// UnitEqual returns true if x and y normalize to the same unit.
func (a *Arena) UnitEqual(x, y UnitExp) bool {
	d := a.NormalizeUnit(x).DivideBy(a.NormalizeUnit(y))
	return d.IsScalar()
}

// Equal returns true if x and y are structurally equal after resolving bindings.
func (a *Arena) Equal(x, y Type) bool {
	x, y = a.Resolve(x), a.Resolve(y)
	switch x := x.(type) {
	case *Var:
		yv, ok := y.(*Var)
		return ok && x.ID == yv.ID
	case *Invalid:
		_, ok := y.(*Invalid)
		return ok
	case *Cons:
		yc, ok := y.(*Cons)
		if !ok || x.Ctor != yc.Ctor || len(x.Operands) != len(yc.Operands) {
			return false
		}
		for i, op := range x.Operands {
			switch op := op.(type) {
			case UnitOperand:
				yop, ok := yc.Operands[i].(UnitOperand)
				if !ok || !a.UnitEqual(op.Unit, yop.Unit) {
					return false
				}
			case TypeOperand:
				yop, ok := yc.Operands[i].(TypeOperand)
				if !ok || !a.Equal(op.Type, yop.Type) {
					return false
				}
			}
		}
		return true
	}
	return false
}

// Snapshot records the bindings of the arena.
type Snapshot struct {
	vars  []varSlot
	units []unitSlot
}

// Snapshot records the current bindings, for speculative unification.
func (a *Arena) Snapshot() Snapshot {
	return Snapshot{
		vars:  append([]varSlot(nil), a.vars...),
		units: append([]unitSlot(nil), a.units...),
	}
}

// Restore discards bindings and variables created after s was taken.
func (a *Arena) Restore(s Snapshot) {
	a.vars = append(a.vars[:0], s.vars...)
	a.units = append(a.units[:0], s.units...)
}
