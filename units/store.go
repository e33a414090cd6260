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

package units

import (
	"math/big"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/unitinfer/ast"
	"github.com/wdamron/unitinfer/internal/util"
)

// Store is an immutable table of unit declarations, indexed by name and alias.
//
// A store may be shared by concurrent readers.
type Store struct {
	decls *immutable.SortedMap // name or alias -> *Declaration
	count int
}

// Len returns the number of declared units, not counting aliases.
func (s *Store) Len() int { return s.count }

// Lookup finds the declaration for a unit name or alias.
func (s *Store) Lookup(name string) (*Declaration, error) {
	if d := s.lookup(name); d != nil {
		return d, nil
	}
	return nil, &LookupError{Name: name}
}

func (s *Store) lookup(name string) *Declaration {
	if s == nil || s.decls == nil {
		return nil
	}
	d, ok := s.decls.Get(name)
	if !ok {
		return nil
	}
	return d.(*Declaration)
}

// Unit returns the unit consisting of the named single unit (or the unit an alias refers to).
func (s *Store) Unit(name string) (Unit, error) {
	d, err := s.Lookup(name)
	if err != nil {
		return Scalar, err
	}
	return Of(d.Unit), nil
}

// Declarations iterates over declarations in order of their canonical names.
// If f returns false, iteration will be stopped.
func (s *Store) Declarations(f func(*Declaration) bool) {
	if s == nil || s.decls == nil {
		return
	}
	iter := s.decls.Iterator()
	for !iter.Done() {
		name, v := iter.Next()
		d := v.(*Declaration)
		if d.Unit.Name != name.(string) {
			continue // alias
		}
		if !f(d) {
			return
		}
	}
}

// Resolve converts a concrete unit-expression into a unit. Unit-variables are rejected.
func (s *Store) Resolve(e ast.UnitExpr) (Unit, error) {
	return resolveUnitExpr(e, func(name string) (Unit, error) { return s.Unit(name) })
}

func resolveUnitExpr(e ast.UnitExpr, lookup func(string) (Unit, error)) (Unit, error) {
	switch e := e.(type) {
	case *ast.UnitName:
		return lookup(e.Name)
	case *ast.UnitScalar:
		return Scalar, nil
	case *ast.UnitTimes:
		l, err := resolveUnitExpr(e.Left, lookup)
		if err != nil {
			return Scalar, err
		}
		r, err := resolveUnitExpr(e.Right, lookup)
		if err != nil {
			return Scalar, err
		}
		return l.Times(r), nil
	case *ast.UnitDivide:
		l, err := resolveUnitExpr(e.Left, lookup)
		if err != nil {
			return Scalar, err
		}
		r, err := resolveUnitExpr(e.Right, lookup)
		if err != nil {
			return Scalar, err
		}
		return l.DivideBy(r), nil
	case *ast.UnitPower:
		b, err := resolveUnitExpr(e.Base, lookup)
		if err != nil {
			return Scalar, err
		}
		return b.RaisedTo(e.Power), nil
	case *ast.UnitVar:
		return Scalar, &ParseError{Msg: "unit variable " + e.Name + " is not allowed in a concrete unit"}
	case nil:
		return Scalar, internalf("nil unit expression")
	}
	return Scalar, internalf("unknown unit expression: %s", e.UnitExprName())
}

// Canonicalise reduces every factor of u to units without an equivalence, returning the
// scale factor such that 1 u = scale * canonical.
func (s *Store) Canonicalise(u Unit) (*big.Rat, Unit) {
	scale, canonical := big.NewRat(1, 1), Scalar
	u.Range(func(f Factor) bool {
		d := s.lookup(f.Unit.Name)
		if d == nil || d.Equivalent == nil {
			canonical = canonical.Times(Of(f.Unit).RaisedTo(f.Power))
			return true
		}
		subScale, base := s.Canonicalise(d.Equivalent.Unit)
		subScale.Mul(subScale, d.Equivalent.Scale)
		scale.Mul(scale, ratPow(subScale, f.Power))
		canonical = canonical.Times(base.RaisedTo(f.Power))
		return true
	})
	return scale, canonical
}

// CanScaleTo returns the factor f such that 1 a = f b, if a and b reduce to the same canonical unit.
func (s *Store) CanScaleTo(a, b Unit) (*big.Rat, bool) {
	sa, ca := s.Canonicalise(a)
	sb, cb := s.Canonicalise(b)
	if !ca.Equal(cb) {
		return nil, false
	}
	return sa.Quo(sa, sb), true
}

func ratPow(r *big.Rat, n int) *big.Rat {
	out := big.NewRat(1, 1)
	if n < 0 {
		r, n = new(big.Rat).Inv(r), -n
	}
	for i := 0; i < n; i++ {
		out.Mul(out, r)
	}
	return out
}

// Equivalent is an unresolved equivalence for a declaration: 1 unit = Scale * Unit.
type Equivalent struct {
	Scale *big.Rat
	Unit  ast.UnitExpr
}

type pendingDecl struct {
	unit       *SingleUnit
	equivalent *Equivalent
}

// Builder collects unit declarations and aliases. Names may be referenced before they are
// declared; all references are resolved and validated by Build.
type Builder struct {
	decls   []pendingDecl
	names   map[string]int
	aliases [][2]string // new name, original name
}

func NewBuilder() *Builder {
	return &Builder{names: make(map[string]int)}
}

// Declare adds a unit. eq may be nil for units which are not defined in terms of others.
// Declaring a name twice is an error.
func (b *Builder) Declare(name, description, prefix, suffix string, eq *Equivalent) error {
	if name == "" {
		return &DeclarationError{Name: name, Msg: "empty name"}
	}
	if _, exists := b.names[name]; exists {
		return &DeclarationError{Name: name, Msg: "declared more than once"}
	}
	if eq != nil && eq.Scale == nil {
		eq = &Equivalent{Scale: big.NewRat(1, 1), Unit: eq.Unit}
	}
	if eq != nil && eq.Scale.Sign() <= 0 {
		return &DeclarationError{Name: name, Msg: "scale must be positive"}
	}
	b.names[name] = len(b.decls)
	b.decls = append(b.decls, pendingDecl{
		unit:       &SingleUnit{Name: name, Description: description, Prefix: prefix, Suffix: suffix},
		equivalent: eq,
	})
	return nil
}

// Alias makes newName refer to the same unit as origName. origName may itself be an alias.
func (b *Builder) Alias(newName, origName string) error {
	if newName == "" {
		return &DeclarationError{Name: newName, Msg: "empty alias"}
	}
	b.aliases = append(b.aliases, [2]string{newName, origName})
	return nil
}

// Build resolves aliases and equivalences into an immutable store.
func (b *Builder) Build() (*Store, error) {
	decls := make([]*Declaration, len(b.decls))
	for i, p := range b.decls {
		decls[i] = &Declaration{Unit: p.unit}
	}

	// Aliases may refer to units or other aliases which are declared later:
	aliasOf := make(map[string]string, len(b.aliases))
	for _, a := range b.aliases {
		newName, origName := a[0], a[1]
		if _, exists := b.names[newName]; exists {
			return nil, &DeclarationError{Name: newName, Msg: "alias conflicts with a declared unit"}
		}
		if _, exists := aliasOf[newName]; exists {
			return nil, &DeclarationError{Name: newName, Msg: "alias declared more than once"}
		}
		aliasOf[newName] = origName
	}
	index := make(map[string]int, len(b.names)+len(aliasOf))
	for name, i := range b.names {
		index[name] = i
	}
	for _, a := range b.aliases {
		target, steps := a[1], 0
		for {
			if i, ok := b.names[target]; ok {
				index[a[0]] = i
				decls[i].aliases = append(decls[i].aliases, a[0])
				break
			}
			next, ok := aliasOf[target]
			if !ok {
				return nil, &DeclarationError{Name: a[0], Msg: "alias of undeclared unit " + target}
			}
			if steps++; steps > len(aliasOf) {
				return nil, &DeclarationError{Name: a[0], Msg: "cyclic alias"}
			}
			target = next
		}
	}

	lookup := func(name string) (Unit, error) {
		i, ok := index[name]
		if !ok {
			return Scalar, &LookupError{Name: name}
		}
		return Of(decls[i].Unit), nil
	}
	deps := util.NewGraph(len(decls))
	for i, p := range b.decls {
		if p.equivalent == nil {
			continue
		}
		u, err := resolveUnitExpr(p.equivalent.Unit, lookup)
		if err != nil {
			return nil, &DeclarationError{Name: p.unit.Name, Msg: err.Error()}
		}
		decls[i].Equivalent = &Equivalence{Scale: new(big.Rat).Set(p.equivalent.Scale), Unit: u}
		u.Range(func(f Factor) bool {
			deps.AddEdge(i, b.names[f.Unit.Name])
			return true
		})
	}
	if cycles := deps.Cycles(); len(cycles) > 0 {
		return nil, &DeclarationError{Name: decls[cycles[0][0]].Unit.Name, Msg: "cyclic unit equivalence"}
	}

	mb := immutable.NewSortedMapBuilder(emptyFactors)
	for name, i := range index {
		mb.Set(name, decls[i])
	}
	return &Store{decls: mb.Map(), count: len(decls)}, nil
}
