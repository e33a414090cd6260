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
	"strconv"
	"strings"

	"github.com/benbjohnson/immutable"
)

var emptyFactors = immutable.NewSortedMap(nil)

// Factor is a single unit raised to a non-zero integer power.
type Factor struct {
	Unit  *SingleUnit
	Power int
}

// Unit is an immutable product of single units raised to integer powers, e.g. `kg*m/s^2`.
// Factors with a zero power are never stored. The zero value is the dimensionless Scalar unit.
//
// Units form a free abelian group: Times is the group operation, Scalar the identity
// and Reciprocal the inverse.
type Unit struct {
	m *immutable.SortedMap // name -> Factor
}

// Scalar is the dimensionless unit.
var Scalar = Unit{}

// Of returns the unit consisting of u to the first power.
func Of(u *SingleUnit) Unit {
	return Unit{emptyFactors.Set(u.Name, Factor{Unit: u, Power: 1})}
}

func fromMap(m *immutable.SortedMap) Unit {
	if m == nil || m.Len() == 0 {
		return Scalar
	}
	return Unit{m}
}

func (u Unit) factors() *immutable.SortedMap {
	if u.m == nil {
		return emptyFactors
	}
	return u.m
}

// Len returns the number of distinct single units in u.
func (u Unit) Len() int {
	if u.m == nil {
		return 0
	}
	return u.m.Len()
}

// IsScalar returns true if u is dimensionless.
func (u Unit) IsScalar() bool { return u.Len() == 0 }

// Power returns the power of the named single unit within u, or zero.
func (u Unit) Power(name string) int {
	f, ok := u.factors().Get(name)
	if !ok {
		return 0
	}
	return f.(Factor).Power
}

// Range iterates over factors in u, sorted by name.
// If f returns false, iteration will be stopped.
func (u Unit) Range(f func(Factor) bool) {
	iter := u.factors().Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		if !f(v.(Factor)) {
			return
		}
	}
}

// Factors returns the factors of u, sorted by name.
func (u Unit) Factors() []Factor {
	out := make([]Factor, 0, u.Len())
	u.Range(func(f Factor) bool {
		out = append(out, f)
		return true
	})
	return out
}

func (u Unit) combine(v Unit, sign int) Unit {
	if v.IsScalar() {
		return u
	}
	b := immutable.NewSortedMapBuilder(u.factors())
	v.Range(func(f Factor) bool {
		p := f.Power * sign
		if existing, ok := b.Get(f.Unit.Name); ok {
			p += existing.(Factor).Power
		}
		if p == 0 {
			b.Delete(f.Unit.Name)
		} else {
			b.Set(f.Unit.Name, Factor{Unit: f.Unit, Power: p})
		}
		return true
	})
	return fromMap(b.Map())
}

func (u Unit) scale(n int) Unit {
	if n == 0 || u.IsScalar() {
		return Scalar
	}
	b := immutable.NewSortedMapBuilder(emptyFactors)
	u.Range(func(f Factor) bool {
		b.Set(f.Unit.Name, Factor{Unit: f.Unit, Power: f.Power * n})
		return true
	})
	return fromMap(b.Map())
}

// Times returns the product of u and v.
func (u Unit) Times(v Unit) Unit { return u.combine(v, 1) }

// DivideBy returns the quotient of u and v.
func (u Unit) DivideBy(v Unit) Unit { return u.combine(v, -1) }

// RaisedTo returns u to the power n.
func (u Unit) RaisedTo(n int) Unit { return u.scale(n) }

// Reciprocal returns the inverse of u.
func (u Unit) Reciprocal() Unit { return u.scale(-1) }

// DivisibleBy returns true if every power in u is a multiple of n.
func (u Unit) DivisibleBy(n int) bool {
	if n == 0 {
		return u.IsScalar()
	}
	ok := true
	u.Range(func(f Factor) bool {
		ok = f.Power%n == 0
		return ok
	})
	return ok
}

// RootedBy returns the n-th root of u. Rooting a unit which is not a perfect n-th power
// is an internal error; callers should check DivisibleBy first.
func (u Unit) RootedBy(n int) (Unit, error) {
	if n <= 0 {
		return Scalar, internalf("cannot take root %d of unit %s", n, u)
	}
	if !u.DivisibleBy(n) {
		return Scalar, internalf("unit %s is not a perfect power of %d", u, n)
	}
	if n == 1 || u.IsScalar() {
		return u, nil
	}
	b := immutable.NewSortedMapBuilder(emptyFactors)
	u.Range(func(f Factor) bool {
		b.Set(f.Unit.Name, Factor{Unit: f.Unit, Power: f.Power / n})
		return true
	})
	return fromMap(b.Map()), nil
}

// Equal returns true if u and v have the same powers of the same single units.
func (u Unit) Equal(v Unit) bool {
	if u.Len() != v.Len() {
		return false
	}
	equal := true
	u.Range(func(f Factor) bool {
		equal = v.Power(f.Unit.Name) == f.Power
		return equal
	})
	return equal
}

// String formats u as `kg*m/s^2`; the scalar unit is formatted as an empty string.
func (u Unit) String() string {
	var num, den []Factor
	u.Range(func(f Factor) bool {
		if f.Power > 0 {
			num = append(num, f)
		} else {
			den = append(den, Factor{Unit: f.Unit, Power: -f.Power})
		}
		return true
	})
	var sb strings.Builder
	writeFactors(&sb, num)
	if len(den) == 0 {
		return sb.String()
	}
	if len(num) == 0 {
		sb.WriteByte('1')
	}
	sb.WriteByte('/')
	if len(den) > 1 {
		sb.WriteByte('(')
	}
	writeFactors(&sb, den)
	if len(den) > 1 {
		sb.WriteByte(')')
	}
	return sb.String()
}

func writeFactors(sb *strings.Builder, fs []Factor) {
	for i, f := range fs {
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(f.Unit.Name)
		if f.Power != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(f.Power))
		}
	}
}
