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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	metre  = &SingleUnit{Name: "m"}
	second = &SingleUnit{Name: "s"}
	gram   = &SingleUnit{Name: "g"}
	dollar = &SingleUnit{Name: "USD"}
)

func sampleUnits() []Unit {
	m, s, g, usd := Of(metre), Of(second), Of(gram), Of(dollar)
	return []Unit{
		Scalar,
		m,
		s,
		m.DivideBy(s),
		m.RaisedTo(3).DivideBy(s),
		g.Times(m).DivideBy(s.RaisedTo(2)),
		usd.Reciprocal(),
		m.RaisedTo(-2).Times(usd.RaisedTo(5)),
		g.RaisedTo(4).Times(s.RaisedTo(-7)).Times(m),
	}
}

func TestUnitGroupLaws(t *testing.T) {
	for _, a := range sampleUnits() {
		assert.True(t, Scalar.Times(a).Equal(a), "identity: %s", a)
		assert.True(t, a.Reciprocal().Reciprocal().Equal(a), "double reciprocal: %s", a)
		for _, b := range sampleUnits() {
			assert.Equal(t, a.Equal(b), b.Equal(a), "symmetry: %s, %s", a, b)
			assert.True(t, a.DivideBy(b).Equal(b.DivideBy(a).Reciprocal()), "%s / %s", a, b)
			assert.True(t, a.Times(b).Equal(a.DivideBy(b.Reciprocal())), "%s * %s", a, b)
			assert.True(t, a.DivideBy(b).Times(b).Equal(a), "(%s / %s) * %s", a, b, b)
			assert.True(t, a.Times(b).DivideBy(b).Equal(a), "(%s * %s) / %s", a, b, b)
		}
		for i := 1; i <= 9; i++ {
			rooted, err := a.RaisedTo(i).RootedBy(i)
			require.NoError(t, err)
			assert.True(t, rooted.Equal(a), "%s ^ %d", a, i)
		}
	}
}

func TestUnitRootNotDivisible(t *testing.T) {
	u := Of(metre).RaisedTo(3).DivideBy(Of(second))
	assert.False(t, u.DivisibleBy(3))
	_, err := u.RootedBy(3)
	require.ErrorIs(t, err, ErrInternal)

	_, err = u.RootedBy(0)
	require.ErrorIs(t, err, ErrInternal)
}

func TestUnitZeroPowersRemoved(t *testing.T) {
	m := Of(metre)
	u := m.Times(Of(second)).DivideBy(m)
	assert.Equal(t, 1, u.Len())
	assert.Equal(t, 0, u.Power("m"))
	assert.Equal(t, 1, u.Power("s"))
	assert.True(t, m.RaisedTo(0).IsScalar())
	assert.True(t, m.DivideBy(m).Equal(Scalar))
}

func TestUnitString(t *testing.T) {
	m, s, g := Of(metre), Of(second), Of(gram)
	cases := []struct {
		unit Unit
		want string
	}{
		{Scalar, ""},
		{m, "m"},
		{m.DivideBy(s), "m/s"},
		{s.Reciprocal(), "1/s"},
		{g.Times(m).DivideBy(s.RaisedTo(2)), "g*m/s^2"},
		{m.DivideBy(g).DivideBy(s), "m/(g*s)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.unit.String())
	}
}
