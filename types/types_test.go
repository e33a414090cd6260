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
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/unitinfer/units"
)

func unitOf(t *testing.T, expr string) units.Unit {
	t.Helper()
	e, err := units.ParseUnitExpr(expr)
	require.NoError(t, err)
	u, err := units.Builtin().Resolve(e)
	require.NoError(t, err)
	return u
}

func TestNewConsArity(t *testing.T) {
	require.Panics(t, func() { NewCons(ListCons) })
	require.Panics(t, func() { NewCons(NumberCons, TypeOperand{Text()}) })
	require.Panics(t, func() { NewCons(TextCons, UnitOperand{ScalarUnit}) })

	defer func() {
		err, _ := recover().(error)
		require.Error(t, err)
		assert.True(t, IsInternal(err))
	}()
	NewCons(FunctionCons, TypeOperand{Text()})
}

func TestTypeString(t *testing.T) {
	m := unitOf(t, "m")
	ms := unitOf(t, "m/s")

	cases := []struct {
		typ  Type
		want string
	}{
		{NumberOf(m), "Number{m}"},
		{Scalar(), "Number{}"},
		{List(Text()), "List(Text)"},
		{Function(Scalar(), Boolean()), "Function(Number{})(Boolean)"},
		{List(NumberOf(ms)), "List(Number{m/s})"},
		{Date(YearMonth), "DateYM"},
		{Tagged("Pair", DefaultTaggedClasses, TypeOperand{Text()}, UnitOperand{ConstUnit(m)}), "Pair(Text){m}"},
		{&Invalid{Reason: "x"}, "<invalid>"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TypeString(c.typ))
	}
}

func TestRenderVariables(t *testing.T) {
	a := NewArena()
	v := a.NewVar(nil)
	u := a.NewUnitVar(nil)
	u2 := a.NewUnitVar(nil)
	m := ConstUnit(unitOf(t, "m"))

	assert.Equal(t, "List('_0)", a.TypeString(List(v)))
	assert.Equal(t, "m*'u0/'u1^2", a.UnitString(DivideUnit(TimesUnit(m, u), RaiseUnit(u2, 2))))

	require.NoError(t, a.Bind(v, Text()))
	require.NoError(t, a.BindUnit(u2, m))
	assert.Equal(t, "List(Text)", a.TypeString(List(v)))
	assert.Equal(t, "'u0/m", a.UnitString(DivideUnit(TimesUnit(m, u), RaiseUnit(u2, 2))))
	assert.Equal(t, "", a.UnitString(DivideUnit(m, m)))

	styledType := a.Styled(Number(u))
	assert.Equal(t, "Number{'u0}", styledType.String())
}

func TestRenderDepthCap(t *testing.T) {
	a := NewArena()
	a.MaxRenderDepth = 3
	var typ Type = Text()
	for i := 0; i < 10; i++ {
		typ = List(typ)
	}
	assert.Equal(t, "List(List(List(…)))", a.TypeString(typ))
}

func TestRenderNodeCap(t *testing.T) {
	a := NewArena()
	a.MaxRenderNodes = 3
	assert.Equal(t, "Function(Text)(Function(…)(…))", a.TypeString(Function(Text(), Function(Text(), Text()))))

	// 2^48 nodes when unshared
	var shared Type = Scalar()
	for i := 0; i < 48; i++ {
		shared = Function(shared, shared)
	}
	s := NewArena().TypeString(shared)
	assert.Contains(t, s, "…")
	assert.Less(t, len(s), 8*DefaultMaxRenderNodes*len("Function()()"))
}

func TestLogValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	a := NewArena()
	v := a.NewVar(nil)
	u := a.NewUnitVar(nil)
	logger.Debug("hidden", "type", a.TypeLogValue(List(v)))
	require.NoError(t, a.Bind(v, Text()))
	logger.Info("shown", "type", a.TypeLogValue(List(v)), "unit", a.UnitLogValue(TimesUnit(u, ConstUnit(unitOf(t, "m")))))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "type=List(Text)")
	assert.Contains(t, buf.String(), "unit=m*'u0")
}

func TestReplace(t *testing.T) {
	num := Scalar()
	text := Text()
	left := List(num)
	fn := Function(left, text)

	replaced := Replace(fn, num, Boolean()).(*Cons)
	assert.Equal(t, "Function(List(Boolean))(Text)", TypeString(replaced))
	assert.NotSame(t, fn, replaced)
	assert.Same(t, text, replaced.Operands[1].(TypeOperand).Type)
	assert.Equal(t, "Function(List(Number{}))(Text)", TypeString(fn))

	// Equal but distinct nodes are not replaced.
	assert.Same(t, fn, Replace(fn, Scalar(), Boolean()))
}

func TestArenaUnion(t *testing.T) {
	a := NewArena()
	x, y, z := a.NewVar("x"), a.NewVar(nil), a.NewVar(nil)
	a.Require(x, NewClasses(Equatable))
	a.Require(y, NewClasses(Numeric))

	root, err := a.Union(x, y)
	require.NoError(t, err)
	_, err = a.Union(y, z)
	require.NoError(t, err)

	assert.Equal(t, a.Find(x.ID), a.Find(z.ID))
	assert.Equal(t, root, a.Find(y.ID))
	assert.True(t, a.Required(z).Covers(NewClasses(Equatable, Numeric)))
	assert.Equal(t, "x", a.Origin(z))
	assert.True(t, a.Equal(x, z))

	require.NoError(t, a.Bind(z, Scalar()))
	assert.True(t, a.IsBound(x))
	assert.True(t, a.Equal(x, Scalar()))
	assert.Error(t, a.Bind(y, Text()))
}

func TestArenaSnapshot(t *testing.T) {
	a := NewArena()
	v := a.NewVar(nil)
	u := a.NewUnitVar(nil)
	snap := a.Snapshot()

	require.NoError(t, a.Bind(v, Text()))
	require.NoError(t, a.BindUnit(u, ConstUnit(unitOf(t, "s"))))
	a.NewVar(nil)
	a.Restore(snap)

	assert.False(t, a.IsBound(v))
	assert.False(t, a.IsUnitBound(u))
	assert.Equal(t, 1, a.VarCount())
	assert.Equal(t, 1, a.UnitVarCount())
}

func TestNormalizeUnit(t *testing.T) {
	a := NewArena()
	u := a.NewUnitVar(nil)
	m, s := ConstUnit(unitOf(t, "m")), ConstUnit(unitOf(t, "s"))

	n := a.NormalizeUnit(DivideUnit(RaiseUnit(TimesUnit(m, u), 2), TimesUnit(u, s)))
	assert.Equal(t, "m^2/s", n.Const.String())
	assert.Equal(t, map[UnitVarID]int{u.ID: 1}, n.Vars)

	n = a.NormalizeUnit(DivideUnit(u, u))
	assert.True(t, n.IsScalar())

	_, err := a.ConcreteUnit(u)
	assert.True(t, IsInternal(err))

	require.NoError(t, a.BindUnit(u, DivideUnit(m, s)))
	c, err := a.ConcreteUnit(TimesUnit(u, s))
	require.NoError(t, err)
	assert.Equal(t, "m", c.String())
	assert.True(t, a.UnitEqual(u, DivideUnit(m, s)))
}

func TestDateTimeKindByName(t *testing.T) {
	for _, k := range DateTimeKinds() {
		found, ok := DateTimeKindByName(k.String())
		require.True(t, ok)
		assert.Equal(t, k, found)
	}
	_, ok := DateTimeKindByName("Number")
	assert.False(t, ok)
}
