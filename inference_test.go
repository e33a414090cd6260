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

package unitinfer_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/wdamron/unitinfer"
	. "github.com/wdamron/unitinfer/construct"

	"github.com/wdamron/unitinfer/ast"
	"github.com/wdamron/unitinfer/types"
)

func inferString(t *testing.T, ctx *InferenceContext, env *TypeEnv, expr ast.Expr) string {
	t.Helper()
	ty, err := ctx.Infer(expr, env)
	require.NoError(t, err, ast.ExprString(expr))
	return ctx.TypeString(ty)
}

func requireKind(t *testing.T, err error, kind types.ErrorKind) *types.Error {
	t.Helper()
	var te *types.Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, kind, te.Kind, te.Error())
	return te
}

func TestInferExpressions(t *testing.T) {
	env := NewTypeEnv(nil)
	ctx := NewContext()

	cases := []struct {
		expr ast.Expr
		want string
	}{
		{Add(Num("1"), Num("2")), "Number{}"},
		{Add(NumU("1", U("m")), NumU("2", U("m"))), "Number{m}"},
		{Sub(NumU("1", U("metre")), NumU("2", U("m"))), "Number{m}"},
		{Div(NumU("1", U("m")), NumU("2", U("s"))), "Number{m/s}"},
		{Mul(NumU("3", U("kg")), Pow(NumU("2", U("m")), 2)), "Number{kg*m^2}"},
		{Div(Num("1"), NumU("2", U("s"))), "Number{1/s}"},
		{Mul(NumU("2", UDiv(U("m"), U("s"))), NumU("3", U("s"))), "Number{m}"},
		{Lt(NumU("1", U("m")), NumU("2", U("m"))), "Boolean"},
		{Eq(List(Str("a")), List(Str("b"))), "Boolean"},
		{And(Bool(true), Lt(Num("1"), Num("2"))), "Boolean"},
		{List(Num("1"), Num("2.5")), "List(Number{})"},
		{If(Bool(true), Str("a"), Str("b")), "Text"},
		{As(NumU("1", U("m")), TNumber(U("m"))), "Number{m}"},
		{As(List(), TList(TText())), "List(Text)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, inferString(t, ctx, env, c.expr), ast.ExprString(c.expr))
	}
}

func TestUnitMismatchAtOperator(t *testing.T) {
	env := NewTypeEnv(nil)
	ctx := NewContext()

	expr := Add(NumU("1", U("m")), NumU("2", U("s")))
	_, err := ctx.Check(expr, env)
	te := requireKind(t, err, types.UnitMismatch)
	assert.Equal(t, "unit mismatch: expected {m} found {s}", te.Error())
	assert.Same(t, expr, ctx.InvalidExpr())
	assert.Same(t, expr, te.Origin)
	assert.Equal(t, err, ctx.Error())
}

func TestDeclaredFunctions(t *testing.T) {
	env := NewTypeEnv(nil)
	ctx := NewContext()

	env.Declare("sqrt", TFunc(TNumber(UPow(UVar("u"), 2)), TNumber(UVar("u"))))
	env.Declare("max", TFuncN(TVar("t"), TVar("t"), TVar("t")))
	env.Declare("length", TFunc(TList(TVar("t")), TScalar()))

	// Each use of sqrt has its own unit-variable.
	expr := Mul(Call(Ident("sqrt"), NumU("4", UPow(U("m"), 2))), Call(Ident("sqrt"), NumU("9", UPow(U("s"), 2))))
	assert.Equal(t, "Number{m*s}", inferString(t, ctx, env, expr))

	assert.Equal(t, "Number{m}", inferString(t, ctx, env, Call(Ident("max"), NumU("1", U("m")), NumU("2", U("m")))))
	assert.Equal(t, "Number{}", inferString(t, ctx, env, Call(Ident("length"), List(Str("a")))))

	root := NumU("4", U("m"))
	_, err := ctx.Infer(Call(Ident("sqrt"), root), env)
	te := requireKind(t, err, types.NotDivisible)
	assert.Equal(t, "unit not divisible: {m} has no whole root of degree 2", te.Error())
	assert.Same(t, root, ctx.InvalidExpr())

	arg := Str("x")
	_, err = ctx.Infer(Call(Ident("max"), NumU("1", U("m")), arg), env)
	te = requireKind(t, err, types.Mismatch)
	assert.Equal(t, "type mismatch: expected Number{m} found Text", te.Error())
	assert.Same(t, arg, ctx.InvalidExpr())
}

func TestNestedPolymorphicCalls(t *testing.T) {
	env := NewTypeEnv(nil)
	env.Declare("k", TFuncN(TVar("a"), TVar("a"), TVar("a")))

	// The type of each call holds the type of its argument twice.
	var expr ast.Expr = NumU("1", U("m"))
	for i := 0; i < 64; i++ {
		expr = Call(Ident("k"), expr)
	}

	var logs bytes.Buffer
	ctx := NewContextWithOptions(Options{Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))})
	done := make(chan struct{})
	var (
		rendered string
		res      Result
		err      error
	)
	go func() {
		defer close(done)
		var ty types.Type
		if ty, err = ctx.Infer(expr, env); err != nil {
			return
		}
		rendered = ctx.TypeString(ty)
		res, err = ctx.Check(expr, env)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("checking nested calls did not finish")
	}
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rendered, "Function(Function("), rendered)
	assert.Contains(t, rendered, "…")
	fn, ok := res.Type.(*types.FunctionType)
	require.True(t, ok)
	assert.Same(t, fn.Arg, fn.Result)
	assert.Contains(t, logs.String(), "bound type-variable")
}

func TestInferErrors(t *testing.T) {
	env := NewTypeEnv(nil)
	ctx := NewContext()

	_, err := ctx.Infer(Add(Ident("nope"), Num("1")), env)
	requireKind(t, err, types.UnknownIdentifier)

	_, err = ctx.Infer(NumU("1", U("furlong")), env)
	requireKind(t, err, types.UnknownUnit)

	_, err = ctx.Infer(Num("1.2.3"), env)
	requireKind(t, err, types.InvalidLiteral)

	_, err = ctx.Infer(As(Num("1"), TApp("Nope")), env)
	requireKind(t, err, types.UnknownType)

	_, err = ctx.Infer(As(List(), TApp("List")), env)
	requireKind(t, err, types.Arity)

	_, err = ctx.Infer(As(List(), TApp("List", UArg(U("m")))), env)
	te := requireKind(t, err, types.KindMismatch)
	assert.Equal(t, "List must be of a type, not a unit", te.Error())

	_, err = ctx.Infer(If(Num("1"), Str("a"), Str("b")), env)
	requireKind(t, err, types.Mismatch)

	_, err = ctx.Infer(If(Bool(false), Str("a"), Num("1")), env)
	requireKind(t, err, types.Mismatch)
}

func TestCapabilities(t *testing.T) {
	env := NewTypeEnv(nil)
	ctx := NewContext()
	env.Declare("f", TFunc(TScalar(), TScalar()))
	env.Declare("fs", TList(TFunc(TScalar(), TScalar())))
	env.Declare("x", TVar("t"))

	_, err := ctx.Infer(Lt(Ident("f"), Ident("f")), env)
	requireKind(t, err, types.MissingClasses)

	_, err = ctx.Infer(Add(Str("a"), Str("b")), env)
	te := requireKind(t, err, types.MissingClasses)
	assert.Equal(t, "Text does not support Numeric", te.Error())

	_, err = ctx.Infer(Lt(Ident("fs"), Ident("fs")), env)
	te = requireKind(t, err, types.MissingClasses)
	assert.Equal(t, "Function(Number{})(Number{}) does not support Comparable", te.Error())

	assert.Equal(t, "Boolean", inferString(t, ctx, env, Lt(List(Num("1")), List(Num("2")))))

	// The requirement recorded on the variable is checked when it is bound.
	_, err = ctx.Infer(As(Add(Ident("x"), Ident("x")), TText()), env)
	requireKind(t, err, types.MissingClasses)
	assert.Equal(t, "Number{s}", inferString(t, ctx, env, As(Add(Ident("x"), Ident("x")), TNumber(U("s")))))
}

func TestCheck(t *testing.T) {
	env := NewTypeEnv(nil)
	ctx := NewContext()
	env.DeclareData("d", &types.DateType{Kind: types.YearMonthDay})

	res, err := ctx.Check(Div(NumU("1", U("km")), NumU("2", U("hour"))), env)
	require.NoError(t, err)
	assert.Equal(t, "km/hour", res.Unit.String())
	require.IsType(t, &types.NumberType{}, res.Type)

	res, err = ctx.Check(Lt(Ident("d"), Ident("d")), env)
	require.NoError(t, err)
	assert.Equal(t, &types.BooleanType{}, res.Type)
	assert.True(t, res.Unit.IsScalar())

	_, err = ctx.Check(Add(Ident("d"), Ident("d")), env)
	requireKind(t, err, types.MissingClasses)

	expr := List()
	_, err = ctx.Check(expr, env)
	var ce *types.ConcretisationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, types.Unresolved, ce.Kind)
	assert.Same(t, expr, ctx.InvalidExpr())
}

func TestCheckInternalError(t *testing.T) {
	var logs bytes.Buffer
	env := NewTypeEnv(nil)
	ctx := NewContextWithOptions(Options{Logger: slog.New(slog.NewTextHandler(&logs, nil))})
	env.Declare("zero", TNumber(UVar("u")))

	zero := Ident("zero")
	_, err := ctx.Check(Mul(Num("2"), zero), env)
	require.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, logs.String(), "internal error")
	assert.Contains(t, logs.String(), ctx.Pass().String())
	assert.Contains(t, logs.String(), "origin=zero")
	assert.Same(t, zero, ctx.InvalidExpr())
}

func TestTaggedTypes(t *testing.T) {
	registry := types.NewTaggedRegistry()
	require.NoError(t, registry.Declare(&types.TaggedDecl{
		TypeName:     "Pair",
		ParamKinds:   []types.OperandKind{types.TypeKind, types.UnitKind},
		Capabilities: types.DefaultTaggedClasses,
	}))
	env := NewTypeEnv(nil)
	env.Tagged = registry
	env.Declare("p", TApp("Pair", TArg(TText()), UArg(U("m"))))
	env.Declare("q", TApp("Pair", TArg(TVar("t")), UArg(UVar("u"))))
	ctx := NewContext()

	assert.Equal(t, "Pair(Text){m}", inferString(t, ctx, env, Ident("p")))
	assert.Equal(t, "Boolean", inferString(t, ctx, env, Eq(Ident("p"), Ident("q"))))

	res, err := ctx.Check(If(Bool(true), Ident("p"), Ident("q")), env)
	require.NoError(t, err)
	tagged, ok := res.Type.(*types.TaggedType)
	require.True(t, ok)
	assert.Equal(t, "Pair", tagged.Def.Name())
	assert.Equal(t, "m", tagged.Args[1].(types.UnitArg).Unit.String())

	_, err = ctx.Infer(As(Ident("p"), TApp("Pair", UArg(U("m")), UArg(U("m")))), env)
	requireKind(t, err, types.KindMismatch)

	child := NewTypeEnv(env)
	assert.Equal(t, "Pair(Text){m}", inferString(t, ctx, child, Ident("p")))
}

func TestTypeEnvScopes(t *testing.T) {
	parent := NewTypeEnv(nil)
	parent.Declare("x", TText())
	child := NewTypeEnv(parent)
	child.Declare("x", TScalar())
	ctx := NewContext()

	assert.Equal(t, "Number{}", inferString(t, ctx, child, Ident("x")))
	child.Remove("x")
	assert.Equal(t, "Text", inferString(t, ctx, child, Ident("x")))
	assert.Equal(t, "Text", inferString(t, ctx, parent, Ident("x")))
}
