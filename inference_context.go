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
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/wdamron/unitinfer/ast"
	"github.com/wdamron/unitinfer/internal/typeutil"
	"github.com/wdamron/unitinfer/styled"
	"github.com/wdamron/unitinfer/types"
	"github.com/wdamron/unitinfer/units"
)

// ErrCheckFailed is returned in place of internal errors by Check.
var ErrCheckFailed = errors.New("type check failed")

// Options configure an InferenceContext.
type Options struct {
	// Logger receives debug output for unification and reports internal errors.
	// When nil, slog.Default is used.
	Logger *slog.Logger
	// MaxRenderDepth caps the nesting depth of types rendered in messages.
	// When zero, types.DefaultMaxRenderDepth is used.
	MaxRenderDepth int
	// MaxRenderNodes caps the number of nodes in types rendered in messages.
	// When zero, types.DefaultMaxRenderNodes is used.
	MaxRenderNodes int
}

// Result is the concrete type of a checked expression.
type Result struct {
	Type types.DataType
	// Unit is the unit of a number, or the scalar unit for other types.
	Unit units.Unit
}

// InferenceContext is a reusable context for type inference. Each call to Infer or Check
// starts a new pass with its own variables.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	opts   Options
	logger *slog.Logger
	pass   uuid.UUID

	arena *types.Arena
	unify *typeutil.Context

	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext { return NewContextWithOptions(Options{}) }

// Create a new type-inference context with options.
func NewContextWithOptions(opts Options) *InferenceContext {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &InferenceContext{opts: opts, logger: logger.With("section", "infer")}
}

func (ti *InferenceContext) reset() {
	ti.pass = uuid.New()
	ti.arena = types.NewArena()
	ti.arena.MaxRenderDepth = ti.opts.MaxRenderDepth
	ti.arena.MaxRenderNodes = ti.opts.MaxRenderNodes
	ti.unify = typeutil.NewContext(ti.arena, ti.opts.Logger)
	ti.unify.Logger = ti.unify.Logger.With("pass", ti.pass.String())
	ti.err, ti.invalid = nil, nil
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Pass returns the id of the most recent inference pass, as logged.
func (ti *InferenceContext) Pass() uuid.UUID { return ti.pass }

// TypeString renders a type inferred by the most recent pass.
func (ti *InferenceContext) TypeString(t types.Type) string { return ti.arena.TypeString(t) }

// Styled renders a type inferred by the most recent pass.
func (ti *InferenceContext) Styled(t types.Type) styled.String { return ti.arena.Styled(t) }

// Infer the type of expr within env. The returned type may contain variables bound within
// the context; render it with TypeString before the next pass.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	ti.reset()
	if expr == nil {
		return nil, errors.New("empty expression")
	}
	t, err := ti.infer(env, expr)
	if err == nil {
		err = ti.unify.CheckRecorded()
		ti.fail(expr, err)
	}
	return t, err
}

// Check infers the type of expr within env and converts it into a concrete type. Internal
// errors are logged and replaced by ErrCheckFailed.
func (ti *InferenceContext) Check(expr ast.Expr, env *TypeEnv) (Result, error) {
	t, err := ti.Infer(expr, env)
	if err == nil {
		c := types.Concretiser{Arena: ti.arena, Tagged: env.TaggedTypes()}
		var dt types.DataType
		if dt, err = c.Concretise(t); err == nil {
			return resultOf(dt), nil
		}
		ti.fail(expr, err)
	}
	if types.IsInternal(err) {
		attrs := []interface{}{"pass", ti.pass.String(), "expr", ast.ExprString(expr)}
		var ue *types.UnresolvedUnitError
		if errors.As(err, &ue) {
			if origin, ok := ue.Origin.(ast.Expr); ok {
				attrs = append(attrs, "origin", ast.ExprString(origin))
			}
		}
		ti.logger.Error("internal error", append(attrs, "error", fmt.Sprintf("%+v", err))...)
		return Result{}, ErrCheckFailed
	}
	return Result{}, err
}

func resultOf(dt types.DataType) Result {
	if n, ok := dt.(*types.NumberType); ok {
		return Result{Type: dt, Unit: n.Unit}
	}
	return Result{Type: dt, Unit: units.Scalar}
}

// fail records the first error of a pass, with the expression it is reported at.
func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	if err == nil {
		return nil
	}
	if ti.err == nil {
		ti.err, ti.invalid = types.WithOrigin(err, e), e
		var te *types.Error
		if errors.As(err, &te) {
			if origin, ok := te.Origin.(ast.Expr); ok {
				ti.invalid = origin
			}
		}
		var ce *types.ConcretisationError
		if errors.As(err, &ce) {
			if origin, ok := ce.Origin.(ast.Expr); ok {
				ti.invalid = origin
			}
		}
		var ue *types.UnresolvedUnitError
		if errors.As(err, &ue) {
			if origin, ok := ue.Origin.(ast.Expr); ok {
				ti.invalid = origin
			}
		}
	}
	return err
}
