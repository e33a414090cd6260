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
	"log/slog"

	"github.com/wdamron/unitinfer/types"
)

// Context holds the unification state of a single check pass.
type Context struct {
	Arena  *types.Arena
	Logger *slog.Logger

	// unit equations which could not yet be solved, normalized to `eq = 1`
	pending []types.LinearUnit
}

// NewContext creates a unification context over an arena. A nil logger discards debug
// output through slog.Default.
func NewContext(arena *types.Arena, logger *slog.Logger) *Context {
	if arena == nil {
		arena = types.NewArena()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{Arena: arena, Logger: logger.With("section", "unify")}
}

// Reset discards pending unit equations. The arena is not reset.
func (ctx *Context) Reset() { ctx.pending = nil }

// Pending returns the number of deferred unit equations.
func (ctx *Context) Pending() int { return len(ctx.pending) }

// Txn records the state of a context before speculative unification.
type Txn struct {
	snapshot types.Snapshot
	pending  []types.LinearUnit
}

// Begin records the current state for a later Rollback.
func (ctx *Context) Begin() Txn {
	return Txn{snapshot: ctx.Arena.Snapshot(), pending: append([]types.LinearUnit(nil), ctx.pending...)}
}

// Rollback restores the state recorded by Begin.
func (ctx *Context) Rollback(txn Txn) {
	ctx.Arena.Restore(txn.snapshot)
	ctx.pending = txn.pending
}

// CanUnify returns true if a and b can be unified, without binding any variables.
func (ctx *Context) CanUnify(a, b types.Type) bool {
	txn := ctx.Begin()
	_, err := ctx.Unify(a, b)
	ctx.Rollback(txn)
	return err == nil
}

// TryUnify unifies a and b, undoing any bindings if unification fails.
func (ctx *Context) TryUnify(a, b types.Type) (types.Type, error) {
	txn := ctx.Begin()
	t, err := ctx.Unify(a, b)
	if err != nil {
		ctx.Rollback(txn)
		return nil, err
	}
	return t, nil
}
