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
	"strings"

	"github.com/wdamron/unitinfer/styled"
	"github.com/wdamron/unitinfer/types"
)

// RequireClasses checks that t supports the required capabilities.
//
// Constructor applications must derive the capabilities themselves, and every type
// operand must support them too; unit operands always do. Unbound variables record the
// requirement, which is checked again once they are bound. The error is reported at the
// innermost type which lacks a capability. Shared subtrees are checked once.
func (ctx *Context) RequireClasses(t types.Type, required types.Classes) error {
	if required.IsEmpty() {
		return nil
	}
	return ctx.requireClasses(t, required, make(map[*types.Cons]struct{}))
}

func (ctx *Context) requireClasses(t types.Type, required types.Classes, seen map[*types.Cons]struct{}) error {
	switch t := ctx.Arena.Resolve(t).(type) {
	case *types.Var:
		ctx.Arena.Require(t, required)
		return nil
	case *types.Cons:
		if _, ok := seen[t]; ok {
			return nil
		}
		seen[t] = struct{}{}
		if missing := t.Classes.Missing(required); len(missing) != 0 {
			names := make([]string, len(missing))
			for i, c := range missing {
				names[i] = string(c)
			}
			return types.NewError(types.MissingClasses, t,
				ctx.Arena.Styled(t), styled.Text(" does not support "),
				styled.Styled(strings.Join(names, ", "), styled.Emphasis))
		}
		for _, op := range t.Operands {
			if op, ok := op.(types.TypeOperand); ok {
				if err := ctx.requireClasses(op.Type, required, seen); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// CheckRecorded re-checks every capability requirement recorded on variables which have
// since been bound.
func (ctx *Context) CheckRecorded() error {
	var err error
	ctx.Arena.RangeRequirements(func(v *types.Var, required types.Classes) bool {
		t := ctx.Arena.Resolve(v)
		if _, unbound := t.(*types.Var); unbound {
			return true
		}
		err = types.WithOrigin(ctx.RequireClasses(t, required), ctx.Arena.Origin(v))
		return err == nil
	})
	return err
}
