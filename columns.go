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
	"strings"

	"github.com/wdamron/unitinfer/ast"
	"github.com/wdamron/unitinfer/internal/astutil"
)

// Column is a derived column of a table, computed by an expression which may reference
// other columns by name.
type Column struct {
	Name string
	Expr ast.Expr
}

// ColumnResult is the outcome of checking one column.
type ColumnResult struct {
	Name   string
	Result Result
	Err    error
	// Invalid is the expression the error is reported at, when available.
	Invalid ast.Expr
}

// CycleError reports columns which depend on themselves.
type CycleError struct {
	Columns []string
}

func (e *CycleError) Error() string {
	return "columns depend on each other: " + strings.Join(e.Columns, ", ")
}

// DependencyError reports a column which references a column that failed to check.
type DependencyError struct {
	Column     string
	Dependency string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("column %s depends on column %s, which has errors", e.Column, e.Dependency)
}

// CheckColumns checks derived columns which may reference each other. Columns are checked
// in dependency order, and the concrete type of each column is visible to the columns
// which reference it. A failure only affects the failing column and the columns which
// depend on it. Results are returned in the order of cols.
func (ti *InferenceContext) CheckColumns(env *TypeEnv, cols []Column) []ColumnResult {
	names, exprs := make([]string, len(cols)), make([]ast.Expr, len(cols))
	for i, c := range cols {
		names[i], exprs[i] = c.Name, c.Expr
	}
	deps := astutil.AnalyzeDependencies(names, exprs)

	results := make([]ColumnResult, len(cols))
	failed := make([]bool, len(cols))
	for i, c := range cols {
		results[i].Name = c.Name
	}
	for _, cycle := range deps.Cycles() {
		cycleNames := make([]string, len(cycle))
		for k, i := range cycle {
			cycleNames[k] = cols[i].Name
		}
		for _, i := range cycle {
			results[i].Err, failed[i] = &CycleError{Columns: cycleNames}, true
		}
	}

	scope := NewTypeEnv(env)
	for _, scc := range deps.Order() {
		for _, i := range scc {
			if failed[i] {
				continue
			}
			if dep, ok := firstFailed(deps.Refs[i], failed); ok {
				results[i].Err = &DependencyError{Column: cols[i].Name, Dependency: cols[dep].Name}
				failed[i] = true
				continue
			}
			res, err := ti.Check(cols[i].Expr, scope)
			if err != nil {
				results[i].Err, results[i].Invalid = err, ti.InvalidExpr()
				failed[i] = true
				ti.logger.Debug("column failed", "pass", ti.pass.String(), "column", cols[i].Name, "error", err)
				continue
			}
			results[i].Result = res
			scope.DeclareData(cols[i].Name, res.Type)
		}
	}
	return results
}

func firstFailed(deps []int, failed []bool) (int, bool) {
	for _, j := range deps {
		if failed[j] {
			return j, true
		}
	}
	return 0, false
}
