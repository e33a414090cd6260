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

package astutil

import (
	"github.com/wdamron/unitinfer/ast"
	"github.com/wdamron/unitinfer/internal/util"
)

// Dependencies records which of a set of named expressions reference each other.
type Dependencies struct {
	// Graph has an edge from each expression to each expression it references.
	Graph util.Graph
	// Refs lists the referenced expressions of each expression, in order of first reference.
	Refs [][]int
}

// AnalyzeDependencies finds references between named expressions. Identifiers which do not
// name one of the expressions are ignored.
func AnalyzeDependencies(names []string, exprs []ast.Expr) Dependencies {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	d := Dependencies{Graph: util.NewGraph(len(names)), Refs: make([][]int, len(names))}
	for i, e := range exprs {
		for _, name := range ast.FreeIdents(e) {
			if j, ok := index[name]; ok {
				d.Graph.AddEdge(i, j)
				d.Refs[i] = append(d.Refs[i], j)
			}
		}
	}
	return d
}

// Order returns groups of expressions such that each group only references expressions
// in earlier groups or within itself.
func (d Dependencies) Order() [][]int { return d.Graph.DependencyOrder() }

// Cycles returns the groups of expressions which reference themselves.
func (d Dependencies) Cycles() [][]int { return d.Graph.Cycles() }
