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

// unitinfer provides type inference for a spreadsheet expression language whose numbers
// carry physical units.
//
// Types are inferred by unification. Alongside the structural types (numbers, text,
// booleans, dates, lists, functions and user-declared tagged types), every number carries
// a unit which is inferred by solving equations over unit exponents: `1{m} / 2{s}` has the
// type `Number{m/s}`, and `x ^ 2` with `x : Number{@unitvar u}` has the type `Number{u^2}`.
//
// Types may also require capabilities (Equatable, Comparable, Numeric, Readable, Showable),
// which propagate through type operands: a list is comparable when its elements are.
//
// Supported Features:
//
//   * Unit-aware arithmetic, with unit-variables solved across multiple equations
//   * Declarative unit tables, with aliases and scale conversion to base units
//   * Capability requirements, checked when variables are bound
//   * User-declared tagged types with unit and type arguments
//   * Dependency-ordered checking of derived columns which reference each other
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Union-find: https://en.wikipedia.org/wiki/Disjoint-set_data_structure
package unitinfer
