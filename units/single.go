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
	"math/big"
)

// SingleUnit is a named unit, such as a metre or a US dollar. Single units are
// identified by name.
type SingleUnit struct {
	Name        string
	Description string
	// Prefix and Suffix are used when displaying values: `$1.50`, `1.50m`.
	Prefix string
	Suffix string
}

func (u *SingleUnit) String() string { return u.Name }

// Equivalence defines a unit in terms of another: 1 unit = Scale * Unit.
type Equivalence struct {
	Scale *big.Rat
	Unit  Unit
}

// Declaration is a declared unit, its optional equivalence and the aliases which refer to it.
type Declaration struct {
	Unit       *SingleUnit
	Equivalent *Equivalence
	aliases    []string
}

// Aliases returns the alternative names of the declared unit.
func (d *Declaration) Aliases() []string {
	out := make([]string, len(d.aliases))
	copy(out, d.aliases)
	return out
}
