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
	"io"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// UnitsFile is the YAML form of user-declared units:
//
//	units:
//	  - name: furlong
//	    description: furlong
//	    scale: "201.168"
//	    equivalent: m
//	aliases:
//	  furlongs: furlong
type UnitsFile struct {
	Units   []UnitSpec        `yaml:"units"`
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// UnitSpec declares a single unit within a UnitsFile.
type UnitSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Prefix      string `yaml:"prefix,omitempty"`
	Suffix      string `yaml:"suffix,omitempty"`
	// Scale defaults to 1 when Equivalent is set.
	Scale      string `yaml:"scale,omitempty"`
	Equivalent string `yaml:"equivalent,omitempty"`
}

// LoadYAML reads user-declared units from YAML into b.
func LoadYAML(b *Builder, r io.Reader) error {
	var f UnitsFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return &ParseError{Msg: "malformed units file: " + err.Error()}
	}
	for _, spec := range f.Units {
		var eq *Equivalent
		if spec.Equivalent != "" {
			u, err := ParseUnitExpr(spec.Equivalent)
			if err != nil {
				return err
			}
			eq = &Equivalent{Unit: u}
			if spec.Scale != "" {
				if eq.Scale, err = ParseScale(spec.Scale); err != nil {
					return err
				}
			}
		} else if spec.Scale != "" {
			return &DeclarationError{Name: spec.Name, Msg: "scale without an equivalent unit"}
		}
		if err := b.Declare(spec.Name, spec.Description, spec.Prefix, spec.Suffix, eq); err != nil {
			return err
		}
	}
	names := make([]string, 0, len(f.Aliases))
	for name := range f.Aliases {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := b.Alias(name, f.Aliases[name]); err != nil {
			return err
		}
	}
	return nil
}
