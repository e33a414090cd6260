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
	"log/slog"
	"strconv"
	"sync"

	"github.com/wdamron/unitinfer/styled"
	"github.com/wdamron/unitinfer/units"
)

// DefaultMaxRenderDepth is the depth at which nested types are elided.
const DefaultMaxRenderDepth = 32

// DefaultMaxRenderNodes is the number of constructor applications and variables rendered
// before the rest of a type is elided. Types which share subtrees may have exponentially
// many nodes at a small depth.
const DefaultMaxRenderNodes = 256

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

type typePrinter struct {
	sb       styled.Builder
	arena    *Arena
	maxDepth int
	budget   int
}

func newTypePrinter(a *Arena) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.arena = a
	p.maxDepth, p.budget = DefaultMaxRenderDepth, DefaultMaxRenderNodes
	if a != nil && a.MaxRenderDepth > 0 {
		p.maxDepth = a.MaxRenderDepth
	}
	if a != nil && a.MaxRenderNodes > 0 {
		p.budget = a.MaxRenderNodes
	}
	return p
}

func (p *typePrinter) Release() {
	p.sb.Reset()
	p.arena = nil
	printerPool.Put(p)
}

// Styled renders t with variable bindings substituted, in the form shown to users in
// editors and messages: the constructor name followed by its operands, units in braces
// and types in parentheses, e.g. `Number{m}`, `List(Text)`, `Function(Number{})(Boolean)`.
// Unbound type-variables render as `'_N`. Nesting deeper than MaxRenderDepth, and nodes
// beyond MaxRenderNodes, render as `…`.
func (a *Arena) Styled(t Type) styled.String {
	p := newTypePrinter(a)
	p.typ(t, 0)
	s := p.sb.String()
	p.Release()
	return s
}

// TypeString renders t as plain text.
func (a *Arena) TypeString(t Type) string { return a.Styled(t).String() }

// UnitStyled renders u with unit-variable bindings substituted. Unbound unit-variables
// render as `'uN`; the scalar unit renders as an empty string.
func (a *Arena) UnitStyled(u UnitExp) styled.String {
	p := newTypePrinter(a)
	p.unit(u)
	s := p.sb.String()
	p.Release()
	return s
}

// UnitString renders u as plain text.
func (a *Arena) UnitString(u UnitExp) string { return a.UnitStyled(u).String() }

// TypeString renders t without variable bindings.
func TypeString(t Type) string { return (*Arena)(nil).TypeString(t) }

// TypeLogValue returns a log value which renders t when a log record is handled, so
// disabled log levels never render types.
func (a *Arena) TypeLogValue(t Type) slog.LogValuer { return typeLogValue{a, t} }

// UnitLogValue returns a log value which renders u when a log record is handled.
func (a *Arena) UnitLogValue(u UnitExp) slog.LogValuer { return unitLogValue{a, u} }

type typeLogValue struct {
	arena *Arena
	typ   Type
}

func (v typeLogValue) LogValue() slog.Value { return slog.StringValue(v.arena.TypeString(v.typ)) }

type unitLogValue struct {
	arena *Arena
	unit  UnitExp
}

func (v unitLogValue) LogValue() slog.Value { return slog.StringValue(v.arena.UnitString(v.unit)) }

func (p *typePrinter) typ(t Type, depth int) {
	if depth >= p.maxDepth || p.budget <= 0 {
		p.sb.Write("…", styled.Emphasis)
		return
	}
	p.budget--
	switch t := p.arena.Resolve(t).(type) {
	case *Var:
		p.sb.Write("'_"+strconv.Itoa(int(t.ID)), styled.Variable)
	case *Invalid:
		p.sb.Write("<invalid>", styled.Problem)
	case *Cons:
		p.sb.Write(t.Ctor.Name(), styled.TypeName)
		for _, op := range t.Operands {
			switch op := op.(type) {
			case UnitOperand:
				p.sb.WriteString("{")
				p.unit(op.Unit)
				p.sb.WriteString("}")
			case TypeOperand:
				p.sb.WriteString("(")
				p.typ(op.Type, depth+1)
				p.sb.WriteString(")")
			}
		}
	case nil:
		p.sb.Write("<nil>", styled.Problem)
	}
}

type unitFactor struct {
	name  string
	style styled.Style
	power int
}

func (p *typePrinter) unit(u UnitExp) {
	n := p.arena.NormalizeUnit(u)
	var num, den []unitFactor
	add := func(f unitFactor) {
		if f.power > 0 {
			num = append(num, f)
		} else {
			f.power = -f.power
			den = append(den, f)
		}
	}
	n.Const.Range(func(f units.Factor) bool {
		add(unitFactor{name: f.Unit.Name, style: styled.UnitName, power: f.Power})
		return true
	})
	for _, id := range n.VarIDs() {
		add(unitFactor{name: "'u" + strconv.Itoa(int(id)), style: styled.Variable, power: n.Vars[id]})
	}
	p.factors(num)
	if len(den) == 0 {
		return
	}
	if len(num) == 0 {
		p.sb.WriteString("1")
	}
	p.sb.WriteString("/")
	if len(den) > 1 {
		p.sb.WriteString("(")
	}
	p.factors(den)
	if len(den) > 1 {
		p.sb.WriteString(")")
	}
}

func (p *typePrinter) factors(fs []unitFactor) {
	for i, f := range fs {
		if i > 0 {
			p.sb.WriteString("*")
		}
		p.sb.Write(f.name, f.style)
		if f.power != 1 {
			p.sb.WriteString("^" + strconv.Itoa(f.power))
		}
	}
}
