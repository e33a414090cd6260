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
	"bufio"
	"io"
	"math/big"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/wdamron/unitinfer/ast"
)

// Parse reads a unit declaration table and builds a store.
//
// The table is line-oriented:
//
//	# comment
//	UNIT m "metre" SUFFIX "m"
//	UNIT km "kilometre" SUFFIX "km" = 1000 * m
//	UNIT USD "US dollar" PREFIX "$"
//	ALIAS metre m
//
// Names may be referenced before they are declared.
func Parse(r io.Reader) (*Store, error) {
	b := NewBuilder()
	if err := ParseInto(b, r); err != nil {
		return nil, err
	}
	return b.Build()
}

// ParseInto reads a unit declaration table into an existing builder.
func ParseInto(b *Builder, r io.Reader) error {
	lines := bufio.NewScanner(r)
	lineNum := 0
	for lines.Scan() {
		lineNum++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p := newLineParser(line, lineNum)
		if err := p.declaration(b); err != nil {
			return err
		}
	}
	return lines.Err()
}

// ParseUnitExpr parses a unit-expression such as `kg*m/s^2`, `1/s` or `(m/s)^2`.
func ParseUnitExpr(s string) (ast.UnitExpr, error) {
	p := newLineParser(s, 0)
	if p.tok == scanner.EOF {
		return &ast.UnitScalar{}, nil
	}
	u, err := p.unitExpr()
	if err != nil {
		return nil, err
	}
	if p.tok != scanner.EOF {
		return nil, p.errorf("unexpected %s after unit", p.text())
	}
	return u, nil
}

// ParseScale parses a positive scale literal: an integer, a decimal or a fraction (`1/100`).
func ParseScale(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok || r.Sign() <= 0 {
		return nil, &ParseError{Msg: "malformed scale: " + s}
	}
	return r, nil
}

type lineParser struct {
	s    scanner.Scanner
	tok  rune
	line int
	err  *ParseError
}

func isUnitRune(ch rune, i int) bool {
	switch {
	case ch == '_' || ch == '°' || ch == '%' || ch == '$' || ch == '£' || ch == '€':
		return true
	case unicode.IsLetter(ch):
		return true
	case unicode.IsDigit(ch):
		return i > 0
	}
	return false
}

func newLineParser(src string, line int) *lineParser {
	p := &lineParser{line: line}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings
	p.s.IsIdentRune = isUnitRune
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = &ParseError{Line: p.line, Msg: msg}
		}
	}
	p.next()
	return p
}

func (p *lineParser) next()        { p.tok = p.s.Scan() }
func (p *lineParser) text() string { return p.s.TokenText() }

func (p *lineParser) errorf(format string, args ...string) *ParseError {
	if p.err != nil {
		return p.err
	}
	msg := format
	for _, a := range args {
		msg = strings.Replace(msg, "%s", strconv.Quote(a), 1)
	}
	return &ParseError{Line: p.line, Msg: msg}
}

func (p *lineParser) expectIdent() (string, error) {
	if p.tok != scanner.Ident {
		return "", p.errorf("expected a name, found %s", p.text())
	}
	name := p.text()
	p.next()
	return name, nil
}

func (p *lineParser) expectString() (string, error) {
	if p.tok != scanner.String {
		return "", p.errorf("expected a quoted string, found %s", p.text())
	}
	s, err := strconv.Unquote(p.text())
	if err != nil {
		return "", p.errorf("malformed string %s", p.text())
	}
	p.next()
	return s, nil
}

func (p *lineParser) declaration(b *Builder) error {
	keyword, err := p.expectIdent()
	if err != nil {
		return err
	}
	switch keyword {
	case "UNIT":
		return p.unitDeclaration(b)
	case "ALIAS":
		newName, err := p.expectIdent()
		if err != nil {
			return err
		}
		origName, err := p.expectIdent()
		if err != nil {
			return err
		}
		if p.tok != scanner.EOF {
			return p.errorf("unexpected %s after alias", p.text())
		}
		if err := b.Alias(newName, origName); err != nil {
			return &ParseError{Line: p.line, Msg: err.Error()}
		}
		return nil
	}
	return p.errorf("expected UNIT or ALIAS, found %s", keyword)
}

func (p *lineParser) unitDeclaration(b *Builder) error {
	name, err := p.expectIdent()
	if err != nil {
		return err
	}
	description, err := p.expectString()
	if err != nil {
		return err
	}
	var prefix, suffix string
	for p.tok == scanner.Ident {
		switch p.text() {
		case "PREFIX":
			p.next()
			if prefix, err = p.expectString(); err != nil {
				return err
			}
		case "SUFFIX":
			p.next()
			if suffix, err = p.expectString(); err != nil {
				return err
			}
		default:
			return p.errorf("unexpected %s in unit declaration", p.text())
		}
	}
	var eq *Equivalent
	if p.tok == '=' {
		p.next()
		if eq, err = p.equivalent(); err != nil {
			return err
		}
	}
	if p.tok != scanner.EOF {
		return p.errorf("unexpected %s at end of unit declaration", p.text())
	}
	if err := b.Declare(name, description, prefix, suffix, eq); err != nil {
		return &ParseError{Line: p.line, Msg: err.Error()}
	}
	return nil
}

// equivalent := scale ['*'] unit | unit
// scale      := number ['/' number]
func (p *lineParser) equivalent() (*Equivalent, error) {
	scale := big.NewRat(1, 1)
	if p.tok == scanner.Int || p.tok == scanner.Float {
		lit := p.text()
		p.next()
		if p.tok == '/' {
			p.next()
			if p.tok != scanner.Int {
				// `1/s` is a unit rather than a scale
				if lit != "1" {
					return nil, p.errorf("malformed scale %s", lit+"/"+p.text())
				}
				den, err := p.single()
				if err != nil {
					return nil, err
				}
				u, err := p.unitExprFrom(&ast.UnitDivide{Left: &ast.UnitScalar{}, Right: den})
				if err != nil {
					return nil, err
				}
				return &Equivalent{Scale: scale, Unit: u}, nil
			}
			lit += "/" + p.text()
			p.next()
		}
		r, ok := new(big.Rat).SetString(lit)
		if !ok || r.Sign() <= 0 {
			return nil, p.errorf("malformed scale %s", lit)
		}
		scale = r
		if p.tok == '*' {
			p.next()
		} else if p.tok == scanner.EOF {
			return nil, p.errorf("expected a unit after scale %s", lit)
		}
	}
	u, err := p.unitExpr()
	if err != nil {
		return nil, err
	}
	return &Equivalent{Scale: scale, Unit: u}, nil
}

// unit   := single (('*'|'/') single)*
// single := (name | '1' | '(' unit ')') ('^' ['-'] integer)?
func (p *lineParser) unitExpr() (ast.UnitExpr, error) {
	left, err := p.single()
	if err != nil {
		return nil, err
	}
	return p.unitExprFrom(left)
}

func (p *lineParser) unitExprFrom(left ast.UnitExpr) (ast.UnitExpr, error) {
	for p.tok == '*' || p.tok == '/' {
		op := p.tok
		p.next()
		right, err := p.single()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			left = &ast.UnitTimes{Left: left, Right: right}
		} else {
			left = &ast.UnitDivide{Left: left, Right: right}
		}
	}
	return left, nil
}

func (p *lineParser) single() (ast.UnitExpr, error) {
	var u ast.UnitExpr
	switch p.tok {
	case scanner.Ident:
		u = &ast.UnitName{Name: p.text()}
		p.next()
	case scanner.Int:
		if p.text() != "1" {
			return nil, p.errorf("unexpected number %s in unit", p.text())
		}
		u = &ast.UnitScalar{}
		p.next()
	case '(':
		p.next()
		inner, err := p.unitExpr()
		if err != nil {
			return nil, err
		}
		if p.tok != ')' {
			return nil, p.errorf("expected ) but found %s", p.text())
		}
		p.next()
		u = inner
	default:
		return nil, p.errorf("expected a unit, found %s", p.text())
	}
	if p.tok != '^' {
		return u, nil
	}
	p.next()
	sign := 1
	if p.tok == '-' {
		sign = -1
		p.next()
	}
	if p.tok != scanner.Int {
		return nil, p.errorf("expected an integer power, found %s", p.text())
	}
	n, err := strconv.Atoi(p.text())
	if err != nil {
		return nil, p.errorf("malformed power %s", p.text())
	}
	p.next()
	return &ast.UnitPower{Base: u, Power: sign * n}, nil
}
