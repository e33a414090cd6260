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

// Package styled provides text with style annotations, for messages and type descriptions which
// are rendered by an editor or a terminal.
package styled

import (
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Style classifies a span of text.
type Style uint8

const (
	Plain Style = iota
	TypeName
	UnitName
	Variable
	Emphasis
	Problem
)

// Span is a run of text with a single style.
type Span struct {
	Text  string
	Style Style
}

// String is an immutable sequence of styled spans.
type String struct {
	spans []Span
}

// Empty is the empty styled string.
var Empty = String{}

// Text returns an unstyled string.
func Text(s string) String { return Styled(s, Plain) }

// Styled returns a string with a single style.
func Styled(s string, style Style) String {
	if s == "" {
		return Empty
	}
	return String{spans: []Span{{Text: s, Style: style}}}
}

// Concat joins styled strings.
func Concat(parts ...String) String {
	var b Builder
	for _, p := range parts {
		b.Append(p)
	}
	return b.String()
}

// Join joins styled strings with an unstyled separator.
func Join(sep string, parts []String) String {
	var b Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString(sep)
		}
		b.Append(p)
	}
	return b.String()
}

// Spans returns the spans of s. Adjacent spans never share a style.
func (s String) Spans() []Span {
	out := make([]Span, len(s.spans))
	copy(out, s.spans)
	return out
}

// IsEmpty returns true if s contains no text.
func (s String) IsEmpty() bool { return len(s.spans) == 0 }

// String returns the text of s without styling.
func (s String) String() string {
	if len(s.spans) == 1 {
		return s.spans[0].Text
	}
	var sb strings.Builder
	for _, sp := range s.spans {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

var ansiStyles = map[Style]*color.Color{
	TypeName: color.New(color.FgCyan),
	UnitName: color.New(color.FgGreen),
	Variable: color.New(color.FgMagenta, color.Italic),
	Emphasis: color.New(color.Bold),
	Problem:  color.New(color.FgRed, color.Bold),
}

func init() {
	for _, c := range ansiStyles {
		c.EnableColor()
	}
}

// ANSI renders s with ANSI terminal escapes.
func (s String) ANSI() string {
	var sb strings.Builder
	for _, sp := range s.spans {
		if c, ok := ansiStyles[sp.Style]; ok {
			sb.WriteString(c.Sprint(sp.Text))
		} else {
			sb.WriteString(sp.Text)
		}
	}
	return sb.String()
}

// Render renders s with ANSI escapes when colored is true, or as plain text otherwise.
func (s String) Render(colored bool) string {
	if colored {
		return s.ANSI()
	}
	return s.String()
}

// Terminal reports whether fd is a terminal which should receive colored output.
func Terminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Builder accumulates styled text. The zero value is ready to use.
type Builder struct {
	spans []Span
}

// Write appends text with a style, merging with the previous span when the styles match.
func (b *Builder) Write(text string, style Style) {
	if text == "" {
		return
	}
	if n := len(b.spans); n > 0 && b.spans[n-1].Style == style {
		b.spans[n-1].Text += text
		return
	}
	b.spans = append(b.spans, Span{Text: text, Style: style})
}

// WriteString appends unstyled text.
func (b *Builder) WriteString(text string) { b.Write(text, Plain) }

// Append appends a styled string.
func (b *Builder) Append(s String) {
	for _, sp := range s.spans {
		b.Write(sp.Text, sp.Style)
	}
}

// Len returns the number of bytes of text written.
func (b *Builder) Len() int {
	n := 0
	for _, sp := range b.spans {
		n += len(sp.Text)
	}
	return n
}

// String returns the accumulated text. The builder may be reused after Reset.
func (b *Builder) String() String {
	if len(b.spans) == 0 {
		return Empty
	}
	out := make([]Span, len(b.spans))
	copy(out, b.spans)
	return String{spans: out}
}

// Reset clears the builder.
func (b *Builder) Reset() { b.spans = b.spans[:0] }
