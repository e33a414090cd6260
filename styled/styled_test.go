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

package styled

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcatMergesSpans(t *testing.T) {
	s := Concat(Text("type mismatch: "), Styled("Number", TypeName), Styled("{m}", TypeName), Text(""), Text(" vs "))
	assert.Equal(t, "type mismatch: Number{m} vs ", s.String())
	assert.Equal(t, []Span{
		{Text: "type mismatch: ", Style: Plain},
		{Text: "Number{m}", Style: TypeName},
		{Text: " vs ", Style: Plain},
	}, s.Spans())
	assert.True(t, Text("").IsEmpty())
}

func TestJoin(t *testing.T) {
	s := Join(", ", []String{Styled("Equatable", Emphasis), Styled("Comparable", Emphasis)})
	assert.Equal(t, "Equatable, Comparable", s.String())
	assert.Len(t, s.Spans(), 3)
}

func TestRender(t *testing.T) {
	s := Concat(Text("bad: "), Styled("Text", Problem))
	assert.Equal(t, "bad: Text", s.Render(false))
	ansi := s.Render(true)
	assert.Contains(t, ansi, "\x1b[")
	assert.Contains(t, ansi, "Text")

	// Tests do not run with a terminal on stdin in CI, but either answer is valid:
	_ = Terminal(os.Stdin.Fd())
}

func TestBuilderReuse(t *testing.T) {
	var b Builder
	b.Write("a", Variable)
	first := b.String()
	b.Reset()
	b.WriteString("b")
	assert.Equal(t, "a", first.String())
	assert.Equal(t, "b", b.String().String())
	assert.Equal(t, 1, b.Len())
}
