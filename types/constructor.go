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

// ConsKind enumerates the type constructors.
type ConsKind uint8

const (
	KindNumber ConsKind = iota
	KindText
	KindBoolean
	KindDate
	KindList
	KindFunction
	KindTagged
)

// DateTimeKind enumerates the date and time types.
type DateTimeKind uint8

const (
	YearMonthDay DateTimeKind = iota
	YearMonth
	DateTime
	DateTimeZoned
	TimeOfDay
)

var dateTimeNames = [...]string{
	YearMonthDay:  "Date",
	YearMonth:     "DateYM",
	DateTime:      "DateTime",
	DateTimeZoned: "DateTimeZoned",
	TimeOfDay:     "Time",
}

func (k DateTimeKind) String() string {
	if int(k) < len(dateTimeNames) {
		return dateTimeNames[k]
	}
	return "Date?"
}

// DateTimeKindByName finds the date kind for a constructor name. Names which are not
// date kinds return false.
func DateTimeKindByName(name string) (DateTimeKind, bool) {
	for k, n := range dateTimeNames {
		if n == name {
			return DateTimeKind(k), true
		}
	}
	return 0, false
}

// DateTimeKinds returns every date kind.
func DateTimeKinds() []DateTimeKind {
	out := make([]DateTimeKind, len(dateTimeNames))
	for i := range dateTimeNames {
		out[i] = DateTimeKind(i)
	}
	return out
}

// OperandKind distinguishes unit operands from type operands.
type OperandKind uint8

const (
	UnitKind OperandKind = iota
	TypeKind
)

func (k OperandKind) String() string {
	if k == UnitKind {
		return "unit"
	}
	return "type"
}

// Constructor identifies a type constructor. Constructors are comparable.
type Constructor struct {
	Kind ConsKind
	// Date is set for KindDate.
	Date DateTimeKind
	// Tagged is the declared name for KindTagged.
	Tagged string
}

var (
	NumberCons   = Constructor{Kind: KindNumber}
	TextCons     = Constructor{Kind: KindText}
	BooleanCons  = Constructor{Kind: KindBoolean}
	ListCons     = Constructor{Kind: KindList}
	FunctionCons = Constructor{Kind: KindFunction}
)

func DateCons(k DateTimeKind) Constructor { return Constructor{Kind: KindDate, Date: k} }

func TaggedCons(name string) Constructor { return Constructor{Kind: KindTagged, Tagged: name} }

// Name returns the name of the constructor as written in type-expressions.
func (c Constructor) Name() string {
	switch c.Kind {
	case KindNumber:
		return "Number"
	case KindText:
		return "Text"
	case KindBoolean:
		return "Boolean"
	case KindDate:
		return c.Date.String()
	case KindList:
		return "List"
	case KindFunction:
		return "Function"
	}
	return c.Tagged
}

// Signature returns the operand kinds of a built-in constructor. Tagged constructors
// have no fixed signature; their operands are declared with the tagged type.
func (c Constructor) Signature() ([]OperandKind, bool) {
	switch c.Kind {
	case KindNumber:
		return []OperandKind{UnitKind}, true
	case KindText, KindBoolean, KindDate:
		return nil, true
	case KindList:
		return []OperandKind{TypeKind}, true
	case KindFunction:
		return []OperandKind{TypeKind, TypeKind}, true
	}
	return nil, false
}

// Classes returns the capabilities of a built-in constructor. Constructors with type
// operands only derive these capabilities when their operands also support them.
func (c Constructor) Classes() Classes {
	switch c.Kind {
	case KindNumber:
		return NumberClasses
	case KindText, KindBoolean, KindDate:
		return ValueClasses
	case KindList:
		return ListClasses
	case KindFunction:
		return Classes{}
	}
	return DefaultTaggedClasses
}

// BuiltinByName finds a built-in constructor by name.
func BuiltinByName(name string) (Constructor, bool) {
	switch name {
	case "Number":
		return NumberCons, true
	case "Text":
		return TextCons, true
	case "Boolean":
		return BooleanCons, true
	case "List":
		return ListCons, true
	case "Function":
		return FunctionCons, true
	}
	if k, ok := DateTimeKindByName(name); ok {
		return DateCons(k), true
	}
	return Constructor{}, false
}
