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
	"strconv"

	"github.com/wdamron/unitinfer/styled"
	"github.com/wdamron/unitinfer/units"
)

// Concretiser converts inferred types into data types once a check pass has finished.
type Concretiser struct {
	Arena *Arena
	// Tagged resolves constructor names which are not built-in. May be nil.
	Tagged TaggedLookup

	// data types of constructor applications already converted, shared like the inferred types
	done map[*Cons]DataType
}

// Concretise converts t into a data type. User-facing failures are returned as
// *ConcretisationError; unresolved unit-variables are internal errors.
func (c *Concretiser) Concretise(t Type) (DataType, error) {
	switch t := c.Arena.Resolve(t).(type) {
	case *Var:
		return nil, c.fail(Unresolved, t, styled.Text("could not determine the type"))
	case *Invalid:
		return nil, c.fail(Unresolved, t, styled.Text("invalid type: "+t.Reason))
	case *Cons:
		if dt, ok := c.done[t]; ok {
			return dt, nil
		}
		dt, err := c.cons(t)
		if err != nil {
			return nil, err
		}
		if c.done == nil {
			c.done = make(map[*Cons]DataType)
		}
		c.done[t] = dt
		return dt, nil
	}
	return nil, Internalf("unexpected type %T", t)
}

func (c *Concretiser) cons(t *Cons) (DataType, error) {
	switch t.Ctor.Kind {
	case KindNumber:
		u, err := c.unitOperand(t, 0)
		if err != nil {
			return nil, err
		}
		return &NumberType{Unit: u}, nil
	case KindText:
		return &TextType{}, nil
	case KindBoolean:
		return &BooleanType{}, nil
	case KindDate:
		return &DateType{Kind: t.Ctor.Date}, nil
	case KindList:
		elem, err := c.typeOperand(t, 0)
		if err != nil {
			return nil, err
		}
		return &ListType{Elem: elem}, nil
	case KindFunction:
		arg, err := c.typeOperand(t, 0)
		if err != nil {
			return nil, err
		}
		res, err := c.typeOperand(t, 1)
		if err != nil {
			return nil, err
		}
		return &FunctionType{Arg: arg, Result: res}, nil
	}
	return c.tagged(t)
}

func (c *Concretiser) tagged(t *Cons) (DataType, error) {
	name := t.Ctor.Tagged
	if k, ok := DateTimeKindByName(name); ok && len(t.Operands) == 0 {
		return &DateType{Kind: k}, nil
	}
	var found TaggedDefinition
	ok := false
	if c.Tagged != nil {
		found, ok = c.Tagged.LookupTagged(name)
	}
	if !ok {
		return nil, c.fail(UnknownType, t, styled.Text("unknown type: "), styled.Styled(name, styled.TypeName))
	}
	params := found.Params()
	if len(params) != len(t.Operands) {
		return nil, c.fail(Arity, t, styled.Styled(name, styled.TypeName), styled.Text(" expects "+strconv.Itoa(len(params))+" arguments, given "+strconv.Itoa(len(t.Operands))))
	}
	args := make([]ConcreteArg, len(t.Operands))
	for i := range t.Operands {
		if params[i] == UnitKind {
			u, err := c.unitOperand(t, i)
			if err != nil {
				return nil, err
			}
			args[i] = UnitArg{Unit: u}
			continue
		}
		dt, err := c.typeOperand(t, i)
		if err != nil {
			return nil, err
		}
		args[i] = TypeArg{Type: dt}
	}
	return found.Instantiate(args)
}

func (c *Concretiser) unitOperand(t *Cons, i int) (units.Unit, error) {
	if i >= len(t.Operands) {
		return units.Scalar, Internalf("%s is missing operand %d", t.Ctor.Name(), i)
	}
	op, ok := t.Operands[i].(UnitOperand)
	if !ok {
		return units.Scalar, c.fail(KindMismatch, t, styled.Styled(t.Ctor.Name(), styled.TypeName), styled.Text(" must be of a unit, not a type"))
	}
	return c.Arena.ConcreteUnit(op.Unit)
}

func (c *Concretiser) typeOperand(t *Cons, i int) (DataType, error) {
	if i >= len(t.Operands) {
		return nil, Internalf("%s is missing operand %d", t.Ctor.Name(), i)
	}
	op, ok := t.Operands[i].(TypeOperand)
	if !ok {
		return nil, c.fail(KindMismatch, t, styled.Styled(t.Ctor.Name(), styled.TypeName), styled.Text(" must be of a type, not a unit"))
	}
	return c.Concretise(op.Type)
}

func (c *Concretiser) fail(kind ErrorKind, subject Type, parts ...styled.String) error {
	err := &ConcretisationError{Kind: kind, Message: styled.Concat(parts...), Subject: subject}
	if v, ok := subject.(*Var); ok && c.Arena != nil {
		err.Origin = c.Arena.Origin(v)
	}
	return err
}
