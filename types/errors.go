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

import "strings"

// TypeMismatchError reports two types whose shapes disagree and cannot be
// unified. For row mismatches, MissingLabels names the fields at fault in
// sorted order.
type TypeMismatchError struct {
	Expected      Type
	Actual        Type
	MissingLabels []string
}

func (e *TypeMismatchError) Error() string {
	var sb strings.Builder
	sb.WriteString("cannot unify ")
	sb.WriteString(TypeString(e.Expected))
	sb.WriteString(" with ")
	sb.WriteString(TypeString(e.Actual))
	if len(e.MissingLabels) > 0 {
		sb.WriteString(" (missing fields: ")
		sb.WriteString(strings.Join(e.MissingLabels, ", "))
		sb.WriteString(")")
	}
	return sb.String()
}

// InfiniteTypeError reports an occurs-check failure: a type-variable would
// have to be bound to a type containing itself.
type InfiniteTypeError struct {
	Var  *Var
	Type Type
}

func (e *InfiniteTypeError) Error() string {
	return "infinite type: " + TypeString(e.Var) + " occurs within " + TypeString(e.Type)
}

// UnsupportedConstructError reports a structural precondition violation
// detected before any unification is attempted, such as a spread marker in a
// record literal.
type UnsupportedConstructError struct {
	Construct string
}

func (e *UnsupportedConstructError) Error() string {
	return "unsupported construct: " + e.Construct
}
