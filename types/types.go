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

// Type is the base interface for all monotypes.
type Type interface {
	TypeName() string
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*Const)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*Record)(nil)
	_ Type = (*RowExtend)(nil)
	_ Type = (*RowEmpty)(nil)
)

func (t *Var) TypeName() string       { return "Var" }
func (t *Const) TypeName() string     { return "Const" }
func (t *Arrow) TypeName() string     { return "Arrow" }
func (t *Record) TypeName() string    { return "Record" }
func (t *RowExtend) TypeName() string { return "RowExtend" }
func (t *RowEmpty) TypeName() string  { return "RowEmpty" }

// Type constant: `int` or `bool`
type Const struct {
	Name string
}

// Function type: `(int, int) -> int`
type Arrow struct {
	Args   []Type
	Return Type
}

// Record type: `{...}`
type Record struct {
	Row Type
}

// Row extension: `{a : _ , b : _ | ...}`
//
// The rest of a row extension may itself be a row extension before
// flattening; FlattenRow produces the canonical (labels, rest) form.
type RowExtend struct {
	Row    Type
	Labels TypeMap
}

// Empty row: the terminal marker for a record with no further fields.
type RowEmpty struct{}

// RowEmptyPointer is the shared instance of the empty row.
var RowEmptyPointer = &RowEmpty{}

// Scheme is a polytype: a set of quantified type-variables along with a
// monotype body. Quantified variables are marked generic and must be
// replaced with fresh variables (instantiated) before each use of the body.
type Scheme struct {
	Vars []*Var
	Type Type
}

// NewScheme builds a scheme quantifying the generic type-variables which
// occur within t. A type without generic variables produces a monomorphic
// scheme.
func NewScheme(t Type) *Scheme {
	s := &Scheme{Type: t}
	collectGenericVars(t, s)
	return s
}

// MonoScheme wraps a monotype as a scheme with no quantified variables.
// Pattern-bound names are stored this way, so their types stay linked to
// the surrounding inference run.
func MonoScheme(t Type) *Scheme { return &Scheme{Type: t} }

func collectGenericVars(t Type, s *Scheme) {
	switch t := t.(type) {
	case *Var:
		switch {
		case t.IsLinkVar():
			collectGenericVars(t.Link(), s)
		case t.IsGenericVar():
			for _, existing := range s.Vars {
				if existing == t {
					return
				}
			}
			s.Vars = append(s.Vars, t)
		}
	case *Arrow:
		for _, arg := range t.Args {
			collectGenericVars(arg, s)
		}
		collectGenericVars(t.Return, s)
	case *Record:
		collectGenericVars(t.Row, s)
	case *RowExtend:
		t.Labels.Range(func(label string, ft Type) bool {
			collectGenericVars(ft, s)
			return true
		})
		collectGenericVars(t.Row, s)
	}
}

// RealType returns the representative type for a chain of linked
// type-variables, when applicable.
func RealType(t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok {
			return t
		}
		if !tv.IsLinkVar() {
			return t
		}
		t = tv.Link()
	}
}
