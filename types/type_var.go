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

// VarType indicates whether a type-variable is unbound, linked, or generic.
type VarType int8

const (
	// Unbound type-variable
	UnboundVar VarType = iota
	// Linked type-variable
	LinkVar
	// Generic type-variable, quantified by a Scheme
	GenericVar
)

// Var is a mutable unification variable. Identity matters: two variables are
// equal only if they are the same variable. A variable transitions from
// unbound to linked exactly once; resolution follows chains of links to the
// representative type.
type Var struct {
	link Type
	id   int32
	kind VarType
}

// Create a new unbound type-variable with the given id.
func NewVar(id int) *Var {
	return &Var{id: int32(id)}
}

// Create a new generic type-variable with the given id.
func NewGenericVar(id int) *Var {
	return &Var{id: int32(id), kind: GenericVar}
}

// VarType indicates whether the type-variable is unbound, linked, or generic.
func (tv *Var) VarType() VarType { return tv.kind }

// Id returns the unique identifier of the type-variable.
func (tv *Var) Id() int { return int(tv.id) }

// Link returns the type which the type-variable is bound to, if the
// type-variable is bound.
func (tv *Var) Link() Type { return tv.link }

func (tv *Var) IsUnboundVar() bool { return tv.kind == UnboundVar }
func (tv *Var) IsLinkVar() bool    { return tv.kind == LinkVar }
func (tv *Var) IsGenericVar() bool { return tv.kind == GenericVar }

// SetLink binds the type-variable to t. Bindings are permanent; callers must
// ensure the variable is currently unbound and that the occurs check has
// passed (see Store.Bind).
func (tv *Var) SetLink(t Type) { tv.link, tv.kind = t, LinkVar }

// SetGeneric marks the type-variable as quantified by a scheme.
func (tv *Var) SetGeneric() { tv.kind = GenericVar }
