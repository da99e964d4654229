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

import "errors"

// Store is the substitution store: it allocates unification variables with
// unique identities and records their bindings. Variable bindings live on the
// variables themselves; the store guards the binding discipline (a variable
// is bound at most once, and never to a type containing itself).
//
// A store must not be shared by concurrent inference runs. Runs over
// independent expressions which must not observe each other's bindings
// should each use their own store.
type Store struct {
	nextId int
}

// Create an empty substitution store.
func NewStore() *Store { return &Store{} }

// Fresh creates a new unbound type-variable with a unique id.
func (s *Store) Fresh() *Var {
	id := s.nextId
	s.nextId++
	return NewVar(id)
}

// FreshGeneric creates a new generic type-variable with a unique id, for
// pre-declared polymorphic environment entries.
func (s *Store) FreshGeneric() *Var {
	id := s.nextId
	s.nextId++
	return NewGenericVar(id)
}

// Resolve follows bound links until reaching an unbound variable or a
// non-variable type, and returns that terminal value.
func (s *Store) Resolve(t Type) Type { return RealType(t) }

// Bind links tv to t. The variable must be unbound, and tv must not occur
// within t; an occurs-check violation fails with InfiniteTypeError and
// leaves tv unbound.
func (s *Store) Bind(tv *Var, t Type) error {
	if !tv.IsUnboundVar() {
		return errors.New("cannot rebind a type-variable that is not unbound")
	}
	if Occurs(tv, t) {
		return &InfiniteTypeError{Var: tv, Type: t}
	}
	tv.SetLink(t)
	return nil
}

// Occurs reports whether tv occurs within t, resolving bound variables
// through their links during the traversal.
func Occurs(tv *Var, t Type) bool {
	switch t := t.(type) {
	case *Var:
		if t.IsLinkVar() {
			return Occurs(tv, t.Link())
		}
		return t == tv
	case *Arrow:
		for _, arg := range t.Args {
			if Occurs(tv, arg) {
				return true
			}
		}
		return Occurs(tv, t.Return)
	case *Record:
		return Occurs(tv, t.Row)
	case *RowExtend:
		found := false
		t.Labels.Range(func(label string, ft Type) bool {
			found = Occurs(tv, ft)
			return !found
		})
		return found || Occurs(tv, t.Row)
	default:
		return false
	}
}
