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

package rowpoly

import (
	"github.com/benbjohnson/immutable"

	"github.com/rowpoly/rowpoly/types"
)

// TypeEnv is a typing context containing mappings from identifiers to
// type-schemes.
//
// A TypeEnv is persistent: Bind and Add return a new environment sharing
// structure with the receiver and leave the receiver unchanged, so extending
// the context for a nested scope never leaks bindings into sibling scopes.
// All environments derived from the same root share one substitution store.
//
// A type-environment cannot be used concurrently for inference; to run
// inference over independent expressions concurrently, create a separate
// root environment (and therefore a separate store) for each run.
type TypeEnv struct {
	store *types.Store
	types *immutable.Map
}

// Create an empty type-environment with a fresh substitution store.
func NewTypeEnv() *TypeEnv {
	return &TypeEnv{store: types.NewStore(), types: immutable.NewMap(nil)}
}

// Store returns the substitution store shared by all environments derived
// from the same root.
func (e *TypeEnv) Store() *types.Store { return e.store }

// Create an unbound type-variable within the environment's store.
func (e *TypeEnv) NewVar() *types.Var { return e.store.Fresh() }

// Create a generic type-variable within the environment's store, for
// declaring polymorphic types.
func (e *TypeEnv) NewGenericVar() *types.Var { return e.store.FreshGeneric() }

// Bind returns a new environment with name mapped to the given scheme.
func (e *TypeEnv) Bind(name string, scheme *types.Scheme) *TypeEnv {
	return &TypeEnv{store: e.store, types: e.types.Set(name, scheme)}
}

// Add returns a new environment with name mapped to a declared type. Generic
// type-variables within t become the quantifiers of the stored scheme.
func (e *TypeEnv) Add(name string, t types.Type) *TypeEnv {
	return e.Bind(name, types.NewScheme(t))
}

// Lookup returns the scheme bound to name, if present.
func (e *TypeEnv) Lookup(name string) (*types.Scheme, bool) {
	v, ok := e.types.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*types.Scheme), true
}

// Len returns the number of bindings in the environment.
func (e *TypeEnv) Len() int { return e.types.Len() }

// freeVars collects the ids of unbound type-variables free within the
// environment's bindings. Variables free in the environment must not be
// quantified during generalization.
func (e *TypeEnv) freeVars() map[int]bool {
	free := make(map[int]bool)
	iter := e.types.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		typeFreeVars(v.(*types.Scheme).Type, free)
	}
	return free
}
