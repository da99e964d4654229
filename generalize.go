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
	"github.com/rowpoly/rowpoly/types"
)

// generalize quantifies the type-variables free in t but not free in env,
// producing the scheme stored for a let-bound name. Quantified variables are
// marked generic in place; variables shared with the environment stay
// unbound and monomorphic.
func (ti *InferenceContext) generalize(env *TypeEnv, t types.Type) *types.Scheme {
	envFree := env.freeVars()
	scheme := &types.Scheme{Type: t}
	generalizeVars(t, envFree, scheme)
	return scheme
}

func generalizeVars(t types.Type, envFree map[int]bool, scheme *types.Scheme) {
	switch t := t.(type) {
	case *types.Var:
		switch {
		case t.IsLinkVar():
			generalizeVars(t.Link(), envFree, scheme)
		case t.IsUnboundVar():
			if envFree[t.Id()] {
				return
			}
			t.SetGeneric()
			scheme.Vars = append(scheme.Vars, t)
		}
		// A variable that is already generic was quantified earlier in this
		// same traversal.

	case *types.Arrow:
		for _, arg := range t.Args {
			generalizeVars(arg, envFree, scheme)
		}
		generalizeVars(t.Return, envFree, scheme)

	case *types.Record:
		generalizeVars(t.Row, envFree, scheme)

	case *types.RowExtend:
		t.Labels.Range(func(label string, ft types.Type) bool {
			generalizeVars(ft, envFree, scheme)
			return true
		})
		generalizeVars(t.Row, envFree, scheme)
	}
}

// typeFreeVars records the ids of unbound type-variables reachable within t,
// resolving bound variables through their links.
func typeFreeVars(t types.Type, free map[int]bool) {
	switch t := t.(type) {
	case *types.Var:
		switch {
		case t.IsLinkVar():
			typeFreeVars(t.Link(), free)
		case t.IsUnboundVar():
			free[t.Id()] = true
		}

	case *types.Arrow:
		for _, arg := range t.Args {
			typeFreeVars(arg, free)
		}
		typeFreeVars(t.Return, free)

	case *types.Record:
		typeFreeVars(t.Row, free)

	case *types.RowExtend:
		t.Labels.Range(func(label string, ft types.Type) bool {
			typeFreeVars(ft, free)
			return true
		})
		typeFreeVars(t.Row, free)
	}
}
