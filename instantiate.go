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

// instantiate replaces a scheme's quantified variables with fresh unbound
// variables through a structural copy of the scheme's body. Each use site
// receives its own fresh variables, so a row-polymorphic function's leftover
// row is constrained independently at each call site.
func (ti *InferenceContext) instantiate(scheme *types.Scheme) types.Type {
	if len(scheme.Vars) == 0 {
		return scheme.Type
	}
	lookup := make(map[int]*types.Var, len(scheme.Vars))
	for _, tv := range scheme.Vars {
		lookup[tv.Id()] = ti.store.Fresh()
	}
	return instantiateType(scheme.Type, lookup)
}

func instantiateType(t types.Type, lookup map[int]*types.Var) types.Type {
	switch t := t.(type) {
	case *types.Var:
		switch {
		case t.IsLinkVar():
			return instantiateType(t.Link(), lookup)
		case t.IsGenericVar():
			if tv, ok := lookup[t.Id()]; ok {
				return tv
			}
			return t
		default:
			return t
		}

	case *types.Arrow:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = instantiateType(arg, lookup)
		}
		return &types.Arrow{Args: args, Return: instantiateType(t.Return, lookup)}

	case *types.Record:
		return &types.Record{Row: instantiateType(t.Row, lookup)}

	case *types.RowExtend:
		mb := types.NewTypeMapBuilder()
		t.Labels.Range(func(label string, ft types.Type) bool {
			mb.Set(label, instantiateType(ft, lookup))
			return true
		})
		return &types.RowExtend{Row: instantiateType(t.Row, lookup), Labels: mb.Build()}
	}
	return t
}
