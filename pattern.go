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
	"errors"

	"github.com/rowpoly/rowpoly/ast"
	"github.com/rowpoly/rowpoly/types"
)

// inferPattern computes the type a pattern matches and extends env with the
// pattern's bindings. The returned environment is a new value; the caller's
// environment is never modified.
func (ti *InferenceContext) inferPattern(env *TypeEnv, p ast.Pattern) (types.Type, *TypeEnv, error) {
	switch p := p.(type) {
	case *ast.PatternVar:
		tv := ti.store.Fresh()
		p.SetType(tv)
		return tv, env.Bind(p.Name, types.MonoScheme(tv)), nil

	case *ast.PatternRecord:
		mb := types.NewTypeMapBuilder()
		patEnv := env
		for _, f := range p.Fields {
			if _, ok := mb.Get(f.Label); ok {
				ti.err = &types.UnsupportedConstructError{Construct: "duplicate field " + f.Label + " in record pattern"}
				return nil, nil, ti.err
			}
			ft, extended, err := ti.inferPattern(patEnv, f.Pattern)
			if err != nil {
				return nil, nil, err
			}
			mb.Set(f.Label, ft)
			patEnv = extended
		}
		// Without a spread the pattern's row is closed, so excess fields in
		// the matched value are a type error.
		var rest types.Type = types.RowEmptyPointer
		if p.Spread != nil {
			tv := ti.store.Fresh()
			rest = tv
			if p.Spread.Name != "" {
				// The rest binding stays a monotype; spread bindings are
				// never generalized. The record wrapper keeps the leftover
				// fields usable as a record within the arm's body while the
				// row variable itself stays shared with the pattern's rest.
				patEnv = patEnv.Bind(p.Spread.Name, types.MonoScheme(&types.Record{Row: tv}))
			}
		}
		rt := &types.Record{Row: rest}
		if mb.Len() > 0 {
			rt.Row = &types.RowExtend{Row: rest, Labels: mb.Build()}
		}
		p.SetType(rt)
		return rt, patEnv, nil
	}

	var patName string
	if p != nil {
		patName = "(" + p.PatternName() + ")"
	} else {
		patName = "(nil)"
	}
	ti.err = errors.New("unhandled pattern " + patName)
	return nil, nil, ti.err
}
