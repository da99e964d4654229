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

func (ti *InferenceContext) infer(env *TypeEnv, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Literal:
		t, err := e.Construct(ti.store)
		if err != nil {
			ti.invalid, ti.err = e, err
			return nil, err
		}
		e.SetType(t)
		return t, nil

	case *ast.Var:
		scheme, ok := env.Lookup(e.Name)
		if !ok {
			ti.invalid, ti.err = e, errors.New("variable "+e.Name+" not found")
			return nil, ti.err
		}
		t := ti.instantiate(scheme)
		e.SetType(t)
		return t, nil

	case *ast.Let:
		if _, isFunc := e.Value.(*ast.Func); !isFunc {
			t, err := ti.infer(env, e.Value)
			if err != nil {
				return nil, err
			}
			return ti.infer(env.Bind(e.Var, ti.generalize(env, t)), e.Body)
		}
		// Allow self-references within function values:
		tv := ti.store.Fresh()
		t, err := ti.infer(env.Bind(e.Var, types.MonoScheme(tv)), e.Value)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(tv, t); err != nil {
			ti.invalid, ti.err = e, err
			return nil, err
		}
		return ti.infer(env.Bind(e.Var, ti.generalize(env, t)), e.Body)

	case *ast.Func:
		args := make([]types.Type, len(e.ArgNames))
		fnEnv := env
		for i, name := range e.ArgNames {
			tv := ti.store.Fresh()
			args[i] = tv
			fnEnv = fnEnv.Bind(name, types.MonoScheme(tv))
		}
		ret, err := ti.infer(fnEnv, e.Body)
		if err != nil {
			return nil, err
		}
		t := &types.Arrow{Args: args, Return: ret}
		e.SetType(t)
		return t, nil

	case *ast.Call:
		ft, err := ti.infer(env, e.Func)
		if err != nil {
			return nil, err
		}
		args, ret, err := ti.matchFuncType(len(e.Args), ft)
		if err != nil {
			ti.invalid, ti.err = e, err
			return nil, err
		}
		for i, arg := range e.Args {
			ta, err := ti.infer(env, arg)
			if err != nil {
				return nil, err
			}
			if err := ti.unify(args[i], ta); err != nil {
				ti.invalid, ti.err = e, err
				return nil, err
			}
		}
		e.SetType(ret)
		return ret, nil

	case *ast.RecordLit:
		if e.Spread != nil {
			ti.invalid, ti.err = e, &types.UnsupportedConstructError{Construct: "spread in record literal"}
			return nil, ti.err
		}
		mb := types.NewTypeMapBuilder()
		for _, label := range e.Labels {
			if _, ok := mb.Get(label.Label); ok {
				ti.invalid, ti.err = e, &types.UnsupportedConstructError{Construct: "duplicate field " + label.Label + " in record literal"}
				return nil, ti.err
			}
			t, err := ti.infer(env, label.Value)
			if err != nil {
				return nil, err
			}
			mb.Set(label.Label, t)
		}
		rt := &types.Record{Row: types.Type(types.RowEmptyPointer)}
		if mb.Len() > 0 {
			rt.Row = &types.RowExtend{Row: types.RowEmptyPointer, Labels: mb.Build()}
		}
		e.SetType(rt)
		return rt, nil

	case *ast.RecordSelect:
		rowType := ti.store.Fresh()
		labelType := ti.store.Fresh()
		labels := types.SingletonTypeMap(e.Label, labelType)
		paramType := &types.Record{Row: &types.RowExtend{Row: rowType, Labels: labels}}
		recordType, err := ti.infer(env, e.Record)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(paramType, recordType); err != nil {
			ti.invalid, ti.err = e, err
			return nil, err
		}
		e.SetType(labelType)
		return labelType, nil

	case *ast.Match:
		if len(e.Cases) == 0 {
			ti.invalid, ti.err = e, errors.New("match with no cases")
			return nil, ti.err
		}
		matchType, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, err
		}
		retType := ti.store.Fresh()
		for i := range e.Cases {
			c := &e.Cases[i]
			patType, caseEnv, err := ti.inferPattern(env, c.Pattern)
			if err != nil {
				return nil, err
			}
			if err := ti.unify(matchType, patType); err != nil {
				ti.invalid, ti.err = e, err
				return nil, err
			}
			t, err := ti.infer(caseEnv, c.Body)
			if err != nil {
				return nil, err
			}
			if err := ti.unify(retType, t); err != nil {
				ti.invalid, ti.err = e, err
				return nil, err
			}
		}
		e.SetType(retType)
		return retType, nil
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	ti.invalid, ti.err = e, errors.New("unhandled expression "+exprName)
	return nil, ti.err
}

// matchFuncType resolves the type of an applied expression to an arrow,
// growing an unbound type-variable into a fresh arrow of the expected arity.
func (ti *InferenceContext) matchFuncType(argc int, t types.Type) (args []types.Type, ret types.Type, err error) {
	switch t := t.(type) {
	case *types.Arrow:
		if len(t.Args) != argc {
			return t.Args, t.Return, errors.New("unexpected number of arguments for applied function")
		}
		return t.Args, t.Return, nil

	case *types.Var:
		switch {
		case t.IsLinkVar():
			return ti.matchFuncType(argc, t.Link())
		case t.IsUnboundVar():
			args = make([]types.Type, argc)
			for i := 0; i < argc; i++ {
				args[i] = ti.store.Fresh()
			}
			ret = ti.store.Fresh()
			t.SetLink(&types.Arrow{Args: args, Return: ret})
			return args, ret, nil
		default:
			return nil, nil, errors.New("type-variable for applied function has not been instantiated")
		}
	}

	return nil, nil, errors.New("unexpected type " + t.TypeName() + " for applied function")
}
