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
	"fmt"

	"github.com/rowpoly/rowpoly/types"
)

// Unify makes a and b permanently equal within env's substitution store, or
// fails with a structured type error. Like all unification in this package
// it is destructive: bindings committed before a failure are not rolled back.
func (ti *InferenceContext) Unify(a, b types.Type, env *TypeEnv) error {
	ti.store, ti.err, ti.invalid = env.Store(), nil, nil
	if err := ti.unify(a, b); err != nil {
		ti.err = err
		return err
	}
	return nil
}

// unify makes a and b permanently equal through shared bindings, or fails
// with a structured type error. Unification is destructive: bindings
// committed before a failing sub-unification are not rolled back.
func (ti *InferenceContext) unify(a, b types.Type) error {
	a, b = types.RealType(a), types.RealType(b)
	if a == b {
		return nil
	}

	// unify type-variables:

	avar, _ := a.(*types.Var)
	bvar, _ := b.(*types.Var)
	switch {
	case avar == nil && bvar != nil:
		return ti.unify(b, a)

	case avar != nil:
		if avar.IsGenericVar() {
			return errors.New("generic type-variable was not instantiated before unification")
		}
		return ti.store.Bind(avar, b)
	}

	// unify types:

	switch a := a.(type) {
	case *types.Const:
		if b, ok := b.(*types.Const); ok && a.Name == b.Name {
			return nil
		}

	case *types.Arrow:
		b, ok := b.(*types.Arrow)
		if !ok {
			break
		}
		if len(a.Args) != len(b.Args) {
			return &types.TypeMismatchError{Expected: a, Actual: b}
		}
		for i := range a.Args {
			if err := ti.unify(a.Args[i], b.Args[i]); err != nil {
				return err
			}
		}
		return ti.unify(a.Return, b.Return)

	case *types.Record:
		if b, ok := b.(*types.Record); ok {
			return ti.unify(a.Row, b.Row)
		}

	case *types.RowExtend:
		switch b := b.(type) {
		case *types.RowExtend:
			return ti.unifyRows(a, b)
		case *types.RowEmpty:
			return closedRowMismatch(b, a)
		}

	case *types.RowEmpty:
		switch b := b.(type) {
		case *types.RowEmpty:
			return nil
		case *types.RowExtend:
			return closedRowMismatch(a, b)
		}
	}

	return &types.TypeMismatchError{Expected: a, Actual: b}
}

// closedRowMismatch reports a closed row refusing the fields of a row
// extension, naming the offending fields in sorted order.
func closedRowMismatch(closed *types.RowEmpty, row *types.RowExtend) error {
	labels, _, err := types.FlattenRow(row)
	if err != nil {
		return err
	}
	return &types.TypeMismatchError{Expected: closed, Actual: row, MissingLabels: labels.Labels()}
}

// unifyRows reconciles the field sets of two rows. Shared fields are unified
// pairwise in sorted label order; a side missing fields grows through its
// rest; when both sides have fields the other lacks, the leftover structure
// of both is linked through one fresh shared rest variable, so any later
// extension discovered through one side is visible through the other.
func (ti *InferenceContext) unifyRows(a, b types.Type) error {
	ma, ra, err := types.FlattenRow(a)
	if err != nil {
		return err
	}
	mb, rb, err := types.FlattenRow(b)
	if err != nil {
		return err
	}

	// labels missing from ma/mb
	xa, xb := types.NewTypeMapBuilder(), types.NewTypeMapBuilder()
	ia := ma.Iterator()
	for !ia.Done() {
		la, va := ia.Next()
		if _, ok := mb.Get(la); !ok {
			xb.Set(la, va)
		}
	}
	ib := mb.Iterator()
	for !ib.Done() {
		lb, vb := ib.Next()
		va, ok := ma.Get(lb)
		if !ok {
			xa.Set(lb, vb)
			continue
		}
		if err := ti.unify(va, vb); err != nil {
			return fmt.Errorf("record field %s: %w", lb, err)
		}
	}

	za, zb := xa.Len() == 0, xb.Len() == 0
	switch {
	case za && zb: // all labels match
		return ti.unify(ra, rb)
	case za && !zb: // labels missing from mb
		return ti.unify(rb, &types.RowExtend{Row: ra, Labels: xb.Build()})
	case !za && zb: // labels missing from ma
		return ti.unify(ra, &types.RowExtend{Row: rb, Labels: xa.Build()})
	default: // labels missing from both ma/mb
		switch ra := ra.(type) {
		case *types.RowEmpty:
			return closedRowMismatch(ra, &types.RowExtend{Row: ti.store.Fresh(), Labels: xa.Build()})
		case *types.Var:
			if !ra.IsUnboundVar() {
				return errors.New("invalid state while unifying type-variables for rows")
			}
			rest := ti.store.Fresh()
			if err := ti.unify(rb, &types.RowExtend{Row: rest, Labels: xb.Build()}); err != nil {
				return err
			}
			if ra.IsLinkVar() {
				return errors.New("invalid recursive row types")
			}
			return ti.unify(ra, &types.RowExtend{Row: rest, Labels: xa.Build()})
		}
	}

	return errors.New("invalid state while unifying rows")
}
