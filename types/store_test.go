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

package types_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowpoly/rowpoly/types"
)

func TestFreshVariablesHaveUniqueIdentity(t *testing.T) {
	store := types.NewStore()
	a, b := store.Fresh(), store.Fresh()
	require.NotSame(t, a, b)
	require.NotEqual(t, a.Id(), b.Id())
	require.True(t, a.IsUnboundVar())
}

func TestResolveFollowsBindingChains(t *testing.T) {
	store := types.NewStore()
	v1, v2 := store.Fresh(), store.Fresh()
	intType := &types.Const{Name: "int"}

	require.NoError(t, store.Bind(v1, v2))
	require.NoError(t, store.Bind(v2, intType))
	require.Same(t, intType, store.Resolve(v1))
	require.Same(t, intType, store.Resolve(v2))
}

func TestBindRequiresUnboundVariable(t *testing.T) {
	store := types.NewStore()
	v := store.Fresh()
	require.NoError(t, store.Bind(v, &types.Const{Name: "int"}))
	require.Error(t, store.Bind(v, &types.Const{Name: "bool"}))
}

func TestBindRejectsDirectOccurrence(t *testing.T) {
	store := types.NewStore()
	v := store.Fresh()
	row := &types.Record{Row: &types.RowExtend{Row: v, Labels: types.SingletonTypeMap("x", &types.Const{Name: "int"})}}

	err := store.Bind(v, row)
	var infinite *types.InfiniteTypeError
	require.ErrorAs(t, err, &infinite)
	require.Same(t, v, infinite.Var)
	require.True(t, v.IsUnboundVar())
}

func TestBindRejectsOccurrenceThroughChainedBindings(t *testing.T) {
	store := types.NewStore()
	v, w := store.Fresh(), store.Fresh()
	require.NoError(t, store.Bind(w, &types.Record{Row: &types.RowExtend{Row: v, Labels: types.SingletonTypeMap("x", &types.Const{Name: "int"})}}))

	// w resolves to a record containing v, so binding v to a record
	// containing w must fail.
	err := store.Bind(v, &types.Record{Row: &types.RowExtend{Row: w, Labels: types.SingletonTypeMap("y", &types.Const{Name: "bool"})}})
	var infinite *types.InfiniteTypeError
	require.True(t, errors.As(err, &infinite))
	require.True(t, v.IsUnboundVar())
}
