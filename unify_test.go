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

package rowpoly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/rowpoly/rowpoly"
	. "github.com/rowpoly/rowpoly/construct"

	"github.com/rowpoly/rowpoly/types"
)

func TestUnifyReflexivity(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	rest := env.NewVar()
	for _, ty := range []types.Type{
		TConst("int"),
		TArrow1(TConst("int"), TConst("bool")),
		TRecordFlat(map[string]types.Type{"x": TConst("int")}),
		TRecord(TRowExtend(rest, types.SingletonTypeMap("x", TConst("int")))),
	} {
		require.NoError(t, ctx.Unify(ty, ty, env))
	}
	require.True(t, rest.IsUnboundVar())
}

func TestUnifyBindsUnboundVariable(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	v := env.NewVar()
	record := TRecordFlat(map[string]types.Type{"x": TConst("int")})
	require.NoError(t, ctx.Unify(v, record, env))
	require.Same(t, record, env.Store().Resolve(v))
}

func TestUnifyClosedRowsWithMatchingFields(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	a := TRecordFlat(map[string]types.Type{"x": TConst("int")})
	b := TRecordFlat(map[string]types.Type{"x": TConst("int")})
	require.NoError(t, ctx.Unify(a, b, env))
}

func TestUnifyClosedRowsFieldTypeMismatch(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	a := TRecordFlat(map[string]types.Type{"x": TConst("int")})
	b := TRecordFlat(map[string]types.Type{"x": TConst("string")})
	err := ctx.Unify(a, b, env)
	var mismatch *types.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Contains(t, err.Error(), "record field x")
}

func TestUnifyClosedRowsFieldSetMismatch(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	a := TRecordFlat(map[string]types.Type{"x": TConst("int")})
	b := TRecordFlat(map[string]types.Type{"y": TConst("string")})
	err := ctx.Unify(a, b, env)
	var mismatch *types.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.NotEmpty(t, mismatch.MissingLabels)
}

func TestUnifyClosedRowRejectsExtraField(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	small := TRecordFlat(map[string]types.Type{"x": TConst("int")})
	big := TRecordFlat(map[string]types.Type{"x": TConst("int"), "y": TConst("string"), "z": TConst("bool")})
	err := ctx.Unify(small, big, env)
	var mismatch *types.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, []string{"y", "z"}, mismatch.MissingLabels)
}

func TestUnifyOpenRowGrowsThroughRest(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	rest := env.NewVar()
	open := TRecord(TRowExtend(rest, types.SingletonTypeMap("x", TConst("int"))))
	closed := TRecordFlat(map[string]types.Type{"x": TConst("int"), "y": TConst("string")})
	require.NoError(t, ctx.Unify(open, closed, env))

	// The open row's rest now carries the extra field and a closed
	// terminal.
	labels, flatRest, err := types.FlattenRow(env.Store().Resolve(rest))
	require.NoError(t, err)
	require.Equal(t, []string{"y"}, labels.Labels())
	require.IsType(t, &types.RowEmpty{}, flatRest)
}

func TestUnifyOpenRowsShareLeftoverRest(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	restA, restB := env.NewVar(), env.NewVar()
	a := TRecord(TRowExtend(restA, types.SingletonTypeMap("x", TConst("int"))))
	b := TRecord(TRowExtend(restB, types.SingletonTypeMap("y", TConst("string"))))
	require.NoError(t, ctx.Unify(a, b, env))

	labelsA, leftoverA, err := types.FlattenRow(env.Store().Resolve(restA))
	require.NoError(t, err)
	require.Equal(t, []string{"y"}, labelsA.Labels())
	yType, _ := labelsA.Get("y")
	require.Equal(t, "string", types.RealType(yType).(*types.Const).Name)

	labelsB, leftoverB, err := types.FlattenRow(env.Store().Resolve(restB))
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, labelsB.Labels())

	// Both rows' leftover structure is linked through the same fresh rest
	// variable, by identity.
	require.Same(t, leftoverA, leftoverB)
	require.True(t, leftoverA.(*types.Var).IsUnboundVar())
}

func TestUnifyOccursCheckRejectsRecursiveRow(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	v := env.NewVar()
	row := TRecord(TRowExtend(env.NewVar(), types.SingletonTypeMap("self", v)))
	err := ctx.Unify(v, row, env)
	var infinite *types.InfiniteTypeError
	require.ErrorAs(t, err, &infinite)
	require.Same(t, v, infinite.Var)
}

func TestUnifyArrowArgumentOrder(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	a := TArrow2(TConst("int"), env.NewVar(), TConst("bool"))
	ret := env.NewVar()
	b := TArrow2(TConst("int"), TConst("string"), ret)
	require.NoError(t, ctx.Unify(a, b, env))
	require.Equal(t, "bool", types.RealType(ret).(*types.Const).Name)

	err := ctx.Unify(TArrow1(TConst("int"), TConst("int")), TArrow2(TConst("int"), TConst("int"), TConst("int")), env)
	var mismatch *types.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestUnifyConstructorMismatch(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	err := ctx.Unify(TConst("int"), TRecordFlat(nil), env)
	var mismatch *types.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}
