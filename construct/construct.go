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

// Package construct provides shorthand constructors for building types,
// expressions, and patterns.
package construct

import (
	"github.com/rowpoly/rowpoly/ast"
	"github.com/rowpoly/rowpoly/types"
)

// Types

// Type constant: `int`, `bool`, etc
func TConst(name string) *types.Const {
	return &types.Const{Name: name}
}

// Function type: `(int, int) -> int`
func TArrow(args []types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: args, Return: ret}
}

// Function type: `int -> int`
func TArrow1(arg types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg}, Return: ret}
}

// Function type: `(int, int) -> int`
func TArrow2(arg1, arg2 types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg1, arg2}, Return: ret}
}

// Function type: `(int, int, int) -> int`
func TArrow3(arg1, arg2, arg3 types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg1, arg2, arg3}, Return: ret}
}

// Record type: `{...}`
func TRecord(row types.Type) *types.Record {
	return &types.Record{Row: row}
}

// Row extension: `{a : _ , b : _ | ...}`
func TRowExtend(row types.Type, labels types.TypeMap) *types.RowExtend {
	return &types.RowExtend{Row: row, Labels: labels}
}

// Closed record type over the given labels: `{a : _ , b : _}`
func TRecordFlat(labels map[string]types.Type) *types.Record {
	if len(labels) == 0 {
		return &types.Record{Row: types.RowEmptyPointer}
	}
	return &types.Record{Row: &types.RowExtend{Row: types.RowEmptyPointer, Labels: types.NewFlatTypeMap(labels)}}
}

// Empty row: the terminal marker for a record with no further fields.
func TRowEmpty() *types.RowEmpty {
	return types.RowEmptyPointer
}

// Expressions:

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Literal with a fixed type: `1 : int`
func Lit(syntax string, t types.Type) *ast.Literal {
	return &ast.Literal{Syntax: syntax, Construct: func(store *types.Store) (types.Type, error) {
		return t, nil
	}}
}

// Application: `f(x)`
func Call(f ast.Expr, args ...ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Args: args}
}

// Abstraction: `fun x y -> x`
func Func(args []string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: args, Body: body}
}

// Abstraction: `fun x -> x`
func Func1(arg string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: []string{arg}, Body: body}
}

// Abstraction: `fun x y -> x`
func Func2(arg1, arg2 string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: []string{arg1, arg2}, Body: body}
}

// Let-binding: `let a = 1 in e`
func Let(varName string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value, Body: body}
}

// Record literal: `{a = 1, b = 2}`
func Record(labels ...ast.LabelValue) *ast.RecordLit {
	return &ast.RecordLit{Labels: labels}
}

// Record literal carrying an illegal spread: `{a = 1, ...r}`
func RecordSpread(spread ast.Expr, labels ...ast.LabelValue) *ast.RecordLit {
	return &ast.RecordLit{Labels: labels, Spread: spread}
}

// Paired label and value
func LabelValue(label string, value ast.Expr) ast.LabelValue {
	return ast.LabelValue{Label: label, Value: value}
}

// Selecting value of label: `r.a`
func RecordSelect(record ast.Expr, label string) *ast.RecordSelect {
	return &ast.RecordSelect{Record: record, Label: label}
}

// Pattern-matching expression over records:
//
//	match e {
//	    {x = x, ...rest} -> expr1
//	  | {x = x, y = y} -> expr2
//	  |  ...
//	}
func Match(value ast.Expr, cases ...ast.MatchCase) *ast.Match {
	return &ast.Match{Value: value, Cases: cases}
}

// Case expression within Match: `{x = x} -> expr1`
func MatchCase(pattern ast.Pattern, body ast.Expr) ast.MatchCase {
	return ast.MatchCase{Pattern: pattern, Body: body}
}

// Patterns:

// Variable pattern
func PVar(name string) *ast.PatternVar {
	return &ast.PatternVar{Name: name}
}

// Closed record pattern: `{a = a, b = b}`
func PRecord(fields ...ast.PatternField) *ast.PatternRecord {
	return &ast.PatternRecord{Fields: fields}
}

// Open record pattern with a named trailing spread: `{a = a, ...rest}`
func PRecordSpread(name string, fields ...ast.PatternField) *ast.PatternRecord {
	return &ast.PatternRecord{Fields: fields, Spread: &ast.PatternSpread{Name: name}}
}

// Paired label and sub-pattern
func PField(label string, pattern ast.Pattern) ast.PatternField {
	return ast.PatternField{Label: label, Pattern: pattern}
}
