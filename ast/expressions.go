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

package ast

import (
	"github.com/rowpoly/rowpoly/types"
)

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Type returns an inferred type of an expression. Expression types are
	// only available after type-inference.
	Type() types.Type
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*RecordLit)(nil)
	_ Expr = (*RecordSelect)(nil)
	_ Expr = (*Match)(nil)
)

// Semi-opaque literal value
type Literal struct {
	// Syntax is a string representation of the literal value. The syntax
	// will be printed when the literal is printed.
	Syntax string
	// Construct should produce the literal's type, allocating variables from
	// the given store when the type is not ground.
	Construct func(store *types.Store) (types.Type, error)
	inferred  types.Type
}

// Returns the syntax of e.
func (e *Literal) ExprName() string { return e.Syntax }

// Get the inferred (or assigned) type of e.
func (e *Literal) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Literal) SetType(t types.Type) { e.inferred = t }

// Variable
type Var struct {
	Name     string
	inferred types.Type
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Get the inferred (or assigned) type of e.
func (e *Var) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Var) SetType(t types.Type) { e.inferred = t }

// Application: `f(x)`
type Call struct {
	Func     Expr
	Args     []Expr
	inferred types.Type
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Get the inferred (or assigned) type of e.
func (e *Call) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Call) SetType(t types.Type) { e.inferred = t }

// Abstraction: `fun x y -> x`
type Func struct {
	ArgNames []string
	Body     Expr
	inferred *types.Arrow
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

// Get the inferred (or assigned) type of e.
func (e *Func) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Func) SetType(ft *types.Arrow) { e.inferred = ft }

// Let-binding: `let a = 1 in e`
type Let struct {
	Var   string
	Value Expr
	Body  Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Get the inferred (or assigned) type of e.
func (e *Let) Type() types.Type { return e.Body.Type() }

// Record literal: `{a = 1, b = 2}`
//
// The field list arrives in source order. A spread is only legal within
// record patterns; a literal carrying one is rejected during inference.
type RecordLit struct {
	Labels   []LabelValue
	Spread   Expr
	inferred *types.Record
}

// "RecordLit"
func (e *RecordLit) ExprName() string { return "RecordLit" }

// Get the inferred (or assigned) type of e.
func (e *RecordLit) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *RecordLit) SetType(rt *types.Record) { e.inferred = rt }

// Paired label and value
type LabelValue struct {
	Label string
	Value Expr
}

// Get the inferred (or assigned) type of e.
func (e *LabelValue) Type() types.Type { return e.Value.Type() }

// Selecting value of label: `r.a`
type RecordSelect struct {
	Record   Expr
	Label    string
	inferred types.Type
}

// "RecordSelect"
func (e *RecordSelect) ExprName() string { return "RecordSelect" }

// Get the inferred (or assigned) type of e.
func (e *RecordSelect) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *RecordSelect) SetType(t types.Type) { e.inferred = t }

// Pattern-matching expression over records:
//
//	match e {
//	    {x = x, ...rest} -> expr1
//	  | {x = x, y = y} -> expr2
//	  |  ...
//	}
type Match struct {
	Value    Expr
	Cases    []MatchCase
	inferred types.Type
}

// "Match"
func (e *Match) ExprName() string { return "Match" }

// Get the inferred (or assigned) type of e.
func (e *Match) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Match) SetType(t types.Type) { e.inferred = t }

// Case expression within Match: `{x = x, ...rest} -> expr1`
type MatchCase struct {
	Pattern Pattern
	Body    Expr
}

// Get the inferred (or assigned) type of e.
func (e *MatchCase) Type() types.Type { return e.Body.Type() }
