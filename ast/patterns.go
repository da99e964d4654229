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

// Pattern is the base for all patterns.
type Pattern interface {
	// Name of the syntax-type of the pattern.
	PatternName() string
	// Type returns an inferred type of a pattern. Pattern types are only
	// available after type-inference.
	Type() types.Type
}

var (
	_ Pattern = (*PatternVar)(nil)
	_ Pattern = (*PatternRecord)(nil)
)

// Variable pattern: binds the matched value to a name.
type PatternVar struct {
	Name     string
	inferred types.Type
}

// "PatternVar"
func (p *PatternVar) PatternName() string { return "PatternVar" }

// Get the inferred (or assigned) type of p.
func (p *PatternVar) Type() types.Type { return types.RealType(p.inferred) }

// Assign a type to p. Type assignments should occur indirectly, during inference.
func (p *PatternVar) SetType(t types.Type) { p.inferred = t }

// Record pattern: `{a = a, b = b, ...rest}`
//
// Fields arrive in source order. At most one trailing spread is permitted;
// without one the pattern's row is closed and excess fields are a type
// error. A spread's name may be empty for `...` without a binding.
type PatternRecord struct {
	Fields   []PatternField
	Spread   *PatternSpread
	inferred *types.Record
}

// "PatternRecord"
func (p *PatternRecord) PatternName() string { return "PatternRecord" }

// Get the inferred (or assigned) type of p.
func (p *PatternRecord) Type() types.Type { return types.RealType(p.inferred) }

// Assign a type to p. Type assignments should occur indirectly, during inference.
func (p *PatternRecord) SetType(rt *types.Record) { p.inferred = rt }

// Paired label and sub-pattern
type PatternField struct {
	Label   string
	Pattern Pattern
}

// Trailing spread within a record pattern: `...rest` or `...`
type PatternSpread struct {
	Name string
}
