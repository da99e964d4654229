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
	"strings"
)

// ExprString returns a source-like string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// PatternString returns a source-like string representation of a pattern.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, p)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *Literal:
		sb.WriteString(et.Syntax)

	case *Var:
		sb.WriteString(et.Name)

	case *Call:
		exprString(sb, true, et.Func)
		sb.WriteByte('(')
		for i, arg := range et.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, arg)
		}
		sb.WriteByte(')')

	case *Func:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		for i, arg := range et.ArgNames {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(arg)
		}
		sb.WriteString(" -> ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		sb.WriteString(et.Var)
		sb.WriteString(" = ")
		exprString(sb, false, et.Value)
		sb.WriteString(" in ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *RecordLit:
		sb.WriteByte('{')
		for i, label := range et.Labels {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(label.Label)
			sb.WriteString(" = ")
			exprString(sb, false, label.Value)
		}
		if et.Spread != nil {
			if len(et.Labels) > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("...")
			exprString(sb, false, et.Spread)
		}
		sb.WriteByte('}')

	case *RecordSelect:
		exprString(sb, true, et.Record)
		sb.WriteByte('.')
		sb.WriteString(et.Label)

	case *Match:
		sb.WriteString("match ")
		exprString(sb, false, et.Value)
		sb.WriteString(" {")
		for i, c := range et.Cases {
			if i > 0 {
				sb.WriteString(" |")
			}
			sb.WriteByte(' ')
			patternString(sb, c.Pattern)
			sb.WriteString(" -> ")
			exprString(sb, false, c.Body)
		}
		sb.WriteString(" }")
	}
}

func patternString(sb *strings.Builder, p Pattern) {
	switch pt := p.(type) {
	case *PatternVar:
		sb.WriteString(pt.Name)

	case *PatternRecord:
		sb.WriteByte('{')
		for i, f := range pt.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Label)
			sb.WriteString(" = ")
			patternString(sb, f.Pattern)
		}
		if pt.Spread != nil {
			if len(pt.Fields) > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("...")
			sb.WriteString(pt.Spread.Name)
		}
		sb.WriteByte('}')
	}
}
