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

package types

import (
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[int]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.nextGeneric = 0
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	idNames     map[int]string
	nextGeneric int
	sb          strings.Builder
}

// TypeString returns a string representation of a Type. Generic variables
// are named 'a, 'b, ... in first-visit order; unbound variables are named
// '_N after their ids.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

func getVarName(i int) string {
	name := "'" + string(rune('a'+i%26))
	if i >= 26 {
		name += strconv.Itoa(i / 26)
	}
	return name
}

func (p *typePrinter) genericName(id int) string {
	if name, ok := p.idNames[id]; ok {
		return name
	}
	name := getVarName(p.nextGeneric)
	p.nextGeneric++
	p.idNames[id] = name
	return name
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		switch {
		case t.IsLinkVar():
			typeString(p, simple, t.Link())
		case t.IsGenericVar():
			p.sb.WriteString(p.genericName(t.Id()))
		default:
			p.sb.WriteString("'_" + strconv.Itoa(t.Id()))
		}

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		if len(t.Args) == 1 {
			typeString(p, true, t.Args[0])
			p.sb.WriteString(" -> ")
			typeString(p, false, t.Return)
		} else {
			p.sb.WriteByte('(')
			for i, arg := range t.Args {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				typeString(p, false, arg)
			}
			p.sb.WriteString(") -> ")
			typeString(p, false, t.Return)
		}
		if simple {
			p.sb.WriteByte(')')
		}

	case *Record:
		p.sb.WriteByte('{')
		typeString(p, false, t.Row)
		p.sb.WriteByte('}')

	case *RowEmpty: // nothing to print

	case *RowExtend:
		labels, rest, err := FlattenRow(t)
		if err != nil {
			p.sb.WriteString("<INVALID-ROW>")
			return
		}
		i := 0
		labels.Range(func(label string, ft Type) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(label)
			p.sb.WriteString(" : ")
			typeString(p, false, ft)
			i++
			return true
		})
		switch rest.(type) {
		case *RowEmpty: // closed row, nothing to print
		default:
			p.sb.WriteString(" | ")
			typeString(p, false, rest)
		}
	}
}
