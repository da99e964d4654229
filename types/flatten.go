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

import "errors"

// FlattenRow normalizes a possibly-nested row into a canonical (labels, rest)
// pair. Nested row extensions reachable through the rest position (directly
// or through bound variables) are merged into a single label map; a label
// already accumulated from an outer row is never overwritten by a nested one.
// The returned rest is either RowEmpty or an unresolved type-variable.
//
// Flattening performs resolution reads but binds no variables, and is
// idempotent on already-flat rows.
func FlattenRow(t Type) (labels TypeMap, rest Type, err error) {
	lb := NewTypeMapBuilder()
	rest = RealType(t)
	for {
		switch r := rest.(type) {
		case *RowExtend:
			lb.Merge(r.Labels)
			rest = RealType(r.Row)
		case *RowEmpty, *Var:
			return lb.Build(), rest, nil
		default:
			return EmptyTypeMap, rest, errors.New("not a row type")
		}
	}
}
