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
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptyTypeMap = TypeMap{emptyMap}

// TypeMap contains immutable mappings from labels to types. Labels are
// unique within the map and iterate in sorted order, which keeps row
// unification and diagnostics deterministic.
type TypeMap struct {
	m *immutable.SortedMap
}

func NewTypeMap() TypeMap { return TypeMap{emptyMap} }

// Create a TypeMap with a single entry.
func SingletonTypeMap(label string, t Type) TypeMap {
	return TypeMap{emptyMap.Set(label, t)}
}

// Create a TypeMap from an ordinary map.
func NewFlatTypeMap(m map[string]Type) TypeMap {
	b := NewTypeMapBuilder()
	for label, t := range m {
		b.Set(label, t)
	}
	return b.Build()
}

// Get the number of entries in the map.
func (m TypeMap) Len() int { return m.m.Len() }

// Get the type for a label.
func (m TypeMap) Get(label string) (Type, bool) {
	t, ok := m.m.Get(label)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Iterate over entries in the map, in sorted label order.
// If f returns false, iteration will be stopped.
func (m TypeMap) Range(f func(string, Type) bool) {
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Get an iterator which may be used to read entries in the map, in sorted
// label order.
func (m TypeMap) Iterator() TypeMapIterator {
	return TypeMapIterator{m.m.Iterator()}
}

// Labels returns the map's labels in sorted order.
func (m TypeMap) Labels() []string {
	labels := make([]string, 0, m.Len())
	m.Range(func(label string, t Type) bool {
		labels = append(labels, label)
		return true
	})
	return labels
}

// Convert the map to a builder for modification, without mutating the
// existing map.
func (m TypeMap) Builder() TypeMapBuilder {
	imm := m.m
	if imm == nil {
		imm = emptyMap
	}
	return TypeMapBuilder{immutable.NewSortedMapBuilder(imm)}
}

// TypeMapBuilder enables in-place updates of a map before finalization.
type TypeMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewTypeMapBuilder() TypeMapBuilder {
	return TypeMapBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Get the number of entries in the builder.
func (b TypeMapBuilder) Len() int {
	if b.b == nil {
		return 0
	}
	return b.b.Len()
}

// Get the type for a label in the builder.
func (b TypeMapBuilder) Get(label string) (Type, bool) {
	if b.b == nil {
		return nil, false
	}
	t, ok := b.b.Get(label)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set the type for the given label in the builder.
func (b TypeMapBuilder) Set(label string, t Type) TypeMapBuilder {
	b.b.Set(label, t)
	return b
}

// Merge entries into the builder. Labels already present in the builder are
// kept; merged entries never overwrite them.
func (b TypeMapBuilder) Merge(m TypeMap) TypeMapBuilder {
	m.Range(func(label string, t Type) bool {
		if _, ok := b.b.Get(label); !ok {
			b.Set(label, t)
		}
		return true
	})
	return b
}

// Finalize the builder into an immutable map.
func (b TypeMapBuilder) Build() TypeMap {
	if b.b == nil {
		return EmptyTypeMap
	}
	return TypeMap{b.b.Map()}
}

// TypeMapIterator reads entries in a map, in sorted label order.
type TypeMapIterator struct {
	i *immutable.SortedMapIterator
}

// Done returns true if the iterator has reached the end of a map.
func (i TypeMapIterator) Done() bool { return i.i.Done() }

// Next advances the iterator and returns the next entry from a map.
func (i TypeMapIterator) Next() (string, Type) {
	if i.Done() {
		return "", nil
	}
	k, v := i.i.Next()
	return k.(string), v.(Type)
}
