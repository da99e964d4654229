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

// rowpoly provides Hindley-Milner type inference extended with row
// polymorphism for extensible records.
//
// Records are typed as rows: mappings from field names to types plus a rest
// describing the unlisted fields. A closed row ends in the empty row; an open
// row ends in an unbound type-variable, so functions can require "any record
// with at least these fields". Unification reconciles two rows by unifying
// shared fields, growing the side missing fields through its rest, and
// linking the leftover structure of both sides through a shared rest
// variable. Let-bound names are generalized over the variables free in their
// types but not in the surrounding context, and instantiated with fresh
// variables at each use, so a row-polymorphic function's leftover row is
// constrained independently at each call site.
//
// Unification is destructive: bindings committed before a failure are not
// rolled back. Callers needing transactional semantics must run against an
// isolated type-environment (and therefore an isolated substitution store).
//
// Supported Features:
//
//   - Extensible records with row polymorphism
//   - Record patterns with an optional trailing spread, matched against
//     closed or open rows
//   - Let-polymorphism with generalization and instantiation
//   - Structured type errors (shape mismatches with offending fields,
//     occurs-check failures, illegal constructs)
//
// Links:
//
// Extensible Records with Scoped Labels (Leijen, 2005): https://www.microsoft.com/en-us/research/publication/extensible-records-with-scoped-labels/
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package rowpoly
