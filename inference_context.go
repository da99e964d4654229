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

package rowpoly

import (
	"errors"

	"github.com/rowpoly/rowpoly/ast"
	"github.com/rowpoly/rowpoly/internal/log"
	"github.com/rowpoly/rowpoly/types"
)

var logger = log.DefaultLogger.With("section", "infer")

// InferenceContext is a reusable context for type inference.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	store   *types.Store
	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext { return &InferenceContext{} }

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Infer the type of expr within env. Inferred types are attached to the
// expression's nodes, and the result is generalized over the variables not
// free in env.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	if expr == nil {
		return nil, errors.New("empty expression")
	}
	ti.store, ti.err, ti.invalid = env.Store(), nil, nil
	t, err := ti.infer(env, expr)
	if err != nil {
		logger.Debug("inference failed", "expr", ast.ExprString(expr), "error", err)
		return nil, err
	}
	scheme := ti.generalize(env, t)
	logger.Debug("inferred", "expr", ast.ExprString(expr), "type", types.TypeString(scheme.Type))
	return scheme.Type, nil
}

// InferPattern infers the type of pattern within env, returning the pattern
// type along with env extended by the pattern's bindings. Pattern-introduced
// names, including a named spread's rest, are bound as monotypes and never
// generalized.
func (ti *InferenceContext) InferPattern(pattern ast.Pattern, env *TypeEnv) (types.Type, *TypeEnv, error) {
	if pattern == nil {
		return nil, nil, errors.New("empty pattern")
	}
	ti.store, ti.err, ti.invalid = env.Store(), nil, nil
	return ti.inferPattern(env, pattern)
}
