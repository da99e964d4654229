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

	. "github.com/rowpoly/rowpoly"
	. "github.com/rowpoly/rowpoly/construct"
)

func BenchmarkRecursiveLet(b *testing.B) {
	env := NewTypeEnv()
	ctx := NewContext()

	env = env.Add("add", TArrow2(TConst("int"), TConst("int"), TConst("int")))
	A := env.NewGenericVar()
	env = env.Add("if", TArrow3(TConst("bool"), A, A, A))
	env = env.Add("somebool", TConst("bool"))

	expr := Func1("x",
		Let("f",
			Func1("x",
				Call(
					Var("if"),
					Var("somebool"),
					Var("x"),
					Call(Var("f"), Call(Var("add"), Var("x"), Var("x"))),
				),
			),
			Call(Var("f"), Var("x")),
		))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRowPolymorphicSelect(b *testing.B) {
	env := NewTypeEnv()
	ctx := NewContext()

	expr := Let("f", Func1("r", RecordSelect(Var("r"), "x")),
		Record(
			LabelValue("a", Call(Var("f"), Record(
				LabelValue("x", Lit("1", TConst("int"))),
				LabelValue("y", Lit("2", TConst("int"))),
				LabelValue("z", Lit("3", TConst("int")))))),
			LabelValue("b", Call(Var("f"), Record(
				LabelValue("x", Lit(`"s"`, TConst("string"))),
				LabelValue("w", Lit("true", TConst("bool"))))))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatchRecordPattern(b *testing.B) {
	env := NewTypeEnv()
	ctx := NewContext()

	expr := Func1("r", Match(Var("r"),
		MatchCase(
			PRecordSpread("rest", PField("x", PVar("x"))),
			RecordSelect(Var("rest"), "y"))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}
