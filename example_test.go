// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic_test

import (
	"errors"
	"fmt"

	"github.com/db47h/quadratic"
)

func Example() {
	e := quadratic.New(1, -3, 2)
	for _, s := range quadratic.Strategies {
		solver, err := quadratic.NewSolver(s)
		if err != nil {
			panic(err)
		}
		roots, err := solver.Solve(e)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-11v %v\n", s, roots)
	}
	// Output:
	// Citardauq   [2 1]
	// Simple      [2 1]
	// SimpleAP    [2 1]
	// CitardauqAP [2 1]
}

func ExampleRefiningSolve() {
	roots, err := quadratic.RefiningSolve(quadratic.New(-1, 1, 1), 1e-20)
	if err != nil {
		panic(err)
	}
	fmt.Println(roots)
	// Output:
	// [-0.6180339887498949 ± 1.1102230246251565e-16 1.618033988749895 ± 2.220446049250313e-16]
}

func ExampleDeduceError() {
	e := quadratic.New(1, 0, -2)
	solver, _ := quadratic.NewSolver(quadratic.Simple)
	roots, _ := solver.Solve(e)
	fmt.Println(quadratic.DeduceError(e, roots))
	// Output:
	// [-1.4142135623730951 ± 2.220446049250313e-16 1.4142135623730951 ± 2.220446049250313e-16]
}

func ExampleSimplify() {
	fmt.Println(quadratic.Simplify(quadratic.New(4, 8, 16)))
	// Output:
	// 1 * x^2 + 2 * x + 4
}

func ExampleOutOfNumericRange() {
	e := quadratic.New(-1e10, 1e200, 1)
	solver, _ := quadratic.NewSolver(quadratic.Citardauq)
	_, err := solver.Solve(e)
	var oor *quadratic.OutOfNumericRange
	fmt.Println(errors.As(err, &oor), oor.Op)

	// retry with decimal arithmetic
	solver, _ = quadratic.NewSolver(quadratic.CitardauqAP)
	roots, err := solver.Solve(e)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.6g\n", roots)
	// Output:
	// true discriminant
	// [-1e-200 1e+190]
}
