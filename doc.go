// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package quadratic computes the real roots of the quadratic equation

	a·x² + b·x + c = 0

for arbitrary float64 coefficients, together with an estimate of the numerical
error of each root.

An Equation holds the coefficients both as float64 values and as exact
arbitrary-precision decimals (see github.com/cockroachdb/apd/v3):

	e := quadratic.New(1, -3, 2)

Coefficients that differ by huge exponent ranges are brought back to a
comparable range by Simplify, which divides all three of them by the same
power of two. Dividing by a power of two is exact and does not change the
roots.

Root formulae

Four interchangeable strategies are available through NewSolver:

    Simple       the textbook formula (-b ± √(b²-4ac)) / 2a
    Citardauq    a cancellation-free formula built on x₁·x₂ = c/a
    SimpleAP     Simple, in arbitrary-precision decimal arithmetic
    CitardauqAP  Citardauq, in arbitrary-precision decimal arithmetic

All of them handle degenerate equations (a, b or c equal to zero) without
computing a discriminant, and return a slice of 0, 1 or 2 roots. The order of
two roots is a property of the formula, not a contract.

The Simple formula loses all precision on one of the roots when b² ≫ 4ac,
because -b + √(b²-4ac) then subtracts two nearly equal values. Citardauq
always adds values of the same sign:

	q  = -(b + sign(b)·√(b²-4ac))
	x₁ = 2c / q
	x₂ = q / 2a

Refining solver

A Refiner seeds Newton's method with the CitardauqAP roots and polishes each
root in decimal arithmetic until the relative Newton step falls below a given
bound. Each root is returned as a numeric.Value[float64] pairing the float64
root with an error bound that is never smaller than one unit in the last place
of the root, unless the float64 root is exact, in which case the error is 0.
Error bounds are checked in exact arithmetic and widened until they are known
to contain a root:

	roots, err := quadratic.RefiningSolve(quadratic.New(1, -3, 2), 1e-20)

Errors

Any non-finite intermediate or final value (overflow, division by zero, NaN
coefficients) makes the solve fail with an *OutOfNumericRange error. There are
no partial results. The decimal strategies have a much larger exponent range
than float64 and rarely fail.
*/
package quadratic
