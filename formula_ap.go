// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/db47h/quadratic/context"
)

// constants
var (
	two    = apd.New(2, 0)
	four   = apd.New(4, 0)
	tenth  = apd.New(1, -1)
	negTwo = apd.New(-2, 0)
)

// DefaultPrec is the working precision, in decimal digits, of the decimal
// strategies returned by NewSolver.
const DefaultPrec = 100

// DefaultRefinePrec is the working precision, in decimal digits, of a Refiner
// created with a zero Config.Precision.
const DefaultRefinePrec = 1000

// narrow converts x to the nearest float64. Values beyond the float64 range
// yield an *OutOfNumericRange error.
func narrow(op string, x *apd.Decimal) (float64, error) {
	f, err := x.Float64()
	if err != nil {
		return f, &OutOfNumericRange{Op: op, Err: err}
	}
	return ensureFinite(op, f)
}

func narrowAll(op string, xs ...*apd.Decimal) ([]float64, error) {
	roots := make([]float64, len(xs))
	for i, x := range xs {
		f, err := narrow(op, x)
		if err != nil {
			return nil, err
		}
		roots[i] = f
	}
	return roots, nil
}

// discriminant returns a new decimal set to b² - 4ac.
func discriminant(ctx *context.Context, a, b, c *apd.Decimal) *apd.Decimal {
	d := ctx.New()
	t := ctx.New()
	u := ctx.New()
	ctx.Mul(t, a, c)    // t = ac
	ctx.Mul(u, t, four) // u = 4ac
	ctx.Mul(t, b, b)    // t = b²
	return ctx.Sub(d, t, u)
}

// apSetup handles corner cases and returns the decimal coefficients of the
// simplified equation. If done is true, roots and err are the final result.
func apSetup(e Equation) (se Equation, roots []float64, done bool, err error) {
	if roots, ok, err := handleCornerCases(e.a, e.b, e.c); ok {
		return e, roots, true, err
	}
	if !e.finite() {
		return e, nil, true, &OutOfNumericRange{Op: "coefficients"}
	}
	return Simplify(e), nil, false, nil
}

// doubleRoot returns the root -b/2a of an equation with a zero discriminant.
func doubleRoot(ctx *context.Context, a, b *apd.Decimal) ([]float64, error) {
	t := ctx.Mul(ctx.New(), a, negTwo)
	x := ctx.Quo(ctx.New(), b, t)
	if err := ctx.Err(); err != nil {
		return nil, &OutOfNumericRange{Op: "-b/2a", Err: err}
	}
	return narrowAll("-b/2a", x)
}

// solveSimpleAP is solveSimple in decimal arithmetic.
func solveSimpleAP(e Equation, prec uint) ([]float64, error) {
	se, roots, done, err := apSetup(e)
	if done {
		return roots, err
	}
	a, b, c := se.decimals()
	ctx := context.New(prec)

	d := discriminant(ctx, a, b, c)
	if err := ctx.Err(); err != nil {
		return nil, &OutOfNumericRange{Op: "discriminant", Err: err}
	}
	switch d.Sign() {
	case -1:
		return nil, nil
	case 0:
		return doubleRoot(ctx, a, b)
	}

	s := ctx.Sqrt(ctx.New(), d)
	negB := ctx.Neg(ctx.New(), b)
	twoA := ctx.Mul(ctx.New(), a, two)
	x0 := ctx.Quo(ctx.New(), ctx.Add(ctx.New(), negB, s), twoA)
	x1 := ctx.Quo(ctx.New(), ctx.Sub(ctx.New(), negB, s), twoA)
	if err := ctx.Err(); err != nil {
		return nil, &OutOfNumericRange{Op: "(-b±√d)/2a", Err: err}
	}
	return narrowAll("(-b±√d)/2a", x0, x1)
}

// citardauqAP returns the decimal roots of the simplified equation se with
// a non-zero discriminant d, in the same order as solveCitardauq.
func citardauqAP(ctx *context.Context, a, b, c, d *apd.Decimal) (x0, x1 *apd.Decimal) {
	s := ctx.Sqrt(ctx.New(), d)
	t := ctx.New()
	if b.Sign() > 0 {
		ctx.Add(t, b, s)
	} else {
		ctx.Sub(t, b, s)
	}
	q := ctx.Neg(ctx.New(), t)

	xc := ctx.Quo(ctx.New(), ctx.Mul(ctx.New(), c, two), q)
	xa := ctx.Quo(ctx.New(), q, ctx.Mul(ctx.New(), a, two))
	if b.Sign() > 0 {
		return xc, xa
	}
	return xa, xc
}

// solveCitardauqAP is solveCitardauq in decimal arithmetic.
func solveCitardauqAP(e Equation, prec uint) ([]float64, error) {
	se, roots, done, err := apSetup(e)
	if done {
		return roots, err
	}
	a, b, c := se.decimals()
	ctx := context.New(prec)

	d := discriminant(ctx, a, b, c)
	if err := ctx.Err(); err != nil {
		return nil, &OutOfNumericRange{Op: "discriminant", Err: err}
	}
	switch d.Sign() {
	case -1:
		return nil, nil
	case 0:
		return doubleRoot(ctx, a, b)
	}

	x0, x1 := citardauqAP(ctx, a, b, c, d)
	if err := ctx.Err(); err != nil {
		return nil, &OutOfNumericRange{Op: "2c/q, q/2a", Err: err}
	}
	return narrowAll("2c/q, q/2a", x0, x1)
}
