// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/db47h/quadratic/context"
)

// Eval returns the value of a·x² + b·x + c at x, computed in float64
// arithmetic as (a·x + b)·x + c.
func Eval(e Equation, x float64) float64 {
	return (e.a*x+e.b)*x + e.c
}

// EvalDecimal returns a new decimal set to the value of a·x² + b·x + c at x,
// rounded using ctx's precision. Errors are reported through ctx.
func EvalDecimal(ctx *context.Context, e Equation, x *apd.Decimal) *apd.Decimal {
	a, b, c := e.decimals()
	t := ctx.New()
	u := ctx.New()
	ctx.Mul(t, a, x) // t = a·x
	ctx.Add(u, t, b) // u = a·x + b
	ctx.Mul(t, u, x) // t = (a·x + b)·x
	return ctx.Add(u, t, c)
}

// derivative returns a new decimal set to 2a·x + b.
func derivative(ctx *context.Context, e Equation, x *apd.Decimal) *apd.Decimal {
	a, b, _ := e.decimals()
	t := ctx.New()
	u := ctx.New()
	ctx.Mul(t, a, x)
	ctx.Add(u, t, t) // u = 2a·x
	return ctx.Add(t, u, b)
}

// exactPrec is large enough for EvalDecimal to be exact when a, b, c and x
// are all float64 values: decimal digits of a float64 range from 10**308
// down to 10**-1074, so a·x² spans at most 3×(308+1074) digits.
const exactPrec = 4200

// evalSign returns the sign of the exact value of the polynomial at the
// float64 x. ok is false if the value cannot be computed.
func evalSign(e Equation, x float64) (sign int, ok bool) {
	ctx := context.New(exactPrec)
	y := EvalDecimal(ctx, e, ctx.NewFloat64(x))
	if ctx.Err() != nil {
		return 0, false
	}
	return y.Sign(), true
}

// encloses reports whether [x-r, x+r] contains a root of e. Everything is
// computed exactly from the float64 values x and r.
//
// The interval holds a root if f changes sign across it, or if it contains
// the vertex of the parabola and f(vertex), which has the sign of -a·D, has
// the opposite sign of f at both ends or is zero.
func encloses(e Equation, x, r float64) (bool, error) {
	ctx := context.New(exactPrec)
	xd, rd := ctx.NewFloat64(x), ctx.NewFloat64(r)
	lo := ctx.Sub(ctx.New(), xd, rd)
	hi := ctx.Add(ctx.New(), xd, rd)
	fl, fh := EvalDecimal(ctx, e, lo), EvalDecimal(ctx, e, hi)
	dl, dh := derivative(ctx, e, lo), derivative(ctx, e, hi)
	a, b, c := e.decimals()
	d := discriminant(ctx, a, b, c)
	if err := ctx.Err(); err != nil {
		return false, err
	}

	sl, sh := fl.Sign(), fh.Sign()
	if sl == 0 || sh == 0 || sl != sh {
		return true, nil
	}
	if dl.Sign() == dh.Sign() && dl.Sign() != 0 {
		// f is monotonic on the interval
		return false, nil
	}
	sv := -a.Sign() * d.Sign()
	return sv == 0 || sv != sl, nil
}
