// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/db47h/quadratic/context"
	"github.com/db47h/quadratic/numeric"
)

// A Refiner solves quadratic equations to a requested relative error.
//
// Roots are seeded with the CitardauqAP formula applied to the simplified
// equation, then polished with Newton's method in decimal arithmetic:
//
//	x ← x - f(x)/f'(x),  f'(x) = 2a·x + b
//
// until the relative step |Δx/x| drops below the requested bound. If f'(x) is
// exactly zero, x sits on the axis of symmetry of the parabola; iteration
// then restarts on the side of the seed being refined. When both roots round
// to the same float64 seed, they are approached from opposite sides of the
// axis instead.
//
// The working precision is raised as needed to resolve the requested
// relative error, see minRefinePrec.
//
// A Refiner is immutable and safe for concurrent use.
type Refiner struct {
	prec    uint
	maxIter int
	log     *slog.Logger
}

// NewRefiner returns a Refiner configured by cfg.
func NewRefiner(cfg Config) *Refiner {
	return &Refiner{
		prec:    cfg.prec(DefaultRefinePrec),
		maxIter: cfg.maxIterations(),
		log:     cfg.logger(),
	}
}

// RefiningSolve solves e with a Refiner using the default configuration.
func RefiningSolve(e Equation, maxRelErr float64) ([]numeric.Value[float64], error) {
	return NewRefiner(Config{}).Solve(e, maxRelErr)
}

// Solve returns the real roots of e, each with an error bound. maxRelErr is
// the target relative error of the decimal roots before they are converted
// to float64 and must be finite and strictly positive.
//
// The error of a root is 0 if its float64 value is an exact root of e.
// Otherwise it is the distance between the float64 value and the decimal
// root plus the size of the last Newton step, and never less than one unit
// in the last place of the float64 value. The bound is then checked in exact
// arithmetic and doubled until [v-err, v+err] is known to contain a root.
//
// Solve fails with an *OutOfNumericRange error if the roots cannot be
// represented, or with ErrNotConverged if Newton's method needs more than
// the configured number of iterations.
func (r *Refiner) Solve(e Equation, maxRelErr float64) ([]numeric.Value[float64], error) {
	if !(maxRelErr > 0) || math.IsInf(maxRelErr, 1) {
		return nil, ErrInvalidTolerance
	}
	if p := minRefinePrec(maxRelErr); r.prec < p {
		r.log.Debug("refine: raising precision", "prec", r.prec, "min", p)
		r = &Refiner{prec: p, maxIter: r.maxIter, log: r.log}
	}
	seeds, err := solveCitardauqAP(Simplify(e), r.prec)
	if err != nil {
		return nil, err
	}
	r.log.Debug("refine: seeded", "equation", e, "seeds", seeds)
	if len(seeds) == 0 {
		return nil, nil
	}

	eps := apd.New(0, 0)
	if _, err := context.SetFloat64(eps, maxRelErr); err != nil {
		return nil, err
	}
	// two distinct roots less than one ULP apart
	split := len(seeds) == 2 && seeds[0] == seeds[1]
	roots := make([]numeric.Value[float64], len(seeds))
	for i, seed := range seeds {
		other := seeds[len(seeds)-1-i]
		v, err := r.polish(e, seed, other, side(seed, other, i), split, eps)
		if err != nil {
			return nil, err
		}
		roots[i] = v
	}
	return roots, nil
}

// minRefinePrec returns the minimum number of decimal digits needed to refine
// roots to a relative error of eps: the 17 digits of a float64 plus the
// digits of eps.
func minRefinePrec(eps float64) uint {
	return 17 + uint(math.Max(0, math.Ceil(-math.Log10(eps))))
}

// side returns the direction, -1 or +1, of seed relative to other. When the
// two are equal, the first seed is considered below the second.
func side(seed, other float64, i int) int {
	switch {
	case seed < other:
		return -1
	case seed > other:
		return 1
	case i == 0:
		return -1
	}
	return 1
}

// polish refines a single seed. If split is set, seed and other are the same
// float64 value for two distinct roots and iteration starts from the side of
// the vertex given by dir.
func (r *Refiner) polish(e Equation, seed, other float64, dir int, split bool, eps *apd.Decimal) (numeric.Value[float64], error) {
	ctx := context.New(r.prec)
	var x, fx *apd.Decimal
	if split {
		x = r.outside(ctx, e, dir)
		fx = EvalDecimal(ctx, e, x)
	} else {
		xctx := context.New(exactPrec)
		x = xctx.NewFloat64(seed)
		fx = EvalDecimal(xctx, e, x)
		if err := xctx.Err(); err != nil {
			return numeric.Value[float64]{}, &OutOfNumericRange{Op: "f(seed)", Err: err}
		}
		if fx.IsZero() {
			// nothing to refine
			r.log.Debug("refine: exact seed", "root", seed)
			return numeric.New(seed, 0), nil
		}
	}

	var (
		next = ctx.New()
		dx   = ctx.New()
		t    = ctx.New()
		rel  = ctx.New()
	)
	for i := 0; ; i++ {
		if i >= r.maxIter {
			return numeric.Value[float64]{}, fmt.Errorf("%w: root %g after %d iterations", ErrNotConverged, seed, i)
		}
		d := derivative(ctx, e, x)
		if err := ctx.Err(); err != nil {
			return numeric.Value[float64]{}, &OutOfNumericRange{Op: "f'(x)", Err: err}
		}
		if d.IsZero() {
			x = r.restart(ctx, x, seed, other, dir)
			fx = EvalDecimal(ctx, e, x)
			continue
		}

		ctx.Quo(t, fx, d)
		ctx.Sub(next, x, t)  // next = x - f(x)/f'(x)
		ctx.Sub(dx, next, x) // dx = next - x
		if x.IsZero() {
			ctx.Abs(rel, dx)
		} else {
			ctx.Quo(t, dx, x)
			ctx.Abs(rel, t)
		}
		if err := ctx.Err(); err != nil {
			return numeric.Value[float64]{}, &OutOfNumericRange{Op: "newton step", Err: err}
		}
		if rel.Cmp(eps) < 0 {
			r.log.Debug("refine: converged", "seed", seed, "iterations", i+1)
			return r.accept(e, next, dx)
		}
		x, next = next, x
		fx = EvalDecimal(ctx, e, x)
	}
}

// restart returns a new starting point for Newton's method when x is on the
// axis of symmetry: x stepped by 0.1 in direction dir, scaled by the distance
// between the seeds when they are more than one unit apart.
func (r *Refiner) restart(ctx *context.Context, x *apd.Decimal, seed, other float64, dir int) *apd.Decimal {
	h := ctx.Mul(ctx.New(), tenth, ctx.NewFloat64(math.Max(1, math.Abs(seed-other))))
	if dir < 0 {
		h = ctx.Neg(ctx.New(), h)
	}
	r.log.Debug("refine: zero derivative, restarting", "seed", seed, "other", other, "step", h)
	return ctx.Add(ctx.New(), x, h)
}

// outside returns a starting point beyond both roots of e, below the
// smaller one if dir < 0 and above the larger one otherwise:
//
//	-b/2a ± √D/|a|
//
// Newton's method converges monotonically from there to the nearest root.
func (r *Refiner) outside(ctx *context.Context, e Equation, dir int) *apd.Decimal {
	a, b, c := e.decimals()
	d := discriminant(ctx, a, b, c)
	if d.Sign() < 0 {
		d = ctx.New()
	}
	h := ctx.Quo(ctx.New(), ctx.Sqrt(ctx.New(), d), ctx.Abs(ctx.New(), a))
	if dir < 0 {
		h = ctx.Neg(ctx.New(), h)
	}
	v := ctx.Quo(ctx.New(), b, ctx.Mul(ctx.New(), a, negTwo))
	r.log.Debug("refine: roots share a seed, splitting", "vertex", v, "step", h)
	return ctx.Add(ctx.New(), v, h)
}

// accept converts the converged root x to float64 and computes its error.
func (r *Refiner) accept(e Equation, x, dx *apd.Decimal) (numeric.Value[float64], error) {
	v, err := narrow("root", x)
	if err != nil {
		return numeric.Value[float64]{}, err
	}
	xctx := context.New(exactPrec)
	xv := xctx.NewFloat64(v)
	if y := EvalDecimal(xctx, e, xv); xctx.Err() == nil && y.IsZero() && closest(xctx, e, xv, x) {
		return numeric.New(v, 0), nil
	}

	// |v - x| + |dx|
	t := xctx.Sub(xctx.New(), xv, x)
	u := xctx.Add(xctx.New(), xctx.Abs(xctx.New(), t), xctx.Abs(xctx.New(), dx))
	if err := xctx.Err(); err != nil {
		return numeric.Value[float64]{}, &OutOfNumericRange{Op: "error", Err: err}
	}
	ev, err := narrow("error", u)
	if err != nil {
		return numeric.Value[float64]{}, err
	}
	ev = math.Max(ev, Ulp(v))
	for {
		ok, err := encloses(e, v, ev)
		if err != nil {
			return numeric.Value[float64]{}, &OutOfNumericRange{Op: "error", Err: err}
		}
		if ok {
			return numeric.New(v, ev), nil
		}
		r.log.Debug("refine: widening error bound", "root", v, "error", ev)
		if ev *= 2; math.IsInf(ev, 0) {
			return numeric.Value[float64]{}, &OutOfNumericRange{Op: "error"}
		}
	}
}

// closest reports whether v is closer to the root x of e than to the other
// root -b/a - x.
func closest(ctx *context.Context, e Equation, v, x *apd.Decimal) bool {
	a, b, _ := e.decimals()
	if a.IsZero() {
		return true
	}
	s := ctx.Quo(ctx.New(), ctx.Neg(ctx.New(), b), a)
	ctx.Sub(s, s, x)
	dx := ctx.Abs(ctx.New(), ctx.Sub(ctx.New(), v, x))
	ds := ctx.Abs(ctx.New(), ctx.Sub(ctx.New(), v, s))
	if ctx.Err() != nil {
		return false
	}
	return dx.Cmp(ds) <= 0
}
