// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic

import (
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/db47h/quadratic/context"
)

// An Equation represents the quadratic equation a·x² + b·x + c = 0.
//
// The coefficients are kept both as float64 values and as decimals holding
// the exact same values. Equations are immutable; the zero value is the
// equation 0 = 0.
type Equation struct {
	a, b, c          float64
	aDec, bDec, cDec *apd.Decimal
}

// New returns the equation a·x² + b·x + c = 0.
func New(a, b, c float64) Equation {
	return Equation{
		a: a, b: b, c: c,
		aDec: exact(a),
		bDec: exact(b),
		cDec: exact(c),
	}
}

func exact(x float64) *apd.Decimal {
	// SetFloat64 only fails on a malformed intermediate string, which
	// cannot happen for a float64.
	d, _ := context.SetFloat64(new(apd.Decimal), x)
	return d
}

// A returns the coefficient of x².
func (e Equation) A() float64 { return e.a }

// B returns the coefficient of x.
func (e Equation) B() float64 { return e.b }

// C returns the constant term.
func (e Equation) C() float64 { return e.c }

// ADec returns a copy of the exact decimal value of a.
func (e Equation) ADec() *apd.Decimal { a, _, _ := e.decimals(); return new(apd.Decimal).Set(a) }

// BDec returns a copy of the exact decimal value of b.
func (e Equation) BDec() *apd.Decimal { _, b, _ := e.decimals(); return new(apd.Decimal).Set(b) }

// CDec returns a copy of the exact decimal value of c.
func (e Equation) CDec() *apd.Decimal { _, _, c := e.decimals(); return new(apd.Decimal).Set(c) }

// decimals returns the decimal coefficients. They must not be modified.
func (e Equation) decimals() (a, b, c *apd.Decimal) {
	if e.aDec == nil {
		// zero value
		return exact(e.a), exact(e.b), exact(e.c)
	}
	return e.aDec, e.bDec, e.cDec
}

// finite reports whether all coefficients are finite.
func (e Equation) finite() bool {
	return isFinite(e.a) && isFinite(e.b) && isFinite(e.c)
}

func (e Equation) String() string {
	return fmt.Sprintf("%v * x^2 + %v * x + %v", e.a, e.b, e.c)
}

// maxScaledExp is the largest biased exponent a coefficient may have after
// simplification.
const maxScaledExp = 1044

// exponent returns the unbiased exponent field of x.
func exponent(x float64) int {
	return int(math.Float64bits(x)>>52&0x7ff) - 1023
}

// Simplify returns an equation with the same roots as e, where all
// coefficients have been divided by 2**minExp, minExp being the smallest of
// the binary exponents of a, b and c.
//
// If this would leave a coefficient with a biased exponent above 1044, the
// coefficients span too wide a range for scaling to help and e is returned
// unchanged. Simplify is idempotent for normal (non-subnormal) coefficients.
func Simplify(e Equation) Equation {
	minExp := min(exponent(e.a), exponent(e.b), exponent(e.c))
	if minExp == 0 {
		return e
	}
	a := math.Ldexp(e.a, -minExp)
	b := math.Ldexp(e.b, -minExp)
	c := math.Ldexp(e.c, -minExp)
	for _, x := range [...]float64{a, b, c} {
		if exponent(x)+1023 > maxScaledExp {
			return e
		}
	}
	return New(a, b, c)
}
