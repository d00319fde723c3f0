// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides sticky-error arithmetic contexts for apd Decimals.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *apd.Decimal
//
// create a new apd.Decimal set to the value of x.
//
// Operators that set a receiver z to a function of other decimal arguments
// like:
//
//	func (c *Context) UnaryOp(z, x *apd.Decimal) *apd.Decimal
//	func (c *Context) BinaryOp(z, x, y *apd.Decimal) *apd.Decimal
//
// set z to the result of the operation, rounded using c's precision, and
// return z.
//
// A Context catches arithmetic errors: if an operation fails (division by
// zero, square root of a negative number, exponent overflow), the operation
// silently succeeds with an undefined result and further operations with the
// context are no-ops (they simply return the receiver z) until (*Context).Err
// is called to check for errors. A whole computation can therefore be written
// as a straight sequence of calls followed by a single error check.
//
// Operations do not support aliasing between the receiver z and the operands.
package context

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrec is the precision, in decimal digits, used when a Context is
// created with a precision of 0.
const DefaultPrec = 34

// MaxPrec is the largest supported precision.
const MaxPrec = math.MaxUint32

// A Context is a wrapper around apd.Context that facilitates management of
// precision and error handling.
type Context struct {
	ctx apd.Context
	err error
}

// New creates a new context with the given precision. If prec is 0, it will
// be set to DefaultPrec.
func New(prec uint) *Context {
	return new(Context).SetPrec(prec)
}

// Prec returns the precision of c in decimal digits.
func (c *Context) Prec() uint {
	return uint(c.ctx.Precision)
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec == 0, it is set to
// DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = DefaultPrec
	}
	// general case
	if prec > MaxPrec {
		prec = MaxPrec
	}
	c.ctx = *apd.BaseContext.WithPrecision(uint32(prec))
	c.ctx.Rounding = apd.RoundHalfEven
	return c
}

// New returns a new apd.Decimal with value 0.
func (c *Context) New() *apd.Decimal {
	return new(apd.Decimal)
}

// NewInt64 returns a new *apd.Decimal set to the value of x.
func (c *Context) NewInt64(x int64) *apd.Decimal {
	return apd.New(x, 0)
}

// NewFloat64 returns a new *apd.Decimal set to the exact value of x. Infinite
// and NaN values put c in an error state.
func (c *Context) NewFloat64(x float64) *apd.Decimal {
	z := c.New()
	if c.err != nil {
		return z
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		c.err = fmt.Errorf("decimal from float64: %v is not finite", x)
		return z
	}
	if _, err := SetFloat64(z, x); err != nil {
		c.err = fmt.Errorf("decimal from float64: %w", err)
	}
	return z
}

// NewString returns a new Decimal with the value of s and a boolean indicating
// success. s must be a number in a format accepted by apd.NewFromString. If
// the operation failed, the returned value is nil.
func (c *Context) NewString(s string) (d *apd.Decimal, success bool) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, false
	}
	return d, true
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

func (c *Context) fail(op string, err error) {
	if err != nil {
		c.err = fmt.Errorf("%s: %w", op, err)
	}
}

// Round sets z to the value of x rounded using c's precision and returns z.
func (c *Context) Round(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	_, err := c.ctx.Round(z, x)
	c.fail("round", err)
	return z
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	_, err := c.ctx.Add(z, x, y)
	c.fail("add", err)
	return z
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	_, err := c.ctx.Sub(z, x, y)
	c.fail("sub", err)
	return z
}

// Mul sets z to the rounded product x×y and returns z.
func (c *Context) Mul(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	_, err := c.ctx.Mul(z, x, y)
	c.fail("mul", err)
	return z
}

// Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Quo(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	_, err := c.ctx.Quo(z, x, y)
	c.fail("quo", err)
	return z
}

// Neg sets z to the value of x with its sign negated, and returns z.
func (c *Context) Neg(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	_, err := c.ctx.Neg(z, x)
	c.fail("neg", err)
	return z
}

// Abs sets z to the value |x| (the absolute value of x) and returns z.
func (c *Context) Abs(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	_, err := c.ctx.Abs(z, x)
	c.fail("abs", err)
	return z
}

// Sqrt sets z to the rounded square root of x, and returns z.
//
// A negative x puts c in an error state.
func (c *Context) Sqrt(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	_, err := c.ctx.Sqrt(z, x)
	c.fail("sqrt", err)
	return z
}

var five = big.NewInt(5)

// SetFloat64 sets z to the exact value of the finite float64 x and returns z.
//
// Unlike (*apd.Decimal).SetFloat64, which goes through the shortest decimal
// representation that round-trips, the result carries every digit of the
// binary value: x = m×2**e is stored as m×5**(-e)×10**e when e < 0.
// ±Inf and NaN are mapped to the corresponding apd forms.
func SetFloat64(z *apd.Decimal, x float64) (*apd.Decimal, error) {
	switch {
	case math.IsNaN(x):
		z.SetInt64(0)
		z.Form = apd.NaN
		return z, nil
	case math.IsInf(x, 0):
		z.SetInt64(0)
		z.Form = apd.Infinite
		z.Negative = x < 0
		return z, nil
	case x == 0:
		z.SetInt64(0)
		z.Negative = math.Signbit(x)
		return z, nil
	}

	frac, exp := math.Frexp(x) // x = frac×2**exp, 0.5 <= |frac| < 1
	m := int64(math.Ldexp(frac, 53))
	exp -= 53
	for m%2 == 0 {
		m /= 2
		exp++
	}

	coeff := big.NewInt(m)
	dexp := 0
	if exp >= 0 {
		coeff.Lsh(coeff, uint(exp))
	} else {
		coeff.Mul(coeff, new(big.Int).Exp(five, big.NewInt(int64(-exp)), nil))
		dexp = exp
	}
	if _, _, err := z.SetString(coeff.String() + "E" + strconv.Itoa(dexp)); err != nil {
		return nil, err
	}
	return z, nil
}
