// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic

import (
	"errors"
	"math"
)

// An OutOfNumericRange error is returned when computing the roots of an
// equation produced a non-finite value: overflow, division by zero or an
// invalid operation. It is specific to the equation being solved; retrying
// with a decimal strategy, which has a much wider exponent range, usually
// succeeds.
type OutOfNumericRange struct {
	Op  string // operation that produced the value
	Err error  // underlying decimal arithmetic error, if any
}

func (e *OutOfNumericRange) Error() string {
	msg := "quadratic: parameters a, b and c are out of the range where a solution with this precision is possible"
	if e.Op != "" {
		msg += " (" + e.Op + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OutOfNumericRange) Unwrap() error {
	return e.Err
}

var (
	// ErrNotConverged is returned by a Refiner when Newton's method did not
	// reach the requested relative error within the configured number of
	// iterations.
	ErrNotConverged = errors.New("quadratic: Newton iteration did not converge")

	// ErrInvalidTolerance is returned by a Refiner when the maximum relative
	// error is not a finite, strictly positive number.
	ErrInvalidTolerance = errors.New("quadratic: maximum relative error must be finite and > 0")

	// ErrUnknownStrategy is returned when a Strategy value or name does not
	// designate a known root formula.
	ErrUnknownStrategy = errors.New("quadratic: unknown strategy")
)

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ensureFinite returns x, or an *OutOfNumericRange error if x is ±Inf or NaN.
func ensureFinite(op string, x float64) (float64, error) {
	if !isFinite(x) {
		return x, &OutOfNumericRange{Op: op}
	}
	return x, nil
}
