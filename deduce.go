// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic

import (
	"math"

	"github.com/db47h/quadratic/numeric"
)

// maxDeduceSteps is the number of ULP steps DeduceError takes in each
// direction before giving up.
const maxDeduceSteps = 10000

// DeduceError estimates the error of roots computed by a Solver for e.
//
// For each root r, the sign of the polynomial is evaluated exactly at r. If
// it is zero, r is exact and its error is 0. Otherwise DeduceError walks away
// from r in both directions, one unit in the last place at a time, until the
// sign of the polynomial flips; the error is the distance walked. If the sign
// does not flip within 10000 steps, the error is reported as -1.
//
// DeduceError is slow; it is meant as a test oracle for the formula solvers.
func DeduceError(e Equation, roots []float64) []numeric.Value[float64] {
	vs := make([]numeric.Value[float64], len(roots))
	for i, r := range roots {
		vs[i] = numeric.New(r, deduceError(e, r))
	}
	return vs
}

func deduceError(e Equation, r float64) float64 {
	s0, ok := evalSign(e, r)
	if !ok {
		return -1
	}
	if s0 == 0 {
		return 0
	}
	lo, hi := r, r
	for i := 0; i < maxDeduceSteps; i++ {
		lo -= Ulp(lo)
		hi += Ulp(hi)
		if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			break
		}
		if s, ok := evalSign(e, lo); ok && s != s0 {
			return r - lo
		}
		if s, ok := evalSign(e, hi); ok && s != s0 {
			return hi - r
		}
	}
	return -1
}
