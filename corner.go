// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic

import "math"

// handleCornerCases solves a·x² + b·x + c = 0 when at least one of a, b or c
// is zero. ok is false if none of them is zero, in which case the general
// formula must be used.
func handleCornerCases(a, b, c float64) (roots []float64, ok bool, err error) {
	switch {
	case a == 0:
		switch {
		case b == 0:
			// c = 0: either no solution or every x, which we cannot
			// represent.
			return nil, true, nil
		case c == 0:
			// b·x = 0
			return []float64{0}, true, nil
		}
		// b·x + c = 0
		x, err := ensureFinite("-c/b", -c/b)
		if err != nil {
			return nil, true, err
		}
		return []float64{x}, true, nil

	case b == 0:
		switch {
		case c == 0:
			// a·x² = 0
			return []float64{0}, true, nil
		case (c > 0) == (a > 0):
			// x² = -c/a < 0
			return nil, true, nil
		}
		// x² = -c/a > 0. Taking the roots separately keeps -c/a from
		// under- or overflowing when a and c are far apart.
		x, err := ensureFinite("√(-c/a)", math.Sqrt(math.Abs(c))/math.Sqrt(math.Abs(a)))
		if err != nil {
			return nil, true, err
		}
		return []float64{-x, x}, true, nil

	case c == 0:
		// (a·x + b)·x = 0
		x, err := ensureFinite("-b/a", -b/a)
		if err != nil {
			return nil, true, err
		}
		return []float64{0, x}, true, nil
	}
	return nil, false, nil
}
