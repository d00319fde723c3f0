// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic

import "math"

// solveSimple solves e with the textbook formula (-b ± √(b²-4ac)) / 2a.
func solveSimple(e Equation) ([]float64, error) {
	if roots, ok, err := handleCornerCases(e.a, e.b, e.c); ok {
		return roots, err
	}
	se := Simplify(e)
	a, b, c := se.a, se.b, se.c

	d, err := ensureFinite("discriminant", b*b-4*a*c)
	if err != nil {
		return nil, err
	}
	switch {
	case d < 0:
		return nil, nil
	case d == 0:
		x, err := ensureFinite("-b/2a", -(b/a)/2)
		if err != nil {
			return nil, err
		}
		return []float64{x}, nil
	}

	s := math.Sqrt(d)
	x0, err := ensureFinite("(-b+√d)/a", (-b+s)/a)
	if err != nil {
		return nil, err
	}
	x1, err := ensureFinite("(-b-√d)/a", (-b-s)/a)
	if err != nil {
		return nil, err
	}
	return []float64{x0 / 2, x1 / 2}, nil
}

// solveCitardauq solves e using x₁·x₂ = c/a to avoid catastrophic
// cancellation between -b and √(b²-4ac).
func solveCitardauq(e Equation) ([]float64, error) {
	if roots, ok, err := handleCornerCases(e.a, e.b, e.c); ok {
		return roots, err
	}
	se := Simplify(e)
	a, b, c := se.a, se.b, se.c

	d, err := ensureFinite("discriminant", b*b-4*a*c)
	if err != nil {
		return nil, err
	}
	switch {
	case d < 0:
		return nil, nil
	case d == 0:
		x, err := ensureFinite("-b/2a", -(b/a)/2)
		if err != nil {
			return nil, err
		}
		return []float64{x}, nil
	}

	// q = -(b + sign(b)·√d): b and sign(b)·√d have the same sign, so this
	// is never a subtraction of nearly equal values.
	var q float64
	if b > 0 {
		q = -b - math.Sqrt(d)
	} else {
		q = -b + math.Sqrt(d)
	}
	xc, err := ensureFinite("2c/q", 2*c/q)
	if err != nil {
		return nil, err
	}
	xa, err := ensureFinite("q/2a", q/a/2)
	if err != nil {
		return nil, err
	}
	if b > 0 {
		return []float64{xc, xa}, nil
	}
	return []float64{xa, xc}, nil
}
