// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestHandleCornerCases(t *testing.T) {
	for _, test := range []struct {
		a, b, c float64
		roots   []float64
		ok      bool
		fail    bool
	}{
		{0, 0, 0, nil, true, false},
		{0, 0, 1, nil, true, false},
		{0, 1, 0, []float64{0}, true, false},
		{0, 1, 1, []float64{-1}, true, false},
		{0, 2, -4, []float64{2}, true, false},
		{0, 1e-300, 1e300, nil, true, true},
		{1, 0, 0, []float64{0}, true, false},
		{1, 0, 1, nil, true, false},
		{-1, 0, -1, nil, true, false},
		{1, 0, -1, []float64{-1, 1}, true, false},
		{1, 0, -4, []float64{-2, 2}, true, false},
		{-2, 0, 8, []float64{-2, 2}, true, false},
		{math.SmallestNonzeroFloat64, 0, -1e308, nil, true, true},
		{1, 1, 0, []float64{0, -1}, true, false},
		{2, -4, 0, []float64{0, 2}, true, false},
		{1e-300, 1e300, 0, nil, true, true},
		{1, 1, 1, nil, false, false},
		{1, -3, 2, nil, false, false},
	} {
		t.Run(fmt.Sprint(test.a, test.b, test.c), func(t *testing.T) {
			roots, ok, err := handleCornerCases(test.a, test.b, test.c)
			if ok != test.ok {
				t.Fatalf("ok = %v; want %v", ok, test.ok)
			}
			if test.fail {
				var oor *OutOfNumericRange
				if !errors.As(err, &oor) {
					t.Fatalf("err = %v; want *OutOfNumericRange", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !equalRoots(roots, test.roots) {
				t.Errorf("roots = %v; want %v", roots, test.roots)
			}
		})
	}
}

func equalRoots(x, y []float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
