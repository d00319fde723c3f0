// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"testing"
)

func TestValue(t *testing.T) {
	v := New(1.5, 0.25)
	if v.Value() != 1.5 || v.Error() != 0.25 {
		t.Fatalf("New(1.5, 0.25) = %v", v)
	}
	if s := v.String(); s != "1.5 ± 0.25" {
		t.Errorf("String() = %q", s)
	}
	if s := New(3, 1).String(); s != "3 ± 1" {
		t.Errorf("String() = %q", s)
	}
}

func TestValueEqual(t *testing.T) {
	for _, test := range []struct {
		x, y Value[float64]
		want bool
	}{
		{New(1.0, 0.0), New(1.0, 0.0), true},
		{New(1.0, 0.0), New(1.0, 1e-16), false},
		{New(1.0, 0.0), New(-1.0, 0.0), false},
		{New(math.NaN(), 0), New(math.NaN(), 0), false},
	} {
		if got := test.x.Equal(test.y); got != test.want {
			t.Errorf("%v.Equal(%v) = %v; want %v", test.x, test.y, got, test.want)
		}
	}

	// structural hashing
	m := map[Value[float64]]int{New(2.0, 0.5): 1}
	if m[New(2.0, 0.5)] != 1 {
		t.Error("equal values must hash to the same key")
	}
}

func TestRelativeError(t *testing.T) {
	for _, test := range []struct {
		v    Value[float64]
		want float64
	}{
		{New(2.0, 1.0), 0.5},
		{New(-4.0, 1.0), 0.25},
		{New(0.0, 0.0), 0},
		{New(0.0, math.SmallestNonzeroFloat64), 1},
	} {
		if got := test.v.RelativeError(); got != test.want {
			t.Errorf("%v.RelativeError() = %g; want %g", test.v, got, test.want)
		}
	}
}
