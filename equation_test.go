// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic

import (
	"errors"
	"math"
	"testing"
)

func TestEquationString(t *testing.T) {
	for _, test := range []struct {
		e    Equation
		want string
	}{
		{New(1, 2, 3), "1 * x^2 + 2 * x + 3"},
		{New(-1, 0.5, 1e200), "-1 * x^2 + 0.5 * x + 1e+200"},
		{Equation{}, "0 * x^2 + 0 * x + 0"},
	} {
		if got := test.e.String(); got != test.want {
			t.Errorf("String() = %q; want %q", got, test.want)
		}
	}
}

func TestEquationDecimals(t *testing.T) {
	e := New(0.5, -3, 0.1)
	if s := e.ADec().String(); s != "0.5" {
		t.Errorf("ADec() = %s", s)
	}
	if s := e.BDec().String(); s != "-3" {
		t.Errorf("BDec() = %s", s)
	}
	if s := e.CDec().String(); s != "0.1000000000000000055511151231257827021181583404541015625" {
		t.Errorf("CDec() = %s", s)
	}

	// accessors return copies
	e.ADec().SetInt64(42)
	if s := e.ADec().String(); s != "0.5" {
		t.Errorf("ADec() modified by caller: %s", s)
	}

	var z Equation
	if s := z.CDec().String(); s != "0" {
		t.Errorf("zero Equation CDec() = %s", s)
	}
}

func TestSimplify(t *testing.T) {
	for _, test := range []struct {
		in, want Equation
	}{
		{New(4, 8, 16), New(1, 2, 4)},
		{New(1, -3, 2), New(1, -3, 2)},
		{New(0.25, 0.5, -0.75), New(1, 2, -3)},
		{New(-1e-200, 3e-200, -2e-200), New(math.Ldexp(-1e-200, 665), math.Ldexp(3e-200, 665), math.Ldexp(-2e-200, 665))},
		// range too wide: unchanged
		{New(1e-300, 1, 1e300), New(1e-300, 1, 1e300)},
	} {
		got := Simplify(test.in)
		if got.A() != test.want.A() || got.B() != test.want.B() || got.C() != test.want.C() {
			t.Errorf("Simplify(%v) = %v; want %v", test.in, got, test.want)
		}
		if got.ADec().Cmp(test.want.ADec()) != 0 || got.CDec().Cmp(test.want.CDec()) != 0 {
			t.Errorf("Simplify(%v): decimal coefficients out of sync", test.in)
		}
		// idempotence
		if again := Simplify(got); again.A() != got.A() || again.B() != got.B() || again.C() != got.C() {
			t.Errorf("Simplify(Simplify(%v)) = %v; want %v", test.in, again, got)
		}
	}
}

func TestSimplifyRoots(t *testing.T) {
	// Without scaling, b² overflows.
	e := New(1e200, -3e200, 2e200)
	roots, err := solveSimple(e)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{2, 1}
	if len(roots) != len(want) {
		t.Fatalf("solveSimple(%v) = %v; want %v", e, roots, want)
	}
	for i := range want {
		if math.Abs(roots[i]-want[i]) > 1e-12 {
			t.Errorf("solveSimple(%v) = %v; want %v", e, roots, want)
		}
	}
}

// Solvers scale their input, so solving a simplified equation must give the
// same result as solving the original.
func TestSimplifySolve(t *testing.T) {
	eqs := append([]Equation{
		New(1e200, -3e200, 2e200),
		New(1e-200, -3e-200, 2e-200),
		New(1e-300, 1e300, 1),
		New(0, 2, -1),
		New(1, 0, -4),
		New(3, 2, 0),
	}, corpus...)
	for _, s := range Strategies {
		solve := mustSolver(t, Config{}, s)
		for _, e := range eqs {
			want, wantErr := solve.Solve(e)
			got, err := solve.Solve(Simplify(e))
			var oor, wantOOR *OutOfNumericRange
			if (err == nil) != (wantErr == nil) || errors.As(err, &oor) != errors.As(wantErr, &wantOOR) {
				t.Errorf("%v: Solve(Simplify(%v)) err = %v; Solve err = %v", s, e, err, wantErr)
				continue
			}
			if !equalRoots(got, want) {
				t.Errorf("%v: Solve(Simplify(%v)) = %v; Solve = %v", s, e, got, want)
			}
		}
	}
}
