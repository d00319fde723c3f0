// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric provides a numeric value paired with its error.
package numeric

import (
	"fmt"
	"math"
)

// Number is the set of types a Value can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// A Value is an immutable numeric value together with its absolute error.
//
// Values are comparable: two values are equal if both their value and error
// are equal, and they can be used as map keys.
type Value[T Number] struct {
	value T
	err   T
}

// New returns the value v ± err.
func New[T Number](v, err T) Value[T] {
	return Value[T]{value: v, err: err}
}

// Value returns the numeric value of v.
func (v Value[T]) Value() T { return v.value }

// Error returns the absolute error of v.
func (v Value[T]) Error() T { return v.err }

// Equal reports whether v and w have the same value and error.
func (v Value[T]) Equal(w Value[T]) bool {
	return v == w
}

// RelativeError returns |error/value|. For a zero value, the error is divided
// by the smallest positive float64 instead.
func (v Value[T]) RelativeError() float64 {
	x := math.Abs(float64(v.value))
	if x == 0 {
		x = math.SmallestNonzeroFloat64
	}
	return math.Abs(float64(v.err)) / x
}

func (v Value[T]) String() string {
	return fmt.Sprintf("%v ± %v", v.value, v.err)
}
