// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic

import "math"

// Ulp returns the size of one unit in the last place of x: the distance
// between |x| and the next float64 away from zero, obtained by incrementing
// the bit pattern of |x|. For ±MaxFloat64 the distance to the next float64
// towards zero is returned instead. Ulp(±Inf) is +Inf and Ulp(NaN) is NaN.
func Ulp(x float64) float64 {
	x = math.Abs(x)
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return x
	case x == math.MaxFloat64:
		return x - math.Float64frombits(math.Float64bits(x)-1)
	}
	return math.Float64frombits(math.Float64bits(x)+1) - x
}
