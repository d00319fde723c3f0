// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quadsolve computes the real roots of a·x² + b·x + c = 0 from the
// command line.
//
// Negative coefficients must follow a "--" argument so that they are not
// taken for flags:
//
//	quadsolve solve -- 1 -3 2
//	quadsolve refine -t 1e-30 -- -1 1 1
package main
