// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands defines the quadsolve CLI.
//
// Commands
//
//   - solve        Solve an equation with one or all root formulae
//   - refine       Solve an equation to a given relative error
//   - eval         Evaluate the polynomial at a point
//   - strategies   List the available root formulae
//
// # Configuration
//
// Settings come from an optional TOML or YAML file given with --config, then
// from command line flags, which take precedence. Logs go to stderr.
package commands
