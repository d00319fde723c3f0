// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadratic

import (
	"fmt"
	"log/slog"
	"strings"
)

// Strategy identifies a root formula.
type Strategy int

// These constants define the available root formulae.
const (
	Citardauq   Strategy = iota // x₁·x₂ = c/a, avoids catastrophic cancellation
	Simple                      // (-b ± √(b²-4ac)) / 2a
	SimpleAP                    // Simple in decimal arithmetic
	CitardauqAP                 // Citardauq in decimal arithmetic
)

//go:generate stringer -type=Strategy

// Strategies lists all strategies.
var Strategies = []Strategy{Citardauq, Simple, SimpleAP, CitardauqAP}

// ParseStrategy returns the strategy with the given name. Names are matched
// case-insensitively, ignoring '-' and '_', so that "simple-ap", "SIMPLE_AP"
// and "SimpleAP" all designate SimpleAP.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(name))
	for _, s := range Strategies {
		if strings.ToLower(s.String()) == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// A Solver computes the real roots of a quadratic equation. It returns 0, 1
// or 2 roots, or an *OutOfNumericRange error. Solvers are immutable and safe
// for concurrent use.
type Solver interface {
	Solve(e Equation) ([]float64, error)
}

// The SolverFunc type is an adapter to allow the use of ordinary functions as
// Solvers.
type SolverFunc func(e Equation) ([]float64, error)

// Solve returns f(e).
func (f SolverFunc) Solve(e Equation) ([]float64, error) {
	return f(e)
}

// Config holds the settings shared by solvers and refiners. The zero value
// is ready to use.
type Config struct {
	// Precision is the working precision, in decimal digits, of decimal
	// arithmetic. If 0, DefaultPrec is used by solvers and
	// DefaultRefinePrec by refiners.
	Precision uint

	// MaxIterations caps the number of Newton iterations per root in a
	// Refiner. If 0, DefaultMaxIterations is used.
	MaxIterations int

	// Logger receives debug output. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultMaxIterations is the default cap on Newton iterations per root.
const DefaultMaxIterations = 10000

// DefaultConfig returns a Config with every default made explicit. Precision
// is left at 0 since solvers and refiners use different defaults.
func DefaultConfig() Config {
	return Config{
		MaxIterations: DefaultMaxIterations,
		Logger:        newNopLogger(),
	}
}

func (c Config) prec(def uint) uint {
	if c.Precision == 0 {
		return def
	}
	return c.Precision
}

func (c Config) maxIterations() int {
	if c.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return c.MaxIterations
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return newNopLogger()
	}
	return c.Logger
}

// Solver returns the solver for strategy s.
func (c Config) Solver(s Strategy) (Solver, error) {
	switch s {
	case Simple:
		return SolverFunc(solveSimple), nil
	case Citardauq:
		return SolverFunc(solveCitardauq), nil
	case SimpleAP:
		prec := c.prec(DefaultPrec)
		return SolverFunc(func(e Equation) ([]float64, error) {
			return solveSimpleAP(e, prec)
		}), nil
	case CitardauqAP:
		prec := c.prec(DefaultPrec)
		return SolverFunc(func(e Equation) ([]float64, error) {
			return solveCitardauqAP(e, prec)
		}), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
}

// NewSolver returns the solver for strategy s with default settings.
func NewSolver(s Strategy) (Solver, error) {
	return Config{}.Solver(s)
}
