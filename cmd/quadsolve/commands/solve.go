// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/db47h/quadratic"
)

func (a *app) solveCmd() *cobra.Command {
	var (
		strategy string
		all      bool
		deduce   bool
	)
	cmd := &cobra.Command{
		Use:   "solve [flags] -- a b c",
		Short: "Solve a·x² + b·x + c = 0 with a root formula",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := equation(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("strategy") {
				a.cfg.Strategy = strategy
			}
			s, err := quadratic.ParseStrategy(a.cfg.Strategy)
			if err != nil {
				return err
			}
			strategies := []quadratic.Strategy{s}
			if all {
				strategies = quadratic.Strategies
			}

			out := cmd.OutOrStdout()
			for _, s := range strategies {
				solver, err := a.cfg.Solver(a.log).Solver(s)
				if err != nil {
					return err
				}
				a.log.Debug("solving", "equation", e, "strategy", s)
				roots, err := solver.Solve(e)
				if all {
					fmt.Fprintf(out, "%v:\n", s)
				}
				if err != nil {
					if !all {
						return err
					}
					fmt.Fprintf(out, "  %v\n", err)
					continue
				}
				printRoots(out, e, roots, deduce, all)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "root formula (see strategies)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "solve with every root formula")
	cmd.Flags().BoolVarP(&deduce, "deduce", "d", false, "estimate the error of each root")
	return cmd
}

func printRoots(w io.Writer, e quadratic.Equation, roots []float64, deduce, indent bool) {
	prefix := ""
	if indent {
		prefix = "  "
	}
	if len(roots) == 0 {
		fmt.Fprintf(w, "%sno real roots\n", prefix)
		return
	}
	if deduce {
		for _, v := range quadratic.DeduceError(e, roots) {
			fmt.Fprintf(w, "%s%v\n", prefix, v)
		}
		return
	}
	for _, x := range roots {
		fmt.Fprintf(w, "%s%v\n", prefix, x)
	}
}
