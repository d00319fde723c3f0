// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/db47h/quadratic"
)

func (a *app) refineCmd() *cobra.Command {
	var tolerance float64
	cmd := &cobra.Command{
		Use:   "refine [flags] -- a b c",
		Short: "Solve a·x² + b·x + c = 0 to a maximum relative error",
		Long: `Refine computes the roots in decimal arithmetic, polishes them with
Newton's method until the relative step falls below the tolerance, and
prints each root with a bound on its absolute error.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := equation(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("tolerance") {
				a.cfg.Tolerance = tolerance
			}
			r := quadratic.NewRefiner(a.cfg.Solver(a.log))
			roots, err := r.Solve(e, a.cfg.Tolerance)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(roots) == 0 {
				fmt.Fprintln(out, "no real roots")
			}
			for _, v := range roots {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&tolerance, "tolerance", "t", 0, "maximum relative error (default from configuration, 1e-20)")
	return cmd
}
