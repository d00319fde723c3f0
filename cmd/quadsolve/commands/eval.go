// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/db47h/quadratic"
	"github.com/db47h/quadratic/context"
)

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [flags] -- a b c x",
		Short: "Evaluate a·x² + b·x + c at x",
		Long: `Eval prints the value of the polynomial at x computed in float64
arithmetic, followed by its value in decimal arithmetic.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseFloats(args)
			if err != nil {
				return err
			}
			e := quadratic.New(xs[0], xs[1], xs[2])
			ctx := context.New(a.cfg.Precision)
			y := quadratic.EvalDecimal(ctx, e, ctx.NewFloat64(xs[3]))
			if err := ctx.Err(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "float64: %v\n", quadratic.Eval(e, xs[3]))
			fmt.Fprintf(out, "decimal: %s\n", y.Text('G'))
			return nil
		},
	}
}
