// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/db47h/quadratic"
)

var strategyHelp = map[quadratic.Strategy]string{
	quadratic.Citardauq:   "x₁·x₂ = c/a, float64",
	quadratic.Simple:      "(-b ± √(b²-4ac)) / 2a, float64",
	quadratic.SimpleAP:    "(-b ± √(b²-4ac)) / 2a, decimal",
	quadratic.CitardauqAP: "x₁·x₂ = c/a, decimal",
}

func strategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the root formulae",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range quadratic.Strategies {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12v %s\n", s, strategyHelp[s])
			}
			return nil
		},
	}
}
