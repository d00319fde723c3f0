// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/db47h/quadratic"
	"github.com/db47h/quadratic/internal/config"
)

// app holds the state shared by sub-commands once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *slog.Logger
}

// Execute runs the quadsolve command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := new(app)
	// flag values, applied over the configuration file when set.
	var (
		precision uint
		maxIter   int
		logLevel  string
	)
	root := &cobra.Command{
		Use:           "quadsolve",
		Short:         "Real roots of quadratic equations with error bounds",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if a.configPath != "" {
				var err error
				if cfg, err = config.Load(a.configPath); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("precision") {
				cfg.Precision = precision
			}
			if flags.Changed("max-iterations") {
				cfg.MaxIterations = maxIter
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if a.verbose {
				cfg.LogLevel = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			level, _ := config.ParseLevel(cfg.LogLevel)
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			a.cfg = cfg
			a.log.Debug("configuration", "strategy", cfg.Strategy, "precision", cfg.Precision,
				"max_iterations", cfg.MaxIterations, "tolerance", cfg.Tolerance)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "configuration file (.toml, .yaml or .yml)")
	pf.UintVarP(&precision, "precision", "p", 0, "decimal digits of precision (default depends on the solver)")
	pf.IntVar(&maxIter, "max-iterations", quadratic.DefaultMaxIterations, "maximum Newton iterations per root")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug output, same as --log-level debug")

	root.AddCommand(a.solveCmd(), a.refineCmd(), a.evalCmd(), strategiesCmd())
	return root
}

// parseFloats parses command line arguments as float64 values.
func parseFloats(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, s := range args {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", s)
		}
		xs[i] = x
	}
	return xs, nil
}

// equation parses the a, b and c arguments.
func equation(args []string) (quadratic.Equation, error) {
	xs, err := parseFloats(args[:3])
	if err != nil {
		return quadratic.Equation{}, err
	}
	return quadratic.New(xs[0], xs[1], xs[2]), nil
}
