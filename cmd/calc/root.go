// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mikecarlton/calc/internal/config"
	"github.com/mikecarlton/calc/internal/rpn"
	"github.com/mikecarlton/calc/internal/store"
	"github.com/mikecarlton/calc/pkg/num"
	"github.com/mikecarlton/calc/pkg/si"
	"github.com/mikecarlton/calc/pkg/units"
)

// app carries flag values and the state shared by the subcommands.
type app struct {
	cfgFile   string
	database  string
	precision int
	exact     bool
	verbose   bool
	oneline   bool

	cfg    *config.Config
	logger *log.Logger
	store  *store.Store
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "calc [flags] TOKEN...",
		Short:         "RPN calculator with physical units",
		Long:          rootLong,
		Example:       rootExample,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			defer a.close()
			return a.eval(cmd, args)
		},
	}

	// tokens such as "-" must not be read as flags once evaluation starts
	cmd.Flags().SetInterspersed(false)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/calc/config.yaml)")
	flags.StringVar(&a.database, "database", "", "unit database (default from config)")
	flags.IntVarP(&a.precision, "precision", "p", 4, "display precision for floating point numbers")
	flags.BoolVarP(&a.exact, "exact", "e", false, "parse numbers as exact rationals")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVarP(&a.oneline, "oneline", "o", false, "show final stack on one line")

	cmd.AddCommand(newUnitsCmd(a))
	cmd.AddCommand(newDefineCmd(a))
	cmd.AddCommand(newUndefineCmd(a))
	cmd.AddCommand(newImportCmd(a))

	return cmd
}

// execute runs cmd with args, reading a leading negative number as the first
// token rather than as a flag.
func execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	cmd.SetArgs(protectNumbers(cmd, args))
	return cmd.ExecuteContext(ctx)
}

// protectNumbers ends flag parsing with "--" before the first negative number
// that appears ahead of any other token, e.g. "calc -p 2 -5 3 +".
func protectNumbers(cmd *cobra.Command, args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case isNegativeNumber(arg):
			protected := make([]string, 0, len(args)+1)
			protected = append(protected, args[:i]...)
			protected = append(protected, "--")
			return append(protected, args[i:]...)
		case strings.HasPrefix(arg, "-"):
			if takesValue(cmd, arg) {
				i++
			}
		default:
			return args
		}
	}
	return args
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := num.Parse(arg, true)
	return err == nil
}

// takesValue reports whether a flag consumes the following argument.
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		name := arg[2:]
		if f = cmd.Flags().Lookup(name); f == nil {
			f = cmd.PersistentFlags().Lookup(name)
		}
	case len(arg) == 2:
		short := arg[1:]
		if f = cmd.Flags().ShorthandLookup(short); f == nil {
			f = cmd.PersistentFlags().ShorthandLookup(short)
		}
	}
	return f != nil && f.NoOptDefVal == ""
}

// init loads the config and lets explicitly set flags override it.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if flags.Changed("exact") {
		cfg.Exact = a.exact
	}
	if flags.Changed("database") {
		cfg.Database = a.database
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: config.AppName,
		Level:  cfg.Level(),
	})
	a.logger.Debug("loaded config", "precision", cfg.Precision, "database", cfg.Database, "exact", cfg.Exact)
	return nil
}

// openStore opens the unit database on first use.
func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	s, err := store.Open(ctx, a.cfg.Database, a.logger)
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// resolve looks in the catalog first and then in the user's definitions.
func (a *app) resolve(ctx context.Context) rpn.Resolver {
	return func(name string) (units.Unit, bool) {
		if u, ok := si.Lookup(name); ok {
			return u, true
		}
		s, err := a.openStore(ctx)
		if err != nil {
			a.logger.Warn("unit database unavailable", "err", err)
			return units.Unit{}, false
		}
		u, ok, err := s.Get(ctx, name)
		if err != nil {
			a.logger.Warn("failed to look up unit", "name", name, "err", err)
			return units.Unit{}, false
		}
		return u, ok
	}
}

func (a *app) eval(cmd *cobra.Command, args []string) error {
	calc := rpn.New(a.resolve(cmd.Context()),
		rpn.WithExact(a.cfg.Exact),
		rpn.WithLogger(a.logger),
	)

	if err := calc.Eval(args...); err != nil {
		if calc.Stack().Size() > 0 {
			a.logger.Info("stack at error", "stack", calc.Stack().Oneline(a.cfg.Precision))
		}
		return err
	}

	out := cmd.OutOrStdout()
	if a.oneline {
		fmt.Fprintln(out, calc.Stack().Oneline(a.cfg.Precision))
		return nil
	}
	calc.Stack().Print(out, a.cfg.Precision)
	return nil
}
