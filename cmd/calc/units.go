// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikecarlton/calc/internal/enumerable"
	"github.com/mikecarlton/calc/internal/store"
	"github.com/mikecarlton/calc/pkg/num"
	"github.com/mikecarlton/calc/pkg/si"
	"github.com/mikecarlton/calc/pkg/units"
)

type listing struct {
	name   string
	symbol string
	unit   units.Unit
	user   bool
}

func newUnitsCmd(a *app) *cobra.Command {
	var (
		dim    string
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List built-in and user-defined units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()
			return a.listUnits(cmd, dim, asYAML)
		},
	}

	cmd.Flags().StringVar(&dim, "dim", "", "only units with the dimensions of this unit or symbol (e.g. ft or m*s^-1)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "write the units as an importable unit file")

	return cmd
}

func (a *app) listUnits(cmd *cobra.Command, dim string, asYAML bool) error {
	ctx := cmd.Context()

	listings := enumerable.Map(si.All(), func(e si.Entry) listing {
		return listing{name: e.Name, symbol: e.Symbol, unit: e.Unit}
	})

	s, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defs, err := s.List(ctx)
	if err != nil {
		return err
	}
	listings = append(listings, enumerable.Map(defs, func(d store.Definition) listing {
		return listing{name: d.Name, symbol: d.Unit.Symbol(), unit: d.Unit, user: true}
	})...)

	if dim != "" {
		matches := func(l listing) bool { return l.unit.Dimensions().Symbol() == dim }
		if u, ok := a.resolve(ctx)(dim); ok {
			matches = func(l listing) bool { return l.unit.Compatible(u) }
		}
		listings = enumerable.Filter(listings, matches)
		if len(listings) == 0 {
			return fmt.Errorf("no units with dimensions %q", dim)
		}
	}

	out := cmd.OutOrStdout()
	if asYAML {
		return store.WriteFile(out, store.File{
			Units: enumerable.Map(listings, func(l listing) store.Entry {
				return store.EntryFor(l.name, l.unit)
			}),
		})
	}

	printListings(out, listings)
	return nil
}

// printListings writes the units grouped by dimensionality.
func printListings(w io.Writer, listings []listing) {
	keys, groups := enumerable.GroupBy(listings, func(l listing) string {
		return l.unit.Dimensions().Symbol()
	})

	for i, key := range keys {
		if i > 0 {
			fmt.Fprintln(w)
		}
		heading := key
		if heading == "" {
			heading = "dimensionless"
		}
		fmt.Fprintln(w, heading)
		for _, l := range groups[key] {
			line := fmt.Sprintf("  %s (%s)", l.name, l.symbol)
			if l.user {
				line += " *"
			}
			fmt.Fprintln(w, line)
		}
	}
}

func newDefineCmd(a *app) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:     "define NAME FACTOR UNIT",
		Short:   "Define a unit as a multiple of another",
		Example: "  calc define furlong 660 ft\n  calc define --label nmi nautical-mile 1852 m",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			name, factor, of := args[0], args[1], args[2]

			if _, ok := si.Lookup(name); ok {
				return fmt.Errorf("%q is a built-in unit", name)
			}
			f, err := num.Parse(factor, true)
			if err != nil {
				return err
			}
			if f.IsZero() {
				return fmt.Errorf("factor for %q must be non-zero", name)
			}
			base, ok := a.resolve(cmd.Context())(of)
			if !ok {
				return fmt.Errorf("unknown unit %q", of)
			}
			if label == "" {
				label = name
			}

			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.Define(cmd.Context(), name, units.Alias(base, label, f)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s %s\n", name, f, of)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "symbol shown for the unit (default NAME)")

	return cmd
}

func newUndefineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "undefine NAME",
		Short: "Remove a user-defined unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			removed, err := s.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no user-defined unit %q", args[0])
			}
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Define the units in a YAML unit file ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open unit file: %w", err)
				}
				defer f.Close()
				r = f
			}

			file, err := store.ReadFile(r)
			if err != nil {
				return err
			}
			for _, e := range file.Units {
				if _, ok := si.Lookup(e.Name); ok {
					return fmt.Errorf("%q is a built-in unit", e.Name)
				}
			}

			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defs, err := s.Import(cmd.Context(), file, store.Resolver(a.resolve(cmd.Context())))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d units\n", len(defs))
			return nil
		},
	}
}
