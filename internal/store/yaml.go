// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package store

import (
	"context"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/mikecarlton/calc/pkg/dimension"
	"github.com/mikecarlton/calc/pkg/num"
	"github.com/mikecarlton/calc/pkg/units"
)

// Resolver finds a unit by name.
type Resolver func(name string) (units.Unit, bool)

// File is a set of unit definitions, e.g.
//
//	units:
//	  - name: furlong
//	    of: ft
//	    factor: "660"
//	  - name: knot
//	    label: kn
//	    dimensions: {m: 1, s: -1}
//	    multiplier: "1852/3600"
type File struct {
	Units []Entry `yaml:"units"`
}

// Entry defines one unit either as a multiple of an existing unit (Of and
// Factor) or from explicit dimensions, multiplier and offset.
type Entry struct {
	Name       string         `yaml:"name"`
	Label      string         `yaml:"label,omitempty"`
	Of         string         `yaml:"of,omitempty"`
	Factor     string         `yaml:"factor,omitempty"`
	Dimensions map[string]int `yaml:"dimensions,omitempty"`
	Multiplier string         `yaml:"multiplier,omitempty"`
	Offset     string         `yaml:"offset,omitempty"`
}

func ReadFile(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return File{}, nil
		}
		return File{}, fmt.Errorf("failed to parse unit file: %w", err)
	}
	return f, nil
}

func WriteFile(w io.Writer, f File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to write unit file: %w", err)
	}
	return enc.Close()
}

// Unit builds the unit an entry describes. The label defaults to the name.
func (e Entry) Unit(resolve Resolver) (units.Unit, error) {
	if e.Name == "" {
		return units.Unit{}, fmt.Errorf("unit entry without a name")
	}
	label := e.Label
	if label == "" {
		label = e.Name
	}

	if e.Of != "" {
		if len(e.Dimensions) > 0 || e.Multiplier != "" || e.Offset != "" {
			return units.Unit{}, fmt.Errorf("unit %q: 'of' cannot be combined with dimensions, multiplier or offset", e.Name)
		}
		base, ok := resolve(e.Of)
		if !ok {
			return units.Unit{}, fmt.Errorf("unit %q: unknown unit %q", e.Name, e.Of)
		}
		factor, err := parseOr(e.Factor, num.One)
		if err != nil {
			return units.Unit{}, fmt.Errorf("unit %q factor: %w", e.Name, err)
		}
		return units.Alias(base, label, factor), nil
	}

	if e.Factor != "" {
		return units.Unit{}, fmt.Errorf("unit %q: 'factor' requires 'of'", e.Name)
	}

	exps := make(map[dimension.Dimension]dimension.Exponent, len(e.Dimensions))
	for name, power := range e.Dimensions {
		d, err := dimension.ParseDimension(name)
		if err != nil {
			return units.Unit{}, fmt.Errorf("unit %q: %w", e.Name, err)
		}
		if power <= math.MinInt32 || power > math.MaxInt32 {
			return units.Unit{}, fmt.Errorf("unit %q: exponent %d for %s out of range", e.Name, power, d)
		}
		exps[d] = dimension.Exponent(power)
	}
	multiplier, err := parseOr(e.Multiplier, num.One)
	if err != nil {
		return units.Unit{}, fmt.Errorf("unit %q multiplier: %w", e.Name, err)
	}
	if multiplier.IsZero() {
		return units.Unit{}, fmt.Errorf("unit %q: multiplier must be non-zero", e.Name)
	}
	offset, err := parseOr(e.Offset, num.Zero)
	if err != nil {
		return units.Unit{}, fmt.Errorf("unit %q offset: %w", e.Name, err)
	}

	return units.Affine(exps, multiplier, offset, label), nil
}

// EntryFor describes u with explicit dimensions so it can be re-imported
// without the catalog.
func EntryFor(name string, u units.Unit) Entry {
	e := Entry{
		Name:       name,
		Label:      u.Label(),
		Multiplier: u.Multiplier().String(),
	}
	if e.Label == name {
		e.Label = ""
	}
	if !u.Offset().IsZero() {
		e.Offset = u.Offset().String()
	}
	for _, d := range dimension.Dimensions() {
		if exp := u.Dimensions().Get(d); exp != 0 {
			if e.Dimensions == nil {
				e.Dimensions = make(map[string]int)
			}
			e.Dimensions[d.Symbol()] = int(exp)
		}
	}
	return e
}

func parseOr(s string, fallback num.Number) (num.Number, error) {
	if s == "" {
		return fallback, nil
	}
	return num.Parse(s, true)
}

// Import defines every entry in f. Entries may refer to units defined earlier
// in the same file. Nothing is saved unless every entry resolves.
func (s *Store) Import(ctx context.Context, f File, resolve Resolver) ([]Definition, error) {
	pending := make(map[string]units.Unit, len(f.Units))
	lookup := func(name string) (units.Unit, bool) {
		if u, ok := pending[name]; ok {
			return u, true
		}
		return resolve(name)
	}

	defs := make([]Definition, 0, len(f.Units))
	for _, e := range f.Units {
		u, err := e.Unit(lookup)
		if err != nil {
			return nil, err
		}
		pending[e.Name] = u
		defs = append(defs, Definition{Name: e.Name, Unit: u})
	}

	for _, def := range defs {
		if err := s.Define(ctx, def.Name, def.Unit); err != nil {
			return nil, err
		}
	}

	s.logger.Info("imported units", "count", len(defs))
	return defs, nil
}
