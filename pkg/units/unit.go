// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"fmt"

	"github.com/mikecarlton/calc/pkg/dimension"
	"github.com/mikecarlton/calc/pkg/num"
)

// Unit is an affine scale tagged with a dimensionality:
//
//	SI value = raw value * multiplier + offset
//
// Units are immutable; the zero value is not usable, build units with New,
// Base, Affine or Alias.
type Unit struct {
	dims       dimension.Vector
	multiplier num.Number
	offset     num.Number
	label      string
}

type Option func(*Unit)

func WithMultiplier(m num.Number) Option {
	return func(u *Unit) { u.multiplier = m }
}

func WithOffset(o num.Number) Option {
	return func(u *Unit) { u.offset = o }
}

func WithLabel(label string) Option {
	return func(u *Unit) { u.label = label }
}

// New returns a unit with multiplier 1 and offset 0 unless overridden.
func New(dims dimension.Vector, opts ...Option) Unit {
	u := Unit{
		dims:       dims,
		multiplier: num.One,
		offset:     num.Zero,
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// Base returns a coherent SI unit for the given exponents.
func Base(exponents map[dimension.Dimension]dimension.Exponent, label string) Unit {
	return New(dimension.FillDefaults(exponents), WithLabel(label))
}

// Affine returns a unit with an explicit multiplier and offset, e.g. degrees
// Celsius.
func Affine(exponents map[dimension.Dimension]dimension.Exponent, multiplier, offset num.Number, label string) Unit {
	return New(dimension.FillDefaults(exponents), WithMultiplier(multiplier), WithOffset(offset), WithLabel(label))
}

// Alias returns a unit sharing u's dimensionality and offset whose multiplier
// is u's multiplied by factor.
func Alias(u Unit, label string, factor num.Number) Unit {
	return Unit{
		dims:       u.dims,
		multiplier: u.multiplier.Mul(factor),
		offset:     u.offset,
		label:      label,
	}
}

// Must panics if err is non-nil. It is meant for package-level unit tables.
func Must(u Unit, err error) Unit {
	if err != nil {
		panic(err)
	}
	return u
}

func (u Unit) Dimensions() dimension.Vector { return u.dims }
func (u Unit) Multiplier() num.Number      { return u.multiplier }
func (u Unit) Offset() num.Number          { return u.offset }
func (u Unit) Label() string               { return u.label }

// Compatible reports whether quantities in u can be read back in other.
func (u Unit) Compatible(other Unit) bool {
	return u.dims.Equal(other.dims)
}

// String returns the label, or the dimensionality spelled with base unit
// names when there is none.
func (u Unit) String() string {
	if u.label != "" {
		return u.label
	}
	return u.dims.String()
}

// Symbol returns the label, or the dimensionality spelled with SI symbols.
func (u Unit) Symbol() string {
	if u.label != "" {
		return u.label
	}
	return u.dims.Symbol()
}

// Times returns the product unit. Offsets do not compose under
// multiplication, so units with a non-zero offset are rejected.
func (u Unit) Times(other Unit) (Unit, error) {
	if err := u.checkLinear("times", other); err != nil {
		return Unit{}, err
	}
	return New(u.dims.CombineAdd(other.dims), WithMultiplier(u.multiplier.Mul(other.multiplier))), nil
}

// Per returns the quotient unit.
func (u Unit) Per(other Unit) (Unit, error) {
	if err := u.checkLinear("per", other); err != nil {
		return Unit{}, err
	}
	m, err := u.multiplier.Div(other.multiplier)
	if err != nil {
		return Unit{}, fmt.Errorf("per %s: %w", other, err)
	}
	return New(u.dims.CombineSub(other.dims), WithMultiplier(m)), nil
}

// Over is an alias for Per.
func (u Unit) Over(other Unit) (Unit, error) {
	return u.Per(other)
}

func (u Unit) Squared() (Unit, error) {
	return u.Times(u)
}

func (u Unit) Cubed() (Unit, error) {
	sq, err := u.Squared()
	if err != nil {
		return Unit{}, err
	}
	return u.Times(sq)
}

func (u Unit) checkLinear(op string, other Unit) error {
	for _, x := range []Unit{u, other} {
		if !x.offset.IsZero() {
			return fmt.Errorf("%s: unit %s has offset %s: %w", op, x, x.offset, ErrInvalidOperation)
		}
	}
	return nil
}

// Quantity converts a raw float in this unit to a quantity.
func (u Unit) Quantity(raw float64) Quantity {
	return u.QuantityOf(num.Float(raw))
}

// QuantityOf converts a raw number in this unit to a quantity, staying exact
// when raw and the unit's factors are exact.
func (u Unit) QuantityOf(raw num.Number) Quantity {
	return Quantity{
		dims:  u.dims,
		value: raw.Mul(u.multiplier).Add(u.offset),
	}
}

// fromSI inverts the unit's transform.
func (u Unit) fromSI(value num.Number) (num.Number, error) {
	return value.Sub(u.offset).Div(u.multiplier)
}
