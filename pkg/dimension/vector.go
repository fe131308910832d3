// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package dimension

import (
	"fmt"
	"strings"
)

// Dimension is one of the seven SI base dimensions.
type Dimension int

const (
	Length Dimension = iota
	Time
	Temperature
	Mass
	Current
	LuminousIntensity
	Amount
	NumDimensions
)

type baseDef struct {
	name   string
	symbol string
}

var bases = [NumDimensions]baseDef{
	Length:            {name: "meter", symbol: "m"},
	Time:              {name: "second", symbol: "s"},
	Temperature:       {name: "kelvin", symbol: "K"},
	Mass:              {name: "kg", symbol: "kg"},
	Current:           {name: "ampere", symbol: "A"},
	LuminousIntensity: {name: "candela", symbol: "cd"},
	Amount:            {name: "mol", symbol: "mol"},
}

// Dimensions lists every base dimension in canonical order.
func Dimensions() []Dimension {
	dims := make([]Dimension, NumDimensions)
	for i := range dims {
		dims[i] = Dimension(i)
	}
	return dims
}

func (d Dimension) valid() bool {
	return d >= 0 && d < NumDimensions
}

// String returns the SI base unit name for d, e.g. "meter".
func (d Dimension) String() string {
	if !d.valid() {
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
	return bases[d].name
}

// Symbol returns the SI base unit symbol for d, e.g. "m".
func (d Dimension) Symbol() string {
	if !d.valid() {
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
	return bases[d].symbol
}

// ParseDimension accepts either a base unit name or symbol.
func ParseDimension(s string) (Dimension, error) {
	for i, b := range bases {
		if s == b.name || s == b.symbol {
			return Dimension(i), nil
		}
	}
	return 0, fmt.Errorf("unknown base dimension %q", s)
}

// Vector holds one exponent per base dimension. The zero value is the
// dimensionless vector.
type Vector [NumDimensions]Exponent

// Scalar is the dimensionless vector.
var Scalar Vector

// FillDefaults completes a partial set of exponents, giving every absent
// dimension an exponent of zero. Keys that are not one of the seven base
// dimensions are ignored; use ParseDimension to validate untrusted names.
func FillDefaults(partial map[Dimension]Exponent) Vector {
	var v Vector
	for d, e := range partial {
		if d.valid() {
			v[d] = e
		}
	}
	return v
}

// Of is shorthand for a vector with a single non-zero dimension.
func Of(d Dimension, e Exponent) Vector {
	return FillDefaults(map[Dimension]Exponent{d: e})
}

// CombineAdd adds exponents per dimension; used when multiplying.
func (v Vector) CombineAdd(other Vector) Vector {
	var result Vector
	for i := range v {
		result[i] = sum(v[i], other[i])
	}
	return result
}

// CombineSub subtracts exponents per dimension; used when dividing.
func (v Vector) CombineSub(other Vector) Vector {
	var result Vector
	for i := range v {
		result[i] = diff(v[i], other[i])
	}
	return result
}

// Equal reports whether every component matches exactly.
func (v Vector) Equal(other Vector) bool {
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

func (v Vector) IsZero() bool {
	return v.Equal(Scalar)
}

// Bounded reports whether every component lies in [MinExponent, MaxExponent].
func (v Vector) Bounded() bool {
	for _, e := range v {
		if !e.Bounded() {
			return false
		}
	}
	return true
}

// Saturated maps each component into the bounded range, replacing anything
// beyond it with Unbounded. Comparing saturated vectors is the check a
// bounded exponent algebra can make; CombineAdd followed by Saturated agrees
// with Add applied to saturated components whenever the inputs are bounded.
func (v Vector) Saturated() Vector {
	var result Vector
	for i, e := range v {
		if e.Bounded() {
			result[i] = e
		} else {
			result[i] = Unbounded
		}
	}
	return result
}

// Get returns the exponent for d.
func (v Vector) Get(d Dimension) Exponent {
	if !d.valid() {
		return 0
	}
	return v[d]
}

// String renders the vector with base unit names, e.g. "meter*second^-2".
// The dimensionless vector renders as the empty string.
func (v Vector) String() string {
	return v.format(Dimension.String)
}

// Symbol renders the vector with base unit symbols, e.g. "m*s^-2".
func (v Vector) Symbol() string {
	return v.format(Dimension.Symbol)
}

func (v Vector) format(name func(Dimension) string) string {
	var parts []string
	for i, e := range v {
		if e == 0 {
			continue
		}
		if e == 1 {
			parts = append(parts, name(Dimension(i)))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s^%s", name(Dimension(i)), e))
	}
	return strings.Join(parts, "*")
}
