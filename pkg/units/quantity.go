// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"fmt"

	"github.com/mikecarlton/calc/pkg/dimension"
	"github.com/mikecarlton/calc/pkg/num"
)

// Quantity is a value tagged with its dimensionality. The value is always
// held in the coherent SI scale, whatever unit it was built from.
type Quantity struct {
	dims  dimension.Vector
	value num.Number
}

// Of builds a quantity from a raw float in u.
func Of(raw float64, u Unit) Quantity {
	return u.Quantity(raw)
}

// OfExact builds a quantity from a raw number in u.
func OfExact(raw num.Number, u Unit) Quantity {
	return u.QuantityOf(raw)
}

// NewQuantity builds a quantity directly from an SI-scaled value.
func NewQuantity(dims dimension.Vector, value num.Number) Quantity {
	return Quantity{dims: dims, value: value}
}

func (q Quantity) Dimensions() dimension.Vector { return q.dims }

// Value returns the SI-scaled value.
func (q Quantity) Value() num.Number { return q.value }

// In reads the quantity back in u.
func (q Quantity) In(u Unit) (float64, error) {
	v, err := q.InExact(u)
	if err != nil {
		return 0, err
	}
	return v.Float64(), nil
}

// InExact is In without the final float conversion.
func (q Quantity) InExact(u Unit) (num.Number, error) {
	if err := checkCompatible("in", q.dims, u.dims); err != nil {
		return num.Number{}, err
	}
	v, err := u.fromSI(q.value)
	if err != nil {
		return num.Number{}, fmt.Errorf("in %s: %w", u, err)
	}
	return v, nil
}

func (q Quantity) Plus(other Quantity) (Quantity, error) {
	if err := checkCompatible("plus", q.dims, other.dims); err != nil {
		return Quantity{}, err
	}
	return Quantity{dims: q.dims, value: q.value.Add(other.value)}, nil
}

func (q Quantity) Minus(other Quantity) (Quantity, error) {
	if err := checkCompatible("minus", q.dims, other.dims); err != nil {
		return Quantity{}, err
	}
	return Quantity{dims: q.dims, value: q.value.Sub(other.value)}, nil
}

func (q Quantity) Times(other Quantity) Quantity {
	return Quantity{
		dims:  q.dims.CombineAdd(other.dims),
		value: q.value.Mul(other.value),
	}
}

// Per divides q by other. Dividing by a zero quantity returns
// ErrDivisionByZero.
func (q Quantity) Per(other Quantity) (Quantity, error) {
	v, err := q.value.Div(other.value)
	if err != nil {
		return Quantity{}, fmt.Errorf("per: %w", err)
	}
	return Quantity{dims: q.dims.CombineSub(other.dims), value: v}, nil
}

// Over is an alias for Per.
func (q Quantity) Over(other Quantity) (Quantity, error) {
	return q.Per(other)
}

func (q Quantity) Squared() Quantity {
	return q.Times(q)
}

func (q Quantity) Cubed() Quantity {
	return q.Times(q.Squared())
}

// Scale multiplies the value by a dimensionless factor.
func (q Quantity) Scale(factor num.Number) Quantity {
	return Quantity{dims: q.dims, value: q.value.Mul(factor)}
}

func (q Quantity) Neg() Quantity {
	return Quantity{dims: q.dims, value: q.value.Neg()}
}

// ToUnitString formats the quantity in u followed by u's symbol, e.g. "8m*s^-2".
func (q Quantity) ToUnitString(u Unit) (string, error) {
	v, err := q.InExact(u)
	if err != nil {
		return "", err
	}
	return v.String() + u.Symbol(), nil
}

// String formats the SI value followed by the SI symbol of the dimensionality.
func (q Quantity) String() string {
	return q.value.String() + q.dims.Symbol()
}
