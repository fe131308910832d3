// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"github.com/mikecarlton/calc/pkg/dimension"
)

// Kind is implemented by marker types naming a fixed dimensionality, e.g.
//
//	type Length struct{}
//	func (Length) Dimensions() dimension.Vector { return dimension.Of(dimension.Length, 1) }
type Kind interface {
	Dimensions() dimension.Vector
}

// Typed is a quantity whose dimensionality is part of its Go type, so Plus
// and Minus between different kinds do not compile. Results of Times and Per
// are untyped Quantities; bring them back with As.
type Typed[K Kind] struct {
	q Quantity
}

func kindOf[K Kind]() dimension.Vector {
	var k K
	return k.Dimensions()
}

// As checks q against K's dimensionality.
func As[K Kind](q Quantity) (Typed[K], error) {
	if err := checkCompatible("as", q.dims, kindOf[K]()); err != nil {
		return Typed[K]{}, err
	}
	return Typed[K]{q: q}, nil
}

// NewTyped builds a typed quantity from a raw float in u.
func NewTyped[K Kind](raw float64, u Unit) (Typed[K], error) {
	return As[K](u.Quantity(raw))
}

func (t Typed[K]) Quantity() Quantity {
	return t.q
}

func (t Typed[K]) In(u Unit) (float64, error) {
	return t.q.In(u)
}

// Plus re-checks dimensionality at runtime; a zero Typed or one built by
// conversion tricks still fails with ErrDimensionMismatch.
func (t Typed[K]) Plus(other Typed[K]) (Typed[K], error) {
	if err := t.check(other); err != nil {
		return Typed[K]{}, err
	}
	sum, err := t.q.Plus(other.q)
	if err != nil {
		return Typed[K]{}, err
	}
	return Typed[K]{q: sum}, nil
}

func (t Typed[K]) Minus(other Typed[K]) (Typed[K], error) {
	if err := t.check(other); err != nil {
		return Typed[K]{}, err
	}
	diff, err := t.q.Minus(other.q)
	if err != nil {
		return Typed[K]{}, err
	}
	return Typed[K]{q: diff}, nil
}

func (t Typed[K]) Times(other Quantity) Quantity {
	return t.q.Times(other)
}

func (t Typed[K]) Per(other Quantity) (Quantity, error) {
	return t.q.Per(other)
}

func (t Typed[K]) String() string {
	return t.q.String()
}

func (t Typed[K]) check(other Typed[K]) error {
	want := kindOf[K]()
	if err := checkCompatible("typed", t.q.dims, want); err != nil {
		return err
	}
	return checkCompatible("typed", other.q.dims, want)
}
