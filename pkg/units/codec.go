// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/mikecarlton/calc/pkg/dimension"
	"github.com/mikecarlton/calc/pkg/num"
)

// encMode encodes deterministically so equal units produce equal bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// wireNumber carries an exact value as a rational string, or a float.
type wireNumber struct {
	Rat   string  `cbor:"1,keyasint,omitempty"`
	Float float64 `cbor:"2,keyasint,omitempty"`
}

type wireUnit struct {
	Dims       []int32    `cbor:"1,keyasint"`
	Multiplier wireNumber `cbor:"2,keyasint"`
	Offset     wireNumber `cbor:"3,keyasint"`
	Label      string     `cbor:"4,keyasint,omitempty"`
}

type wireQuantity struct {
	Dims  []int32    `cbor:"1,keyasint"`
	Value wireNumber `cbor:"2,keyasint"`
}

func encodeNumber(n num.Number) wireNumber {
	if r := n.Rat(); r != nil {
		return wireNumber{Rat: r.RatString()}
	}
	return wireNumber{Float: n.Float64()}
}

func decodeNumber(w wireNumber) (num.Number, error) {
	if w.Rat == "" {
		return num.Float(w.Float), nil
	}
	r, ok := new(big.Rat).SetString(w.Rat)
	if !ok {
		return num.Number{}, fmt.Errorf("invalid rational %q", w.Rat)
	}
	return num.FromRat(r), nil
}

func encodeDims(v dimension.Vector) []int32 {
	dims := make([]int32, len(v))
	for i, e := range v {
		dims[i] = int32(e)
	}
	return dims
}

func decodeDims(dims []int32) (dimension.Vector, error) {
	var v dimension.Vector
	if len(dims) != len(v) {
		return v, fmt.Errorf("expected %d exponents, got %d", len(v), len(dims))
	}
	for i, d := range dims {
		v[i] = dimension.Exponent(d)
	}
	return v, nil
}

func (u Unit) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(wireUnit{
		Dims:       encodeDims(u.dims),
		Multiplier: encodeNumber(u.multiplier),
		Offset:     encodeNumber(u.offset),
		Label:      u.label,
	})
}

func (u *Unit) UnmarshalCBOR(data []byte) error {
	var w wireUnit
	if err := decMode.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("failed to decode unit: %w", err)
	}
	dims, err := decodeDims(w.Dims)
	if err != nil {
		return fmt.Errorf("invalid unit: %w", err)
	}
	multiplier, err := decodeNumber(w.Multiplier)
	if err != nil {
		return fmt.Errorf("invalid unit multiplier: %w", err)
	}
	if multiplier.IsZero() {
		return fmt.Errorf("invalid unit multiplier: %w", ErrDivisionByZero)
	}
	offset, err := decodeNumber(w.Offset)
	if err != nil {
		return fmt.Errorf("invalid unit offset: %w", err)
	}

	*u = New(dims, WithMultiplier(multiplier), WithOffset(offset), WithLabel(w.Label))
	return nil
}

func (q Quantity) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(wireQuantity{
		Dims:  encodeDims(q.dims),
		Value: encodeNumber(q.value),
	})
}

func (q *Quantity) UnmarshalCBOR(data []byte) error {
	var w wireQuantity
	if err := decMode.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("failed to decode quantity: %w", err)
	}
	dims, err := decodeDims(w.Dims)
	if err != nil {
		return fmt.Errorf("invalid quantity: %w", err)
	}
	value, err := decodeNumber(w.Value)
	if err != nil {
		return fmt.Errorf("invalid quantity value: %w", err)
	}

	*q = Quantity{dims: dims, value: value}
	return nil
}

// Marshal encodes a unit, quantity, or any value containing them.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
