// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"errors"
	"fmt"

	"github.com/mikecarlton/calc/pkg/dimension"
	"github.com/mikecarlton/calc/pkg/num"
)

var (
	// ErrDimensionMismatch is wrapped by every MismatchError.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrDivisionByZero is returned when dividing by a zero quantity.
	ErrDivisionByZero = num.ErrDivisionByZero
	// ErrInvalidOperation is returned when multiplying or dividing units
	// that carry a non-zero offset.
	ErrInvalidOperation = errors.New("invalid operation")
)

// MismatchError describes an operation rejected because its operands have
// different dimensionalities.
type MismatchError struct {
	Op          string
	Left, Right dimension.Vector
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %v: %s vs %s", e.Op, ErrDimensionMismatch, describe(e.Left), describe(e.Right))
}

func (e *MismatchError) Unwrap() error {
	return ErrDimensionMismatch
}

func describe(v dimension.Vector) string {
	if v.IsZero() {
		return "scalar"
	}
	return v.Symbol()
}

func checkCompatible(op string, left, right dimension.Vector) error {
	if !left.Equal(right) {
		return &MismatchError{Op: op, Left: left, Right: right}
	}
	return nil
}
