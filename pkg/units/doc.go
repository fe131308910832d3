// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

/*
Package units provides Units and dimension-checked Quantities.

A Unit is an affine scale over a dimension.Vector; a Quantity is a value in
the coherent SI scale tagged with its Vector. Building a quantity applies the
unit's transform once and reading it back inverts only the target unit's
transform, so arithmetic never depends on which units were used:

	d := units.Of(1, si.Meter)
	sum, err := d.Plus(units.Of(1, si.Foot)) // 1.3048 m
	v, err := sum.In(si.Meters)

Plus, Minus and In require equal dimensionality and fail with an error
wrapping ErrDimensionMismatch. Times and Per combine dimensionalities;
Per fails with ErrDivisionByZero on a zero divisor.

Typed[K] carries the dimensionality in the Go type, so Plus and Minus
between different kinds are rejected by the compiler.
*/
package units
