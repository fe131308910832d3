// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package num

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned by Div when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Number is either an exact rational or a float64. The zero value is the
// float 0. Operations never modify their operands.
type Number struct {
	r *big.Rat // non-nil when exact
	f float64
}

var (
	Zero = Int(0)
	One  = Int(1)
)

// Float returns an inexact number.
func Float(f float64) Number {
	return Number{f: f}
}

// Int returns an exact integer.
func Int(i int64) Number {
	return Number{r: new(big.Rat).SetInt64(i)}
}

// Frac returns the exact fraction num/den. It panics if den is zero, so it is
// meant for constants.
func Frac(num, den int64) Number {
	if den == 0 {
		panic("num: zero denominator")
	}
	return Number{r: big.NewRat(num, den)}
}

// FromRat returns an exact number holding a copy of r.
func FromRat(r *big.Rat) Number {
	return Number{r: new(big.Rat).Set(r)}
}

// Exact converts a float to the exact rational with the same binary value.
// Non-finite inputs stay inexact.
func Exact(f float64) Number {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Float(f)
	}
	return Number{r: new(big.Rat).SetFloat64(f)}
}

// Parse reads a decimal, exponent or "a/b" literal. When exact is set the
// result is an exact rational, otherwise a float64.
func Parse(input string, exact bool) (Number, error) {
	input = strings.ReplaceAll(input, "_", "")
	if exact {
		if r, ok := new(big.Rat).SetString(input); ok {
			return Number{r: r}, nil
		}
		return Number{}, fmt.Errorf("cannot parse %q as a number", input)
	}

	if n, d, ok := strings.Cut(input, "/"); ok {
		if strings.Contains(d, "/") {
			return Number{}, fmt.Errorf("cannot parse %q as a number", input)
		}
		num, err := Parse(n, false)
		if err != nil {
			return Number{}, err
		}
		den, err := Parse(d, false)
		if err != nil {
			return Number{}, err
		}
		return num.Div(den)
	}

	f, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return Number{}, fmt.Errorf("cannot parse %q as a number", input)
	}
	return Float(f), nil
}

func (n Number) IsExact() bool {
	return n.r != nil
}

func (n Number) IsZero() bool {
	if n.r != nil {
		return n.r.Sign() == 0
	}
	return n.f == 0
}

// IsInt reports whether n is an exact integer.
func (n Number) IsInt() bool {
	return n.r != nil && n.r.IsInt()
}

func (n Number) Sign() int {
	if n.r != nil {
		return n.r.Sign()
	}
	switch {
	case n.f > 0:
		return 1
	case n.f < 0:
		return -1
	}
	return 0
}

// Float64 returns the nearest float64.
func (n Number) Float64() float64 {
	if n.r != nil {
		f, _ := n.r.Float64()
		return f
	}
	return n.f
}

// Rat returns a copy of the exact value, or nil for an inexact number.
func (n Number) Rat() *big.Rat {
	if n.r == nil {
		return nil
	}
	return new(big.Rat).Set(n.r)
}

func (n Number) String() string {
	if n.r != nil {
		return n.r.RatString()
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

// Cmp compares n and other, returning -1, 0 or +1.
func (n Number) Cmp(other Number) int {
	if n.r != nil && other.r != nil {
		return n.r.Cmp(other.r)
	}
	a, b := n.Float64(), other.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (n Number) Add(other Number) Number {
	return n.binaryOp(other, "+")
}

func (n Number) Sub(other Number) Number {
	return n.binaryOp(other, "-")
}

func (n Number) Mul(other Number) Number {
	return n.binaryOp(other, "*")
}

// Div returns n/other, or ErrDivisionByZero.
func (n Number) Div(other Number) (Number, error) {
	if other.IsZero() {
		return Number{}, ErrDivisionByZero
	}
	return n.binaryOp(other, "/"), nil
}

func (n Number) Neg() Number {
	if n.r != nil {
		return Number{r: new(big.Rat).Neg(n.r)}
	}
	return Number{f: -n.f}
}

// binaryOp stays exact only when both operands are exact.
func (n Number) binaryOp(other Number, op string) Number {
	if n.r != nil && other.r != nil {
		result := new(big.Rat)
		switch op {
		case "+":
			result.Add(n.r, other.r)
		case "-":
			result.Sub(n.r, other.r)
		case "*":
			result.Mul(n.r, other.r)
		case "/":
			result.Quo(n.r, other.r)
		default:
			panic(fmt.Sprintf("Unimplemented binary op: '%s'", op))
		}
		return Number{r: result}
	}

	left, right := n.Float64(), other.Float64()
	switch op {
	case "+":
		return Float(left + right)
	case "-":
		return Float(left - right)
	case "*":
		return Float(left * right)
	case "/":
		return Float(left / right)
	}
	panic(fmt.Sprintf("Unimplemented binary op: '%s'", op))
}
