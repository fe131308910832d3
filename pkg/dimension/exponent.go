// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package dimension

import (
	"math"
	"strconv"
)

// Exponent is the power of a single base dimension. A Vector holds the true
// integer exponent. The saturating algebra below (Succ, Pred, Invert, Add,
// Subtract) models the bounded range [MinExponent, MaxExponent], where
// anything past the bound becomes Unbounded.
type Exponent int32

const (
	MinExponent Exponent = -16
	MaxExponent Exponent = 16

	// Unbounded marks an exponent that is no longer tracked precisely.
	Unbounded Exponent = math.MinInt32
)

// Exp converts n to an Exponent, saturating values outside the bounded range.
func Exp(n int) Exponent {
	if n < int(MinExponent) || n > int(MaxExponent) {
		return Unbounded
	}
	return Exponent(n)
}

// Bounded reports whether e lies in [MinExponent, MaxExponent].
func (e Exponent) Bounded() bool {
	return e >= MinExponent && e <= MaxExponent
}

func (e Exponent) String() string {
	if e == Unbounded {
		return "?"
	}
	return strconv.Itoa(int(e))
}

// sum and diff are exact; only overflowing the representation gives Unbounded.
func sum(a, b Exponent) Exponent {
	if a == Unbounded || b == Unbounded {
		return Unbounded
	}
	n := int64(a) + int64(b)
	if n <= math.MinInt32 || n > math.MaxInt32 {
		return Unbounded
	}
	return Exponent(n)
}

func diff(a, b Exponent) Exponent {
	if b == Unbounded {
		return Unbounded
	}
	return sum(a, -b)
}

// Succ returns e+1, or Unbounded past MaxExponent.
func Succ(e Exponent) Exponent {
	if !e.Bounded() || e == MaxExponent {
		return Unbounded
	}
	return e + 1
}

// Pred returns e-1, or Unbounded past MinExponent.
func Pred(e Exponent) Exponent {
	if !e.Bounded() || e == MinExponent {
		return Unbounded
	}
	return e - 1
}

// Invert returns -e. Invert(0) is 0 and Invert(Unbounded) stays Unbounded.
func Invert(e Exponent) Exponent {
	if !e.Bounded() {
		return Unbounded
	}
	return -e
}

// Add sums two exponents by walking a toward zero while walking b the other
// way, one step at a time. The walk takes at most MaxExponent steps and
// saturates as soon as b leaves the tracked range.
func Add(a, b Exponent) Exponent {
	if !a.Bounded() || !b.Bounded() {
		return Unbounded
	}

	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	case a == 1:
		return Succ(b)
	case b == -1:
		return Pred(a)
	}

	for a != 0 {
		if !b.Bounded() {
			return Unbounded
		}
		if a > 0 {
			a, b = Pred(a), Succ(b)
		} else {
			a, b = Succ(a), Pred(b)
		}
	}

	return b
}

// Subtract returns a-b as Add(a, Invert(b)).
func Subtract(a, b Exponent) Exponent {
	return Add(a, Invert(b))
}
