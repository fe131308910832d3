// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package si

import (
	"math/big"

	"github.com/mikecarlton/calc/pkg/num"
	"github.com/mikecarlton/calc/pkg/units"
)

// pow10 returns 10^exp exactly.
func pow10(exp int64) num.Number {
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(abs(exp)), nil)
	r := new(big.Rat).SetInt(p)
	if exp < 0 {
		r.Inv(r)
	}
	return num.FromRat(r)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

var (
	Yotta = units.NewPrefix(pow10(24), "Y")
	Zetta = units.NewPrefix(pow10(21), "Z")
	Exa   = units.NewPrefix(pow10(18), "E")
	Peta  = units.NewPrefix(pow10(15), "P")
	Tera  = units.NewPrefix(pow10(12), "T")
	Giga  = units.NewPrefix(pow10(9), "G")
	Mega  = units.NewPrefix(pow10(6), "M")
	Kilo  = units.NewPrefix(pow10(3), "k")
	Hecto = units.NewPrefix(pow10(2), "h")
	Deca  = units.NewPrefix(pow10(1), "da")
	Deci  = units.NewPrefix(pow10(-1), "d")
	Centi = units.NewPrefix(pow10(-2), "c")
	Milli = units.NewPrefix(pow10(-3), "m")
	Micro = units.NewPrefix(pow10(-6), "µ")
	Nano  = units.NewPrefix(pow10(-9), "n")
	Pico  = units.NewPrefix(pow10(-12), "p")
	Femto = units.NewPrefix(pow10(-15), "f")
	Atto  = units.NewPrefix(pow10(-18), "a")
	Zepto = units.NewPrefix(pow10(-21), "z")
	Yocto = units.NewPrefix(pow10(-24), "y")
)
