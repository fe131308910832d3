// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"strings"

	"github.com/mikecarlton/calc/pkg/num"
)

// Prefix scales a unit, e.g. kilo(meters).
type Prefix func(Unit) Unit

// NewPrefix returns a prefix multiplying by factor. The symbol is prepended to
// the label; an unlabelled coherent SI unit is labelled from its dimensions,
// e.g. k(m*s^-1). Other unlabelled units stay unlabelled.
func NewPrefix(factor num.Number, symbol string) Prefix {
	return func(u Unit) Unit {
		label := u.label
		switch {
		case label != "":
			label = symbol + label
		case u.multiplier.Cmp(num.One) == 0 && !u.dims.IsZero():
			label = symbol + group(u.dims.Symbol())
		}
		return Alias(u, label, factor)
	}
}

// group parenthesizes compound symbols so the prefix applies to the whole.
func group(sym string) string {
	if strings.ContainsAny(sym, "*^") {
		return "(" + sym + ")"
	}
	return sym
}
