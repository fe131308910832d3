// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"strings"
)

// heredoc strips the common indentation and surrounding blank lines.
func heredoc(text string) string {
	lines := strings.Split(strings.TrimRight(text, " \t\n"), "\n")

	// Find the minimum leading whitespace for non-empty lines
	minIndent := -1
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			leading := len(line) - len(strings.TrimLeft(line, " \t"))
			if minIndent == -1 || leading < minIndent {
				minIndent = leading
			}
		}
	}

	// Remove the minimum leading whitespace from each line
	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		}
	}

	return strings.TrimLeft(strings.Join(lines, "\n"), "\n")
}

var rootLong = heredoc(`
	An RPN calculator that tracks physical dimensions.

	Numbers:
	  Decimal integers and floating point numbers (with optional exponent)
	  Fractions written as a/b
	  '_' may be used to group digits, e.g. 1_000_000

	Stack Operations:
	  x: exchange top 2 elements of the stack
	  d: duplicate top element of the stack (aliased as dup)
	  p: pop top element off of the stack (aliased as pop)

	Binary numerical operations (prepend with '@' to reduce the stack):
	  + - * /
	  *   (aliased as . and •)

	Unary numerical operations:
	  sq    (square)
	  cu    (cube)
	  chs   (change sign)
	  r     (reciprocal)
	  n     (number: remove any units)
	  si    (show in SI units)

	Units:
	  Units are applied if current top of stack does not have any units
	  Otherwise the current top of stack is converted to the units
	  Sums are shown in the units of the left operand, products in SI units
	  lb is pound mass; use lbf for pound force

	  Run 'calc units' for the list; 'calc define' adds your own.
`)

var rootExample = heredoc(`
	calc 1 m 1 ft +            1.3048 m
	calc 100 °C °F             212 °F
	calc 60 mi 1 h /           26.8224 m*s^-1
	calc 1 2 3 4 @+            10
`)
