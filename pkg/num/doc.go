// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package num provides the numeric backend for quantities: a Number that is
// either an exact rational or a float64. Exact arithmetic is kept only while
// both operands are exact; mixing in a float yields a float.
package num
