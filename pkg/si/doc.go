// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package si is the catalog of named units: SI base and derived units, time,
// imperial and temperature scales, and the metric prefixes. Every factor is an
// exact rational, so conversions between catalog units stay exact when the
// raw input is exact.
package si
