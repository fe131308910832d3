// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package si

import (
	"github.com/mikecarlton/calc/pkg/dimension"
	"github.com/mikecarlton/calc/pkg/num"
	"github.com/mikecarlton/calc/pkg/units"
)

type exps = map[dimension.Dimension]dimension.Exponent

func f(n, d int64) num.Number { return num.Frac(n, d) }

func times(a, b units.Unit) units.Unit { return units.Must(a.Times(b)) }
func per(a, b units.Unit) units.Unit   { return units.Must(a.Per(b)) }
func squared(u units.Unit) units.Unit  { return units.Must(u.Squared()) }
func cubed(u units.Unit) units.Unit    { return units.Must(u.Cubed()) }

// Base units.
var (
	Scalar    = units.Base(nil, "")
	Meters    = units.Base(exps{dimension.Length: 1}, "m")
	Seconds   = units.Base(exps{dimension.Time: 1}, "s")
	Kelvins   = units.Base(exps{dimension.Temperature: 1}, "K")
	Kilograms = units.Base(exps{dimension.Mass: 1}, "kg")
	Amperes   = units.Base(exps{dimension.Current: 1}, "A")
	Candelas  = units.Base(exps{dimension.LuminousIntensity: 1}, "cd")
	Moles     = units.Base(exps{dimension.Amount: 1}, "mol")

	Meter    = Meters
	Second   = Seconds
	Kelvin   = Kelvins
	Kilogram = Kilograms
	Ampere   = Amperes
	Amp      = Amperes
	Candela  = Candelas
	Mole     = Moles
)

// Coherent derived units.
var (
	Hertz    = units.Alias(per(Scalar, Seconds), "Hz", num.One)
	Newtons  = units.Alias(per(times(Kilograms, Meters), squared(Seconds)), "N", num.One)
	Joules   = units.Alias(times(Newtons, Meters), "J", num.One)
	Pascals  = units.Alias(per(Newtons, squared(Meters)), "Pa", num.One)
	Watts    = units.Alias(per(Joules, Seconds), "W", num.One)
	Coulombs = units.Alias(times(Amperes, Seconds), "C", num.One)
	Volts    = units.Alias(per(Watts, Amperes), "V", num.One)
	Ohms     = units.Alias(per(Volts, Amperes), "Ω", num.One)

	Newton  = Newtons
	Joule   = Joules
	Pascal  = Pascals
	Watt    = Watts
	Coulomb = Coulombs
	Volt    = Volts
	Ohm     = Ohms
)

// Other metric units.
var (
	Grams             = units.Alias(Kilograms, "g", f(1, 1000))
	StandardGravity   = units.Alias(per(Meters, squared(Seconds)), "gₙ", f(980665, 100000))
	AstronomicalUnits = units.Alias(Meters, "au", f(149597870700, 1))
	Angstroms         = units.Alias(Meters, "Å", f(1, 10000000000))
	Liters            = units.Alias(cubed(Meters), "l", f(1, 1000))
	Atmospheres       = units.Alias(Pascals, "atm", f(101325, 1))

	Gram       = Grams
	Angstrom   = Angstroms
	Liter      = Liters
	Atmosphere = Atmospheres
)

// Time.
var (
	Minutes = units.Alias(Seconds, "min", f(60, 1))
	Hours   = units.Alias(Minutes, "h", f(60, 1))
	Days    = units.Alias(Hours, "d", f(24, 1))
	Weeks   = units.Alias(Days, "w", f(7, 1))
	Years   = units.Alias(Days, "yr", f(1461, 4))

	Minute = Minutes
	Hour   = Hours
	Day    = Days
	Week   = Weeks
	Year   = Years
)

// Imperial and US customary units.
var (
	Inches      = units.Alias(Meters, "in", f(254, 10000))
	Feet        = units.Alias(Inches, "ft", f(12, 1))
	Yards       = units.Alias(Feet, "yd", f(3, 1))
	Miles       = units.Alias(Feet, "mi", f(5280, 1))
	PoundsMass  = units.Alias(Kilograms, "lbm", f(45359237, 100000000))
	PoundsForce = units.Alias(times(PoundsMass, StandardGravity), "lbf", num.One)
	FootPounds  = units.Alias(times(Feet, PoundsForce), "ft⋅lbf", num.One)

	Inch      = Inches
	Foot      = Feet
	Yard      = Yards
	Mile      = Miles
	Pounds    = PoundsForce
	Pound     = PoundsForce
	FootPound = FootPounds
)

// Temperature scales.
var (
	Celsius    = units.Affine(exps{dimension.Temperature: 1}, num.One, f(27315, 100), "°C")
	Fahrenheit = units.Affine(exps{dimension.Temperature: 1}, f(5, 9), f(45967, 180), "°F")
)
