// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package si

import (
	"github.com/mikecarlton/calc/pkg/units"
)

// Entry is a named unit in the catalog.
type Entry struct {
	Name   string
	Symbol string
	Unit   units.Unit
}

var registry = []Entry{
	{"meter", "m", Meters},
	{"second", "s", Seconds},
	{"kelvin", "K", Kelvins},
	{"kilogram", "kg", Kilograms},
	{"ampere", "A", Amperes},
	{"candela", "cd", Candelas},
	{"mole", "mol", Moles},

	{"hertz", "Hz", Hertz},
	{"newton", "N", Newtons},
	{"joule", "J", Joules},
	{"pascal", "Pa", Pascals},
	{"watt", "W", Watts},
	{"coulomb", "C", Coulombs},
	{"volt", "V", Volts},
	{"ohm", "Ω", Ohms},

	{"nanometer", "nm", Nano(Meters)},
	{"micrometer", "µm", Micro(Meters)},
	{"millimeter", "mm", Milli(Meters)},
	{"centimeter", "cm", Centi(Meters)},
	{"kilometer", "km", Kilo(Meters)},
	{"milligram", "mg", Milli(Grams)},
	{"gram", "g", Grams},
	{"millisecond", "ms", Milli(Seconds)},
	{"kilowatt", "kW", Kilo(Watts)},
	{"kilojoule", "kJ", Kilo(Joules)},
	{"kilopascal", "kPa", Kilo(Pascals)},
	{"milliliter", "ml", Milli(Liters)},

	{"standard gravity", "gₙ", StandardGravity},
	{"astronomical unit", "au", AstronomicalUnits},
	{"angstrom", "Å", Angstroms},
	{"liter", "l", Liters},
	{"atmosphere", "atm", Atmospheres},

	{"minute", "min", Minutes},
	{"hour", "h", Hours},
	{"day", "d", Days},
	{"week", "w", Weeks},
	{"year", "yr", Years},

	{"inch", "in", Inches},
	{"foot", "ft", Feet},
	{"yard", "yd", Yards},
	{"mile", "mi", Miles},
	{"pound mass", "lbm", PoundsMass},
	{"pound force", "lbf", PoundsForce},
	{"foot pound", "ft⋅lbf", FootPounds},

	{"celsius", "°C", Celsius},
	{"fahrenheit", "°F", Fahrenheit},
}

var index = func() map[string]units.Unit {
	m := make(map[string]units.Unit, 3*len(registry))
	for _, e := range registry {
		m[e.Name] = e.Unit
		m[e.Name+"s"] = e.Unit
		m[e.Symbol] = e.Unit
	}
	// common spellings
	m["feet"] = Feet
	m["inches"] = Inches
	m["hr"] = Hours
	m["lb"] = PoundsMass
	m["lbs"] = PoundsMass
	m["degC"] = Celsius
	m["degF"] = Fahrenheit
	m["um"] = Micro(Meters)
	return m
}()

// Lookup finds a catalog unit by symbol, name or plural name.
func Lookup(name string) (units.Unit, bool) {
	u, ok := index[name]
	return u, ok
}

// All returns the catalog in display order.
func All() []Entry {
	entries := make([]Entry, len(registry))
	copy(entries, registry)
	return entries
}
