// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package si_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikecarlton/calc/pkg/dimension"
	"github.com/mikecarlton/calc/pkg/num"
	"github.com/mikecarlton/calc/pkg/si"
	"github.com/mikecarlton/calc/pkg/units"
)

func in(t *testing.T, q units.Quantity, u units.Unit) float64 {
	t.Helper()
	v, err := q.In(u)
	require.NoError(t, err)
	return v
}

func TestConversions(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		from, to units.Unit
		expected float64
	}{
		{"minute", 1, si.Minute, si.Seconds, 60},
		{"hour", 1, si.Hour, si.Seconds, 3600},
		{"day", 1, si.Day, si.Seconds, 86400},
		{"week", 1, si.Week, si.Seconds, 604800},
		{"year", 1, si.Year, si.Seconds, 31557600},
		{"mile", 1, si.Mile, si.Feet, 5280},
		{"foot", 1, si.Foot, si.Inches, 12},
		{"foot in meters", 1, si.Foot, si.Meters, 0.3048},
		{"inch in meters", 1, si.Inch, si.Meters, 0.0254},
		{"meter in feet", 1, si.Meter, si.Feet, 10000.0 / 3048},
		{"liter", 1, si.Liter, si.Milli(si.Liters), 1000},
		{"atmosphere", 1, si.Atmosphere, si.Pascals, 101325},
		{"gram", 1000, si.Grams, si.Kilograms, 1},
		{"boiling", 100, si.Celsius, si.Fahrenheit, 212},
		{"freezing", 32, si.Fahrenheit, si.Celsius, 0},
		{"absolute zero", 0, si.Kelvins, si.Celsius, -273.15},
		{"minus forty", -40, si.Celsius, si.Fahrenheit, -40},
		{"pound force", 1, si.PoundsForce, si.Newtons, 4.4482216152605},
		{"hertz", 60, si.Hertz, units.Must(si.Scalar.Per(si.Minute)), 3600},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := in(t, units.Of(test.raw, test.from), test.to)
			assert.InDelta(t, test.expected, got, 1e-9)
		})
	}
}

func TestExactConversions(t *testing.T) {
	q := units.OfExact(num.Int(1), si.Mile)
	v, err := q.InExact(si.Feet)
	require.NoError(t, err)
	assert.True(t, v.IsExact())
	assert.Equal(t, "5280", v.String())

	v, err = units.OfExact(num.Int(1), si.Meter).InExact(si.Feet)
	require.NoError(t, err)
	assert.Equal(t, "1250/381", v.String())
}

func TestMeterPlusFoot(t *testing.T) {
	sum, err := units.Of(1, si.Meter).Plus(units.Of(1, si.Foot))
	require.NoError(t, err)
	assert.InDelta(t, 1.3048, in(t, sum, si.Meter), 1e-9)
}

func TestMismatchedAddition(t *testing.T) {
	_, err := units.Of(1, si.Meter).Plus(units.Of(1, si.Second))
	assert.ErrorIs(t, err, units.ErrDimensionMismatch)
	assert.EqualError(t, err, "plus: dimension mismatch: m vs s")
}

func TestDerivedUnits(t *testing.T) {
	assert.True(t, si.Joules.Compatible(si.FootPounds))
	assert.True(t, si.Watts.Dimensions().Equal(si.Power{}.Dimensions()))
	assert.True(t, si.Volts.Dimensions().Equal(si.Voltage{}.Dimensions()))
	assert.True(t, si.Ohms.Dimensions().Equal(si.Resistance{}.Dimensions()))
	assert.True(t, si.Pascals.Dimensions().Equal(si.Pressure{}.Dimensions()))
	assert.True(t, si.Hertz.Dimensions().Equal(si.Frequency{}.Dimensions()))
	assert.True(t, si.Liters.Dimensions().Equal(si.Volume{}.Dimensions()))

	force := units.Of(2, si.Kilograms).Times(units.Of(9.80665, si.StandardGravity))
	assert.InDelta(t, 2/0.45359237, in(t, force, si.PoundsForce), 1e-9)

	work := force.Times(units.Of(3, si.Meters))
	assert.InDelta(t, 58.8399, in(t, work, si.Joules), 1e-9)
}

func TestPrefixes(t *testing.T) {
	tests := []struct {
		prefix   units.Prefix
		label    string
		expected float64
	}{
		{si.Yocto, "ym", 1e24},
		{si.Zepto, "zm", 1e21},
		{si.Atto, "am", 1e18},
		{si.Femto, "fm", 1e15},
		{si.Pico, "pm", 1e12},
		{si.Nano, "nm", 1e9},
		{si.Micro, "µm", 1e6},
		{si.Milli, "mm", 1e3},
		{si.Centi, "cm", 1e2},
		{si.Deci, "dm", 1e1},
		{si.Deca, "dam", 1e-1},
		{si.Hecto, "hm", 1e-2},
		{si.Kilo, "km", 1e-3},
		{si.Mega, "Mm", 1e-6},
		{si.Giga, "Gm", 1e-9},
		{si.Tera, "Tm", 1e-12},
		{si.Peta, "Pm", 1e-15},
		{si.Exa, "Em", 1e-18},
		{si.Zetta, "Zm", 1e-21},
		{si.Yotta, "Ym", 1e-24},
	}

	for _, test := range tests {
		t.Run(test.label, func(t *testing.T) {
			u := test.prefix(si.Meters)
			assert.Equal(t, test.label, u.String())

			v, err := units.OfExact(num.Int(1), si.Meter).InExact(u)
			require.NoError(t, err)
			assert.Equal(t, test.expected, v.Float64())
		})
	}
}

func TestTypedWithKinds(t *testing.T) {
	d, err := units.NewTyped[si.Length](100, si.Meters)
	require.NoError(t, err)
	dt, err := units.NewTyped[si.Time](9.58, si.Seconds)
	require.NoError(t, err)

	q, err := d.Per(dt.Quantity())
	require.NoError(t, err)
	speed, err := units.As[si.Velocity](q)
	require.NoError(t, err)

	kmh := units.Must(si.Kilo(si.Meters).Per(si.Hours))
	v, err := speed.In(kmh)
	require.NoError(t, err)
	assert.InDelta(t, 37.578288, v, 1e-6)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"m", "meter", "meters", "ft", "feet", "foot", "°C", "degC", "hr", "km"} {
		_, ok := si.Lookup(name)
		assert.True(t, ok, name)
	}
	_, ok := si.Lookup("furlong")
	assert.False(t, ok)

	u, ok := si.Lookup("km")
	require.True(t, ok)
	assert.Equal(t, "km", u.String())
	assert.Equal(t, dimension.Of(dimension.Length, 1), u.Dimensions())

	lb, ok := si.Lookup("lb")
	require.True(t, ok)
	assert.True(t, lb.Compatible(si.Kilograms))
	assert.InDelta(t, 0.45359237, in(t, lb.Quantity(1), si.Kilograms), 1e-12)

	entries := si.All()
	require.NotEmpty(t, entries)
	assert.Equal(t, "meter", entries[0].Name)
	entries[0].Name = "changed"
	assert.Equal(t, "meter", si.All()[0].Name)
}
