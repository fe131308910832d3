// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package rpn

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikecarlton/calc/pkg/num"
	"github.com/mikecarlton/calc/pkg/si"
	"github.com/mikecarlton/calc/pkg/units"
)

func eval(t *testing.T, input string, opts ...Option) (*Calculator, error) {
	t.Helper()
	c := New(si.Lookup, opts...)
	return c, c.Eval(strings.Fields(input)...)
}

func TestEval(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 3 /", "0.3333"},
		{"6 3 /", "2"},
		{"1 m 1 ft +", "1.3048 m"},
		{"1 ft 1 m -", "-2.2808 ft"},
		{"100 °C °F", "212 °F"},
		{"100 degC K", "373.15 K"},
		{"3 m 2 s /", "1.5 m*s^-1"},
		{"3 m 2 s •", "6 m*s"},
		{"2 m sq", "4 m^2"},
		{"2 m cu", "8 m^3"},
		{"1 mi ft", "5280 ft"},
		{"1 2 3 4 @+", "10"},
		{"1 2 3 4 @*", "24"},
		{"1 2 x", "2 1"},
		{"5 d *", "25"},
		{"5 dup .", "25"},
		{"1 2 p", "1"},
		{"1 2 pop", "1"},
		{"2 chs", "-2"},
		{"20 °C chs", "-20 °C"},
		{"5 ft n", "5"},
		{"2 r", "0.5"},
		{"2 s r", "0.5 s^-1"},
		{"1 ft si", "0.3048 m"},
		{"1_000 m km", "1 km"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			c, err := eval(t, test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, c.Stack().Oneline(4))
		})
	}
}

func TestEvalExact(t *testing.T) {
	c, err := eval(t, "6 4 /", WithExact(true))
	require.NoError(t, err)
	v, err := c.Stack().Peek()
	require.NoError(t, err)
	assert.Equal(t, "3/2", v.Quantity.Value().String())

	c, err = eval(t, "1 m ft", WithExact(true))
	require.NoError(t, err)
	v, err = c.Stack().Peek()
	require.NoError(t, err)
	n, err := v.Quantity.InExact(si.Feet)
	require.NoError(t, err)
	assert.Equal(t, "1250/381", n.String())
	assert.Equal(t, "3.2808 ft", c.Stack().Oneline(4))
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		stack string
		is    error
	}{
		{"1 m 1 s +", "1 m 1 s", units.ErrDimensionMismatch},
		{"1 m s", "1 m", units.ErrDimensionMismatch},
		{"1 0 /", "1 0", units.ErrDivisionByZero},
		{"0 r", "0", units.ErrDivisionByZero},
		{"1 m 1 s @+", "1 m 1 s", units.ErrDimensionMismatch},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			c, err := eval(t, test.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, test.is)
			assert.Equal(t, test.stack, c.Stack().Oneline(4))
		})
	}
}

func TestEvalArgumentErrors(t *testing.T) {
	for _, input := range []string{"+", "1 +", "x", "d", "p", "chs", "1 @+", "m", "furlong"} {
		t.Run(input, func(t *testing.T) {
			_, err := eval(t, input)
			assert.Error(t, err)
		})
	}

	_, err := eval(t, "1 furlong")
	assert.ErrorContains(t, err, "'furlong': unrecognized argument")
}

func TestEvalResolver(t *testing.T) {
	furlong := units.Alias(si.Feet, "fur", num.Int(660))
	resolve := func(name string) (units.Unit, bool) {
		if name == "furlong" {
			return furlong, true
		}
		return si.Lookup(name)
	}

	c := New(resolve)
	require.NoError(t, c.Eval("2", "furlong"))
	assert.Equal(t, "2 fur", c.Stack().Oneline(4))
}

func TestPrint(t *testing.T) {
	c, err := eval(t, "1.5 m 10")
	require.NoError(t, err)

	var buf bytes.Buffer
	c.Stack().Print(&buf, 4)
	assert.Equal(t, "10\n 1.5 m\n", buf.String())
	assert.Equal(t, 2, c.Stack().Size())

	values := c.Stack().Values()
	assert.Equal(t, "1.5 m", values[0].String())
	assert.Equal(t, "10", values[1].String())
}
