// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikecarlton/calc/pkg/dimension"
)

type length struct{}

func (length) Dimensions() dimension.Vector { return dimension.Of(dimension.Length, 1) }

type duration struct{}

func (duration) Dimensions() dimension.Vector { return dimension.Of(dimension.Time, 1) }

func TestTypedPlus(t *testing.T) {
	a, err := NewTyped[length](1, meters)
	require.NoError(t, err)
	b, err := NewTyped[length](1, feet)
	require.NoError(t, err)

	sum, err := a.Plus(b)
	require.NoError(t, err)
	v, err := sum.In(meters)
	require.NoError(t, err)
	assert.InDelta(t, 1.3048, v, 1e-9)

	diff, err := sum.Minus(b)
	require.NoError(t, err)
	v, err = diff.In(meters)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestTypedRejectsWrongUnit(t *testing.T) {
	_, err := NewTyped[length](1, seconds)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = As[duration](Of(1, meters))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestTypedZeroValueIsChecked(t *testing.T) {
	var laundered Typed[length]
	a, err := NewTyped[length](1, meters)
	require.NoError(t, err)

	_, err = a.Plus(laundered)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = laundered.Minus(a)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestTypedTimesRetyped(t *testing.T) {
	d, err := NewTyped[length](6, meters)
	require.NoError(t, err)
	s, err := NewTyped[duration](2, seconds)
	require.NoError(t, err)

	q, err := d.Per(s.Quantity())
	require.NoError(t, err)
	_, err = As[length](q)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	back, err := As[length](q.Times(s.Quantity()))
	require.NoError(t, err)
	assert.Equal(t, "6m", back.String())
}
