package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	_, err := NewLine("", []float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewLine("a", []float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	l, err := NewLine("a", []float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, "a", l.Name())
	assert.Equal(t, 2, l.Len())
	x, y := l.At(1)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 4.0, y)
}

func TestLineSkipsNonFinite(t *testing.T) {
	l, err := NewLine("v", []float64{0, 1, 2, 3}, []float64{math.Inf(1), 1.5, math.NaN(), -2})
	require.NoError(t, err)

	assert.Equal(t, 2, l.NonFinite())

	data := l.Data()
	require.Len(t, data, 2)
	assert.Equal(t, []float64{1, 1.5}, data[0].Value)
	assert.Equal(t, []float64{3, -2}, data[1].Value)

	points := l.Points()
	require.Len(t, points, 4)
	assert.Nil(t, points[0].Y)
	require.NotNil(t, points[1].Y)
	assert.Equal(t, 1.5, *points[1].Y)
	assert.Nil(t, points[2].Y)
	assert.Equal(t, 3.0, points[3].X)
}
