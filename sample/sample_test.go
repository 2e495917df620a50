package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		n      int
		want   []float64
	}{
		{name: "empty", lo: 0, hi: 1, n: 0, want: []float64{}},
		{name: "single", lo: 3, hi: 7, n: 1, want: []float64{3}},
		{name: "two", lo: 0, hi: 10, n: 2, want: []float64{0, 10}},
		{name: "five", lo: 0, hi: 1, n: 5, want: []float64{0, 0.25, 0.5, 0.75, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Linspace(tt.lo, tt.hi, tt.n))
		})
	}
}

func TestLinspaceEndpointsAndSpacing(t *testing.T) {
	xs := Linspace(0, 36000, 100)
	require.Len(t, xs, 100)
	assert.Equal(t, 0.0, xs[0])
	assert.Equal(t, 36000.0, xs[99])

	step := 36000.0 / 99
	for i := 1; i < len(xs); i++ {
		assert.InDelta(t, step, xs[i]-xs[i-1], 1e-9)
	}
}
