package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	N := 3
	v1 := NewVector(N).Set(1)
	require.Equal(t, 1., v1.V.RawVector().Data[N-1])
	v1.Set(2)
	require.Equal(t, 2., v1.V.RawVector().Data[N-1])

	// Chained elementwise algebra
	v2 := NewVector(N, []float64{1, 2, 3})
	v3 := v2.Copy().POW(2).AddScalar(1) // 2, 5, 10
	require.Equal(t, []float64{2, 5, 10}, v3.DataP())
	require.Equal(t, []float64{1, 2, 3}, v2.DataP()) // Copy left the source alone

	v4 := v3.Copy().ElMul(v2) // 2, 10, 30
	require.Equal(t, []float64{2, 10, 30}, v4.DataP())
	v4.ElDiv(v2)
	require.Equal(t, []float64{2, 5, 10}, v4.DataP())

	v4.Subtract(v3)
	require.Equal(t, []float64{0, 0, 0}, v4.DataP())

	v5 := v2.Copy().Scale(2).Add(v2) // 3, 6, 9
	require.Equal(t, []float64{3, 6, 9}, v5.DataP())

	sq := v2.Copy().Apply(math.Sqrt)
	assert.InDelta(t, math.Sqrt2, sq.AtVec(1), 1.e-15)

	assert.Equal(t, 1., v2.Min())
	assert.Equal(t, 3., v2.Max())

	// Linspace
	{
		req := NewVector(2).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 1., req.AtVec(1))
		req = NewVector(3).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 0., req.AtVec(1))
		assert.Equal(t, 1., req.AtVec(2))
	}
}

func TestPOW(t *testing.T) {
	require.Equal(t, 8., POW(2, 3))
	require.Equal(t, 1., POW(5, 0))
	require.Equal(t, 0.25, POW(2, -2))
	require.InDelta(t, math.Pow(1.5, 9), POW(1.5, 9), 1.e-12)
}
