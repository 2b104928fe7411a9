package aco_test

import (
	"testing"

	"github.com/katalvlaran/acocharge/aco"
	"github.com/katalvlaran/acocharge/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the seed shared by deterministic colony tests.
	seedDet = int64(42)

	// epsTiny is the tolerance for recomputed floating-point sums.
	epsTiny = 1e-12
)

// fixedSource always returns r from Float64 and 0 from Intn, so every
// weighted draw picks the first candidate whose cumulative mass exceeds r.
type fixedSource struct{ r float64 }

func (s fixedSource) Float64() float64 { return s.r }
func (s fixedSource) Intn(int) int { return 0 }

var _ aco.RandomSource = fixedSource{}

// newColony builds a seeded colony with the given points.
func newColony(t *testing.T, cars, chargers []aco.Point, opts ...aco.Option) *aco.Colony {
	t.Helper()
	col, err := aco.NewColony(aco.NewRandomSource(seedDet), opts...)
	require.NoError(t, err)
	require.NoError(t, col.AddCars(cars))
	require.NoError(t, col.AddChargers(chargers))

	return col
}

// gridLayout spreads n points over a small lattice with the given offset.
func gridLayout(n int, dx, dy float64) []aco.Point {
	pts := make([]aco.Point, n)
	for i := range pts {
		pts[i] = aco.Point{X: float64(i%4)*7 + dx, Y: float64(i/4)*11 + dy}
	}

	return pts
}

// sumDense adds every cell of m.
func sumDense(t *testing.T, m *matrix.Dense) float64 {
	t.Helper()
	var s float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			s += v
		}
	}

	return s
}
