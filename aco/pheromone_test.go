package aco_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/acocharge/aco"
	"github.com/katalvlaran/acocharge/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewPheromones_AllOnes(t *testing.T) {
	p, err := aco.NewPheromones(3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, p.Rows())
	require.Equal(t, 2, p.Cols())
	require.Equal(t, 6.0, sumDense(t, p.Dense()))

	empty, err := aco.NewPheromones(0, 4)
	require.NoError(t, err)
	require.NoError(t, empty.Evaporate(0.5))
	require.Equal(t, 0.0, sumDense(t, empty.Dense()))
}

func TestPheromones_EvaporateAndReinforce(t *testing.T) {
	p, err := aco.NewPheromones(2, 2)
	require.NoError(t, err)

	require.NoError(t, p.Evaporate(0.2))
	require.NoError(t, p.Reinforce(0, 1, 0.5))

	v, err := p.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.3, v, epsTiny)
	v, _ = p.At(1, 0)
	require.InDelta(t, 0.8, v, epsTiny)

	require.NoError(t, p.Evaporate(0))
	v, _ = p.At(1, 0)
	require.InDelta(t, 0.8, v, epsTiny)
}

func TestPheromones_NeverReachZero(t *testing.T) {
	p, err := aco.NewPheromones(1, 1)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		require.NoError(t, p.Evaporate(0.99))
	}
	v, _ := p.At(0, 0)
	require.Equal(t, aco.MinPheromone, v)

	require.NoError(t, p.Reinforce(0, 0, -10))
	v, _ = p.At(0, 0)
	require.Equal(t, aco.MinPheromone, v)
}

func TestPheromones_Errors(t *testing.T) {
	p, err := aco.NewPheromones(2, 1)
	require.NoError(t, err)

	for _, rate := range []float64{-0.1, 1, 1.5, math.NaN()} {
		require.ErrorIs(t, p.Evaporate(rate), aco.ErrInvalidEvaporation, "rate %g", rate)
	}
	require.ErrorIs(t, p.Reinforce(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, p.Reinforce(0, 0, math.Inf(1)), aco.ErrInvalidAmount)
	require.ErrorIs(t, p.Reinforce(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.Equal(t, 2.0, sumDense(t, p.Dense()))
}

func TestPheromones_DenseIsACopy(t *testing.T) {
	p, err := aco.NewPheromones(1, 2)
	require.NoError(t, err)
	d := p.Dense()
	require.NoError(t, d.Set(0, 0, 99))

	v, _ := p.At(0, 0)
	require.Equal(t, 1.0, v)
}
