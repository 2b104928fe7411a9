package aco_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/acocharge/aco"
	"github.com/stretchr/testify/require"
)

func requireDistribution(t *testing.T, probs []float64) {
	t.Helper()
	var sum float64
	for k, p := range probs {
		require.False(t, math.IsNaN(p) || math.IsInf(p, 0), "probs[%d]=%g", k, p)
		require.GreaterOrEqual(t, p, 0.0, "probs[%d]", k)
		sum += p
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestProbabilities_Formula(t *testing.T) {
	probs, err := aco.Probabilities([]float64{1, 2}, []float64{1, 1}, 1, 1)
	require.NoError(t, err)
	require.InDelta(t, 2.0/3.0, probs[0], epsTiny)
	require.InDelta(t, 1.0/3.0, probs[1], epsTiny)

	// Pheromone can outweigh distance: (1/2)^1 * 4^2 = 8 vs (1/1)^1 * 1^2 = 1.
	probs, err = aco.Probabilities([]float64{1, 2}, []float64{1, 4}, 1, 2)
	require.NoError(t, err)
	require.InDelta(t, 1.0/9.0, probs[0], epsTiny)
	require.InDelta(t, 8.0/9.0, probs[1], epsTiny)
}

func TestProbabilities_NumericEdges(t *testing.T) {
	cases := []struct {
		name     string
		d, p     []float64
		dstPower float64
		want     []float64
	}{
		{
			name:     "UnderflowFlooredToEpsilon",
			d:        []float64{1e200, 1e200},
			p:        []float64{1, 1},
			dstPower: 8,
			want:     []float64{0.5, 0.5},
		},
		{
			name:     "OverflowSplitsEvenly",
			d:        []float64{0, 0, 5},
			p:        []float64{1, 1, 1},
			dstPower: 400,
			want:     []float64{0.5, 0.5, 0},
		},
		{
			name:     "SingleCandidate",
			d:        []float64{3},
			p:        []float64{0.2},
			dstPower: 8,
			want:     []float64{1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			probs, err := aco.Probabilities(tc.d, tc.p, tc.dstPower, aco.DefaultPheromonePower)
			require.NoError(t, err)
			require.Len(t, probs, len(tc.want))
			for k := range tc.want {
				require.InDelta(t, tc.want[k], probs[k], epsTiny, "probs[%d]", k)
			}
			requireDistribution(t, probs)
		})
	}
}

func TestProbabilities_ZeroDistanceIsFiniteAndPreferred(t *testing.T) {
	probs, err := aco.Probabilities([]float64{0, 5}, []float64{1, 1}, aco.DefaultDstPower, aco.DefaultPheromonePower)
	require.NoError(t, err)
	requireDistribution(t, probs)
	require.Greater(t, probs[0], 0.999)
}

func TestProbabilities_Errors(t *testing.T) {
	_, err := aco.Probabilities(nil, nil, 1, 1)
	require.ErrorIs(t, err, aco.ErrNoCandidates)

	_, err = aco.Probabilities([]float64{1}, []float64{1, 2}, 1, 1)
	require.ErrorIs(t, err, aco.ErrDimensionMismatch)
}

func TestProbabilities_RandomSubsetsAreDistributions(t *testing.T) {
	r := rand.New(rand.NewSource(seedDet))
	for trial := 0; trial < 200; trial++ {
		n := 1 + r.Intn(12)
		d := make([]float64, n)
		p := make([]float64, n)
		for k := 0; k < n; k++ {
			d[k] = r.Float64() * 1000
			p[k] = aco.MinPheromone + r.Float64()*5
		}
		probs, err := aco.Probabilities(d, p, aco.DefaultDstPower, aco.DefaultPheromonePower)
		require.NoError(t, err)
		requireDistribution(t, probs)
	}
}

func TestSampleIndex(t *testing.T) {
	probs := []float64{0.2, 0.3, 0.5}
	cases := []struct {
		r    float64
		want int
	}{
		{0, 0},
		{0.1, 0},
		{0.25, 1},
		{0.9, 2},
		{0.9999999999, 2},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, aco.SampleIndex(probs, fixedSource{r: tc.r}), "r=%g", tc.r)
	}

	// Zero-mass entries are never drawn, even when rounding leaves a gap.
	require.Equal(t, 1, aco.SampleIndex([]float64{0.3, 0.3, 0}, fixedSource{r: 0.9}))
	require.Equal(t, 1, aco.SampleIndex([]float64{0, 1}, fixedSource{r: 0}))
}
