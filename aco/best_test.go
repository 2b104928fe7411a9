package aco_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/acocharge/aco"
	"github.com/stretchr/testify/require"
)

func walked(t *testing.T, dist float64, path ...aco.NodeRef) *aco.Ant {
	t.Helper()
	a, err := aco.NewAnt(0, 2, 2, 2)
	require.NoError(t, err)
	a.Path = path
	a.DistanceTraveled = dist

	return a
}

func TestBestPathTracker(t *testing.T) {
	var tr aco.BestPathTracker
	_, ok := tr.Best()
	require.False(t, ok)
	require.True(t, math.IsInf(tr.Distance(), 1))

	long := walked(t, 30, aco.Car(0), aco.Charger(1))
	short := walked(t, 12, aco.Car(1), aco.Charger(0))
	idle := walked(t, 0, aco.Car(0))

	require.True(t, tr.Consider([]*aco.Ant{long, idle, short}))
	b, ok := tr.Best()
	require.True(t, ok)
	require.Equal(t, 12.0, b.Distance)
	require.Equal(t, []aco.NodeRef{aco.Car(1), aco.Charger(0)}, b.Path)

	// Ties and longer walks do not replace the best.
	tie := walked(t, 12, aco.Car(0), aco.Charger(0))
	require.False(t, tr.Consider([]*aco.Ant{tie, long}))
	b, _ = tr.Best()
	require.Equal(t, aco.Car(1), b.Path[0])

	// The tracker keeps its own copy of the path.
	short.Path[0] = aco.Car(0)
	b, _ = tr.Best()
	require.Equal(t, aco.Car(1), b.Path[0])

	tr.Reset()
	_, ok = tr.Best()
	require.False(t, ok)
}
