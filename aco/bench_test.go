package aco_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/acocharge/aco"
)

// benchmarkGenerations runs one generation per iteration on a fixed layout.
func benchmarkGenerations(b *testing.B, nCars, nChargers, nAnts int) {
	col, err := aco.NewColony(aco.NewRandomSource(1), aco.WithNumAnts(nAnts))
	if err != nil {
		b.Fatalf("NewColony failed: %v", err)
	}
	if err = col.AddCars(gridLayout(nCars, 0, 0)); err != nil {
		b.Fatalf("AddCars failed: %v", err)
	}
	if err = col.AddChargers(gridLayout(nChargers, 3, 5)); err != nil {
		b.Fatalf("AddChargers failed: %v", err)
	}

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = col.RunGenerations(ctx, 1); err != nil {
			b.Fatalf("RunGenerations failed: %v", err)
		}
	}
}

// BenchmarkColony_Small: 8 cars, 4 chargers, 100 ants.
func BenchmarkColony_Small(b *testing.B) { benchmarkGenerations(b, 8, 4, 100) }

// BenchmarkColony_Default: 20 cars, 10 chargers, the default 1000 ants.
func BenchmarkColony_Default(b *testing.B) {
	benchmarkGenerations(b, 20, 10, aco.DefaultNumAnts)
}

func BenchmarkProbabilities(b *testing.B) {
	d := []float64{3, 7, 11, 2, 19, 5, 13, 17}
	p := []float64{1, 0.5, 2, 1.5, 0.8, 1, 3, 0.2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := aco.Probabilities(d, p, aco.DefaultDstPower, aco.DefaultPheromonePower); err != nil {
			b.Fatal(err)
		}
	}
}
