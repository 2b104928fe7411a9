// SPDX-License-Identifier: MIT

package aco

import (
	"fmt"
	"math"

	"github.com/katalvlaran/acocharge/matrix"
)

// L1 returns the Manhattan distance |a.X-b.X| + |a.Y-b.Y|.
func L1(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// ComputeDistances builds the |cars|×|chargers| table whose (i, j) entry is
// L1(cars[i], chargers[j]). Either side empty yields an empty table.
//
// Errors: ErrInvalidPoint (wrapped) if any coordinate is not finite.
// Complexity: O(|cars|·|chargers|).
func ComputeDistances(cars, chargers []Point) (*matrix.Dense, error) {
	if err := validatePoints("car", cars); err != nil {
		return nil, err
	}
	if err := validatePoints("charger", chargers); err != nil {
		return nil, err
	}

	d, err := matrix.NewDense(len(cars), len(chargers))
	if err != nil {
		return nil, err
	}
	d.Apply(func(i, j int, _ float64) float64 {
		return L1(cars[i], chargers[j])
	})

	return d, nil
}

func validatePoint(p Point) error {
	for _, v := range [2]float64{p.X, p.Y} {
		if err := matrix.ValidateFinite(v); err != nil {
			return fmt.Errorf("%w (%w)", ErrInvalidPoint, err)
		}
	}

	return nil
}

func validatePoints(kind string, pts []Point) error {
	for i, p := range pts {
		if err := validatePoint(p); err != nil {
			return fmt.Errorf("%s %d (%g,%g): %w", kind, i, p.X, p.Y, err)
		}
	}

	return nil
}
