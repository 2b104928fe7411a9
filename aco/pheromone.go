// SPDX-License-Identifier: MIT

package aco

import (
	"fmt"

	"github.com/katalvlaran/acocharge/matrix"
)

// Pheromones is the car×charger trail table.
// Every cell stays ≥ MinPheromone so it can feed the multiplicative
// desirability formula.
type Pheromones struct {
	m *matrix.Dense
}

// NewPheromones returns an nCars×nChargers table of ones.
func NewPheromones(nCars, nChargers int) (*Pheromones, error) {
	m, err := matrix.NewFilled(nCars, nChargers, 1)
	if err != nil {
		return nil, err
	}

	return &Pheromones{m: m}, nil
}

// Rows is the number of cars the table covers.
func (p *Pheromones) Rows() int { return p.m.Rows() }

// Cols is the number of chargers the table covers.
func (p *Pheromones) Cols() int { return p.m.Cols() }

// At returns the trail strength between car and charger.
func (p *Pheromones) At(car, charger int) (float64, error) {
	return p.m.At(car, charger)
}

// Evaporate multiplies every cell by (1 − rate), then floors at MinPheromone.
// rate must lie in [0,1).
func (p *Pheromones) Evaporate(rate float64) error {
	if err := validateEvaporation(rate); err != nil {
		return err
	}
	p.m.Scale(1 - rate)
	p.m.Floor(MinPheromone)

	return nil
}

// Reinforce adds amount to the (car, charger) cell. The result is floored at
// MinPheromone, so negative amounts can weaken but never zero a trail.
func (p *Pheromones) Reinforce(car, charger int, amount float64) error {
	if err := matrix.ValidateFinite(amount); err != nil {
		return fmt.Errorf("reinforce(%d,%d): %w (%w)", car, charger, ErrInvalidAmount, err)
	}
	v, err := p.m.AddAt(car, charger, amount)
	if err != nil {
		return fmt.Errorf("reinforce: %w", err)
	}
	if v < MinPheromone {
		if err = p.m.Set(car, charger, MinPheromone); err != nil {
			return fmt.Errorf("reinforce: %w", err)
		}
	}

	return nil
}

// Dense returns a deep copy of the table for readers (renderers scale trail
// widths by it).
func (p *Pheromones) Dense() *matrix.Dense {
	return p.m.CloneDense()
}

// towardChargers gathers the row of car restricted to the given chargers.
func (p *Pheromones) towardChargers(car int, chargers []int) ([]float64, error) {
	return p.m.GatherRow(car, chargers)
}

// towardCars gathers the column of charger restricted to the given cars.
func (p *Pheromones) towardCars(charger int, cars []int) ([]float64, error) {
	return p.m.GatherCol(charger, cars)
}
