// SPDX-License-Identifier: MIT

package aco

import (
	"fmt"

	"github.com/katalvlaran/acocharge/matrix"
)

// AntState is derived from where an ant currently stands.
type AntState uint8

const (
	// AtCar — the next move picks a charger with a free slot.
	AtCar AntState = iota
	// AtCharger — the next move picks an unvisited car.
	AtCharger
)

// Landscape is the read-only view of the colony an ant moves through.
type Landscape struct {
	Distances      *matrix.Dense
	Pheromones     *Pheromones
	DstPower       float64
	PheromonePower float64
}

// Validate reports ErrDimensionMismatch (wrapped) unless both tables are
// present and share one car×charger shape.
func (l Landscape) Validate() error {
	if l.Pheromones == nil {
		return fmt.Errorf("%w: landscape: %w", ErrDimensionMismatch, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSameShape(l.Distances, l.Pheromones.m); err != nil {
		return fmt.Errorf("%w: landscape: %w", ErrDimensionMismatch, err)
	}

	return nil
}

// Ant is one path-building walker that lives for a single generation.
//
// Invariants:
//   - every ChargerSlots[c] ≥ 0 and only ever decreases;
//   - VisitedCount() ≤ number of cars, and visited cars never un-visit;
//   - Path[0] is the spawn car and Path[len-1] == Location.
type Ant struct {
	DistanceTraveled float64
	ChargerSlots     []int
	Location         NodeRef
	Path             []NodeRef

	carsVisited []bool
	nVisited    int
	slotsLeft   int
	stuck       bool
}

// NewAnt spawns an ant on car spawnCar of nCars, with capacity free slots on
// each of nChargers chargers.
func NewAnt(spawnCar, nCars, nChargers, capacity int) (*Ant, error) {
	if spawnCar < 0 || spawnCar >= nCars {
		return nil, fmt.Errorf("%w: spawn car %d of %d", ErrDimensionMismatch, spawnCar, nCars)
	}
	if nChargers < 0 || capacity < 0 {
		return nil, fmt.Errorf("%w: %d chargers with capacity %d", ErrDimensionMismatch, nChargers, capacity)
	}
	slots := make([]int, nChargers)
	for i := range slots {
		slots[i] = capacity
	}
	loc := Car(spawnCar)

	return &Ant{
		ChargerSlots: slots,
		Location:     loc,
		Path:         []NodeRef{loc},
		carsVisited:  make([]bool, nCars),
		slotsLeft:    nChargers * capacity,
	}, nil
}

// State reports whether the ant stands on a car or a charger.
func (a *Ant) State() AntState {
	if a.Location.Kind == ChargerNode {
		return AtCharger
	}

	return AtCar
}

// Visited reports whether car i has been assigned by this ant.
func (a *Ant) Visited(car int) bool {
	return car >= 0 && car < len(a.carsVisited) && a.carsVisited[car]
}

// VisitedCount is the number of distinct cars this ant has assigned.
func (a *Ant) VisitedCount() int { return a.nVisited }

// SlotsRemaining is the sum of all ChargerSlots.
func (a *Ant) SlotsRemaining() int { return a.slotsLeft }

// Stuck reports whether the ant was retired because it had no legal move.
func (a *Ant) Stuck() bool { return a.stuck }

// Done reports whether the ant has finished its generation: every car was
// visited, every charger slot was used, or it got stuck.
func (a *Ant) Done() bool {
	return a.nVisited == len(a.carsVisited) || a.slotsLeft == 0 || a.stuck
}

// Step performs at most one transition. moved is false when the ant is
// already done or was just retired as stuck.
func (a *Ant) Step(env Landscape, src RandomSource) (moved bool, err error) {
	if a.Done() {
		return false, nil
	}
	if err = env.Validate(); err != nil {
		return false, err
	}
	switch a.State() {
	case AtCar:
		return a.toCharger(env, src)
	case AtCharger:
		return a.toCar(env, src)
	default:
		return false, fmt.Errorf("aco: ant at unknown node %v", a.Location)
	}
}

// toCharger: candidates are chargers with free slots, scored along the row
// of the current car.
func (a *Ant) toCharger(env Landscape, src RandomSource) (bool, error) {
	car := a.Location.Index
	cands := make([]int, 0, len(a.ChargerSlots))
	for c, left := range a.ChargerSlots {
		if left > 0 {
			cands = append(cands, c)
		}
	}
	if len(cands) == 0 {
		a.stuck = true
		return false, nil
	}

	dist, err := env.Distances.GatherRow(car, cands)
	if err != nil {
		return false, err
	}
	pher, err := env.Pheromones.towardChargers(car, cands)
	if err != nil {
		return false, err
	}
	probs, err := Probabilities(dist, pher, env.DstPower, env.PheromonePower)
	if err != nil {
		return false, err
	}
	k := SampleIndex(probs, src)
	next := cands[k]

	if !a.carsVisited[car] {
		a.carsVisited[car] = true
		a.nVisited++
	}
	a.ChargerSlots[next]--
	a.slotsLeft--
	a.moveTo(Charger(next), dist[k])

	return true, nil
}

// toCar: candidates are unvisited cars, scored along the column of the
// current charger.
func (a *Ant) toCar(env Landscape, src RandomSource) (bool, error) {
	charger := a.Location.Index
	cands := make([]int, 0, len(a.carsVisited)-a.nVisited)
	for c, seen := range a.carsVisited {
		if !seen {
			cands = append(cands, c)
		}
	}
	if len(cands) == 0 {
		a.stuck = true
		return false, nil
	}

	dist, err := env.Distances.GatherCol(charger, cands)
	if err != nil {
		return false, err
	}
	pher, err := env.Pheromones.towardCars(charger, cands)
	if err != nil {
		return false, err
	}
	probs, err := Probabilities(dist, pher, env.DstPower, env.PheromonePower)
	if err != nil {
		return false, err
	}
	k := SampleIndex(probs, src)
	a.moveTo(Car(cands[k]), dist[k])

	return true, nil
}

func (a *Ant) moveTo(n NodeRef, d float64) {
	a.Location = n
	a.DistanceTraveled += d
	a.Path = append(a.Path, n)
}

// Clone returns a deep copy.
func (a *Ant) Clone() Ant {
	cp := *a
	cp.ChargerSlots = append([]int(nil), a.ChargerSlots...)
	cp.Path = append([]NodeRef(nil), a.Path...)
	cp.carsVisited = append([]bool(nil), a.carsVisited...)

	return cp
}
