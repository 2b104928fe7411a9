// SPDX-License-Identifier: MIT

package aco

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/acocharge/matrix"
)

// Colony owns one simulation: the car and charger sets, both tables, the
// ant population and the best path.
//
// A Colony is not safe for concurrent use.
type Colony struct {
	opts Options
	rng  RandomSource

	cars     []Point
	chargers []Point

	distances  *matrix.Dense
	pheromones *Pheromones

	ants []*Ant
	best BestPathTracker

	generation int // completed generations since the last topology change
	ticks      int // ticks since creation
}

// NewColony returns an empty colony. src drives spawn positions and every
// weighted draw; nil selects the default deterministic stream.
//
// Errors: ErrOptionViolation / ErrInvalidEvaporation (wrapped) for bad options.
func NewColony(src RandomSource, opts ...Option) (*Colony, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	c := &Colony{opts: o, rng: orDefault(src)}
	if err := c.rebuild(); err != nil {
		return nil, err
	}

	return c, nil
}

// Options returns the parameters the colony runs with.
func (c *Colony) Options() Options {
	return c.opts
}

// AddCar appends a car at (x, y) and resets the colony.
func (c *Colony) AddCar(x, y float64) error {
	return c.AddCars([]Point{{X: x, Y: y}})
}

// AddCharger appends a charger at (x, y) and resets the colony.
func (c *Colony) AddCharger(x, y float64) error {
	return c.AddChargers([]Point{{X: x, Y: y}})
}

// AddCars appends pts in order and runs the reset cascade once.
// Nothing is appended if any point is invalid.
func (c *Colony) AddCars(pts []Point) error {
	if err := validatePoints("car", pts); err != nil {
		return err
	}
	c.cars = append(c.cars, pts...)

	return c.rebuild()
}

// AddChargers appends pts in order and runs the reset cascade once.
func (c *Colony) AddChargers(pts []Point) error {
	if err := validatePoints("charger", pts); err != nil {
		return err
	}
	c.chargers = append(c.chargers, pts...)

	return c.rebuild()
}

// rebuild is the topology-change cascade: recompute distances, reset
// pheromones to ones, forget the best path and spawn a fresh generation.
func (c *Colony) rebuild() error {
	d, err := ComputeDistances(c.cars, c.chargers)
	if err != nil {
		return err
	}
	p, err := NewPheromones(len(c.cars), len(c.chargers))
	if err != nil {
		return err
	}
	c.distances = d
	c.pheromones = p
	c.best.Reset()
	c.generation = 0

	return c.spawn()
}

// spawn replaces the population with NumAnts fresh ants on random cars.
// With no cars or no chargers the population is empty.
func (c *Colony) spawn() error {
	nCars, nChargers := len(c.cars), len(c.chargers)
	if nCars == 0 || nChargers == 0 {
		c.ants = nil
		return nil
	}
	ants := make([]*Ant, c.opts.NumAnts)
	for i := range ants {
		a, err := NewAnt(c.rng.Intn(nCars), nCars, nChargers, c.opts.ChargerCapacity)
		if err != nil {
			return err
		}
		ants[i] = a
	}
	c.ants = ants

	return nil
}

func (c *Colony) landscape() Landscape {
	return Landscape{
		Distances:      c.distances,
		Pheromones:     c.pheromones,
		DstPower:       c.opts.DstPower,
		PheromonePower: c.opts.PheromonePower,
	}
}

// Tick advances the simulation by one step: every unfinished ant makes one
// move, in population order. If the whole population is then done, the
// generation closes (evaporate, deposit, update best, respawn) and Tick
// reports completed=true. With no ants Tick only counts itself.
func (c *Colony) Tick() (completed bool, err error) {
	c.ticks++
	if len(c.ants) == 0 {
		return false, nil
	}

	env := c.landscape()
	for i, a := range c.ants {
		if _, err = a.Step(env, c.rng); err != nil {
			return false, fmt.Errorf("tick %d, ant %d: %w", c.ticks, i, err)
		}
	}
	for _, a := range c.ants {
		if !a.Done() {
			return false, nil
		}
	}

	if err = c.closeGeneration(); err != nil {
		return false, err
	}

	return true, nil
}

// closeGeneration applies the end-of-generation updates and respawns.
func (c *Colony) closeGeneration() error {
	if err := UpdatePheromones(c.pheromones, c.ants, c.opts.EvaporationRate, c.opts.PheromoneIntensity); err != nil {
		return err
	}
	c.best.Consider(c.ants)
	c.generation++

	if c.opts.OnGeneration != nil {
		c.opts.OnGeneration(c.generation, c.cloneAnts())
	}

	return c.spawn()
}

// UpdatePheromones evaporates p by rate, then for every ant and every
// consecutive car–charger pair on its path adds intensity/DistanceTraveled
// to that cell. Zero-length walks deposit intensity/MinDistance; ants that
// never moved deposit nothing.
//
// Every deposit is checked before the table is touched, so an error leaves p
// unchanged.
func UpdatePheromones(p *Pheromones, ants []*Ant, rate, intensity float64) error {
	if err := validateEvaporation(rate); err != nil {
		return err
	}
	deposits, err := collectDeposits(p, ants, intensity)
	if err != nil {
		return err
	}
	if err = p.Evaporate(rate); err != nil {
		return err
	}
	for _, d := range deposits {
		if err = p.Reinforce(d.Car, d.Charger, d.amount); err != nil {
			return err
		}
	}

	return nil
}

// deposit is one pending reinforcement.
type deposit struct {
	Edge
	amount float64
}

// collectDeposits lists every reinforcement of a generation close, rejecting
// non-finite amounts and edges outside p.
func collectDeposits(p *Pheromones, ants []*Ant, intensity float64) ([]deposit, error) {
	var out []deposit
	for i, a := range ants {
		edges := PathEdges(a.Path)
		if len(edges) == 0 {
			continue
		}
		amount := intensity / math.Max(a.DistanceTraveled, MinDistance)
		if err := matrix.ValidateFinite(amount); err != nil {
			return nil, fmt.Errorf("ant %d: %w (%w)", i, ErrInvalidAmount, err)
		}
		for _, e := range edges {
			if e.Car < 0 || e.Car >= p.Rows() || e.Charger < 0 || e.Charger >= p.Cols() {
				return nil, fmt.Errorf("ant %d: edge (%d,%d) outside %dx%d table: %w",
					i, e.Car, e.Charger, p.Rows(), p.Cols(), matrix.ErrOutOfRange)
			}
			out = append(out, deposit{Edge: e, amount: amount})
		}
	}

	return out, nil
}

// RunGenerations ticks until n more generations have completed or ctx is
// done. The context is checked between ticks.
//
// Errors: ErrEmptyTopology when no generation can complete; ctx.Err() on
// cancellation; anything Tick returns.
func (c *Colony) RunGenerations(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	if len(c.ants) == 0 {
		return ErrEmptyTopology
	}
	for done := 0; done < n; {
		if err := ctx.Err(); err != nil {
			return err
		}
		completed, err := c.Tick()
		if err != nil {
			return err
		}
		if completed {
			done++
		}
	}

	return nil
}

// Generation is the number of generations completed since the last
// topology change.
func (c *Colony) Generation() int { return c.generation }

// Ticks is the number of Tick calls since the colony was created.
func (c *Colony) Ticks() int { return c.ticks }

// NumCars returns the size of the car set.
func (c *Colony) NumCars() int { return len(c.cars) }

// NumChargers returns the size of the charger set.
func (c *Colony) NumChargers() int { return len(c.chargers) }

// Ants returns deep copies of the current population, in processing order.
func (c *Colony) Ants() []Ant {
	return c.cloneAnts()
}

func (c *Colony) cloneAnts() []Ant {
	out := make([]Ant, len(c.ants))
	for i, a := range c.ants {
		out[i] = a.Clone()
	}

	return out
}

// Best returns the shortest walk since the last topology change.
func (c *Colony) Best() (BestPath, bool) {
	return c.best.Best()
}
