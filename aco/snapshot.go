// SPDX-License-Identifier: MIT

package aco

import "github.com/katalvlaran/acocharge/matrix"

// Snapshot is a read-only copy of a colony for display or reporting.
// Mutating it never affects the colony.
type Snapshot struct {
	Cars       []Point
	Chargers   []Point
	Distances  *matrix.Dense
	Pheromones *matrix.Dense
	Best       *BestPath // nil when no generation has completed since the last topology change
	Generation int
	Ticks      int
}

// Segment is one straight car–charger leg of a path, in travel order.
type Segment struct {
	From, To Point
}

// Assignment pairs a car with the charger it was sent to.
type Assignment struct {
	Car, Charger int
}

// Snapshot copies the current state.
func (c *Colony) Snapshot() Snapshot {
	s := Snapshot{
		Cars:       append([]Point(nil), c.cars...),
		Chargers:   append([]Point(nil), c.chargers...),
		Distances:  c.distances.CloneDense(),
		Pheromones: c.pheromones.Dense(),
		Generation: c.generation,
		Ticks:      c.ticks,
	}
	if b, ok := c.best.Best(); ok {
		s.Best = &b
	}

	return s
}

// point resolves a node against the snapshot's coordinate lists.
func (s Snapshot) point(n NodeRef) (Point, bool) {
	switch n.Kind {
	case CarNode:
		if n.Index >= 0 && n.Index < len(s.Cars) {
			return s.Cars[n.Index], true
		}
	case ChargerNode:
		if n.Index >= 0 && n.Index < len(s.Chargers) {
			return s.Chargers[n.Index], true
		}
	}

	return Point{}, false
}

// BestSegments returns the best path as coordinate legs, or nil.
func (s Snapshot) BestSegments() []Segment {
	if s.Best == nil || len(s.Best.Path) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(s.Best.Path)-1)
	for i := 0; i+1 < len(s.Best.Path); i++ {
		from, ok1 := s.point(s.Best.Path[i])
		to, ok2 := s.point(s.Best.Path[i+1])
		if ok1 && ok2 {
			out = append(out, Segment{From: from, To: to})
		}
	}

	return out
}

// Assignments returns the car→charger moves of the best path in order.
// Charger→car legs are travel between assignments and are not listed.
func (s Snapshot) Assignments() []Assignment {
	if s.Best == nil {
		return nil
	}
	var out []Assignment
	for i := 0; i+1 < len(s.Best.Path); i++ {
		from, to := s.Best.Path[i], s.Best.Path[i+1]
		if from.Kind == CarNode && to.Kind == ChargerNode {
			out = append(out, Assignment{Car: from.Index, Charger: to.Index})
		}
	}

	return out
}
