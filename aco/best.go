// SPDX-License-Identifier: MIT

package aco

import "math"

// BestPath is a completed walk and its total L1 length.
type BestPath struct {
	Path     []NodeRef
	Distance float64
}

// BestPathTracker keeps the shortest walk seen since the last Reset.
// The zero value tracks nothing.
type BestPathTracker struct {
	path     []NodeRef
	distance float64
	set      bool
}

// Consider offers every ant in ants; an ant replaces the current best when
// its DistanceTraveled is strictly smaller. Ants that never moved are ignored.
// It reports whether the best changed.
func (t *BestPathTracker) Consider(ants []*Ant) bool {
	changed := false
	for _, a := range ants {
		if a == nil || len(a.Path) < 2 {
			continue
		}
		if t.set && !(a.DistanceTraveled < t.distance) {
			continue
		}
		t.path = append(t.path[:0:0], a.Path...)
		t.distance = a.DistanceTraveled
		t.set = true
		changed = true
	}

	return changed
}

// Reset forgets the tracked best.
func (t *BestPathTracker) Reset() {
	t.path = nil
	t.distance = 0
	t.set = false
}

// Distance returns the best length, or +Inf when nothing is tracked.
func (t *BestPathTracker) Distance() float64 {
	if !t.set {
		return math.Inf(1)
	}

	return t.distance
}

// Best returns a copy of the tracked path.
func (t *BestPathTracker) Best() (BestPath, bool) {
	if !t.set {
		return BestPath{}, false
	}

	return BestPath{
		Path:     append([]NodeRef(nil), t.path...),
		Distance: t.distance,
	}, true
}
