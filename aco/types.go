// SPDX-License-Identifier: MIT

package aco

import "fmt"

// NodeKind tells which side of the bipartite graph a node lives on.
type NodeKind uint8

const (
	// CarNode marks an index into the car list.
	CarNode NodeKind = iota
	// ChargerNode marks an index into the charger list.
	ChargerNode
)

// String implements fmt.Stringer.
func (k NodeKind) String() string {
	switch k {
	case CarNode:
		return "car"
	case ChargerNode:
		return "charger"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
}

// NodeRef is a tagged reference to a car or a charger by list index.
type NodeRef struct {
	Kind  NodeKind
	Index int
}

// Car returns a reference to car i.
func Car(i int) NodeRef { return NodeRef{Kind: CarNode, Index: i} }

// Charger returns a reference to charger i.
func Charger(i int) NodeRef { return NodeRef{Kind: ChargerNode, Index: i} }

// String renders the node as "car#3" or "charger#0".
func (n NodeRef) String() string {
	return fmt.Sprintf("%s#%d", n.Kind, n.Index)
}

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Edge is one car–charger pair, independent of travel direction.
type Edge struct {
	Car, Charger int
}

// edgeOf maps two consecutive path nodes to the table cell they touch.
// ok is false when both nodes are on the same side.
func edgeOf(from, to NodeRef) (e Edge, ok bool) {
	switch from.Kind {
	case CarNode:
		if to.Kind != ChargerNode {
			return Edge{}, false
		}
		return Edge{Car: from.Index, Charger: to.Index}, true
	case ChargerNode:
		if to.Kind != CarNode {
			return Edge{}, false
		}
		return Edge{Car: to.Index, Charger: from.Index}, true
	default:
		return Edge{}, false
	}
}

// PathEdges lists the car–charger cells walked by path, in order.
// A path of fewer than two nodes has no edges.
func PathEdges(path []NodeRef) []Edge {
	if len(path) < 2 {
		return nil
	}
	out := make([]Edge, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		if e, ok := edgeOf(path[i], path[i+1]); ok {
			out = append(out, e)
		}
	}

	return out
}
