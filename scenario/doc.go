// SPDX-License-Identifier: MIT

// Package scenario loads colony setups from YAML files.
//
// A scenario fixes everything a run needs: the seed, how many generations
// to run, the colony options and the car/charger coordinates.
//
//	seed: 42
//	generations: 50
//	options:
//	  num_ants: 200
//	  evaporation_rate: 0.2
//	cars:
//	  - {x: 0, y: 0}
//	  - {x: 0, y: 5}
//	chargers:
//	  - {x: 0, y: 10}
//
// Omitted option keys keep their aco.DefaultOptions values. Unknown keys
// are rejected so typos do not silently fall back to defaults.
package scenario
