// SPDX-License-Identifier: MIT

// Package aco assigns cars to capacity-limited chargers with Ant Colony
// Optimization.
//
// 🚀 What does it solve?
//
//	Given car positions and charger positions in the plane, pair every car
//	with a charger so that the cumulative L1 (Manhattan) distance of the
//	alternating car→charger→car→… walk is small, while no charger serves
//	more than ChargerCapacity cars per generation.
//
// ✨ Building blocks:
//   - ComputeDistances — |cars|×|chargers| L1 table (matrix.Dense).
//   - Pheromones       — trail table with Evaporate/Reinforce, floored above zero.
//   - Probabilities    — desirability = (1/d)^DstPower · p^PheromonePower, normalized.
//   - Ant              — two-state walker (AtCar/AtCharger), one move per tick.
//   - BestPathTracker  — shortest completed walk since the last topology change.
//   - Colony           — owns everything above; Tick advances one step.
//
// ⚙️ Usage:
//
//	col, err := aco.NewColony(aco.NewRandomSource(42), aco.WithNumAnts(200))
//	_ = col.AddCars([]aco.Point{{X: 0, Y: 0}, {X: 0, Y: 5}})
//	_ = col.AddCharger(0, 10)
//	_ = col.RunGenerations(ctx, 50)
//	snap := col.Snapshot()
//	fmt.Println(snap.Best.Distance, snap.Assignments())
//
// Stepping model:
//
//	Tick moves every unfinished ant by exactly one edge, in population
//	order. Each ant books charger slots against its own copy of the
//	capacity baseline, and all ants draw from the colony's one random
//	source in that fixed order, so a seed reproduces a run exactly.
//	When every ant is done the generation closes: pheromones
//	evaporate, each walk deposits PheromoneIntensity/DistanceTraveled on
//	every edge it used, the best path is updated and a fresh population is
//	spawned.
//
// Topology changes (AddCar, AddCharger) recompute distances, reset the
// pheromone table to ones, forget the best path and respawn the ants.
//
// Concurrency:
//
//	A Colony is not safe for concurrent use. Independent colonies share
//	no state and may run on separate goroutines.
package aco
