// Package acocharge pairs cars with capacity-limited chargers using Ant
// Colony Optimization.
//
// 🚀 What is acocharge?
//
//	A small, deterministic, pure-Go solver that brings together:
//		• Distance tables: L1 car×charger distances on a dense matrix
//		• Pheromone trails: evaporation + reinforcement, floored above zero
//		• Ants: two-state walkers that alternate car → charger → car
//		• Colony: tick-by-tick driver with generation lifecycle and best path
//		• Scenarios: YAML files describing points, options and seed
//
// ✨ Why tick-by-tick?
//
//   - A caller (renderer, CLI, test) decides the cadence: one Tick moves every
//     unfinished ant by exactly one edge.
//   - Seeded random sources make every run reproducible.
//   - All state lives in a Colony value; independent colonies never interfere.
//
// Packages:
//
//	aco/          — solver core: distances, pheromones, ants, colony, snapshot
//	matrix/       — row-major dense float64 matrix used by both tables
//	scenario/     — YAML scenario loading and colony construction
//	cmd/acocharge — headless command-line runner
//
// Quick ASCII example:
//
//	car0 ──10── chg0 ──5── car1
//
// one charger with two slots serves both cars; the best walk is
// car0 → chg0 → car1 → chg0 with length 20.
//
//	go get github.com/katalvlaran/acocharge
package acocharge
