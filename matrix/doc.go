// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage used by the colony
// solver for its distance and pheromone tables.
//
// The package offers:
//
//   - Dense, a row-major matrix over a flat backing slice with
//     bounds-checked At/Set and deep Clone.
//   - In-place element-wise kernels (Fill, Scale, AddAt, Floor, Apply) used
//     for evaporation and reinforcement.
//   - Gathers (GatherRow, GatherCol) that slice a candidate subset out of a
//     table without exposing the backing buffer.
//   - Validators (ValidateSameShape, ValidateFinite) shared by callers that
//     pair tables or feed values into them.
//
// Zero-sized matrices (0×c, r×0) are valid values: a colony with no cars or
// no chargers still owns well-formed, empty tables.
//
// All errors are sentinels from errors.go, matched with errors.Is.
package matrix
