// SPDX-License-Identifier: MIT

package aco

import "errors"

// Sentinel errors returned by the aco package. Callers match with errors.Is.
var (
	// ErrOptionViolation is returned when an Option or Options field is out of range.
	ErrOptionViolation = errors.New("aco: invalid option supplied")

	// ErrInvalidPoint is returned when a coordinate is NaN or ±Inf.
	ErrInvalidPoint = errors.New("aco: point coordinates must be finite")

	// ErrNoCandidates is returned when a probability distribution is requested
	// over an empty candidate set.
	ErrNoCandidates = errors.New("aco: empty candidate set")

	// ErrDimensionMismatch is returned when aligned inputs differ in length or
	// a table does not match the current topology.
	ErrDimensionMismatch = errors.New("aco: dimension mismatch")

	// ErrInvalidEvaporation is returned when an evaporation rate lies outside [0,1).
	ErrInvalidEvaporation = errors.New("aco: evaporation rate must be in [0,1)")

	// ErrInvalidAmount is returned when a pheromone deposit is NaN or ±Inf.
	ErrInvalidAmount = errors.New("aco: pheromone amount must be finite")

	// ErrEmptyTopology is returned by RunGenerations when there are no cars
	// or no chargers, so no generation can ever complete.
	ErrEmptyTopology = errors.New("aco: colony needs at least one car and one charger")
)
