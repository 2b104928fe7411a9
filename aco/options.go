// SPDX-License-Identifier: MIT

package aco

import (
	"fmt"
	"math"
)

// Defaults for Options.
const (
	DefaultNumAnts            = 1000
	DefaultDstPower           = 8.0
	DefaultPheromonePower     = 4.0
	DefaultEvaporationRate    = 0.2
	DefaultPheromoneIntensity = 2.0
	DefaultChargerCapacity    = 2
)

// Numeric floors that keep the desirability formula finite and positive.
const (
	// Epsilon replaces zero or NaN desirabilities before normalization.
	Epsilon = 1e-10

	// MinDistance is the smallest distance fed into 1/d. Co-located cars and
	// chargers are treated as MinDistance apart.
	MinDistance = 1e-6

	// MinPheromone is the lowest value any pheromone cell may hold.
	MinPheromone = 1e-10
)

// Options holds the colony parameters.
//
// Fields:
//   - NumAnts            — population per generation (≥1). Larger values cover
//     more of the search space at a higher per-tick cost.
//   - DstPower           — exponent on 1/distance; higher means greedier for short edges.
//   - PheromonePower     — exponent on pheromone; higher means more trail-following.
//   - EvaporationRate    — fraction of pheromone lost per generation, in [0,1).
//   - PheromoneIntensity — deposit scale; each walk adds Intensity/length per edge.
//   - ChargerCapacity    — cars a charger may take per generation (≥1).
//   - OnGeneration       — optional hook called with the finished population
//     after pheromones are updated and before the next generation spawns.
type Options struct {
	NumAnts            int
	DstPower           float64
	PheromonePower     float64
	EvaporationRate    float64
	PheromoneIntensity float64
	ChargerCapacity    int

	OnGeneration func(generation int, ants []Ant)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the stock parameter set:
// 1000 ants, DstPower 8, PheromonePower 4, EvaporationRate 0.2,
// PheromoneIntensity 2, ChargerCapacity 2, no hook.
func DefaultOptions() Options {
	return Options{
		NumAnts:            DefaultNumAnts,
		DstPower:           DefaultDstPower,
		PheromonePower:     DefaultPheromonePower,
		EvaporationRate:    DefaultEvaporationRate,
		PheromoneIntensity: DefaultPheromoneIntensity,
		ChargerCapacity:    DefaultChargerCapacity,
	}
}

// Validate checks every field and returns an error wrapping
// ErrOptionViolation (or ErrInvalidEvaporation) on the first violation.
func (o Options) Validate() error {
	if o.err != nil {
		return o.err
	}
	if o.NumAnts < 1 {
		return fmt.Errorf("%w: NumAnts=%d, want >= 1", ErrOptionViolation, o.NumAnts)
	}
	if !nonNegativeFinite(o.DstPower) {
		return fmt.Errorf("%w: DstPower=%g, want finite >= 0", ErrOptionViolation, o.DstPower)
	}
	if !nonNegativeFinite(o.PheromonePower) {
		return fmt.Errorf("%w: PheromonePower=%g, want finite >= 0", ErrOptionViolation, o.PheromonePower)
	}
	if err := validateEvaporation(o.EvaporationRate); err != nil {
		return err
	}
	if !validIntensity(o.PheromoneIntensity) {
		return fmt.Errorf("%w: PheromoneIntensity=%g, want finite >= 0 with finite Intensity/MinDistance", ErrOptionViolation, o.PheromoneIntensity)
	}
	if o.ChargerCapacity < 1 {
		return fmt.Errorf("%w: ChargerCapacity=%d, want >= 1", ErrOptionViolation, o.ChargerCapacity)
	}

	return nil
}

func nonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// validIntensity also bounds the largest deposit, intensity/MinDistance,
// which a zero-length walk produces.
func validIntensity(q float64) bool {
	return nonNegativeFinite(q) && !math.IsInf(q/MinDistance, 0)
}

func validateEvaporation(rate float64) error {
	// NaN fails both comparisons, so test the accepted range positively.
	if !(rate >= 0 && rate < 1) {
		return fmt.Errorf("%w: got %g", ErrInvalidEvaporation, rate)
	}

	return nil
}

// Option configures a Colony via functional arguments.
// Invalid values are recorded and surfaced by NewColony as ErrOptionViolation.
type Option func(*Options)

// WithOptions replaces the whole parameter set.
func WithOptions(src Options) Option {
	return func(o *Options) {
		err := o.err
		*o = src
		if o.err == nil {
			o.err = err
		}
	}
}

// WithNumAnts sets the population size.
func WithNumAnts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.recordErr(fmt.Errorf("%w: WithNumAnts(%d)", ErrOptionViolation, n))
			return
		}
		o.NumAnts = n
	}
}

// WithDstPower sets the exponent applied to inverse distance.
func WithDstPower(p float64) Option {
	return func(o *Options) {
		if !nonNegativeFinite(p) {
			o.recordErr(fmt.Errorf("%w: WithDstPower(%g)", ErrOptionViolation, p))
			return
		}
		o.DstPower = p
	}
}

// WithPheromonePower sets the exponent applied to pheromone strength.
func WithPheromonePower(p float64) Option {
	return func(o *Options) {
		if !nonNegativeFinite(p) {
			o.recordErr(fmt.Errorf("%w: WithPheromonePower(%g)", ErrOptionViolation, p))
			return
		}
		o.PheromonePower = p
	}
}

// WithEvaporationRate sets the per-generation evaporation fraction.
func WithEvaporationRate(r float64) Option {
	return func(o *Options) {
		if err := validateEvaporation(r); err != nil {
			o.recordErr(err)
			return
		}
		o.EvaporationRate = r
	}
}

// WithPheromoneIntensity sets the deposit scale.
func WithPheromoneIntensity(q float64) Option {
	return func(o *Options) {
		if !validIntensity(q) {
			o.recordErr(fmt.Errorf("%w: WithPheromoneIntensity(%g)", ErrOptionViolation, q))
			return
		}
		o.PheromoneIntensity = q
	}
}

// WithChargerCapacity sets how many cars each charger may take per generation.
func WithChargerCapacity(c int) Option {
	return func(o *Options) {
		if c < 1 {
			o.recordErr(fmt.Errorf("%w: WithChargerCapacity(%d)", ErrOptionViolation, c))
			return
		}
		o.ChargerCapacity = c
	}
}

// WithGenerationHook installs fn as the OnGeneration hook.
func WithGenerationHook(fn func(generation int, ants []Ant)) Option {
	return func(o *Options) {
		o.OnGeneration = fn
	}
}

// recordErr keeps the first option error only.
func (o *Options) recordErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
