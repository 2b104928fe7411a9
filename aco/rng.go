// SPDX-License-Identifier: MIT
// Random source injected into a Colony.
//
// Goals:
//   - Determinism: same seed ⇒ identical generations across platforms.
//   - Encapsulation: one factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Give each Colony its own source.

package aco

import "math/rand"

// RandomSource is the randomness a Colony consumes: Intn picks spawn cars
// and Float64 drives the weighted draw over candidates.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or a nil source.
const defaultRNGSeed int64 = 1

// NewRandomSource returns a deterministic source.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func NewRandomSource(seed int64) RandomSource {
	return rngFromSeed(seed)
}

func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// orDefault substitutes the default deterministic stream for a nil source.
func orDefault(src RandomSource) RandomSource {
	if src == nil {
		return rngFromSeed(0)
	}

	return src
}
