// SPDX-License-Identifier: MIT

package aco

import (
	"fmt"
	"math"
)

// Probabilities turns aligned candidate distances d and pheromones p into a
// probability distribution:
//
//	desirability[k] = (1 / max(d[k], MinDistance))^dstPower · p[k]^pheromonePower
//	probability[k]  = desirability[k] / Σ desirability
//
// Numeric policy:
//   - zero or NaN desirabilities become Epsilon;
//   - if any desirability is +Inf, the +Inf candidates split the mass evenly
//     and every other candidate gets 0. This departs on purpose from flooring
//     every non-finite value to Epsilon, which would rank an overflowing
//     (nearest) candidate last;
//   - otherwise values are divided by their maximum before summing, so the
//     sum cannot overflow.
//
// Errors: ErrNoCandidates for empty input, ErrDimensionMismatch when
// len(d) != len(p).
// Complexity: O(k).
func Probabilities(d, p []float64, dstPower, pheromonePower float64) ([]float64, error) {
	if len(d) != len(p) {
		return nil, fmt.Errorf("%w: %d distances, %d pheromones", ErrDimensionMismatch, len(d), len(p))
	}
	if len(d) == 0 {
		return nil, ErrNoCandidates
	}

	var (
		w      = make([]float64, len(d))
		maxW   float64
		nInf   int
		k      int
		dk, wk float64
	)
	for k = range d {
		dk = d[k]
		if !(dk > MinDistance) {
			// also catches NaN distances
			dk = MinDistance
		}
		wk = math.Pow(1/dk, dstPower) * math.Pow(p[k], pheromonePower)
		switch {
		case math.IsInf(wk, 1):
			nInf++
		case wk == 0 || math.IsNaN(wk) || wk < 0:
			wk = Epsilon
		}
		w[k] = wk
		if wk > maxW {
			maxW = wk
		}
	}

	if nInf > 0 {
		share := 1 / float64(nInf)
		for k = range w {
			if math.IsInf(w[k], 1) {
				w[k] = share
			} else {
				w[k] = 0
			}
		}
		return w, nil
	}

	var sum float64
	for k = range w {
		w[k] /= maxW
		sum += w[k]
	}
	for k = range w {
		w[k] /= sum
	}

	return w, nil
}

// SampleIndex draws an index from probs using one src.Float64() value.
// Rounding shortfalls in the cumulative sum fall back to the last index
// with non-zero probability. probs must be non-empty.
func SampleIndex(probs []float64, src RandomSource) int {
	var (
		r    = src.Float64()
		cum  float64
		last = -1
	)
	for k, pk := range probs {
		if pk <= 0 {
			continue
		}
		last = k
		cum += pk
		if r < cum {
			return k
		}
	}
	if last < 0 {
		return len(probs) - 1
	}

	return last
}
