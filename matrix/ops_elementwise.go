// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place element-wise kernels over Dense (Fill, Scale, AddAt, Floor, Apply).
//   - Candidate gathers along a row or a column of a Dense.
//
// Determinism & Performance:
//   - Fixed loop orders over the flat row-major buffer.
//   - In-place kernels allocate nothing; gathers allocate only their output.

package matrix

import "math"

// Fill sets every element to v.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Scale multiplies every element by f in place.
// Complexity: O(r*c).
func (m *Dense) Scale(f float64) {
	for i := range m.data {
		m.data[i] *= f
	}
}

// AddAt adds delta to the element at (row, col) and returns the new value.
// Complexity: O(1).
func (m *Dense) AddAt(row, col int, delta float64) (float64, error) {
	idx, err := m.indexOf("AddAt", row, col)
	if err != nil {
		return 0, err
	}
	m.data[idx] += delta

	return m.data[idx], nil
}

// Floor raises every element below lo to lo.
// NaN elements are also replaced by lo.
// Complexity: O(r*c).
func (m *Dense) Floor(lo float64) {
	for i, v := range m.data {
		if v < lo || math.IsNaN(v) {
			m.data[i] = lo
		}
	}
}

// Apply replaces each element x at (i, j) with fn(i, j, x).
// Complexity: O(r*c) calls to fn.
func (m *Dense) Apply(fn func(i, j int, x float64) float64) {
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = fn(i, j, m.data[base+j])
		}
	}
}

// GatherRow returns [m(i, cols[0]), m(i, cols[1]), ...].
// Every index is bounds-checked before anything is read.
// Complexity: O(len(cols)).
func (m *Dense) GatherRow(i int, cols []int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("GatherRow", i, 0, ErrOutOfRange)
	}
	out := make([]float64, len(cols))
	base := i * m.c
	for k, j := range cols {
		if j < 0 || j >= m.c {
			return nil, denseErrorf("GatherRow", i, j, ErrOutOfRange)
		}
		out[k] = m.data[base+j]
	}

	return out, nil
}

// GatherCol returns [m(rows[0], j), m(rows[1], j), ...].
// Complexity: O(len(rows)).
func (m *Dense) GatherCol(j int, rows []int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("GatherCol", 0, j, ErrOutOfRange)
	}
	out := make([]float64, len(rows))
	for k, i := range rows {
		if i < 0 || i >= m.r {
			return nil, denseErrorf("GatherCol", i, j, ErrOutOfRange)
		}
		out[k] = m.data[i*m.c+j]
	}

	return out, nil
}
