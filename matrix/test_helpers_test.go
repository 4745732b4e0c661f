// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense tests and benchmarks.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matbench/matrix"
)

// MustDense ALLOCATES an n×n *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n)
	if err != nil {
		t.Fatalf("NewDense(%d): %v", n, err)
	}

	return m
}

// MustDenseFrom BUILDS a *Dense from a row literal or fails the test.
func MustDenseFrom(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFill FILLS m with deterministic values in [0,50) by seed.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := m.Raw()
	for i := range data {
		data[i] = rng.Int63n(50)
	}
}
