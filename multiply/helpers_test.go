package multiply_test

import (
	"testing"

	"github.com/katalvlaran/matbench/matrix"
)

func mustDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n)
	if err != nil {
		t.Fatalf("NewDense(%d): %v", n, err)
	}
	return m
}

func mustFrom(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}
	return m
}

func mustAt(t testing.TB, m *matrix.Dense, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// identity returns I_n.
func identity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m := mustDense(t, n)
	for i := 0; i < n; i++ {
		if err := m.Set(i, i, 1); err != nil {
			t.Fatalf("Set(%d,%d): %v", i, i, err)
		}
	}
	return m
}
