package coupling

import (
	"errors"
	"math"
	"testing"
)

func matApproxIdentity(t *testing.T, m *Matrix, tol float64) {
	t.Helper()
	n := m.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(m.At(i, j)-want) > tol {
				t.Errorf("entry (%d,%d): expected %g, got %g", i, j, want, m.At(i, j))
			}
		}
	}
}

func TestInverse2x2(t *testing.T) {
	m := NewMatrix2(4, 1, 3)

	inv, err := m.Inverse(DefaultSingularTol)
	if err != nil {
		t.Fatalf("inverse failed: %v", err)
	}

	prod := NewMatrix(2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			sum := 0.0
			for k := 0; k < 2; k++ {
				sum += m.At(i, k) * inv.At(k, j)
			}
			prod.Set(i, j, sum)
		}
	}
	matApproxIdentity(t, prod, 1e-12)
}

func TestInverse2x2Singular(t *testing.T) {
	m := NewMatrix2(1e-10, 1e-10, 1e-10)
	if _, err := m.Inverse(DefaultSingularTol); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("expected ErrSingularMatrix, got %v", err)
	}

	zero := NewMatrix(2)
	if _, err := zero.Inverse(DefaultSingularTol); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("expected ErrSingularMatrix for zero matrix, got %v", err)
	}
}

func TestInverseGaussJordan(t *testing.T) {
	m := NewMatrix(3)
	vals := [][]float64{
		{2, -1, 0},
		{-1, 2, -1},
		{0, -1, 2},
	}
	for i := range vals {
		for j := range vals[i] {
			m.Set(i, j, vals[i][j])
		}
	}

	inv, err := m.Inverse(DefaultSingularTol)
	if err != nil {
		t.Fatalf("inverse failed: %v", err)
	}

	prod := NewMatrix(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m.At(i, k) * inv.At(k, j)
			}
			prod.Set(i, j, sum)
		}
	}
	matApproxIdentity(t, prod, 1e-12)
}

func TestInverseGaussJordanSingular(t *testing.T) {
	// Row 2 is a multiple of row 0.
	m := NewMatrix(3)
	vals := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{2, 4, 6},
	}
	for i := range vals {
		for j := range vals[i] {
			m.Set(i, j, vals[i][j])
		}
	}

	if _, err := m.Inverse(DefaultSingularTol); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("expected ErrSingularMatrix, got %v", err)
	}
}

func TestInverseGaussJordanPivoting(t *testing.T) {
	// Zero on the first diagonal entry forces a row swap.
	m := NewMatrix(3)
	vals := [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{4, -3, 8},
	}
	for i := range vals {
		for j := range vals[i] {
			m.Set(i, j, vals[i][j])
		}
	}

	inv, err := m.Inverse(DefaultSingularTol)
	if err != nil {
		t.Fatalf("inverse failed: %v", err)
	}

	prod := NewMatrix(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m.At(i, k) * inv.At(k, j)
			}
			prod.Set(i, j, sum)
		}
	}
	matApproxIdentity(t, prod, 1e-12)
}

func TestSymmetric(t *testing.T) {
	m := NewMatrix2(1e-10, -2e-11, 1.2e-10)
	if !m.Symmetric(1e-9) {
		t.Error("expected symmetric matrix to pass")
	}

	a := NewMatrix(2)
	a.Set(0, 0, 1e-10)
	a.Set(0, 1, -2e-11)
	a.Set(1, 0, -2.1e-11)
	a.Set(1, 1, 1e-10)
	if a.Symmetric(1e-9) {
		t.Error("expected asymmetric matrix to fail")
	}
}

func TestScale(t *testing.T) {
	m := NewMatrix2(1, -2, 3)
	s := m.Scale(2.5)

	if s.At(0, 0) != 2.5 || s.At(0, 1) != -5 || s.At(1, 1) != 7.5 {
		t.Errorf("unexpected scaled entries: %v", s.data)
	}

	// Original untouched.
	if m.At(0, 0) != 1 {
		t.Error("scale mutated the receiver")
	}
}

func TestCloneIndependence(t *testing.T) {
	m := NewMatrix2(1, 2, 3)
	c := m.Clone()
	c.Set(0, 0, 99)

	if m.At(0, 0) != 1 {
		t.Error("clone shares storage with the original")
	}
}

func TestFinite(t *testing.T) {
	m := NewMatrix2(1, 2, 3)
	if !m.Finite() {
		t.Error("expected finite matrix")
	}

	m.Set(0, 1, math.NaN())
	if m.Finite() {
		t.Error("expected NaN entry to be detected")
	}
}
