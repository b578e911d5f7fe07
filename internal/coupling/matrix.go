package coupling

import "math"

// Matrix is a dense square matrix of per-unit-length line parameters,
// stored row-major.
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix allocates an n×n zero matrix. n must be >= 1.
func NewMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]float64, n*n)}
}

// NewMatrix2 builds the symmetric 2×2 matrix [[a11, a12], [a12, a22]].
func NewMatrix2(a11, a12, a22 float64) *Matrix {
	return &Matrix{n: 2, data: []float64{a11, a12, a12, a22}}
}

// Dims returns the matrix order.
func (m *Matrix) Dims() int { return m.n }

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.n+j] = v }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.n)
	copy(c.data, m.data)
	return c
}

// Scale returns a new matrix with every entry multiplied by s.
func (m *Matrix) Scale(s float64) *Matrix {
	c := NewMatrix(m.n)
	for i, v := range m.data {
		c.data[i] = v * s
	}
	return c
}

// MaxAbs returns the largest entry magnitude, used as the scale for
// relative tolerance checks.
func (m *Matrix) MaxAbs() float64 {
	max := 0.0
	for _, v := range m.data {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

// Finite reports whether every entry is a finite number.
func (m *Matrix) Finite() bool {
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Symmetric reports whether |m[i][j] - m[j][i]| <= tol * scale for all
// off-diagonal pairs, where scale is the largest entry magnitude.
func (m *Matrix) Symmetric(tol float64) bool {
	scale := m.MaxAbs()
	if scale == 0 {
		return true
	}
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol*scale {
				return false
			}
		}
	}
	return true
}

// Inverse computes m⁻¹. tol is the relative pivot tolerance below which
// the matrix is treated as singular. The 2×2 case uses the closed-form
// adjugate; larger orders use Gauss-Jordan elimination with partial
// pivoting.
func (m *Matrix) Inverse(tol float64) (*Matrix, error) {
	if m.n == 2 {
		return m.inverse2(tol)
	}
	return m.inverseGJ(tol)
}

func (m *Matrix) inverse2(tol float64) (*Matrix, error) {
	a, b := m.At(0, 0), m.At(0, 1)
	c, d := m.At(1, 0), m.At(1, 1)

	det := a*d - b*c
	scale := math.Max(math.Abs(a*d), math.Abs(b*c))
	if scale == 0 || math.Abs(det) <= tol*scale {
		return nil, ErrSingularMatrix
	}

	inv := NewMatrix(2)
	inv.Set(0, 0, d/det)
	inv.Set(0, 1, -b/det)
	inv.Set(1, 0, -c/det)
	inv.Set(1, 1, a/det)
	return inv, nil
}

// inverseGJ reduces [m | I] to [I | m⁻¹] in place on a working copy.
func (m *Matrix) inverseGJ(tol float64) (*Matrix, error) {
	n := m.n
	work := m.Clone()
	inv := NewMatrix(n)
	for i := 0; i < n; i++ {
		inv.Set(i, i, 1)
	}

	scale := work.MaxAbs()
	if scale == 0 {
		return nil, ErrSingularMatrix
	}

	for col := 0; col < n; col++ {
		// Partial pivot: largest magnitude in this column, at or below
		// the diagonal.
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(work.At(row, col)) > math.Abs(work.At(pivot, col)) {
				pivot = row
			}
		}
		if math.Abs(work.At(pivot, col)) <= tol*scale {
			return nil, ErrSingularMatrix
		}
		if pivot != col {
			work.swapRows(pivot, col)
			inv.swapRows(pivot, col)
		}

		p := work.At(col, col)
		for j := 0; j < n; j++ {
			work.Set(col, j, work.At(col, j)/p)
			inv.Set(col, j, inv.At(col, j)/p)
		}

		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			f := work.At(row, col)
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				work.Set(row, j, work.At(row, j)-f*work.At(col, j))
				inv.Set(row, j, inv.At(row, j)-f*inv.At(col, j))
			}
		}
	}

	return inv, nil
}

func (m *Matrix) swapRows(a, b int) {
	ra := m.data[a*m.n : (a+1)*m.n]
	rb := m.data[b*m.n : (b+1)*m.n]
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
}
