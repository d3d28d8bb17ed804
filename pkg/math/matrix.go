package math

import "math"

// Matrix2 is a row-major 2x2 matrix.
type Matrix2 [2][2]float64

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 [3][3]float64

// Matrix4 is a row-major 4x4 matrix.
type Matrix4 [4][4]float64

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return out
}

// MultiplyTuple returns the matrix applied to a tuple.
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col][row] = m[row][col]
		}
	}
	return out
}

// Submatrix returns the 3x3 matrix obtained by deleting the given row and
// column.
func (m Matrix4) Submatrix(row, col int) Matrix3 {
	var out Matrix3
	or := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		oc := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			out[or][oc] = m[r][c]
			oc++
		}
		or++
	}
	return out
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col).
func (m Matrix4) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along the
// first row.
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Invertible reports whether the matrix has an inverse.
func (m Matrix4) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse of the matrix. It panics on a singular
// matrix.
func (m Matrix4) Inverse() Matrix4 {
	det := m.Determinant()
	if det == 0 {
		panic("math: inverse of singular matrix")
	}
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed assignment: out is the adjugate over det.
			out[col][row] = m.Cofactor(row, col) / det
		}
	}
	return out
}

// Equals reports whether two matrices are element-wise equal within Epsilon.
func (m Matrix4) Equals(other Matrix4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m[row][col]-other[row][col]) >= Epsilon {
				return false
			}
		}
	}
	return true
}

// Submatrix returns the 2x2 matrix obtained by deleting the given row and
// column.
func (m Matrix3) Submatrix(row, col int) Matrix2 {
	var out Matrix2
	or := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		oc := 0
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			out[or][oc] = m[r][c]
			oc++
		}
		or++
	}
	return out
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col).
func (m Matrix3) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along the
// first row.
func (m Matrix3) Determinant() float64 {
	det := 0.0
	for col := 0; col < 3; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Determinant returns ad - bc.
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}
