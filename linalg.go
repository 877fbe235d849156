package spline

import (
	"fmt"
	"math"
)

// Vec2, Vec3 and Vec4 are fixed-size column vectors.
type (
	Vec2 [2]float64
	Vec3 [3]float64
	Vec4 [4]float64
)

// Mat2, Mat3 and Mat4 are fixed-size square matrices, stored row-major.
type (
	Mat2 [2][2]float64
	Mat3 [3][3]float64
	Mat4 [4][4]float64
)

func (v Vec2) String() string { return fmt.Sprintf("⟨%g, %g⟩", v[0], v[1]) }
func (v Vec3) String() string { return fmt.Sprintf("⟨%g, %g, %g⟩", v[0], v[1], v[2]) }
func (v Vec4) String() string {
	return fmt.Sprintf("⟨%g, %g, %g, %g⟩", v[0], v[1], v[2], v[3])
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v[0]*o[0] + v[1]*o[1] }
func (v Vec3) Dot(o Vec3) float64 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }
func (v Vec4) Dot(o Vec4) float64 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3] }

// IsFinite reports whether all components are neither infinite nor NaN.
func (v Vec4) IsFinite() bool {
	for _, x := range v {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return false
		}
	}
	return true
}

// Det returns the determinant of m.
func (m Mat2) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Det returns the determinant of m, by cofactor expansion along the first
// row.
func (m Mat3) Det() float64 {
	var det float64
	sign := 1.0
	for c := range 3 {
		det += sign * m[0][c] * m.Minor(0, c).Det()
		sign = -sign
	}
	return det
}

// Det returns the determinant of m, by cofactor expansion along the first
// row.
func (m Mat4) Det() float64 {
	var det float64
	sign := 1.0
	for c := range 4 {
		if m[0][c] != 0 {
			det += sign * m[0][c] * m.Minor(0, c).Det()
		}
		sign = -sign
	}
	return det
}

// Minor returns m without row r and column c.
func (m Mat3) Minor(r, c int) Mat2 {
	var out Mat2
	for i, ii := 0, 0; i < 3; i++ {
		if i == r {
			continue
		}
		for j, jj := 0, 0; j < 3; j++ {
			if j == c {
				continue
			}
			out[ii][jj] = m[i][j]
			jj++
		}
		ii++
	}
	return out
}

// Minor returns m without row r and column c.
func (m Mat4) Minor(r, c int) Mat3 {
	var out Mat3
	for i, ii := 0, 0; i < 4; i++ {
		if i == r {
			continue
		}
		for j, jj := 0, 0; j < 4; j++ {
			if j == c {
				continue
			}
			out[ii][jj] = m[i][j]
			jj++
		}
		ii++
	}
	return out
}

// MulVec returns the matrix-vector product m v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		Vec2(m[0]).Dot(v),
		Vec2(m[1]).Dot(v),
	}
}

func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		Vec3(m[0]).Dot(v),
		Vec3(m[1]).Dot(v),
		Vec3(m[2]).Dot(v),
	}
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		Vec4(m[0]).Dot(v),
		Vec4(m[1]).Dot(v),
		Vec4(m[2]).Dot(v),
		Vec4(m[3]).Dot(v),
	}
}

// WithColumn returns a copy of m with column c replaced by v.
func (m Mat2) WithColumn(c int, v Vec2) Mat2 {
	for r := range 2 {
		m[r][c] = v[r]
	}
	return m
}

func (m Mat3) WithColumn(c int, v Vec3) Mat3 {
	for r := range 3 {
		m[r][c] = v[r]
	}
	return m
}

func (m Mat4) WithColumn(c int, v Vec4) Mat4 {
	for r := range 4 {
		m[r][c] = v[r]
	}
	return m
}

// checkDet returns ErrSingularMatrix if the reciprocal of det isn't finite.
func checkDet(det float64) error {
	if inv := 1 / det; math.IsInf(inv, 0) || math.IsNaN(inv) {
		return fmt.Errorf("determinant %g: %w", det, ErrSingularMatrix)
	}
	return nil
}

// Solve solves the linear system m x = v using Cramer's rule.
func (m Mat2) Solve(v Vec2) (Vec2, error) {
	det := m.Det()
	if err := checkDet(det); err != nil {
		return Vec2{}, err
	}
	var x Vec2
	for i := range x {
		x[i] = m.WithColumn(i, v).Det() / det
	}
	return x, nil
}

// Solve solves the linear system m x = v using Cramer's rule.
func (m Mat3) Solve(v Vec3) (Vec3, error) {
	det := m.Det()
	if err := checkDet(det); err != nil {
		return Vec3{}, err
	}
	var x Vec3
	for i := range x {
		x[i] = m.WithColumn(i, v).Det() / det
	}
	return x, nil
}

// Solve solves the linear system m x = v using Cramer's rule.
func (m Mat4) Solve(v Vec4) (Vec4, error) {
	det := m.Det()
	if err := checkDet(det); err != nil {
		return Vec4{}, err
	}
	var x Vec4
	for i := range x {
		x[i] = m.WithColumn(i, v).Det() / det
	}
	return x, nil
}
