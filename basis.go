package spline

// Basis is the characteristic matrix of a cubic curve family. It maps four
// control values to the coefficients of a cubic polynomial, lowest order
// first.
type Basis Mat4

// Bezier is the basis of cubic Bézier curves: the curve interpolates the
// first and last control points and is pulled towards the inner two.
var Bezier = Basis{
	{1, 0, 0, 0},
	{-3, 3, 0, 0},
	{3, -6, 3, 0},
	{-1, 3, -3, 1},
}

// Hermite is the basis of cubic Hermite curves. The control values are
// ordered start point, end point, start tangent, end tangent.
var Hermite = Basis{
	{1, 0, 0, 0},
	{0, 0, 1, 0},
	{-3, 3, -2, -1},
	{2, -2, 1, 1},
}

// CatmullRom is the basis of uniform Catmull-Rom curves. The curve runs from
// the second to the third control point.
var CatmullRom = Basis{
	{0, 1, 0, 0},
	{-0.5, 0, 0.5, 0},
	{1, -2.5, 2, -0.5},
	{-0.5, 1.5, -1.5, 0.5},
}

// BSpline is the basis of uniform cubic B-splines. The curve generally
// interpolates none of the control points.
var BSpline = Basis{
	{1.0 / 6, 4.0 / 6, 1.0 / 6, 0},
	{-3.0 / 6, 0, 3.0 / 6, 0},
	{3.0 / 6, -6.0 / 6, 3.0 / 6, 0},
	{-1.0 / 6, 3.0 / 6, -3.0 / 6, 1.0 / 6},
}

// Coefficients returns the polynomial coefficients for the control values
// pts, lowest order first.
func (b Basis) Coefficients(pts Vec4) Vec4 {
	return Mat4(b).MulVec(pts)
}

// ConvertBasis returns the control values that describe, in the basis to,
// the same polynomial that pts describe in the basis from. It returns
// ErrSingularMatrix if to is degenerate.
func ConvertBasis(from, to Basis, pts Vec4) (Vec4, error) {
	return Mat4(to).Solve(from.Coefficients(pts))
}
