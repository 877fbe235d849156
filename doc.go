// Package spline evaluates and inverts piecewise cubic curves over any number
// of named axes.
//
// # Segments and bases
//
// A [Segment] is a cubic curve over t ∈ [0, 1], with one cubic polynomial per
// axis. It is built from four control values per axis and a [Basis], the
// characteristic matrix that turns control values into polynomial
// coefficients. The package provides [Bezier], [Hermite], [CatmullRom] and
// [BSpline]; other curve families, such as Cardinal splines with a particular
// tension, are described by their own matrix. [ConvertBasis] converts control
// values between bases.
//
// A [Spline] joins segments into one curve. [NewBezierSpline] builds a spline
// from flattened lists of 3n+1 Bézier control values.
//
// # Axes
//
// Axes are identified by values of a string type chosen by the caller, for
// example
//
//	type Channel string
//
// Points are maps from axes to coordinates ([Point]), and bounding boxes are
// maps from axes to intervals ([Box]). Wherever the package produces a list
// that depends on axes, axes are visited in ascending order.
//
// # Precision
//
// Every axis has a number of decimal places, configured through [Options].
// Control values are rounded to that precision on construction, and every
// coordinate the package returns is rounded to it as well, using [Round]. This
// makes queries invertible: feeding a coordinate returned by one query into
// another query yields consistent results, and repeated queries yield
// identical results.
//
// # Analysis
//
// On construction, a segment computes its extrema ([Segment.Extrema]), the
// monotonicity of each axis ([Segment.Monotonicity]), its bounding box
// ([Segment.BoundingBox]) and a lookup table of samples with their arc
// lengths ([Segment.LUT]). Parameters at which the derivative of an axis
// vanishes without changing sign, such as saddles, aren't extrema.
//
// The lookup table samples the curve at fixed steps. When [Options.MaxError]
// is set, the table is refined adaptively until interpolating linearly between
// samples is accurate to within MaxError. [Segment.Arclen] computes the arc
// length by quadrature instead.
//
// # Solving
//
// [Segment.Solve] and [Spline.Solve] find the point at which an axis takes a
// given value. Because curves needn't be monotonic, a value may be taken
// several times; a window of acceptable values on the other axes selects
// among them. Solutions are memoized per segment and spline.
// [Segment.SolveAtLength] and [Spline.SolveAtLength] find the point at a
// given arc length.
//
// # Logging
//
// The package logs construction details through [log/slog]. Nothing is logged
// unless a logger is installed with [SetLogger].
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package spline
