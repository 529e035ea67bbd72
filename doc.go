// Package geom provides the geometry kernel of a phase diagram editor:
// low-degree parametric curves and the transforms that map diagrams between
// their principal data space and the page.
//
// # Curves
//
// [Param2D] describes a two-dimensional parametric curve. The package
// implements it for three kinds of curves:
//   - [PointCurve], a single point
//   - [SegmentCurve], a straight line
//   - [BezierCurve], a Bézier curve with up to four control points
//
// Curves are defined for every real t; most operations take the interval
// [t0, t1] to work on. [BoundedParam2D] binds a curve to a fixed interval
// and is what most callers use. [NewBezier] builds one from 1 to 4 control
// points, picking the simplest curve type that fits.
//
// Curve coordinates are polynomials of degree 3 or less, see [Poly]. Bounding
// boxes, projections onto a direction ([BoundedParam2D.LinearBounds]),
// intersections with lines and signed areas are computed exactly from the
// polynomials, up to rounding.
//
// # Estimates
//
// Some quantities, such as the arc length of a cubic or the distance from a
// point to it, have no closed form. Operations that compute them return a
// bracket: an [Estimate] for lengths and a [CurveDistanceRange] for
// distances. The fast methods ([BoundedParam2D.Length],
// [BoundedParam2D.Distance]) return a cheap bracket; their Refine
// counterparts and the functions [NearestPoint] and [RefineLength] subdivide
// the curve until the bracket is narrow enough or a step budget runs out.
// Brackets are always sound: the true value lies within them, regardless of
// how many steps were taken.
//
// [Intersect] finds the intersections of two curves by subdividing both
// until they are flat.
//
// # Transforms
//
// [Transform2D] describes a mapping of the plane. [Affine] is the common
// case. The polygon transforms map one polygon onto another:
//   - [TriangleTransform], the affine map between two triangles
//   - [RectToQuad], the bilinear map from a rectangle onto a convex
//     quadrilateral
//   - [QuadToRect], its inverse
//   - [QuadToQuad], a map between two convex quadrilaterals by way of the
//     unit square
//
// Unlike affine transforms, the inverse of a bilinear map is not defined
// everywhere: [QuadToRect.TransformPoint] reports [ErrUnsolvable] for points
// without a preimage. [Chain] composes transforms.
//
// # Errors
//
// Errors returned by this package wrap one of the exported Err values with
// context. Test for them with errors.Is.
//
// # Logging
//
// The iterative algorithms accept an hclog.Logger through [Tolerance].
// Every step is logged at trace level and a summary at debug level.
package geom
