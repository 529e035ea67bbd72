package geom

// PolygonTransform is a transform defined by how it maps the vertices of an
// input polygon onto those of an output polygon.
//
// Concatenate and PreConcatenate change the transform in place by moving the
// polygons: Concatenate(o) replaces the input polygon with its preimage
// under o, so that o is applied first, and PreConcatenate(o) maps the output
// polygon through o, so that o is applied last. Composition is exact when o
// is affine. Polygons with a rectangle side only accept transforms that keep
// rectangles axis-aligned there, and report [ErrUnsupportedTransform]
// otherwise. A failed call leaves the transform unchanged.
type PolygonTransform interface {
	Transform2D
	InputVertices() []Point
	OutputVertices() []Point
	InputBounds() Rect
	OutputBounds() Rect
	Concatenate(other Transform2D) error
	PreConcatenate(other Transform2D) error
}

// QuadrilateralTransform is a [PolygonTransform] between quadrilaterals.
type QuadrilateralTransform interface {
	PolygonTransform
	// SquareToDomain returns the transform that maps the unit square onto the
	// input quadrilateral, vertex by vertex.
	SquareToDomain() (Transform2D, error)
}

var (
	_ QuadrilateralTransform = (*RectToQuad)(nil)
	_ QuadrilateralTransform = (*QuadToRect)(nil)
	_ QuadrilateralTransform = (*QuadToQuad)(nil)
	_ PolygonTransform       = (*TriangleTransform)(nil)
)

// unitSquare is the unit square with the vertex order of [Rect.Vertices].
var unitSquare = [4]Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

func mapQuad(xf Transform2D, quad [4]Point) ([4]Point, error) {
	var out [4]Point
	for i, pt := range quad {
		var err error
		if out[i], err = xf.TransformPoint(pt); err != nil {
			return [4]Point{}, err
		}
	}
	return out, nil
}

// asAffine returns xf as a single affine transform, if it is one.
func asAffine(xf Transform2D) (Affine, bool) {
	switch xf := xf.(type) {
	case Affine:
		return xf, true
	case *TriangleTransform:
		return xf.Affine()
	case Chain:
		return xf.Affine()
	default:
		return Affine{}, false
	}
}
