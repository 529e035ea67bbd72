package geom

import (
	"container/heap"

	"github.com/hashicorp/go-hclog"
)

// DefaultAccuracy is the default maximum error of iterative algorithms.
const DefaultAccuracy = 1e-9

// Tolerance configures the iterative algorithms [NearestPoint] and
// [Intersect].
type Tolerance struct {
	// MaxError is the largest acceptable absolute error of the result.
	MaxError float64
	// MaxSteps bounds the number of sub-curves evaluated. Algorithms that run
	// out of steps return their best result so far.
	MaxSteps int
	// Logger receives a trace of each step and a summary at the end. A nil
	// Logger discards everything.
	Logger hclog.Logger
}

// DefaultTolerance is a tolerance suitable for coordinates of moderate
// magnitude.
var DefaultTolerance = Tolerance{
	MaxError: DefaultAccuracy,
	MaxSteps: 1000,
}

func (tol Tolerance) logger() hclog.Logger {
	if tol.Logger == nil {
		return hclog.NewNullLogger()
	}
	return tol.Logger
}

type interval struct {
	piece BoundedParam2D
	// key orders the queue; smaller keys are popped first.
	key float64
	// lower is the piece's lower bound on the searched quantity.
	lower float64
	est   Estimate
}

type intervalQueue []interval

func (q intervalQueue) Len() int           { return len(q) }
func (q intervalQueue) Less(i, j int) bool { return q[i].key < q[j].key }
func (q intervalQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *intervalQueue) Push(x any)        { *q = append(*q, x.(interval)) }
func (q *intervalQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// NearestPoint finds the point of c closest to p.
//
// It repeatedly bisects the sub-curve whose lower bound on the distance is
// smallest, dropping sub-curves that cannot beat the best candidate by more
// than tol.MaxError. It stops when no sub-curves remain or after tol.MaxSteps
// sub-curves have been evaluated. NearestPoint never fails; the returned
// range always contains the true minimum distance.
func NearestPoint(c BoundedParam2D, p Point, tol Tolerance) CurveDistanceRange {
	logger := tol.logger()
	first := c.Distance(p)
	if first.IsExact() || tol.MaxSteps <= 0 {
		return first
	}

	best := first.CurveDistance
	// floor is the smallest lower bound of any discarded sub-curve.
	floor := best.Distance
	q := &intervalQueue{{piece: c, key: first.MinDistance, lower: first.MinDistance}}
	steps := 0
	for q.Len() > 0 && steps < tol.MaxSteps {
		it := heap.Pop(q).(interval)
		if it.lower >= best.Distance-tol.MaxError {
			floor = min(floor, it.lower)
			continue
		}
		for _, piece := range it.piece.Subdivide() {
			steps++
			d := piece.Distance(p)
			lower := max(d.MinDistance, it.lower)
			if d.Distance < best.Distance {
				best = d.CurveDistance
			}
			if logger.IsTrace() {
				logger.Trace("nearest point step", "step", steps, "t0", piece.MinT(), "t1", piece.MaxT(), "lower", lower, "best", best.Distance)
			}
			if d.IsExact() || lower >= best.Distance-tol.MaxError {
				floor = min(floor, lower)
				continue
			}
			heap.Push(q, interval{piece: piece, key: lower, lower: lower})
		}
	}

	minDist := min(floor, best.Distance)
	for _, it := range *q {
		minDist = min(minDist, it.lower)
	}
	logger.Debug("nearest point search finished",
		"steps", steps,
		"distance", best.Distance,
		"error", best.Distance-minDist,
		"converged", q.Len() == 0)
	return CurveDistanceRange{CurveDistance: best, MinDistance: minDist}
}

// RefineLength narrows the arc length estimate of c by repeatedly splitting
// the piece with the widest bracket. It stops once the bracket is within
// absErr or within relErr of the value, or after maxSteps pieces have been
// measured.
//
// Upper bounds of curves implementing [ControlPolygoner] are tightened with
// the length of the control polygon.
func RefineLength(c BoundedParam2D, absErr, relErr float64, maxSteps int) Estimate {
	done := func(e Estimate) bool {
		return e.Error() <= absErr || e.Error() <= relErr*e.Value
	}
	total := pieceLength(c)
	if done(total) || maxSteps <= 0 {
		return total
	}

	q := &intervalQueue{{piece: c, key: -total.Error(), est: total}}
	steps := 0
	for steps < maxSteps && !done(total) {
		it := heap.Pop(q).(interval)
		if !(it.piece.MinT() < it.piece.MaxT()) {
			heap.Push(q, it)
			break
		}
		total = total.Add(Estimate{-it.est.Upper, -it.est.Lower, -it.est.Value})
		for _, piece := range it.piece.Subdivide() {
			steps++
			e := pieceLength(piece)
			total = total.Add(e)
			heap.Push(q, interval{piece: piece, key: -e.Error(), est: e})
		}
	}

	total = Exact(0)
	for _, it := range *q {
		total = total.Add(it.est)
	}
	return total
}

func pieceLength(c BoundedParam2D) Estimate {
	e := c.Length()
	if e.IsExact() {
		return e
	}
	if cp, ok := c.Curve().(ControlPolygoner); ok {
		if hi := polygonLength(cp.ControlPolygon(c.MinT(), c.MaxT())); hi < e.Upper {
			return EstimateRange(e.Lower, max(hi, e.Lower))
		}
	}
	return e
}
