package restore

import (
	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"
)

// Affine is a 2x3 transform [[A, B, TX], [C, D, TY]] mapping
// reference-space (x, y, 1) to current-space (x', y').
type Affine struct {
	A, B, TX float64
	C, D, TY float64
}

// Apply maps a reference-space point into current space.
func (t *Affine) Apply(p r2.Point) r2.Point {
	return r2.Point{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// TransformOffset applies only the linear part (rotation and scale) of
// the transform to a displacement vector: the full affine application
// followed by subtraction of the translation column. An offset is a
// direction and magnitude between two points, not a point, so it must
// not shift with the frame's absolute position. A nil transform is the
// identity fallback for the under-determined estimation case.
func (t *Affine) TransformOffset(off r2.Point) r2.Point {
	if t == nil {
		return off
	}
	full := t.Apply(off)
	return r2.Point{X: full.X - t.TX, Y: full.Y - t.TY}
}

// EstimateAffine fits the affine map from reference space to current
// space over all indices that are confident (> CorrespondenceThreshold)
// in both sets. Returns nil when fewer than 3 correspondence pairs
// exist or the system is singular; callers treat nil as identity.
//
// With exactly 3 pairs the solve is exact; with more it is the
// unweighted linear least-squares fit over all pairs. No outlier
// rejection or confidence weighting is applied.
func EstimateAffine(current, reference KeypointSet) *Affine {
	n := len(current)
	if len(reference) < n {
		n = len(reference)
	}

	var refs, curs []r2.Point
	for i := 0; i < n; i++ {
		if reference[i].Confidence > CorrespondenceThreshold &&
			current[i].Confidence > CorrespondenceThreshold {
			refs = append(refs, reference[i].Point())
			curs = append(curs, current[i].Point())
		}
	}
	if len(refs) < 3 {
		return nil
	}

	// Two equations per pair for the six unknowns (A, B, TX, C, D, TY):
	//   x' = A*x + B*y + TX
	//   y' = C*x + D*y + TY
	rows := 2 * len(refs)
	a := mat.NewDense(rows, 6, nil)
	b := mat.NewVecDense(rows, nil)
	for i, p := range refs {
		q := curs[i]
		a.SetRow(2*i, []float64{p.X, p.Y, 1, 0, 0, 0})
		a.SetRow(2*i+1, []float64{0, 0, 0, p.X, p.Y, 1})
		b.SetVec(2*i, q.X)
		b.SetVec(2*i+1, q.Y)
	}

	var sol mat.VecDense
	if err := sol.SolveVec(a, b); err != nil {
		// Collinear or otherwise degenerate correspondences; degrade to
		// the identity fallback rather than failing the restoration.
		return nil
	}

	return &Affine{
		A: sol.AtVec(0), B: sol.AtVec(1), TX: sol.AtVec(2),
		C: sol.AtVec(3), D: sol.AtVec(4), TY: sol.AtVec(5),
	}
}
